package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

// exerciseCache runs the behavior every backend shares.
func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "k", []byte("v1"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v1" {
		t.Fatalf("Get(k) = %q, %v, %v", data, hit, err)
	}

	if err := c.Set(ctx, "k", []byte("v2"), 0); err != nil {
		t.Fatalf("Set overwrite error: %v", err)
	}
	if data, _, _ := c.Get(ctx, "k"); string(data) != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	exerciseCache(t, c)
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry file should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	entries, err := os.ReadDir(c.Dir())
	if err != nil {
		t.Fatalf("cache dir should exist after Clear: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after Clear", len(entries))
	}
}

func TestFileCacheCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, _ := NewFileCache(t.TempDir())
	if _, _, err := c.Get(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get error = %v, want context.Canceled", err)
	}
}

func TestMemoryCache(t *testing.T) {
	c, err := NewMemoryCache(8)
	if err != nil {
		t.Fatal(err)
	}
	exerciseCache(t, c)
}

func TestMemoryCacheEviction(t *testing.T) {
	ctx := context.Background()
	c, _ := NewMemoryCache(2)

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)
	_, _, _ = c.Get(ctx, "a") // a is now most recently used
	_ = c.Set(ctx, "c", []byte("3"), 0)

	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("least recently used entry should be evicted")
	}
	if _, hit, _ := c.Get(ctx, "a"); !hit {
		t.Error("recently used entry should survive")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewMemoryCache(0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}
	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed, Len() = %d", c.Len())
	}
}

func TestMemoryCacheCopiesInput(t *testing.T) {
	ctx := context.Background()
	c, _ := NewMemoryCache(1)
	buf := []byte("abc")
	_ = c.Set(ctx, "k", buf, 0)
	buf[0] = 'x'
	if data, _, _ := c.Get(ctx, "k"); string(data) != "abc" {
		t.Errorf("Get = %q, want abc", data)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		opts    Options
		want    string
		wantErr bool
	}{
		{"empty", Options{}, "*cache.NullCache", false},
		{"none", Options{Backend: BackendNone}, "*cache.NullCache", false},
		{"memory", Options{Backend: BackendMemory, Size: 4}, "*cache.MemoryCache", false},
		{"file", Options{Backend: BackendFile, Dir: t.TempDir()}, "*cache.FileCache", false},
		{"file without dir", Options{Backend: BackendFile}, "", true},
		{"unknown", Options{Backend: "etcd"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Open(ctx, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer c.Close()
			if got := typeName(c); got != tt.want {
				t.Errorf("Open() = %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := Open(ctx, Options{Backend: "etcd"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("unknown backend error = %v, want ErrUnknownBackend", err)
	}
}

func typeName(c Cache) string {
	switch c.(type) {
	case *NullCache:
		return "*cache.NullCache"
	case *MemoryCache:
		return "*cache.MemoryCache"
	case *FileCache:
		return "*cache.FileCache"
	case *RedisCache:
		return "*cache.RedisCache"
	}
	return "unknown"
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := ExtractionKeyOpts{
		FileName:  "pyproject.toml",
		Content:   "[project]\n",
		LockFiles: map[string]string{"pdm.lock": "a", "poetry.lock": "b"},
	}

	key := k.ExtractionKey("pyproject.toml", base)
	if !strings.HasPrefix(key, "extract:pyproject.toml:") {
		t.Errorf("ExtractionKey prefix unexpected: %s", key)
	}
	if key != k.ExtractionKey("pyproject.toml", base) {
		t.Error("ExtractionKey should be deterministic")
	}

	variants := map[string]ExtractionKeyOpts{
		"file name": {FileName: "sub/pyproject.toml", Content: base.Content, LockFiles: base.LockFiles},
		"content":   {FileName: base.FileName, Content: "[project]\nname='x'\n", LockFiles: base.LockFiles},
		"lock":      {FileName: base.FileName, Content: base.Content, LockFiles: map[string]string{"pdm.lock": "changed"}},
		"skip lock": {FileName: base.FileName, Content: base.Content, LockFiles: base.LockFiles, SkipLockFiles: true},
	}
	for name, opts := range variants {
		if k.ExtractionKey("pyproject.toml", opts) == key {
			t.Errorf("changing %s should change the key", name)
		}
	}
	if k.ExtractionKey("requirements.txt", base) == key {
		t.Error("manifest type should be part of the key")
	}
}

func TestScopedKeyer(t *testing.T) {
	opts := ExtractionKeyOpts{FileName: "pyproject.toml", Content: "x"}
	scoped := NewScopedKeyer(nil, "tenant:1:")
	want := "tenant:1:" + NewDefaultKeyer().ExtractionKey("pyproject.toml", opts)
	if got := scoped.ExtractionKey("pyproject.toml", opts); got != want {
		t.Errorf("ScopedKeyer key = %s, want %s", got, want)
	}
}
