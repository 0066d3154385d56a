package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points XDG directories at a temp dir so no user config leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Cache.Backend != "file" || cfg.Cache.TTL != 24*time.Hour || cfg.Cache.Size != 1024 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if want := filepath.Join(dir, "cache", "pep621"); cfg.Cache.Dir != want {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, want)
	}
	if cfg.Server.Addr != ":8080" || cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PEP621_CACHE_BACKEND", "redis")
	t.Setenv("PEP621_REDIS_ADDR", "redis:6379")
	t.Setenv("PEP621_REDIS_DB", "3")
	t.Setenv("PEP621_SERVER_WRITE_TIMEOUT", "1m")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Cache.Backend != "redis" || cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 3 {
		t.Errorf("env overrides not applied: %+v %+v", cfg.Cache, cfg.Redis)
	}
	if cfg.Server.WriteTimeout != time.Minute {
		t.Errorf("Server.WriteTimeout = %v", cfg.Server.WriteTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "pep621.toml")
	content := `[cache]
backend = "memory"
size = 64
ttl = "10m"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Cache.Backend != "memory" || cfg.Cache.Size != 64 || cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadXDGConfigFile(t *testing.T) {
	dir := isolate(t)
	confDir := filepath.Join(dir, "config", "pep621")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "pep621.yaml"), []byte("server:\n  addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("explicit missing config file should fail")
	}

	t.Setenv("PEP621_CACHE_BACKEND", "etcd")
	if _, err := Load(""); err == nil {
		t.Error("unknown cache backend should fail validation")
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	if got := DefaultCacheDir(); got != filepath.Join("/tmp/xdg", "pep621") {
		t.Errorf("DefaultCacheDir() = %q", got)
	}
}
