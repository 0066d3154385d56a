package deps

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pdm.lock"), []byte("lock"), 0644); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	got, err := OSFiles{Root: dir}.ReadLocalFile(ctx, "pdm.lock")
	if err != nil {
		t.Fatalf("ReadLocalFile() error: %v", err)
	}
	if got != "lock" {
		t.Errorf("ReadLocalFile() = %q, want %q", got, "lock")
	}

	got, err = OSFiles{}.ReadLocalFile(ctx, filepath.Join(dir, "pdm.lock"))
	if err != nil || got != "lock" {
		t.Errorf("absolute ReadLocalFile() = %q, %v", got, err)
	}

	if _, err := (OSFiles{Root: dir}).ReadLocalFile(ctx, "missing.lock"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("missing file error = %v, want ErrFileNotFound", err)
	}
}

func TestOSFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (OSFiles{}).ReadLocalFile(ctx, "anything"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadLocalFile() error = %v, want context.Canceled", err)
	}
}

func TestMapFiles(t *testing.T) {
	files := MapFiles{
		"proj/pdm.lock": "full",
		"poetry.lock":   "base",
	}
	ctx := context.Background()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "proj/pdm.lock", want: "full"},
		{path: "other/poetry.lock", want: "base"},
		{path: "./poetry.lock", want: "base"},
		{path: "proj/uv.lock", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := files.ReadLocalFile(ctx, tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrFileNotFound) {
					t.Errorf("error = %v, want ErrFileNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLocalFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
