package deps

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrFileNotFound is returned by a FileReader when the requested file does not exist.
var ErrFileNotFound = errors.New("file not found")

// FileReader is the storage collaborator used to read manifests and
// sibling lock files.
type FileReader interface {
	// ReadLocalFile returns the content of path. A missing file yields
	// ErrFileNotFound.
	ReadLocalFile(ctx context.Context, path string) (string, error)
}

// OSFiles reads files from the local filesystem.
// Relative paths are resolved against Root when it is set.
type OSFiles struct {
	Root string
}

// ReadLocalFile reads path from disk.
func (f OSFiles) ReadLocalFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.Root, path)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrFileNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MapFiles serves file contents from memory, keyed by slash-separated path.
// Lookups fall back to the base name so callers can supply lock files
// without knowing the manifest's directory.
type MapFiles map[string]string

// ReadLocalFile returns the stored content for path.
func (m MapFiles) ReadLocalFile(_ context.Context, path string) (string, error) {
	p := filepath.ToSlash(path)
	if s, ok := m[p]; ok {
		return s, nil
	}
	if s, ok := m[strings.TrimPrefix(p, "./")]; ok {
		return s, nil
	}
	if s, ok := m[filepath.Base(p)]; ok {
		return s, nil
	}
	return "", ErrFileNotFound
}

var (
	_ FileReader = OSFiles{}
	_ FileReader = MapFiles(nil)
)
