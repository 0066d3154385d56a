package deps

import (
	"context"
	"fmt"
	"path/filepath"
)

// ManifestExtractor reads dependency declarations from manifest contents.
type ManifestExtractor interface {
	// Extract returns the declared dependencies, or nil when the content is
	// blank, unparseable, or declares nothing of interest. It never fails.
	Extract(ctx context.Context, content, fileName string, opts Options) *PackageFile
	// Supports reports whether this extractor handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g., "pyproject.toml").
	Type() string
	// LockFiles lists sibling lock file names the extractor may consult.
	LockFiles() []string
}

// DetectManifest finds an extractor that supports the given file path.
// Returns an error if no extractor matches.
func DetectManifest(path string, extractors ...ManifestExtractor) (ManifestExtractor, error) {
	name := filepath.Base(path)
	for _, e := range extractors {
		if e.Supports(name) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unsupported manifest: %s", name)
}

// SiblingPath returns the path of name in the same directory as fileName.
func SiblingPath(fileName, name string) string {
	return filepath.Join(filepath.Dir(fileName), name)
}
