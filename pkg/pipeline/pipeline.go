// Package pipeline runs manifest extraction with caching.
//
// The CLI and the HTTP service both go through [Runner], so a manifest
// extracted by one is served from cache by the other when they share a
// backend.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Extract(ctx, "services/api/pyproject.toml", pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range res.PackageFile.Deps {
//	    fmt.Println(d.DepName, d.CurrentValue)
//	}
//
// Extraction failures inside a manifest never surface as errors; they
// yield a nil PackageFile. Errors are reserved for unreadable files and
// unsupported manifest names.
package pipeline

import (
	"time"

	"github.com/matzehuels/pep621/pkg/deps"
)

// Options configures a single extraction.
type Options struct {
	// Files provides the manifest and its sibling lock files.
	// Defaults to deps.OSFiles{}.
	Files deps.FileReader

	// ManifestType forces an extractor ("pyproject", "requirements" or an
	// alias) instead of detecting it from the file name.
	ManifestType string

	// Refresh bypasses the cache lookup. The fresh result is still stored.
	Refresh bool

	// SkipLockFiles disables lock file cross-referencing.
	SkipLockFiles bool

	// TTL overrides the cache lifetime. Zero means cache.TTLExtraction.
	TTL time.Duration
}

// Result is the outcome of Runner.Extract.
type Result struct {
	File        string            `json:"file"`
	Type        string            `json:"type"`
	PackageFile *deps.PackageFile `json:"packageFile"`
	CacheHit    bool              `json:"cacheHit"`
	Duration    time.Duration     `json:"-"`
}

// DepCount returns the number of extracted dependencies.
func (r *Result) DepCount() int {
	if r == nil || r.PackageFile == nil {
		return 0
	}
	return len(r.PackageFile.Deps)
}
