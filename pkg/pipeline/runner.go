package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pep621/pkg/cache"
	"github.com/matzehuels/pep621/pkg/deps"
	"github.com/matzehuels/pep621/pkg/deps/python"
	perrors "github.com/matzehuels/pep621/pkg/errors"
	"github.com/matzehuels/pep621/pkg/observability"
)

// cacheKeyType labels extraction entries in cache hooks.
const cacheKeyType = "extract"

// Runner encapsulates extraction with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Language *deps.Language
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		Language: python.Language,
	}
}

// Extract reads the manifest at path and extracts its dependencies,
// consulting the cache first unless opts.Refresh is set.
func (r *Runner) Extract(ctx context.Context, path string, opts Options) (*Result, error) {
	start := time.Now()
	files := opts.Files
	if files == nil {
		files = deps.OSFiles{}
	}

	extractor, err := r.extractor(path, opts.ManifestType, files)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeUnsupported, err, "cannot extract %s", path)
	}

	content, err := files.ReadLocalFile(ctx, path)
	if errors.Is(err, deps.ErrFileNotFound) {
		return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "manifest %s not found", path)
	}
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "read %s", path)
	}

	result := &Result{File: path, Type: extractor.Type()}
	key := r.Keyer.ExtractionKey(extractor.Type(), cache.ExtractionKeyOpts{
		FileName:      path,
		Content:       content,
		LockFiles:     readLocks(ctx, files, path, extractor, opts.SkipLockFiles),
		SkipLockFiles: opts.SkipLockFiles,
	})

	if !opts.Refresh {
		if pf, hit := r.lookup(ctx, key); hit {
			result.PackageFile = pf
			result.CacheHit = true
			result.Duration = time.Since(start)
			r.Logger.Debug("cache hit", "file", path, "deps", result.DepCount())
			return result, nil
		}
	}

	hooks := observability.Extract()
	hooks.OnExtractStart(ctx, extractor.Type(), path)
	result.PackageFile = extractor.Extract(ctx, content, path, deps.Options{
		SkipLockFiles: opts.SkipLockFiles,
		Logger:        r.Logger.Debugf,
	})
	result.Duration = time.Since(start)
	hooks.OnExtractComplete(ctx, extractor.Type(), path, result.DepCount(), result.Duration, nil)

	r.store(ctx, key, result.PackageFile, opts.TTL)

	r.Logger.Info("extracted",
		"file", path,
		"type", extractor.Type(),
		"deps", result.DepCount(),
		"duration", result.Duration)
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) extractor(path, manifestType string, files deps.FileReader) (deps.ManifestExtractor, error) {
	lang := r.Language
	if lang == nil {
		lang = python.Language
	}
	if manifestType != "" {
		return lang.Extractor(manifestType, files)
	}
	return lang.Detect(path, files)
}

// lookup returns a cached PackageFile. A stored nil result is a hit.
func (r *Runner) lookup(ctx context.Context, key string) (*deps.PackageFile, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}

	var pf *deps.PackageFile
	if err := json.Unmarshal(data, &pf); err != nil {
		// Undecodable entries are recomputed and overwritten.
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return pf, true
}

func (r *Runner) store(ctx context.Context, key string, pf *deps.PackageFile, ttl time.Duration) {
	if ttl <= 0 {
		ttl = cache.TTLExtraction
	}
	data, err := json.Marshal(pf)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// readLocks reads the extractor's sibling lock files for the cache key.
// Missing locks are simply absent from the map.
func readLocks(ctx context.Context, files deps.FileReader, path string, e deps.ManifestExtractor, skip bool) map[string]string {
	if skip {
		return nil
	}
	var locks map[string]string
	for _, name := range e.LockFiles() {
		content, err := files.ReadLocalFile(ctx, deps.SiblingPath(path, name))
		if err != nil {
			continue
		}
		if locks == nil {
			locks = make(map[string]string)
		}
		locks[name] = content
	}
	return locks
}
