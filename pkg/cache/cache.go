// Package cache stores serialized extraction results.
//
// Four backends implement [Cache]: [NullCache] (disabled), [FileCache]
// (CLI default), [MemoryCache] (bounded LRU, server default) and
// [RedisCache] (shared across server replicas). Keys come from a [Keyer].
package cache

import (
	"context"
	"sort"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any held resources.
	Close() error
}

// TTLExtraction is the default lifetime of a cached extraction result.
const TTLExtraction = 24 * time.Hour

// Keyer derives cache keys.
type Keyer interface {
	// ExtractionKey identifies one extraction of a manifest. Every input
	// that can change the result is part of the key.
	ExtractionKey(manifestType string, opts ExtractionKeyOpts) string
}

// ExtractionKeyOpts holds the inputs hashed into an extraction key.
type ExtractionKeyOpts struct {
	FileName      string
	Content       string
	LockFiles     map[string]string
	SkipLockFiles bool
}

// DefaultKeyer produces "extract:<type>:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ExtractionKey implements Keyer.
func (DefaultKeyer) ExtractionKey(manifestType string, opts ExtractionKeyOpts) string {
	names := make([]string, 0, len(opts.LockFiles))
	for name := range opts.LockFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	locks := make([][2]string, 0, len(names))
	for _, name := range names {
		locks = append(locks, [2]string{name, opts.LockFiles[name]})
	}
	return hashKey("extract:"+manifestType, opts.FileName, opts.Content, locks, opts.SkipLockFiles)
}

// ScopedKeyer prefixes every key of an inner Keyer, so that several
// tenants can share one backend without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (DefaultKeyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ExtractionKey implements Keyer.
func (k *ScopedKeyer) ExtractionKey(manifestType string, opts ExtractionKeyOpts) string {
	return k.prefix + k.inner.ExtractionKey(manifestType, opts)
}
