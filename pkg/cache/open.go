package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	Dir     string // file backend
	Size    int    // memory backend
	Redis   RedisOptions
}

// Open constructs the backend named by opts.Backend. An empty name
// selects the null cache.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: directory not set")
		}
		return NewFileCache(opts.Dir)
	case BackendMemory:
		return NewMemoryCache(opts.Size)
	case BackendRedis:
		return NewRedisCache(ctx, opts.Redis)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// Clearer is implemented by backends that can drop all entries at once.
type Clearer interface {
	Clear() error
}
