package cache

import "errors"

// Sentinel errors for cache backends.
var (
	// ErrUnknownBackend is returned by Open for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown cache backend")

	// ErrBackendUnavailable is returned when a remote backend cannot be reached.
	ErrBackendUnavailable = errors.New("cache backend unavailable")
)
