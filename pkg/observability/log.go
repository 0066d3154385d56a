package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event to a logger at debug level. It implements
// ExtractHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks creates LogHooks writing to logger, or to log.Default when nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

// Register installs h for every hook category.
func (h *LogHooks) Register() {
	SetExtractHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnExtractStart(_ context.Context, manifestType, file string) {
	h.Logger.Debug("extract start", "type", manifestType, "file", file)
}

func (h *LogHooks) OnExtractComplete(_ context.Context, manifestType, file string, depCount int, duration time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("extract failed", "type", manifestType, "file", file, "duration", duration, "err", err)
		return
	}
	h.Logger.Debug("extract done", "type", manifestType, "file", file, "deps", depCount, "duration", duration)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "key", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "key", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "key", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, statusCode int, duration time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", statusCode, "duration", duration)
}

var (
	_ ExtractHooks = (*LogHooks)(nil)
	_ CacheHooks   = (*LogHooks)(nil)
	_ HTTPHooks    = (*LogHooks)(nil)
)
