package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopExtractHooks{}
	e.OnExtractStart(ctx, "pyproject.toml", "pyproject.toml")
	e.OnExtractComplete(ctx, "pyproject.toml", "pyproject.toml", 3, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "extract")
	c.OnCacheMiss(ctx, "extract")
	c.OnCacheSet(ctx, "extract", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/extract")
	h.OnResponse(ctx, "POST", "/v1/extract", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Extract().(NoopExtractHooks); !ok {
		t.Error("Extract() should return NoopExtractHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customExtract := &testExtractHooks{}
	SetExtractHooks(customExtract)
	if Extract() != customExtract {
		t.Error("SetExtractHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Extract().(NoopExtractHooks); !ok {
		t.Error("Reset() should restore NoopExtractHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testExtractHooks{}
	SetExtractHooks(custom)
	SetExtractHooks(nil)

	if Extract() != custom {
		t.Error("SetExtractHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	h.Register()

	ctx := context.Background()
	Extract().OnExtractComplete(ctx, "pyproject.toml", "a/pyproject.toml", 4, time.Millisecond, nil)
	Extract().OnExtractComplete(ctx, "pyproject.toml", "b/pyproject.toml", 0, time.Millisecond, errors.New("boom"))
	Cache().OnCacheMiss(ctx, "extract")
	HTTP().OnResponse(ctx, "POST", "/v1/extract", 204, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"extract done", "deps=4", "extract failed", "err=boom", "cache miss", "status=204"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	h.OnCacheHit(context.Background(), "extract")
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

// Test implementations
type testExtractHooks struct{ NoopExtractHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
