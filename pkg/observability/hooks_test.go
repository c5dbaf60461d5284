package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Animation hooks
	a := NoopAnimationHooks{}
	a.OnAnimationStart(ctx, "99", "100", 3)
	a.OnFrame(ctx, 1, 0.5)
	a.OnAnimationEnd(ctx, 30, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "svg")
	c.OnCacheMiss(ctx, "svg")
	c.OnCacheSet(ctx, "svg", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/v1/resolve")
	h.OnResponse(ctx, "GET", "/v1/resolve", 200, time.Millisecond)
	h.OnError(ctx, "GET", "/v1/resolve", errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("Animation() should return NoopAnimationHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customAnimation := &testAnimationHooks{}
	SetAnimationHooks(customAnimation)
	if Animation() != customAnimation {
		t.Error("SetAnimationHooks should set custom hooks")
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
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("Reset() should restore NoopAnimationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAnimationHooks{}
	SetAnimationHooks(custom)

	// Setting nil should be ignored
	SetAnimationHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Animation() != custom {
		t.Error("SetAnimationHooks(nil) should be ignored")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testAnimationHooks struct{ NoopAnimationHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
