package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/01wneo/RollingText/pkg/observability"
)

// logHooks forwards observability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

// registerHooks installs logger-backed hooks for every event category.
func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetAnimationHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnAnimationStart(_ context.Context, from, to string, columns int) {
	h.logger.Debug("animation start", "from", from, "to", to, "columns", columns)
}

func (h logHooks) OnFrame(context.Context, int, float64) {}

func (h logHooks) OnAnimationEnd(_ context.Context, frames int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("animation stopped", "frames", frames, "elapsed", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("animation done", "frames", frames, "elapsed", d.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnRequest(context.Context, string, string) {}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("request", "method", method, "path", path, "status", status, "elapsed", d.Round(time.Microsecond))
}

func (h logHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Warn("request error", "method", method, "path", path, "err", err)
}

var (
	_ observability.AnimationHooks = logHooks{}
	_ observability.CacheHooks     = logHooks{}
	_ observability.HTTPHooks      = logHooks{}
)
