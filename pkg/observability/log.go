package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements PipelineHooks and ServerHooks by writing debug
// entries to a logger. The CLI registers it in verbose mode.
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) OnLayoutStart(_ context.Context, circles int) {
	h.Logger.Debug("layout start", "circles", circles)
}

func (h LogHooks) OnLayoutComplete(_ context.Context, circles, labels int, d time.Duration) {
	h.Logger.Debug("layout done", "circles", circles, "labels", labels, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "formats", formats, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("render done", "formats", formats, "duration", d)
}

func (h LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}
