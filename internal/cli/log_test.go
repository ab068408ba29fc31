package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/venngen/pkg/pipeline"
)

func TestNewLoggerTimestampFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("rendering")

	re := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `)
	if !re.MatchString(buf.String()) {
		t.Errorf("output %q does not start with an HH:MM:SS.00 timestamp", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.start = time.Now().Add(-1500 * time.Millisecond)

	p.done("Rendered 2 format(s)")

	out := strings.TrimSpace(buf.String())
	if !strings.Contains(out, "Rendered 2 format(s) (1.5") {
		t.Errorf("output %q missing message with elapsed time", out)
	}
	if !strings.HasSuffix(out, "s)") {
		t.Errorf("output %q does not end with a duration", out)
	}
}

func TestProgressDoneBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.WarnLevel)).done("Rendered 1 format(s)")

	if buf.Len() != 0 {
		t.Errorf("progress logged at warn level: %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	custom := newLogger(&bytes.Buffer{}, log.DebugLevel)

	tests := []struct {
		name string
		ctx  context.Context
		want *log.Logger
	}{
		{"no logger", context.Background(), log.Default()},
		{"attached", withLogger(context.Background(), custom), custom},
		{"wrong type", context.WithValue(context.Background(), loggerKey, "not a logger"), log.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loggerFromContext(tt.ctx); got != tt.want {
				t.Errorf("loggerFromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}

func TestRunRenderLogsThroughContextLogger(t *testing.T) {
	c := testCLI(t)
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	opts := pipeline.Options{First: "Cats", Second: "Dogs", Formats: []string{"svg"}}
	if err := c.runRender(ctx, "", opts, filepath.Join(t.TempDir(), "out.svg")); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}
	if !strings.Contains(buf.String(), "Rendered 1 format(s)") {
		t.Errorf("context logger output %q missing progress line", buf.String())
	}
}
