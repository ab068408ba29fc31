package pipeline

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/venngen/pkg/errors"
	"github.com/matzehuels/venngen/pkg/observability"
)

func TestRunnerExecuteSVG(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Execute(context.Background(), Options{First: "Cats", Second: "Dogs", FirstSecond: "Pets"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	svg := string(res.Artifacts[FormatSVG])
	if strings.Count(svg, "<circle ") != 2 || strings.Count(svg, "<text ") != 3 {
		t.Errorf("unexpected svg:\n%s", svg)
	}
	if res.Stats.CircleCount != 2 || res.Stats.LabelCount != 3 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.Spec.Center != DefaultSize/2 {
		t.Errorf("spec center = %v", res.Spec.Center)
	}
}

func TestRunnerExecuteMultipleFormats(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Execute(context.Background(), Options{
		First: "A", Second: "B", Third: "C",
		Size:    200,
		Radius:  40,
		Overlap: Float(10),
		Formats: []string{FormatSVG, FormatPNG, FormatJSON},
		Scale:   2,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(res.Artifacts) != 3 {
		t.Fatalf("got %d artifacts, want 3", len(res.Artifacts))
	}

	img, err := png.Decode(bytes.NewReader(res.Artifacts[FormatPNG]))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Errorf("png width = %d, want 400", img.Bounds().Dx())
	}
	if !bytes.Contains(res.Artifacts[FormatJSON], []byte(`"circles"`)) {
		t.Error("json artifact missing circles")
	}
}

func TestRunnerExecuteInvalid(t *testing.T) {
	r := NewRunner(nil)
	_, err := r.Execute(context.Background(), Options{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestRunnerExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRunner(nil).Execute(ctx, Options{}); err == nil {
		t.Error("Execute() with canceled context should fail")
	}
}

func TestRunnerLayout(t *testing.T) {
	d, err := NewRunner(nil).Layout(context.Background(), Options{First: "A", Second: "B", Third: "C"})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Circles) != 3 || len(d.Labels) != 3 {
		t.Errorf("got %d circles and %d labels, want 3 and 3", len(d.Circles), len(d.Labels))
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	layouts, renders int
	renderErr        error
}

func (h *recordingHooks) OnLayoutComplete(context.Context, int, int, time.Duration) { h.layouts++ }
func (h *recordingHooks) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	h.renders++
	h.renderErr = err
}

func TestRunnerEmitsHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	defer observability.Reset()

	if _, err := NewRunner(nil).Execute(context.Background(), Options{First: "A", Second: "B"}); err != nil {
		t.Fatal(err)
	}
	if h.layouts != 1 || h.renders != 1 {
		t.Errorf("hooks called layout=%d render=%d, want 1 and 1", h.layouts, h.renders)
	}
	if h.renderErr != nil {
		t.Errorf("render hook error = %v", h.renderErr)
	}
}
