package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/venngen/pkg/core/venn"
	"github.com/matzehuels/venngen/pkg/errors"
)

func TestRenderPNGSize(t *testing.T) {
	tests := []struct {
		name  string
		size  float64
		scale float64
		want  int
	}{
		{"default", 800, 1, 800},
		{"scaled", 400, 2, 800},
		{"fractional rounds up", 100.2, 1, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := threeTitleSpec()
			s.Width, s.Height = tt.size, tt.size
			data, err := RenderPNG(venn.Layout(s), WithScale(tt.scale))
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.want || b.Dy() != tt.want {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.want, tt.want)
			}
		})
	}
}

func TestRenderPNGInvalid(t *testing.T) {
	d := venn.Layout(venn.DefaultSpec())

	if _, err := RenderPNG(d, WithScale(0)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("scale 0: err = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	d.Width = 0
	if _, err := RenderPNG(d); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("width 0: err = %v, want %s", err, errors.ErrCodeInvalidDimension)
	}
}

func TestRenderPNGFillsCircles(t *testing.T) {
	d := venn.Layout(venn.DefaultSpec())
	data, err := RenderPNG(d)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	// Corner is background, circle one's center is tinted magenta.
	r, g, b, _ := img.At(2, 2).RGBA()
	if r>>8 != 0xFF || g>>8 != 0xFF || b>>8 != 0xFF {
		t.Errorf("corner = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
	c := d.Circles[0].Center
	_, g, _, _ = img.At(int(c.X), int(c.Y)).RGBA()
	if g>>8 > 0xA0 {
		t.Errorf("circle center green = %d, want tinted toward magenta", g>>8)
	}
}

func TestPixels(t *testing.T) {
	tests := []struct {
		v, scale float64
		want     int
		wantErr  bool
	}{
		{800, 0.5, 400, false},
		{800, 1.5, 1200, false},
		{0.1, 1, 1, false},
		{-10, 1, 0, true},
		{1e300, 1, 0, true},
	}

	for _, tt := range tests {
		got, err := pixels(tt.v, tt.scale)
		if (err != nil) != tt.wantErr {
			t.Errorf("pixels(%g, %g) error = %v, wantErr %v", tt.v, tt.scale, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidDimension) {
			t.Errorf("pixels(%g, %g) err = %v, want %s", tt.v, tt.scale, err, errors.ErrCodeInvalidDimension)
		}
		if got != tt.want {
			t.Errorf("pixels(%g, %g) = %d, want %d", tt.v, tt.scale, got, tt.want)
		}
	}
}
