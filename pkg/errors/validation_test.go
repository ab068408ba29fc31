package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"simple", "Cats", false},
		{"with spaces", "Things I like", false},
		{"markup", "<b>&amp;</b>", false},
		{"unicode", "Größe ∩ Höhe", false},
		{"max length", strings.Repeat("é", MaxTitleLength), false},

		{"too long", strings.Repeat("x", MaxTitleLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"tab", "foo\tbar", true},
		{"invalid utf8", "foo\xffbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTitle) {
				t.Errorf("ValidateTitle(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidTitle)
			}
		})
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		positive bool
		wantErr  bool
	}{
		{"positive", 160, true, false},
		{"zero allowed", 0, false, false},
		{"negative allowed", -40, false, false},

		{"zero rejected", 0, true, true},
		{"negative rejected", -1, true, true},
		{"nan", math.NaN(), false, true},
		{"+inf", math.Inf(1), false, true},
		{"-inf", math.Inf(-1), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNumber("radius", tt.v, tt.positive)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNumber(%v, %v) error = %v, wantErr %v", tt.v, tt.positive, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "radius") {
				t.Errorf("error %q does not name the parameter", err)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	if err := ValidateDimension("size", 800); err != nil {
		t.Errorf("ValidateDimension(800) = %v", err)
	}
	if err := ValidateDimension("size", 0); !Is(err, ErrCodeInvalidDimension) {
		t.Errorf("ValidateDimension(0) = %v, want %v", err, ErrCodeInvalidDimension)
	}
}

func TestValidateOverlap(t *testing.T) {
	tests := []struct {
		name    string
		overlap float64
		radius  float64
		wantErr bool
	}{
		{"default", 40, 160, false},
		{"zero", 0, 160, false},
		{"negative", -100, 160, false},

		{"equals radius", 160, 160, true},
		{"exceeds radius", 200, 160, true},
		{"nan", math.NaN(), 160, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOverlap(tt.overlap, tt.radius)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOverlap(%v, %v) error = %v, wantErr %v", tt.overlap, tt.radius, err, tt.wantErr)
			}
		})
	}
}
