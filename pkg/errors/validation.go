package errors

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// MaxTitleLength is the longest title accepted, in characters.
const MaxTitleLength = 256

// ValidateTitle validates a region title. Empty titles are allowed and mean
// "no label". Titles are rendered as text content, so anything printable is
// fine; the checks only reject input that could never be displayed.
//
// Validation rules:
//   - Maximum length of MaxTitleLength characters
//   - Must be valid UTF-8
//   - No control characters (tabs included)
func ValidateTitle(title string) error {
	if title == "" {
		return nil
	}

	if utf8.RuneCountInString(title) > MaxTitleLength {
		return New(ErrCodeInvalidTitle, "title too long (max %d characters)", MaxTitleLength)
	}

	if !utf8.ValidString(title) {
		return New(ErrCodeInvalidTitle, "title is not valid UTF-8")
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTitle, "title contains invalid control characters")
		}
	}

	return nil
}

// ValidateNumber validates a named numeric parameter. NaN and infinities
// are always rejected; when positive is set the value must also be > 0.
func ValidateNumber(name string, v float64, positive bool) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number, got %v", name, v)
	}
	if positive && v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateDimension validates a size or radius.
func ValidateDimension(name string, v float64) error {
	return ValidateNumber(name, v, true)
}

// ValidateOverlap validates an overlap amount. Zero and negative overlaps
// are legal and move labels to circle centers; overlaps of at least the
// radius collapse the circles onto each other and are rejected.
func ValidateOverlap(overlap, radius float64) error {
	if err := ValidateNumber("overlap", overlap, false); err != nil {
		return err
	}
	if overlap >= radius {
		return New(ErrCodeInvalidDimension, "overlap (%g) must be smaller than radius (%g)", overlap, radius)
	}
	return nil
}
