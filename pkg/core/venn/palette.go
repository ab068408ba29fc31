package venn

// Ordinal identifies a circle by position.
type Ordinal int

const (
	First  Ordinal = 1
	Second Ordinal = 2
	Third  Ordinal = 3
)

// Fill colors, fixed by circle ordinal.
const (
	ColorFirst  = "#FF00D9" // magenta
	ColorSecond = "#14CCC0" // teal
	ColorThird  = "#FFD20E" // gold
)

var palette = map[Ordinal]string{
	First:  ColorFirst,
	Second: ColorSecond,
	Third:  ColorThird,
}

// ColorFor returns the fill color of the circle at ordinal o, or "" for an
// ordinal outside 1..3.
func ColorFor(o Ordinal) string { return palette[o] }

func (o Ordinal) String() string {
	switch o {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	}
	return "unknown"
}
