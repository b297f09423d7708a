package plot

import "unicode/utf8"

// TextSize is the extent of a single line of text in pixels.
type TextSize struct {
	Width   float32
	Ascent  float32
	Descent float32
}

// Height is the line height of the text.
func (t TextSize) Height() float32 {
	return t.Ascent + t.Descent
}

// Measurer reports the size text will occupy when drawn at the given size
// in pixels.
type Measurer interface {
	Measure(text string, size float32) TextSize
}

// FixedMeasurer approximates text as a row of identical glyphs. It is
// meant for tests and for hosts without a text shaper.
type FixedMeasurer struct {
	// Advance is the glyph width as a fraction of the text size.
	Advance float32
	// Ascent and Descent are fractions of the text size.
	Ascent, Descent float32
}

// DefaultFixedMeasurer has proportions close to a typical sans-serif face.
var DefaultFixedMeasurer = FixedMeasurer{Advance: 0.5, Ascent: 0.8, Descent: 0.2}

func (f FixedMeasurer) Measure(text string, size float32) TextSize {
	return TextSize{
		Width:   float32(utf8.RuneCountInString(text)) * f.Advance * size,
		Ascent:  f.Ascent * size,
		Descent: f.Descent * size,
	}
}
