// Package render turns a chart layout into an ordered list of drawing
// primitives issued against a Canvas. It knows nothing about the toolkit
// that finally paints them.
package render

import (
	"fmt"
	"image/color"

	"gioui.org/f32"

	"git.sr.ht/~whereswaldon/materialchart/plot"
)

// Align positions text relative to its origin.
type Align uint8

const (
	// AlignStart places the origin at the start of the text.
	AlignStart Align = iota
	AlignMiddle
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignMiddle:
		return "middle"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Op is a single drawing primitive.
type Op interface {
	fmt.Stringer
	isOp()
}

// LineOp strokes a straight line. A non-empty Dash alternates drawn and
// skipped lengths.
type LineOp struct {
	From, To f32.Point
	Width    float32
	Color    color.NRGBA
	Dash     []float32
}

// RectOp fills a rectangle.
type RectOp struct {
	Rect  plot.Rect
	Color color.NRGBA
}

// GradientOp fills Rect with a linear gradient running from Color1 at
// Stop1 to Color2 at Stop2.
type GradientOp struct {
	Rect         plot.Rect
	Stop1, Stop2 f32.Point
	Color1       color.NRGBA
	Color2       color.NRGBA
}

// CircleOp fills a circle.
type CircleOp struct {
	Center f32.Point
	Radius float32
	Color  color.NRGBA
}

// RoundRectOp fills a rectangle with rounded corners.
type RoundRectOp struct {
	Rect   plot.Rect
	Radius float32
	Color  color.NRGBA
}

// TextOp draws a single line of text. Origin is a point on the baseline;
// Align says which part of the text sits on it. The text is rotated by
// Rotation radians around Origin, clockwise on screen.
type TextOp struct {
	Text     string
	Origin   f32.Point
	Size     float32
	Color    color.NRGBA
	Align    Align
	Rotation float32
}

func (LineOp) isOp()      {}
func (RectOp) isOp()      {}
func (GradientOp) isOp()  {}
func (CircleOp) isOp()    {}
func (RoundRectOp) isOp() {}
func (TextOp) isOp()      {}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (o LineOp) String() string {
	s := fmt.Sprintf("line %v-%v width=%.1f %s", o.From, o.To, o.Width, hex(o.Color))
	if len(o.Dash) > 0 {
		s += fmt.Sprintf(" dash=%v", o.Dash)
	}
	return s
}

func (o RectOp) String() string {
	return fmt.Sprintf("rect %v-%v %s", o.Rect.Min, o.Rect.Max, hex(o.Color))
}

func (o GradientOp) String() string {
	return fmt.Sprintf("gradient %v-%v %s@%v %s@%v", o.Rect.Min, o.Rect.Max, hex(o.Color1), o.Stop1, hex(o.Color2), o.Stop2)
}

func (o CircleOp) String() string {
	return fmt.Sprintf("circle %v r=%.1f %s", o.Center, o.Radius, hex(o.Color))
}

func (o RoundRectOp) String() string {
	return fmt.Sprintf("roundrect %v-%v r=%.1f %s", o.Rect.Min, o.Rect.Max, o.Radius, hex(o.Color))
}

func (o TextOp) String() string {
	return fmt.Sprintf("text %q at %v size=%.1f align=%s rot=%.3f %s", o.Text, o.Origin, o.Size, o.Align, o.Rotation, hex(o.Color))
}

// Canvas receives drawing primitives in painting order. It also measures
// text the way it will draw it.
type Canvas interface {
	plot.Measurer
	Line(LineOp)
	Rect(RectOp)
	Gradient(GradientOp)
	Circle(CircleOp)
	RoundRect(RoundRectOp)
	Text(TextOp)
}
