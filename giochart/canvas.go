package giochart

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"

	"git.sr.ht/~whereswaldon/materialchart/dimen"
	"git.sr.ht/~whereswaldon/materialchart/plot"
	"git.sr.ht/~whereswaldon/materialchart/render"
)

// canvas paints render primitives into a Gio operation list.
type canvas struct {
	gtx layout.Context
	th  *material.Theme
	*Measurer
}

var _ render.Canvas = (*canvas)(nil)

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func pixels(r plot.Rect) image.Rectangle {
	return image.Rect(round(r.Min.X), round(r.Min.Y), round(r.Max.X), round(r.Max.Y))
}

func (c *canvas) Line(o render.LineOp) {
	s := stroke.Stroke{
		Path: stroke.Path{Segments: []stroke.Segment{
			stroke.MoveTo(o.From),
			stroke.LineTo(o.To),
		}},
		Width: o.Width,
		// Square caps close the corners of the staircase.
		Cap: stroke.SquareCap,
	}
	if len(o.Dash) > 0 {
		s.Cap = stroke.FlatCap
		s.Dashes = stroke.Dashes{Dashes: o.Dash}
	}
	paint.FillShape(c.gtx.Ops, o.Color, s.Op(c.gtx.Ops))
}

func (c *canvas) Rect(o render.RectOp) {
	paint.FillShape(c.gtx.Ops, o.Color, clip.Rect(pixels(o.Rect)).Op())
}

func (c *canvas) Gradient(o render.GradientOp) {
	defer clip.Rect(pixels(o.Rect)).Push(c.gtx.Ops).Pop()
	paint.LinearGradientOp{
		Stop1:  o.Stop1,
		Color1: o.Color1,
		Stop2:  o.Stop2,
		Color2: o.Color2,
	}.Add(c.gtx.Ops)
	paint.PaintOp{}.Add(c.gtx.Ops)
}

func (c *canvas) Circle(o render.CircleOp) {
	r := plot.Rect{
		Min: o.Center.Sub(f32.Pt(o.Radius, o.Radius)),
		Max: o.Center.Add(f32.Pt(o.Radius, o.Radius)),
	}
	paint.FillShape(c.gtx.Ops, o.Color, clip.Ellipse(pixels(r)).Op(c.gtx.Ops))
}

func (c *canvas) RoundRect(o render.RoundRectOp) {
	paint.FillShape(c.gtx.Ops, o.Color, clip.UniformRRect(pixels(o.Rect), round(o.Radius)).Op(c.gtx.Ops))
}

// Text lays out a material label and moves it so that the requested part
// of its baseline lands on the origin.
func (c *canvas) Text(o render.TextOp) {
	gtx := c.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(math.MaxInt32, math.MaxInt32)}
	l := material.Label(c.th, dimen.ToSp(gtx.Metric, dimen.Px(o.Size)), o.Text)
	l.Color = o.Color
	l.MaxLines = 1
	l.Alignment = text.Start

	macro := op.Record(gtx.Ops)
	dims := l.Layout(gtx)
	call := macro.Stop()

	var dx float32
	switch o.Align {
	case render.AlignMiddle:
		dx = float32(dims.Size.X) / 2
	case render.AlignEnd:
		dx = float32(dims.Size.X)
	}
	ascent := float32(dims.Size.Y - dims.Baseline)
	tr := f32.Affine2D{}.
		Offset(f32.Pt(-dx, -ascent)).
		Rotate(f32.Point{}, o.Rotation).
		Offset(o.Origin)
	defer op.Affine(tr).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}
