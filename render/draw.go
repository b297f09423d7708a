package render

import (
	"math"

	"gioui.org/f32"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
	"git.sr.ht/~whereswaldon/materialchart/plot"
)

// gradientAlpha is the opacity of the area fill right under the highest
// point of the chart.
const gradientAlpha = 0x66

// Crosshair marks the data under a horizontal pointer position.
type Crosshair struct {
	X float32
}

type drawer struct {
	c   Canvas
	l   *plot.Layout
	ds  *chartdata.Dataset
	p   Palette
	st  plot.Style
	lbl plot.TextSize
}

// Draw emits the primitives of one chart frame to c. The surface fill comes
// first, then the area gradient and the data line, the axes, the grid lines,
// and finally the crosshair when cross is non-nil. Nothing is drawn for an
// empty dataset or empty bounds.
func Draw(c Canvas, l plot.Layout, ds *chartdata.Dataset, p Palette, st plot.Style, cross *Crosshair) {
	if ds.Empty() || l.Empty() || l.Bounds.X <= 0 || l.Bounds.Y <= 0 {
		return
	}
	d := drawer{
		c:   c,
		l:   &l,
		ds:  ds,
		p:   p,
		st:  st,
		lbl: c.Measure("0", st.LabelTextSize),
	}
	c.Rect(RectOp{
		Rect:  plot.Rect{Max: f32.Pt(float32(l.Bounds.X), float32(l.Bounds.Y))},
		Color: p.Surface,
	})
	if len(l.Points) == 1 {
		c.Circle(CircleOp{Center: l.Points[0], Radius: st.MarkerRadius / 2, Color: p.Primary})
	} else {
		d.gradient()
		d.line()
	}
	if ds.ShowXAxis {
		d.xAxis()
	}
	if ds.ShowYAxis {
		d.yAxis()
	}
	d.gridLines()
	if cross != nil {
		d.crosshair(cross.X)
	}
}

func snap(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func snapPt(p f32.Point) f32.Point {
	return f32.Pt(snap(p.X), snap(p.Y))
}

// gradient fills the area between each step and the x axis.
func (d *drawer) gradient() {
	top := d.l.Mapper.Area.Min.Y
	bottom := d.l.Origin.Y
	for i := 0; i < len(d.l.Points)-1; i++ {
		from, to := snapPt(d.l.Points[i]), snapPt(d.l.Points[i+1])
		if to.X <= from.X || from.Y >= bottom {
			continue
		}
		d.c.Gradient(GradientOp{
			Rect:   plot.Rect{Min: from, Max: f32.Pt(to.X, bottom)},
			Stop1:  f32.Pt(from.X, top),
			Color1: withAlpha(d.p.Primary, gradientAlpha),
			Stop2:  f32.Pt(from.X, bottom),
			Color2: withAlpha(d.p.Primary, 0),
		})
	}
}

// line draws the data as a staircase: each point holds its value until
// the next point, then the line steps vertically.
func (d *drawer) line() {
	for i := 0; i < len(d.l.Points)-1; i++ {
		from, to := snapPt(d.l.Points[i]), snapPt(d.l.Points[i+1])
		col := d.p.Primary
		if !d.ds.Data[i].Valid {
			col = d.p.Error
		}
		corner := f32.Pt(to.X, from.Y)
		d.c.Line(LineOp{From: from, To: corner, Width: d.st.LineStrokeWidth, Color: col})
		d.c.Line(LineOp{From: corner, To: to, Width: d.st.LineStrokeWidth, Color: col})
	}
}

func (d *drawer) xAxis() {
	st := d.st
	d.c.Line(LineOp{From: d.l.Origin, To: d.l.XAxisEnd, Width: st.AxisStrokeWidth, Color: d.p.OnSurface})
	for _, t := range d.l.XTicks {
		x := snap(t.At.X)
		d.c.Line(LineOp{
			From:  f32.Pt(x, t.At.Y-st.HalfTickLength),
			To:    f32.Pt(x, t.At.Y+st.HalfTickLength),
			Width: st.TickStrokeWidth,
			Color: d.p.OnSurface,
		})
		below := t.At.Y + st.HalfTickLength + st.LabelMargin
		op := TextOp{
			Text:  t.Label,
			Size:  st.LabelTextSize,
			Color: d.p.OnSurface,
		}
		if d.l.XTilted {
			op.Origin = f32.Pt(x, below+d.lbl.Ascent/math.Sqrt2)
			op.Align = AlignEnd
			op.Rotation = -math.Pi / 4
		} else {
			op.Origin = f32.Pt(x, below+d.lbl.Ascent)
			op.Align = AlignMiddle
		}
		d.c.Text(op)
	}
	if d.ds.XLabel != "" {
		title := d.c.Measure(d.ds.XLabel, st.TitleTextSize)
		d.c.Text(TextOp{
			Text:   d.ds.XLabel,
			Origin: f32.Pt((d.l.Origin.X+d.l.XAxisEnd.X)/2, float32(d.l.Bounds.Y)-st.LabelMargin/2-title.Descent),
			Size:   st.TitleTextSize,
			Color:  d.p.OnSurface,
			Align:  AlignMiddle,
		})
	}
}

func (d *drawer) yAxis() {
	st := d.st
	d.c.Line(LineOp{From: d.l.Origin, To: d.l.YAxisEnd, Width: st.AxisStrokeWidth, Color: d.p.OnSurface})
	for _, t := range d.l.YTicks {
		y := snap(t.At.Y)
		d.c.Line(LineOp{
			From:  f32.Pt(t.At.X-st.HalfTickLength, y),
			To:    f32.Pt(t.At.X+st.HalfTickLength, y),
			Width: st.TickStrokeWidth,
			Color: d.p.OnSurface,
		})
		d.c.Text(TextOp{
			Text:   t.Label,
			Origin: f32.Pt(t.At.X-st.HalfTickLength-st.LabelMargin, y+(d.lbl.Ascent-d.lbl.Descent)/2),
			Size:   st.LabelTextSize,
			Color:  d.p.OnSurface,
			Align:  AlignEnd,
		})
	}
	if d.ds.YLabel != "" {
		title := d.c.Measure(d.ds.YLabel, st.TitleTextSize)
		d.c.Text(TextOp{
			Text:   d.ds.YLabel,
			Origin: f32.Pt(d.l.YAxisEnd.X-st.HalfTickLength, d.l.YAxisEnd.Y-st.LabelMargin-title.Descent),
			Size:   st.TitleTextSize,
			Color:  d.p.OnSurface,
			Align:  AlignStart,
		})
	}
}

// gridLines draws the visible grid lines from top to bottom. A label that
// would overlap the one above it is pushed down below it.
func (d *drawer) gridLines() {
	st := d.st
	labelBottom := float32(math.Inf(-1))
	for _, g := range d.l.GridLines {
		if !g.Visible {
			continue
		}
		y := snap(g.Y)
		d.c.Line(LineOp{
			From:  f32.Pt(d.l.Origin.X, y),
			To:    f32.Pt(d.l.XAxisEnd.X, y),
			Width: st.GridLineStrokeWidth,
			Color: d.p.Secondary,
			Dash:  st.GridLineDash,
		})
		if g.Name == "" {
			continue
		}
		size := d.c.Measure(g.Name, st.LabelTextSize)
		top := max(y-st.LabelMargin/2-size.Height(), labelBottom)
		d.c.Text(TextOp{
			Text:   g.Name,
			Origin: f32.Pt(d.l.XAxisEnd.X, top+size.Ascent),
			Size:   st.LabelTextSize,
			Color:  d.p.Secondary,
			Align:  AlignEnd,
		})
		labelBottom = top + size.Height() + st.LabelMargin/4
	}
}

// crosshair marks the step under the horizontal position x with a guide
// line, a marker, and a box holding the formatted values.
func (d *drawer) crosshair(x float32) {
	st := d.st
	area := d.l.Mapper.Area
	x = snap(plot.Clamp(x, area.Min.X, area.Max.X))
	idx := plot.Nearest(d.l.Points, x)
	if idx < 0 {
		return
	}
	pt := d.ds.Data[idx]
	y := snap(d.l.Points[idx].Y)

	d.c.Line(LineOp{
		From:  f32.Pt(x, d.l.YAxisEnd.Y),
		To:    f32.Pt(x, d.l.Origin.Y),
		Width: st.TickStrokeWidth,
		Color: withAlpha(d.p.OnSurface, 0x80),
	})
	marker := d.p.Primary
	if !pt.Valid {
		marker = d.p.Error
	}
	d.c.Circle(CircleOp{Center: f32.Pt(x, y), Radius: st.MarkerRadius, Color: marker})

	lines := []string{d.l.XFormat(pt.X), d.l.YFormat(pt.Y)}
	var width float32
	for _, s := range lines {
		width = max(width, d.c.Measure(s, st.LabelTextSize).Width)
	}
	pad := st.LabelMargin
	lineHeight := d.lbl.Height()
	box := f32.Pt(width+2*pad, float32(len(lines))*lineHeight+(float32(len(lines))+1)*pad/2)

	bounds := f32.Pt(float32(d.l.Bounds.X), float32(d.l.Bounds.Y))
	// Prefer the right of the guide; flip left when that runs off screen.
	left := x + st.MarkerRadius + pad
	if left+box.X > bounds.X {
		left = x - st.MarkerRadius - pad - box.X
	}
	left = plot.Clamp(left, 0, bounds.X-box.X)
	top := plot.Clamp(y-box.Y-st.MarkerRadius, 0, bounds.Y-box.Y)
	d.c.RoundRect(RoundRectOp{
		Rect:   plot.Rect{Min: f32.Pt(left, top), Max: f32.Pt(left, top).Add(box)},
		Radius: st.CornerRadius,
		Color:  d.p.PrimaryContainer,
	})
	baseline := top + pad/2 + d.lbl.Ascent
	for _, s := range lines {
		d.c.Text(TextOp{
			Text:   s,
			Origin: f32.Pt(left+pad, baseline),
			Size:   st.LabelTextSize,
			Color:  d.p.OnPrimaryContainer,
			Align:  AlignStart,
		})
		baseline += lineHeight + pad/2
	}
}
