package plot

import (
	"cmp"
	"image"
	"log/slog"
	"math"
	"slices"
	"time"

	"gioui.org/f32"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
	"git.sr.ht/~whereswaldon/materialchart/ticks"
)

// maxPasses bounds the number of times margins are grown to make labels
// fit. Margins only ever grow, so the layout settles quickly.
const maxPasses = 4

// Insets is the space between the widget edges and the axis lines.
type Insets struct {
	Left, Top, Right, Bottom float32
}

func (i Insets) grow(o Insets) Insets {
	return Insets{
		Left:   max(i.Left, ceil(o.Left)),
		Top:    max(i.Top, ceil(o.Top)),
		Right:  max(i.Right, ceil(o.Right)),
		Bottom: max(i.Bottom, ceil(o.Bottom)),
	}
}

// PlacedTick is a tick with its pixel position on the axis line.
type PlacedTick struct {
	ticks.Tick
	At f32.Point
}

// PlacedGridLine is a grid line with its pixel row.
type PlacedGridLine struct {
	chartdata.GridLine
	Y float32
	// Visible is false when the value lies outside the data range.
	Visible bool
}

// Options tune Recompute.
type Options struct {
	// Location is used to format timestamps on the x axis. Nil means
	// local time.
	Location *time.Location
	// Logger receives layout diagnostics. Nil disables them.
	Logger *slog.Logger
}

// Layout is the complete geometry of one chart frame.
type Layout struct {
	Bounds image.Point
	Insets Insets
	// Origin is where the axes meet.
	Origin   f32.Point
	XAxisEnd f32.Point
	YAxisEnd f32.Point
	Mapper   Mapper
	XTicks   []PlacedTick
	YTicks   []PlacedTick
	// XTilted reports that x labels are drawn rotated by 45 degrees.
	XTilted     bool
	XTiltExtent float32
	// Points holds the pixel position of every data point, in data order.
	Points []f32.Point
	// GridLines is sorted by descending value.
	GridLines []PlacedGridLine
	XFormat   ticks.Formatter
	YFormat   ticks.Formatter
}

// Empty reports whether there is nothing to draw.
func (l *Layout) Empty() bool {
	return len(l.Points) == 0
}

type engine struct {
	ds     *chartdata.Dataset
	bounds image.Point
	style  Style
	m      Measurer
	xs, ys chartdata.Span
	xfmt   ticks.Formatter
	yfmt   ticks.Formatter
}

// Recompute lays out ds inside bounds. It has no side effects; calling it
// twice with the same arguments yields the same layout. An empty dataset
// or empty bounds yield an empty layout.
func Recompute(ds *chartdata.Dataset, bounds image.Point, st Style, m Measurer, opts Options) Layout {
	if ds.Empty() || bounds.X <= 0 || bounds.Y <= 0 {
		return Layout{Bounds: bounds}
	}
	if m == nil {
		m = DefaultFixedMeasurer
	}
	xs, ys, _ := ds.Extents()
	e := engine{
		ds:     ds,
		bounds: bounds,
		style:  st,
		m:      m,
		xs:     xs,
		ys:     ys,
		xfmt:   ticks.TimeFormatter(ds.GraphMode, opts.Location),
		yfmt:   ticks.NumberFormatter,
	}

	insets := Insets{Left: st.X.Margin, Right: st.X.Margin, Top: st.Y.Margin, Bottom: st.Y.Margin}
	var (
		l    Layout
		pass int
	)
	for pass = 1; ; pass++ {
		l = e.place(insets)
		grown := insets.grow(e.required(&l))
		if grown == insets || pass == maxPasses {
			break
		}
		insets = grown
	}
	if opts.Logger != nil {
		opts.Logger.Debug("chart layout recomputed",
			"bounds", bounds,
			"passes", pass,
			"insets", insets,
			"x_ticks", len(l.XTicks),
			"y_ticks", len(l.YTicks),
			"x_tilted", l.XTilted,
		)
	}
	return l
}

func (e *engine) measure(s string) TextSize {
	return e.m.Measure(s, e.style.LabelTextSize)
}

// place computes the geometry for a fixed set of insets.
func (e *engine) place(insets Insets) Layout {
	st := e.style
	w, h := float32(e.bounds.X), float32(e.bounds.Y)
	l := Layout{
		Bounds:   e.bounds,
		Insets:   insets,
		Origin:   f32.Pt(insets.Left, h-insets.Bottom),
		XFormat:  e.xfmt,
		YFormat:  e.yfmt,
		XAxisEnd: f32.Pt(w-insets.Right, h-insets.Bottom),
		YAxisEnd: f32.Pt(insets.Left, insets.Top),
	}
	l.Mapper = Mapper{
		X: e.xs,
		Y: e.ys,
		Area: Rect{
			Min: f32.Pt(l.Origin.X, l.YAxisEnd.Y+st.Y.Padding),
			Max: f32.Pt(l.XAxisEnd.X-st.X.Padding, l.Origin.Y),
		},
	}

	xres := ticks.Layout(ticks.Axis{
		Length:     l.Mapper.Area.Dx(),
		MinSpacing: st.X.Spacing,
		Span:       e.xs,
		Format:     e.xfmt,
		Reserve:    e.measure(e.xfmt(e.xs.Min)).Width + st.LabelMargin,
		Measure: func(label string) float32 {
			return e.measure(label).Width
		},
	})
	l.XTilted = xres.Tilted
	l.XTiltExtent = xres.TiltExtent
	for _, t := range xres.Ticks {
		l.XTicks = append(l.XTicks, PlacedTick{Tick: t, At: f32.Pt(l.Mapper.Area.Min.X+t.Pos, l.Origin.Y)})
	}

	yres := ticks.Layout(ticks.Axis{
		Length:     l.Mapper.Area.Dy(),
		MinSpacing: st.Y.Spacing,
		Span:       e.ys,
		Format:     e.yfmt,
		Reserve:    e.measure("0").Height() + st.LabelMargin,
	})
	for _, t := range yres.Ticks {
		l.YTicks = append(l.YTicks, PlacedTick{Tick: t, At: f32.Pt(l.Origin.X, l.Mapper.Area.Max.Y-t.Pos)})
	}

	l.Points = make([]f32.Point, len(e.ds.Data))
	for i, p := range e.ds.Data {
		l.Points[i] = l.Mapper.Map(p)
	}

	l.GridLines = make([]PlacedGridLine, 0, len(e.ds.GridLines))
	for _, g := range e.ds.GridLines {
		l.GridLines = append(l.GridLines, PlacedGridLine{
			GridLine: g,
			Y:        l.Mapper.MapY(g.Value),
			Visible:  e.ys.Contains(g.Value),
		})
	}
	slices.SortStableFunc(l.GridLines, func(a, b PlacedGridLine) int {
		return cmp.Compare(b.Value, a.Value)
	})
	return l
}

// required returns the insets needed for the labels of l to fit inside the
// bounds.
func (e *engine) required(l *Layout) Insets {
	st := e.style
	edge := st.LabelMargin / 2
	labelHeight := e.measure("0").Height()
	var r Insets
	if e.ds.ShowYAxis {
		var widest float32
		for _, t := range l.YTicks {
			widest = max(widest, e.measure(t.Label).Width)
		}
		r.Left = widest + st.HalfTickLength + st.LabelMargin + edge
		if e.ds.YLabel != "" {
			r.Top = e.m.Measure(e.ds.YLabel, st.TitleTextSize).Height() + st.LabelMargin + edge
		}
	}
	if e.ds.ShowXAxis && len(l.XTicks) > 0 {
		below := st.HalfTickLength + st.LabelMargin
		if l.XTilted {
			below += l.XTiltExtent + labelHeight/math.Sqrt2
			r.Left = max(r.Left, l.XTiltExtent+edge)
		} else {
			below += labelHeight
			first := e.measure(l.XTicks[0].Label).Width
			last := e.measure(l.XTicks[len(l.XTicks)-1].Label).Width
			r.Left = max(r.Left, first/2+edge)
			r.Right = last/2 + edge - st.X.Padding
		}
		if e.ds.XLabel != "" {
			below += e.m.Measure(e.ds.XLabel, st.TitleTextSize).Height() + st.LabelMargin/2
		}
		r.Bottom = below + edge
	}
	return r
}
