// Package giochart is a Gio line chart widget. It lays out and draws a
// chartdata.Dataset, and reveals a crosshair when the chart is pressed and
// held.
package giochart

import (
	"image"
	"log/slog"
	"reflect"
	"slices"
	"time"

	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
	"git.sr.ht/~whereswaldon/materialchart/interact"
	"git.sr.ht/~whereswaldon/materialchart/plot"
	"git.sr.ht/~whereswaldon/materialchart/render"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// DefaultSlop is how far a held pointer may move before the press is
// abandoned.
const DefaultSlop = unit.Dp(16)

// Chart is a line chart widget. Datasets are treated as immutable: to
// change the data, assign a new *chartdata.Dataset.
type Chart struct {
	Dataset *chartdata.Dataset
	Style   plot.StyleDp
	Palette render.Palette
	// Location formats timestamps on the x axis. Nil means local time.
	Location *time.Location
	// LongPressDelay is how long the chart must be held before the
	// crosshair appears. Zero means interact.DefaultDelay.
	LongPressDelay time.Duration
	// Slop is how far a held pointer may move before the press is
	// abandoned. Zero means DefaultSlop.
	Slop unit.Dp
	// Logger receives debug output. Nil disables it.
	Logger *slog.Logger

	machine   interact.Machine
	pointerID pointer.ID
	measurer  *Measurer
	cache     layoutCache
}

type layoutCache struct {
	valid  bool
	ds     *chartdata.Dataset
	bounds image.Point
	metric unit.Metric
	style  plot.StyleDp
	loc    *time.Location
	shaper *text.Shaper
	layout plot.Layout
	// recomputes counts cache misses.
	recomputes int
}

func NewChart(ds *chartdata.Dataset) *Chart {
	return &Chart{
		Dataset: ds,
		Style:   plot.DefaultStyleDp(),
		Palette: render.DefaultPalette(),
	}
}

func (c *Chart) debug(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Debug(msg, args...)
	}
}

func (c *Chart) interactive() bool {
	return c.Dataset != nil && c.Dataset.IsInteractive
}

// Update processes pointer input. A chart showing a non-interactive
// dataset does not consume any input.
func (c *Chart) Update(gtx C) {
	if !c.interactive() {
		c.machine.Cancel()
		return
	}
	c.machine.Delay = c.LongPressDelay
	slop := c.Slop
	if slop == 0 {
		slop = DefaultSlop
	}
	c.machine.Slop = float32(gtx.Dp(slop))
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			c.handle(e, gtx.Now)
		}
	}
	if c.tick(gtx.Now) {
		gtx.Execute(pointer.GrabCmd{Tag: c, ID: c.pointerID})
	}
	if deadline, ok := c.machine.Deadline(); ok {
		gtx.Execute(op.InvalidateCmd{At: deadline})
	}
}

func (c *Chart) handle(e pointer.Event, now time.Time) {
	switch e.Kind {
	case pointer.Press:
		if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
			return
		}
		c.pointerID = e.PointerID
		c.machine.Press(e.Position, now)
	case pointer.Drag:
		if e.PointerID == c.pointerID {
			c.machine.Move(e.Position, now)
		}
	case pointer.Release:
		if e.PointerID == c.pointerID && c.machine.Release(now) {
			c.debug("crosshair hidden")
		}
	case pointer.Cancel:
		c.machine.Cancel()
	}
}

// tick reports whether the press turned into a drag.
func (c *Chart) tick(now time.Time) bool {
	if !c.machine.Advance(now) {
		return false
	}
	x, _ := c.machine.Crosshair()
	c.debug("crosshair shown", "x", x)
	return true
}

// Layout draws the chart filling the maximum constraints.
func (c *Chart) Layout(gtx C, th *material.Theme) D {
	c.Update(gtx)
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	if c.interactive() {
		event.Op(gtx.Ops, c)
	}
	if c.Dataset.Empty() || size.X <= 0 || size.Y <= 0 {
		return D{Size: size}
	}

	m := c.measurerFor(th)
	st := c.Style.Px(gtx.Metric)
	l := c.layout(size, gtx.Metric, st, m)
	var cross *render.Crosshair
	if x, ok := c.machine.Crosshair(); ok {
		cross = &render.Crosshair{X: x}
	}
	render.Draw(&canvas{gtx: gtx, th: th, Measurer: m}, l, c.Dataset, c.Palette, st, cross)
	return D{Size: size}
}

func (c *Chart) measurerFor(th *material.Theme) *Measurer {
	if c.measurer == nil || c.measurer.Shaper != th.Shaper || c.measurer.Font.Typeface != th.Face {
		c.measurer = &Measurer{Shaper: th.Shaper, Font: font.Font{Typeface: th.Face}}
	}
	return c.measurer
}

func sameStyle(a, b plot.StyleDp) bool {
	da, db := a.GridLineDash, b.GridLineDash
	a.GridLineDash, b.GridLineDash = nil, nil
	return reflect.DeepEqual(a, b) && slices.Equal(da, db)
}

// layout returns the cached layout, recomputing it when the dataset,
// bounds, or style changed.
func (c *Chart) layout(bounds image.Point, metric unit.Metric, st plot.Style, m *Measurer) plot.Layout {
	k := &c.cache
	if k.valid && k.ds == c.Dataset && k.bounds == bounds && k.metric == metric &&
		k.loc == c.Location && k.shaper == m.Shaper && sameStyle(k.style, c.Style) {
		return k.layout
	}
	k.layout = plot.Recompute(c.Dataset, bounds, st, m, plot.Options{Location: c.Location, Logger: c.Logger})
	k.valid = true
	k.ds = c.Dataset
	k.bounds = bounds
	k.metric = metric
	k.loc = c.Location
	k.shaper = m.Shaper
	k.style = c.Style
	k.style.GridLineDash = slices.Clone(c.Style.GridLineDash)
	k.recomputes++
	return k.layout
}
