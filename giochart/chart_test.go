package giochart

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
	"git.sr.ht/~whereswaldon/materialchart/interact"
	"git.sr.ht/~whereswaldon/materialchart/plot"
)

var metric = unit.Metric{PxPerDp: 1, PxPerSp: 1}

func newShaper() *text.Shaper {
	return text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
}

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = newShaper()
	return th
}

func sampleDataset(interactive bool) *chartdata.Dataset {
	return &chartdata.Dataset{
		ShowXAxis:     true,
		ShowYAxis:     true,
		IsInteractive: interactive,
		XLabel:        "time",
		YLabel:        "kWh",
		Data: []chartdata.Point{
			{X: 0, Y: 10, Valid: true},
			{X: 3600, Y: 1, Valid: false},
			{X: 7200, Y: 3, Valid: true},
		},
		GridLines: []chartdata.GridLine{{Name: "target", Value: 5}},
	}
}

func TestMeasurer(t *testing.T) {
	m := &Measurer{Shaper: newShaper()}
	one := m.Measure("0", 12)
	two := m.Measure("00", 12)
	if one.Width <= 0 || one.Ascent <= 0 {
		t.Fatalf("expected positive size, got %+v", one)
	}
	if two.Width <= one.Width {
		t.Errorf("expected %q wider than %q: %v <= %v", "00", "0", two.Width, one.Width)
	}
	if big := m.Measure("0", 24); big.Height() <= one.Height() {
		t.Errorf("expected larger text to be taller: %v <= %v", big.Height(), one.Height())
	}
	if got := (&Measurer{}).Measure("0", 12); got != (plot.TextSize{}) {
		t.Errorf("expected zero size without a shaper, got %+v", got)
	}
}

func TestSameStyle(t *testing.T) {
	a, b := plot.DefaultStyleDp(), plot.DefaultStyleDp()
	if !sameStyle(a, b) {
		t.Error("expected default styles to match")
	}
	b.GridLineDash = []unit.Dp{1}
	if sameStyle(a, b) {
		t.Error("expected different dashes to differ")
	}
	b = plot.DefaultStyleDp()
	b.XSpacing++
	if sameStyle(a, b) {
		t.Error("expected different spacing to differ")
	}
}

func TestLayoutCache(t *testing.T) {
	c := NewChart(sampleDataset(false))
	m := &Measurer{Shaper: newShaper()}
	bounds := image.Pt(300, 200)
	relayout := func() plot.Layout {
		return c.layout(bounds, metric, c.Style.Px(metric), m)
	}

	first := relayout()
	relayout()
	if c.cache.recomputes != 1 {
		t.Fatalf("expected 1 recompute, got %d", c.cache.recomputes)
	}
	if first.Empty() {
		t.Fatal("expected a non-empty layout")
	}

	bounds = image.Pt(400, 200)
	relayout()
	if c.cache.recomputes != 2 {
		t.Errorf("expected new bounds to recompute, got %d", c.cache.recomputes)
	}

	c.Dataset = sampleDataset(false)
	relayout()
	if c.cache.recomputes != 3 {
		t.Errorf("expected new dataset to recompute, got %d", c.cache.recomputes)
	}

	c.Style.GridLineDash[0] = 9
	relayout()
	if c.cache.recomputes != 4 {
		t.Errorf("expected in-place style change to recompute, got %d", c.cache.recomputes)
	}

	c.Location = time.UTC
	relayout()
	if c.cache.recomputes != 5 {
		t.Errorf("expected new location to recompute, got %d", c.cache.recomputes)
	}
	relayout()
	if c.cache.recomputes != 5 {
		t.Errorf("expected unchanged inputs to reuse the layout, got %d", c.cache.recomputes)
	}
}

func press(id pointer.ID, x, y float32) pointer.Event {
	return pointer.Event{
		Kind:      pointer.Press,
		Source:    pointer.Touch,
		PointerID: id,
		Position:  f32.Pt(x, y),
	}
}

func TestLongPressShowsCrosshair(t *testing.T) {
	c := NewChart(sampleDataset(true))
	start := time.Unix(1000, 0)
	c.handle(press(1, 50, 60), start)
	if c.tick(start.Add(interact.DefaultDelay / 2)) {
		t.Fatal("expected no crosshair before the delay")
	}
	if !c.tick(start.Add(interact.DefaultDelay)) {
		t.Fatal("expected crosshair after the delay")
	}
	x, ok := c.machine.Crosshair()
	if !ok || x != 50 {
		t.Errorf("expected crosshair at 50, got %v %v", x, ok)
	}

	c.handle(pointer.Event{Kind: pointer.Drag, Source: pointer.Touch, PointerID: 1, Position: f32.Pt(80, 90)}, start.Add(time.Second))
	if x, _ := c.machine.Crosshair(); x != 80 {
		t.Errorf("expected crosshair to follow the drag to 80, got %v", x)
	}
	// Other pointers do not move the crosshair.
	c.handle(pointer.Event{Kind: pointer.Drag, Source: pointer.Touch, PointerID: 2, Position: f32.Pt(10, 90)}, start.Add(time.Second))
	if x, _ := c.machine.Crosshair(); x != 80 {
		t.Errorf("expected crosshair to stay at 80, got %v", x)
	}

	c.handle(pointer.Event{Kind: pointer.Release, Source: pointer.Touch, PointerID: 1}, start.Add(2*time.Second))
	if _, ok := c.machine.Crosshair(); ok {
		t.Error("expected crosshair hidden after release")
	}
}

func TestQuickTapShowsNothing(t *testing.T) {
	c := NewChart(sampleDataset(true))
	start := time.Unix(1000, 0)
	c.handle(press(1, 50, 60), start)
	c.handle(pointer.Event{Kind: pointer.Release, Source: pointer.Touch, PointerID: 1}, start.Add(100*time.Millisecond))
	if c.tick(start.Add(time.Second)) {
		t.Error("expected released press never to show the crosshair")
	}
	if c.machine.State() != interact.Idle {
		t.Errorf("expected idle, got %v", c.machine.State())
	}
}

func TestSecondaryButtonIgnored(t *testing.T) {
	c := NewChart(sampleDataset(true))
	c.handle(pointer.Event{
		Kind:     pointer.Press,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonSecondary,
		Position: f32.Pt(10, 10),
	}, time.Unix(0, 0))
	if c.machine.State() != interact.Idle {
		t.Errorf("expected idle, got %v", c.machine.State())
	}
}

func TestNonInteractiveCancels(t *testing.T) {
	c := NewChart(sampleDataset(true))
	c.handle(press(1, 50, 60), time.Unix(0, 0))
	c.Dataset = sampleDataset(false)
	c.Update(layout.Context{})
	if c.machine.State() != interact.Idle {
		t.Errorf("expected idle for a non-interactive dataset, got %v", c.machine.State())
	}
}

func TestLayoutDraws(t *testing.T) {
	c := NewChart(sampleDataset(false))
	th := newTheme()
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      metric,
		Constraints: layout.Exact(image.Pt(300, 200)),
		Now:         time.Unix(0, 0),
	}
	dims := c.Layout(gtx, th)
	if dims.Size != image.Pt(300, 200) {
		t.Errorf("expected chart to fill 300x200, got %v", dims.Size)
	}
	gtx.Ops.Reset()
	c.Layout(gtx, th)
	if c.cache.recomputes != 1 {
		t.Errorf("expected the second frame to reuse the layout, got %d recomputes", c.cache.recomputes)
	}

	c.Dataset = nil
	gtx.Ops.Reset()
	if dims := c.Layout(gtx, th); dims.Size != image.Pt(300, 200) {
		t.Errorf("expected empty chart to fill 300x200, got %v", dims.Size)
	}
}
