// Package ticks decides where the tick marks of one chart axis go and what
// their labels say.
//
// Positions are distances along the axis measured from the anchor of the
// minimum value, so the same layout serves both the horizontal and the
// vertical axis. The caller turns them into pixel coordinates.
package ticks

import (
	"math"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

const (
	// Axes no longer than smallAxis pixels get the minimum, the maximum,
	// and one tick in between.
	smallAxis  = 150
	smallCount = 3
	// Axes no longer than mediumAxis pixels get five ticks.
	mediumAxis  = 250
	mediumCount = 5
	// TiltMargin is the clearance required between two upright labels.
	TiltMargin = 8
)

// Formatter turns an axis value into label text.
type Formatter func(v float64) string

// Tick is a labelled position on an axis.
type Tick struct {
	// Pos is the distance in pixels from the minimum anchor.
	Pos   float32
	Value float64
	Label string
}

// Axis describes the space available to one axis and the values it spans.
type Axis struct {
	// Length is the distance in pixels between the minimum and maximum
	// anchors.
	Length float32
	// MinSpacing is the smallest distance wanted between adjacent ticks.
	MinSpacing float32
	Span       chartdata.Span
	// Format renders tick labels. NumberFormatter is used when nil.
	Format Formatter
	// Reserve is the distance from the minimum anchor that interior ticks
	// must clear so they do not collide with the minimum label.
	Reserve float32
	// Measure returns the rendered width of a label. When set, the layout
	// reports whether labels are too wide to sit upright.
	Measure func(label string) float32
}

// Result is the tick layout of one axis.
type Result struct {
	// Ticks is ordered from the minimum anchor to the maximum anchor.
	Ticks []Tick
	// Available is the label budget for the axis length.
	Available int
	// Needed is the number of steps that fit once the unit was rounded.
	Needed int
	// Unit is the value difference between adjacent interior ticks.
	Unit float64
	// Spacing is the pixel distance between adjacent interior ticks.
	Spacing float32
	// Tilted reports that at least one interior label is wider than the
	// spacing allows and labels should be drawn rotated by 45 degrees.
	Tilted bool
	// MaxLabelWidth is the widest measured label.
	MaxLabelWidth float32
	// TiltExtent is the vertical space taken by the widest label once
	// rotated. It is zero unless Tilted is set.
	TiltExtent float32
}

// AvailableLabels returns how many labels an axis of the given length can
// hold. Short axes get a fixed budget so that labels stay readable.
func AvailableLabels(space, minSpacing float32) int {
	switch {
	case space <= smallAxis:
		return smallCount
	case space <= mediumAxis:
		return mediumCount
	case minSpacing <= 0:
		return mediumCount
	}
	return int(math.Floor(float64(space / minSpacing)))
}

// RoundToSecondSignificantDigit rounds x to a value with at most two
// significant digits that is never smaller than x.
//
//	RoundToSecondSignificantDigit(37)  == 40
//	RoundToSecondSignificantDigit(123) == 130
func RoundToSecondSignificantDigit(x float64) float64 {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(x)))
	rounded := math.Round(x/magnitude) * magnitude
	if rounded >= x {
		return rounded
	}
	step := magnitude / 10
	rounded = math.Ceil(x/step) * step
	if rounded < x {
		rounded += step
	}
	return rounded
}

// Layout computes the ticks for a.
func Layout(a Axis) Result {
	format := a.Format
	if format == nil {
		format = NumberFormatter
	}
	if a.Length <= 0 {
		return Result{}
	}
	if a.Span.Degenerate() {
		v := a.Span.Max
		return Result{
			Ticks:     []Tick{{Pos: a.Length / 2, Value: v, Label: format(v)}},
			Available: 1,
			Needed:    1,
		}
	}

	res := Result{Available: AvailableLabels(a.Length, a.MinSpacing)}
	difference := a.Span.Difference()
	res.Unit = RoundToSecondSignificantDigit(difference / float64(max(res.Available-1, 1)))
	res.Spacing = float32(float64(a.Length) * res.Unit / difference)
	res.Needed = res.Available
	if res.Available > mediumCount && res.Spacing > 0 {
		res.Needed = int(math.Round(float64(a.Length / res.Spacing)))
	}

	res.Ticks = append(res.Ticks, Tick{Pos: 0, Value: a.Span.Min, Label: format(a.Span.Min)})
	if res.Spacing > 0 {
		for idx := res.Needed - 1; idx >= 1; idx-- {
			pos := a.Length - res.Spacing*float32(idx)
			// Ticks within a pixel of the minimum anchor would draw on top
			// of it.
			if pos < 1 || pos < a.Reserve {
				continue
			}
			value := a.Span.Max - res.Unit*float64(idx)
			res.Ticks = append(res.Ticks, Tick{Pos: pos, Value: value, Label: format(value)})
		}
	}
	res.Ticks = append(res.Ticks, Tick{Pos: a.Length, Value: a.Span.Max, Label: format(a.Span.Max)})

	if a.Measure != nil {
		res.measure(a.Measure)
	}
	return res
}

func (r *Result) measure(measure func(string) float32) {
	last := len(r.Ticks) - 1
	for i, t := range r.Ticks {
		w := measure(t.Label)
		r.MaxLabelWidth = max(r.MaxLabelWidth, w)
		if i == 0 || i == last {
			continue
		}
		if w+TiltMargin > r.Spacing {
			r.Tilted = true
		}
	}
	if r.Tilted {
		r.TiltExtent = r.MaxLabelWidth / math.Sqrt2
	}
}
