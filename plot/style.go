package plot

import (
	"gioui.org/unit"

	"git.sr.ht/~whereswaldon/materialchart/dimen"
)

// AxisStyle holds the spacing rules of one axis, in pixels.
type AxisStyle struct {
	// Margin is the empty space between the widget edge and the axis
	// line. It applies to both ends of the axis' cross direction: the x
	// axis margin is used on the left and right, the y axis margin on the
	// top and bottom.
	Margin float32
	// Padding is kept free between the plotted maximum and the end of
	// the axis line.
	Padding float32
	// Spacing is the minimum distance between adjacent ticks.
	Spacing float32
}

// Style collects every size used to lay out and draw a chart, in pixels.
type Style struct {
	X, Y                AxisStyle
	HalfTickLength      float32
	AxisStrokeWidth     float32
	TickStrokeWidth     float32
	LineStrokeWidth     float32
	GridLineStrokeWidth float32
	GridLineDash        []float32
	LabelTextSize       float32
	TitleTextSize       float32
	// LabelMargin separates labels from ticks and from each other.
	LabelMargin float32
	// MarkerRadius is the radius of the crosshair point marker.
	MarkerRadius float32
	// CornerRadius rounds the crosshair label box.
	CornerRadius float32
}

// StyleDp is Style expressed in device independent units, the form used in
// configuration files.
type StyleDp struct {
	XMargin, YMargin           unit.Dp
	XPadding, YPadding         unit.Dp
	XSpacing, YSpacing         unit.Dp
	HalfTickLength             unit.Dp
	AxisStrokeWidth            unit.Dp
	TickStrokeWidth            unit.Dp
	LineStrokeWidth            unit.Dp
	GridLineStrokeWidth        unit.Dp
	GridLineDash               []unit.Dp
	LabelTextSize              unit.Sp
	TitleTextSize              unit.Sp
	LabelMargin                unit.Dp
	MarkerRadius, CornerRadius unit.Dp
}

// DefaultStyleDp returns the stock chart dimensions.
func DefaultStyleDp() StyleDp {
	return StyleDp{
		XMargin:             32,
		YMargin:             32,
		XPadding:            32,
		YPadding:            32,
		XSpacing:            32,
		YSpacing:            32,
		HalfTickLength:      4,
		AxisStrokeWidth:     1.5,
		TickStrokeWidth:     1,
		LineStrokeWidth:     2,
		GridLineStrokeWidth: 1,
		GridLineDash:        []unit.Dp{6, 4},
		LabelTextSize:       12,
		TitleTextSize:       12,
		LabelMargin:         8,
		MarkerRadius:        6,
		CornerRadius:        8,
	}
}

// Px resolves s for the pixel density in m.
func (s StyleDp) Px(m unit.Metric) Style {
	px := func(v unit.Dp) float32 {
		return dimen.FromDp(m, v).Float()
	}
	dash := make([]float32, 0, len(s.GridLineDash))
	for _, d := range s.GridLineDash {
		dash = append(dash, px(d))
	}
	return Style{
		X:                   AxisStyle{Margin: px(s.XMargin), Padding: px(s.XPadding), Spacing: px(s.XSpacing)},
		Y:                   AxisStyle{Margin: px(s.YMargin), Padding: px(s.YPadding), Spacing: px(s.YSpacing)},
		HalfTickLength:      px(s.HalfTickLength),
		AxisStrokeWidth:     px(s.AxisStrokeWidth),
		TickStrokeWidth:     px(s.TickStrokeWidth),
		LineStrokeWidth:     px(s.LineStrokeWidth),
		GridLineStrokeWidth: px(s.GridLineStrokeWidth),
		GridLineDash:        dash,
		LabelTextSize:       dimen.FromSp(m, s.LabelTextSize).Float(),
		TitleTextSize:       dimen.FromSp(m, s.TitleTextSize).Float(),
		LabelMargin:         px(s.LabelMargin),
		MarkerRadius:        px(s.MarkerRadius),
		CornerRadius:        px(s.CornerRadius),
	}
}

// DefaultStyle returns the stock chart dimensions at one pixel per dp.
func DefaultStyle() Style {
	return DefaultStyleDp().Px(unit.Metric{PxPerDp: 1, PxPerSp: 1})
}
