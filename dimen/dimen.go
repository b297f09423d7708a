// Package dimen converts between Gio's device independent units and
// fractional device pixels.
//
// Gio's own unit.Metric rounds to whole pixels, which is too coarse for
// chart geometry where tick positions are accumulated from many small
// steps. Px keeps the fractional part until the point of drawing.
package dimen

import "gioui.org/unit"

// Px is a length in device pixels.
type Px float32

// Float returns p as a float32.
func (p Px) Float() float32 {
	return float32(p)
}

func pxPerDp(m unit.Metric) float32 {
	if m.PxPerDp == 0 {
		return 1
	}
	return m.PxPerDp
}

func pxPerSp(m unit.Metric) float32 {
	if m.PxPerSp == 0 {
		return 1
	}
	return m.PxPerSp
}

// FromDp converts dp to fractional pixels.
func FromDp(m unit.Metric, dp unit.Dp) Px {
	return Px(float32(dp) * pxPerDp(m))
}

// FromSp converts sp to fractional pixels.
func FromSp(m unit.Metric, sp unit.Sp) Px {
	return Px(float32(sp) * pxPerSp(m))
}

// ToSp converts p to scaled pixels, the unit Gio uses for text size.
func ToSp(m unit.Metric, p Px) unit.Sp {
	return unit.Sp(float32(p) / pxPerSp(m))
}
