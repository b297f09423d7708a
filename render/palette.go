package render

import "image/color"

// Palette holds the resolved colors of a chart.
type Palette struct {
	// Primary draws the data line and the gradient beneath it.
	Primary color.NRGBA
	// Secondary draws grid lines and their labels.
	Secondary color.NRGBA
	// Error draws segments leaving an invalid point.
	Error color.NRGBA
	Surface   color.NRGBA
	// OnSurface draws axes, ticks, labels, and the crosshair guide.
	OnSurface          color.NRGBA
	PrimaryContainer   color.NRGBA
	OnPrimaryContainer color.NRGBA
}

func rgb(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// DefaultPalette returns the Material 3 baseline light colors.
func DefaultPalette() Palette {
	return Palette{
		Primary:            rgb(0x6750a4),
		Secondary:          rgb(0x625b71),
		Error:              rgb(0xb3261e),
		Surface:            rgb(0xfffbfe),
		OnSurface:          rgb(0x1c1b1f),
		PrimaryContainer:   rgb(0xeaddff),
		OnPrimaryContainer: rgb(0x21005d),
	}
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
