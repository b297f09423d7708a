package giochart

import (
	"math"

	"gioui.org/font"
	"gioui.org/text"
	"golang.org/x/image/math/fixed"

	"git.sr.ht/~whereswaldon/materialchart/plot"
)

// Measurer sizes text with a Gio text shaper, so that measurements match
// what material labels draw.
type Measurer struct {
	Shaper *text.Shaper
	Font   font.Font
}

var _ plot.Measurer = (*Measurer)(nil)

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Measure shapes text as a single line at size pixels per em.
func (m *Measurer) Measure(s string, size float32) plot.TextSize {
	if m.Shaper == nil || size <= 0 {
		return plot.TextSize{}
	}
	m.Shaper.LayoutString(text.Parameters{
		Font:     m.Font,
		PxPerEm:  fixed.Int26_6(math.Round(float64(size) * 64)),
		MaxLines: 1,
		MaxWidth: math.MaxInt32,
	}, s)
	var width, ascent, descent fixed.Int26_6
	for {
		g, ok := m.Shaper.NextGlyph()
		if !ok {
			break
		}
		width += g.Advance
		ascent = max(ascent, g.Ascent)
		descent = max(descent, g.Descent)
	}
	return plot.TextSize{
		Width:   fromFixed(width),
		Ascent:  fromFixed(ascent),
		Descent: fromFixed(descent),
	}
}
