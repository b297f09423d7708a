package render

import (
	"strings"

	"git.sr.ht/~whereswaldon/materialchart/plot"
)

// Recorder is a Canvas that keeps every primitive it receives.
type Recorder struct {
	// Measurer sizes text. plot.DefaultFixedMeasurer is used when nil.
	Measurer plot.Measurer
	Ops      []Op
}

var _ Canvas = (*Recorder)(nil)

func (r *Recorder) Measure(text string, size float32) plot.TextSize {
	if r.Measurer == nil {
		return plot.DefaultFixedMeasurer.Measure(text, size)
	}
	return r.Measurer.Measure(text, size)
}

func (r *Recorder) Line(o LineOp)           { r.Ops = append(r.Ops, o) }
func (r *Recorder) Rect(o RectOp)           { r.Ops = append(r.Ops, o) }
func (r *Recorder) Gradient(o GradientOp)   { r.Ops = append(r.Ops, o) }
func (r *Recorder) Circle(o CircleOp)       { r.Ops = append(r.Ops, o) }
func (r *Recorder) RoundRect(o RoundRectOp) { r.Ops = append(r.Ops, o) }
func (r *Recorder) Text(o TextOp)           { r.Ops = append(r.Ops, o) }

// Reset drops the recorded primitives, keeping the allocated storage.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// String lists the recorded primitives, one per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, o := range r.Ops {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Find returns the recorded primitives of type T in drawing order.
func Find[T Op](r *Recorder) []T {
	var out []T
	for _, o := range r.Ops {
		if t, ok := o.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
