package chartdata

// Span is the closed interval of data values covered by one axis.
type Span struct {
	Min, Max float64
}

// Degenerate reports whether every value on the axis is the same.
func (s Span) Degenerate() bool {
	return s.Min == s.Max
}

// Difference is the width of the span. A degenerate span reports its only
// value instead of zero so callers can divide by it.
func (s Span) Difference() float64 {
	if s.Degenerate() {
		return s.Max
	}
	return s.Max - s.Min
}

// Contains reports whether v lies within the span, inclusive.
func (s Span) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}
