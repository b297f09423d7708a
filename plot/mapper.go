// Package plot places a dataset inside a pixel rectangle: it derives the
// margins the axes need, runs the tick layout for each axis, and maps data
// points to pixel coordinates.
package plot

import (
	"math"
	"sort"

	"gioui.org/f32"
	"golang.org/x/exp/constraints"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	Min, Max f32.Point
}

func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() f32.Point {
	return f32.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Mapper maps data values into the plot area. Larger Y values map closer
// to the top of the area.
type Mapper struct {
	X, Y chartdata.Span
	Area Rect
}

// MapX returns the horizontal pixel position of v. Every value of a
// degenerate span maps to the horizontal center of the area.
func (m Mapper) MapX(v float64) float32 {
	if m.X.Degenerate() {
		return m.Area.Center().X
	}
	return float32((v-m.X.Min)/m.X.Difference())*m.Area.Dx() + m.Area.Min.X
}

// MapY returns the vertical pixel position of v. Every value of a
// degenerate span maps to the vertical center of the area.
func (m Mapper) MapY(v float64) float32 {
	if m.Y.Degenerate() {
		return m.Area.Center().Y
	}
	return float32(1-(v-m.Y.Min)/m.Y.Difference())*m.Area.Dy() + m.Area.Min.Y
}

// Map returns the pixel position of p.
func (m Mapper) Map(p chartdata.Point) f32.Point {
	return f32.Pt(m.MapX(p.X), m.MapY(p.Y))
}

// Nearest returns the index of the point whose step is under the
// horizontal pixel position x: the rightmost point at or left of x.
// Positions left of every point select the leftmost point. Sorted points
// are searched by bisection and unsorted ones are scanned. It returns -1
// when there are no points.
func Nearest(points []f32.Point, x float32) int {
	if len(points) == 0 {
		return -1
	}
	if !sort.SliceIsSorted(points, func(i, j int) bool { return points[i].X < points[j].X }) {
		return nearestScan(points, x)
	}
	idx := sort.Search(len(points), func(i int) bool {
		return points[i].X > x
	})
	return max(idx-1, 0)
}

func nearestScan(points []f32.Point, x float32) int {
	best, leftmost := -1, 0
	for i, p := range points {
		if p.X < points[leftmost].X {
			leftmost = i
		}
		if p.X <= x && (best < 0 || p.X >= points[best].X) {
			best = i
		}
	}
	if best < 0 {
		return leftmost
	}
	return best
}

// Clamp limits v to [lo, hi]. When the range is empty lo wins.
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

func ceil[T constraints.Float](a T) T {
	return T(math.Ceil(float64(a)))
}
