package plot

import (
	"testing"

	"gioui.org/f32"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

func TestMapperEdges(t *testing.T) {
	m := Mapper{
		X:    chartdata.Span{Min: 2, Max: 12},
		Y:    chartdata.Span{Min: -5, Max: 5},
		Area: Rect{Min: f32.Pt(10, 20), Max: f32.Pt(110, 220)},
	}
	if got := m.MapX(2); got != 10 {
		t.Errorf("expected min x at 10, got %f", got)
	}
	if got := m.MapX(12); got != 110 {
		t.Errorf("expected max x at 110, got %f", got)
	}
	if got := m.MapX(7); got != 60 {
		t.Errorf("expected middle x at 60, got %f", got)
	}
	if got := m.MapY(-5); got != 220 {
		t.Errorf("expected min y at the bottom (220), got %f", got)
	}
	if got := m.MapY(5); got != 20 {
		t.Errorf("expected max y at the top (20), got %f", got)
	}
	if got := m.MapY(0); got != 120 {
		t.Errorf("expected zero at 120, got %f", got)
	}
}

func TestMapperDegenerate(t *testing.T) {
	m := Mapper{
		X:    chartdata.Span{Min: 4, Max: 4},
		Y:    chartdata.Span{Min: 1, Max: 1},
		Area: Rect{Min: f32.Pt(0, 0), Max: f32.Pt(100, 50)},
	}
	got := m.Map(chartdata.Point{X: 4, Y: 1})
	if expected := f32.Pt(50, 25); got != expected {
		t.Errorf("expected degenerate point at %v, got %v", expected, got)
	}
}

func TestNearest(t *testing.T) {
	points := []f32.Point{{X: 10}, {X: 20}, {X: 40}}
	type testcase struct {
		x        float32
		expected int
	}
	for _, tc := range []testcase{
		{x: 0, expected: 0},
		{x: 10, expected: 0},
		{x: 19.9, expected: 0},
		{x: 20, expected: 1},
		{x: 39, expected: 1},
		{x: 40, expected: 2},
		{x: 500, expected: 2},
	} {
		if got := Nearest(points, tc.x); got != tc.expected {
			t.Errorf("x=%f: expected index %d, got %d", tc.x, tc.expected, got)
		}
	}
	if got := Nearest(nil, 5); got != -1 {
		t.Errorf("expected -1 for no points, got %d", got)
	}
}

func TestNearestUnsorted(t *testing.T) {
	points := []f32.Point{{X: 40}, {X: 10}, {X: 30}, {X: 20}}
	type testcase struct {
		x        float32
		expected int
	}
	for _, tc := range []testcase{
		{x: 0, expected: 1},
		{x: 10, expected: 1},
		{x: 15, expected: 1},
		{x: 25, expected: 3},
		{x: 30, expected: 2},
		{x: 39, expected: 2},
		{x: 40, expected: 0},
		{x: 500, expected: 0},
	} {
		if got := Nearest(points, tc.x); got != tc.expected {
			t.Errorf("x=%f: expected index %d, got %d", tc.x, tc.expected, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := Clamp(-1.5, 0, 3); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
	if got := Clamp(float32(2), 4, 1); got != 4 {
		t.Errorf("expected lower bound to win on an empty range, got %f", got)
	}
}
