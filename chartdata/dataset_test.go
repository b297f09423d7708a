package chartdata

import (
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExtents(t *testing.T) {
	ds := Dataset{Data: []Point{{X: 1, Y: 10}, {X: 2, Y: 1}, {X: 3, Y: 3}}}
	x, y, ok := ds.Extents()
	if !ok {
		t.Fatalf("expected extents for non-empty dataset")
	}
	if x != (Span{Min: 1, Max: 3}) {
		t.Errorf("expected x span [1,3], got %v", x)
	}
	if y != (Span{Min: 1, Max: 10}) {
		t.Errorf("expected y span [1,10], got %v", y)
	}

	var empty Dataset
	if _, _, ok := empty.Extents(); ok {
		t.Errorf("expected empty dataset to have no extents")
	}
	var nilDS *Dataset
	if !nilDS.Empty() {
		t.Errorf("expected nil dataset to be empty")
	}
}

func TestSpan(t *testing.T) {
	type testcase struct {
		name       string
		span       Span
		difference float64
		degenerate bool
	}
	for _, tc := range []testcase{
		{name: "regular", span: Span{Min: 1, Max: 10}, difference: 9},
		{name: "constant", span: Span{Min: 5, Max: 5}, difference: 5, degenerate: true},
		{name: "negative", span: Span{Min: -4, Max: -2}, difference: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.span.Difference(); got != tc.difference {
				t.Errorf("expected difference %v, got %v", tc.difference, got)
			}
			if got := tc.span.Degenerate(); got != tc.degenerate {
				t.Errorf("expected degenerate %v, got %v", tc.degenerate, got)
			}
		})
	}
	s := Span{Min: 1, Max: 10}
	if !s.Contains(1) || !s.Contains(10) || s.Contains(10.5) || s.Contains(0) {
		t.Errorf("expected Contains to be inclusive of both ends only")
	}
}

func TestGraphMode(t *testing.T) {
	for _, mode := range []GraphMode{Day, Week, Month, Quarter} {
		text, err := mode.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", mode, err)
		}
		var parsed GraphMode
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if parsed != mode {
			t.Errorf("expected %v, got %v", mode, parsed)
		}
	}
	if m, err := ParseGraphMode(" QUARTER "); err != nil || m != Quarter {
		t.Errorf("expected case-insensitive parse to yield quarter, got %v (%v)", m, err)
	}
	if _, err := ParseGraphMode("hourly"); err == nil {
		t.Errorf("expected unknown mode to fail")
	}
}

func TestValidate(t *testing.T) {
	var empty Dataset
	if err := empty.Validate(); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
	ds := Dataset{
		Data:      []Point{{X: 1, Y: math.NaN()}, {X: 2, Y: 3}},
		GridLines: []GridLine{{Name: "bad", Value: math.Inf(1)}},
	}
	if err := ds.Validate(); err == nil {
		t.Errorf("expected non-finite values to be rejected")
	}
	ds.Data[0].Y = 1
	ds.GridLines = nil
	if err := ds.Validate(); err != nil {
		t.Errorf("expected valid dataset, got %v", err)
	}
}

func TestPointDefaultsValid(t *testing.T) {
	var pts []Point
	src := "- {x: 1, y: 2}\n- {x: 2, y: 3, valid: false}\n- {x: 3, y: 4, valid: true}\n"
	if err := yaml.Unmarshal([]byte(src), &pts); err != nil {
		t.Fatalf("expected points to decode, got %v", err)
	}
	want := []Point{{X: 1, Y: 2, Valid: true}, {X: 2, Y: 3}, {X: 3, Y: 4, Valid: true}}
	if len(pts) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(pts))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], pts[i])
		}
	}
}
