// Package chartdata defines the dataset consumed by the chart layout engine.
package chartdata

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoData is returned when an operation needs at least one point.
var ErrNoData = errors.New("dataset has no data points")

// Point is a single sample. Valid reports whether the segment leaving this
// point should be drawn in the normal color rather than the error color.
type Point struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Valid bool    `yaml:"valid" json:"valid"`
}

// UnmarshalYAML decodes a point, treating an omitted valid flag as true.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	type plain Point
	raw := plain{Valid: true}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = Point(raw)
	return nil
}

// GridLine is a labelled horizontal reference line at a fixed Y value.
type GridLine struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// GraphMode selects the granularity used to format X values, which are
// interpreted as Unix timestamps in seconds.
type GraphMode uint8

const (
	Day GraphMode = iota
	Week
	Month
	Quarter
)

func (m GraphMode) String() string {
	switch m {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	default:
		return "unknown"
	}
}

// ParseGraphMode parses the case-insensitive name of a graph mode.
func ParseGraphMode(s string) (GraphMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "quarter":
		return Quarter, nil
	default:
		return Day, fmt.Errorf("unknown graph mode %q", s)
	}
}

func (m GraphMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *GraphMode) UnmarshalText(b []byte) error {
	parsed, err := ParseGraphMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Dataset is everything the chart needs to draw one frame. The zero value
// is a valid, empty, non-interactive dataset.
type Dataset struct {
	ShowXAxis     bool       `yaml:"showXAxis" json:"showXAxis"`
	ShowYAxis     bool       `yaml:"showYAxis" json:"showYAxis"`
	IsInteractive bool       `yaml:"isInteractive" json:"isInteractive"`
	GraphMode     GraphMode  `yaml:"graphMode" json:"graphMode"`
	XLabel        string     `yaml:"xLabel" json:"xLabel"`
	YLabel        string     `yaml:"yLabel" json:"yLabel"`
	Data          []Point    `yaml:"data" json:"data"`
	GridLines     []GridLine `yaml:"gridLines" json:"gridLines"`
}

// Empty reports whether the dataset has no points to draw.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Data) == 0
}

// Extents returns the minimum and maximum of the data on each axis. The
// final return is false if the dataset is empty.
func (d *Dataset) Extents() (x, y Span, ok bool) {
	if d.Empty() {
		return Span{}, Span{}, false
	}
	first := d.Data[0]
	x = Span{Min: first.X, Max: first.X}
	y = Span{Min: first.Y, Max: first.Y}
	for _, p := range d.Data[1:] {
		x.Min = min(x.Min, p.X)
		x.Max = max(x.Max, p.X)
		y.Min = min(y.Min, p.Y)
		y.Max = max(y.Max, p.Y)
	}
	return x, y, true
}

// Validate reports points and grid lines that cannot be placed on a chart.
func (d *Dataset) Validate() error {
	if d.Empty() {
		return ErrNoData
	}
	var errs []error
	for i, p := range d.Data {
		if !finite(p.X) || !finite(p.Y) {
			errs = append(errs, fmt.Errorf("point %d has non-finite coordinates (%v, %v)", i, p.X, p.Y))
		}
	}
	for _, g := range d.GridLines {
		if !finite(g.Value) {
			errs = append(errs, fmt.Errorf("grid line %q has non-finite value %v", g.Name, g.Value))
		}
	}
	return errors.Join(errs...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
