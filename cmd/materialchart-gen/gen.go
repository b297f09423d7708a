package main

import (
	"encoding/csv"
	"io"
	"math"
	"math/rand"
	"strconv"
	"time"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
	"git.sr.ht/~whereswaldon/materialchart/ticks"
)

// generator produces a non-negative random walk sampled at a fixed step.
type generator struct {
	rng  *rand.Rand
	x    float64
	y    float64
	step float64
	// invalidRate is the chance that a sample is flagged invalid.
	invalidRate float64
}

func newGenerator(seed int64, start time.Time, step time.Duration, invalidRate float64) *generator {
	return &generator{
		rng:         rand.New(rand.NewSource(seed)),
		x:           float64(start.Unix()),
		y:           10,
		step:        step.Seconds(),
		invalidRate: invalidRate,
	}
}

func (g *generator) next() chartdata.Point {
	p := chartdata.Point{
		X:     g.x,
		Y:     math.Round(g.y*10) / 10,
		Valid: g.rng.Float64() >= g.invalidRate,
	}
	g.x += g.step
	g.y = max(0, g.y+g.rng.NormFloat64()*2)
	return p
}

func (g *generator) take(n int) []chartdata.Point {
	points := make([]chartdata.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, g.next())
	}
	return points
}

// csvWriter writes points in the format read by the chart's CSV decoder.
type csvWriter struct {
	w *csv.Writer
}

func newCSVWriter(w io.Writer, xLabel, yLabel string) (*csvWriter, error) {
	cw := &csvWriter{w: csv.NewWriter(w)}
	if err := cw.w.Write([]string{xLabel, yLabel, "valid"}); err != nil {
		return nil, err
	}
	cw.w.Flush()
	return cw, cw.w.Error()
}

// Write writes and flushes points so that readers only see whole lines.
func (cw *csvWriter) Write(points ...chartdata.Point) error {
	for _, p := range points {
		record := []string{
			ticks.NumberFormatter(p.X),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
			strconv.FormatBool(p.Valid),
		}
		if err := cw.w.Write(record); err != nil {
			return err
		}
	}
	cw.w.Flush()
	return cw.w.Error()
}
