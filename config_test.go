package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
	"git.sr.ht/~whereswaldon/materialchart/interact"
	"git.sr.ht/~whereswaldon/materialchart/plot"
	"git.sr.ht/~whereswaldon/materialchart/render"
)

func loadFrom(t *testing.T, path string) Config {
	t.Helper()
	v := viper.New()
	if err := initConfig(v, path); err != nil {
		t.Fatalf("initConfig: %v", err)
	}
	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return cfg
}

// chdir moves into dir for the rest of the test so that no config file in
// the working directory is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg := loadFrom(t, "")
	if cfg.LongPressDelay != interact.DefaultDelay {
		t.Errorf("expected delay %v, got %v", interact.DefaultDelay, cfg.LongPressDelay)
	}
	if !sameStyleDp(cfg.StyleDp(), plot.DefaultStyleDp()) {
		t.Errorf("expected default style, got %+v", cfg.StyleDp())
	}
	p, err := cfg.ChartPalette()
	if err != nil {
		t.Fatalf("ChartPalette: %v", err)
	}
	if p != render.DefaultPalette() {
		t.Errorf("expected default palette, got %+v", p)
	}
	opts, err := cfg.DatasetOptions()
	if err != nil {
		t.Fatalf("DatasetOptions: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("expected no dataset overrides, got %d", len(opts))
	}
	if lvl, err := cfg.Level(); err != nil || lvl != log.InfoLevel {
		t.Errorf("expected info level, got %v (%v)", lvl, err)
	}
}

func sameStyleDp(a, b plot.StyleDp) bool {
	if len(a.GridLineDash) != len(b.GridLineDash) {
		return false
	}
	for i := range a.GridLineDash {
		if a.GridLineDash[i] != b.GridLineDash[i] {
			return false
		}
	}
	a.GridLineDash, b.GridLineDash = nil, nil
	return a == b
}

const sampleConfig = `
mode: week
interactive: true
long-press-delay: 250ms
timezone: UTC
style:
  x-spacing: 48
  grid-line-dash: [2, 2]
palette:
  primary: "#336699"
  error: tomato
`

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := loadFrom(t, path)
	if cfg.LongPressDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.LongPressDelay)
	}
	st := cfg.StyleDp()
	if st.XSpacing != 48 {
		t.Errorf("expected x spacing 48, got %v", st.XSpacing)
	}
	if st.YSpacing != plot.DefaultStyleDp().YSpacing {
		t.Errorf("expected default y spacing, got %v", st.YSpacing)
	}
	if len(st.GridLineDash) != 2 || st.GridLineDash[0] != 2 {
		t.Errorf("expected dash [2 2], got %v", st.GridLineDash)
	}
	p, err := cfg.ChartPalette()
	if err != nil {
		t.Fatalf("ChartPalette: %v", err)
	}
	if expected := (color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}); p.Primary != expected {
		t.Errorf("expected primary %v, got %v", expected, p.Primary)
	}
	if expected := (color.NRGBA{R: 255, G: 99, B: 71, A: 255}); p.Error != expected {
		t.Errorf("expected error %v, got %v", expected, p.Error)
	}
	if p.Secondary != render.DefaultPalette().Secondary {
		t.Errorf("expected default secondary, got %v", p.Secondary)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("expected UTC, got %v (%v)", loc, err)
	}

	opts, err := cfg.DatasetOptions()
	if err != nil {
		t.Fatalf("DatasetOptions: %v", err)
	}
	var ds chartdata.Dataset
	for _, opt := range opts {
		opt(&ds)
	}
	if ds.GraphMode != chartdata.Week || !ds.IsInteractive {
		t.Errorf("expected week interactive dataset, got %v %v", ds.GraphMode, ds.IsInteractive)
	}
}

func TestConfigEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MATERIALCHART_MODE", "quarter")
	t.Setenv("MATERIALCHART_STYLE_LABEL_MARGIN", "12")
	cfg := loadFrom(t, "")
	if cfg.Mode != "quarter" {
		t.Errorf("expected quarter, got %q", cfg.Mode)
	}
	if st := cfg.StyleDp(); st.LabelMargin != 12 {
		t.Errorf("expected label margin 12, got %v", st.LabelMargin)
	}
}

func TestConfigMissingExplicitFile(t *testing.T) {
	v := viper.New()
	if err := initConfig(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestConfigInvalidValues(t *testing.T) {
	cfg := Config{
		Mode:     "fortnight",
		Timezone: "Nowhere/Special",
		LogLevel: "loud",
		Palette:  PaletteConfig{Primary: "#12", Error: "notacolor"},
	}
	if _, err := cfg.DatasetOptions(); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := cfg.Location(); err == nil {
		t.Error("expected error for unknown timezone")
	}
	if _, err := cfg.Level(); err == nil {
		t.Error("expected error for unknown log level")
	}
	if _, err := cfg.ChartPalette(); err == nil {
		t.Error("expected error for invalid palette")
	}
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected color.NRGBA
		err      bool
	}{
		{in: "#fff", expected: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "#6750a4", expected: color.NRGBA{R: 0x67, G: 0x50, B: 0xa4, A: 0xff}},
		{in: "#6750a480", expected: color.NRGBA{R: 0x67, G: 0x50, B: 0xa4, A: 0x80}},
		{in: " Navy ", expected: color.NRGBA{B: 128, A: 255}},
		{in: "#ggg", err: true},
		{in: "#12345", err: true},
		{in: "blurple", err: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseColor(tc.in)
			if tc.err {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 1, G: 2, B: 3, A: 4},
	} {
		got, err := parseColor(formatColor(c))
		if err != nil || got != c {
			t.Errorf("expected %v, got %v (%v)", c, got, err)
		}
	}
}

func TestDataTableCells(t *testing.T) {
	table := DataTable{
		Dataset: &chartdata.Dataset{
			Data: []chartdata.Point{
				{X: 0, Y: 2.5, Valid: true},
				{X: 3600, Y: 3},
			},
			GridLines: []chartdata.GridLine{{Name: "target", Value: 4}},
		},
		Location: time.UTC,
	}
	for _, tc := range []struct {
		row, col int
		expected string
	}{
		{0, indexCol, "0"},
		{0, timeCol, "00:00"},
		{1, timeCol, "01:00"},
		{1, xCol, "3600"},
		{0, yCol, "2.5"},
		{0, validCol, "yes"},
		{1, validCol, "no"},
		{2, timeCol, "target"},
		{2, yCol, "4"},
		{2, indexCol, ""},
	} {
		if got, _ := table.cell(tc.row, tc.col); got != tc.expected {
			t.Errorf("cell(%d, %d): expected %q, got %q", tc.row, tc.col, tc.expected, got)
		}
	}
}
