package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"gioui.org/unit"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"git.sr.ht/~whereswaldon/materialchart/backend"
	"git.sr.ht/~whereswaldon/materialchart/chartdata"
	"git.sr.ht/~whereswaldon/materialchart/interact"
	"git.sr.ht/~whereswaldon/materialchart/plot"
	"git.sr.ht/~whereswaldon/materialchart/render"
)

const (
	configName = "materialchart"
	envPrefix  = "MATERIALCHART"
)

// StyleConfig is the chart geometry in dp. Text sizes are in sp.
type StyleConfig struct {
	XMargin             float32   `mapstructure:"x-margin"`
	YMargin             float32   `mapstructure:"y-margin"`
	XPadding            float32   `mapstructure:"x-padding"`
	YPadding            float32   `mapstructure:"y-padding"`
	XSpacing            float32   `mapstructure:"x-spacing"`
	YSpacing            float32   `mapstructure:"y-spacing"`
	HalfTickLength      float32   `mapstructure:"half-tick-length"`
	AxisStrokeWidth     float32   `mapstructure:"axis-width"`
	TickStrokeWidth     float32   `mapstructure:"tick-width"`
	LineStrokeWidth     float32   `mapstructure:"line-width"`
	GridLineStrokeWidth float32   `mapstructure:"grid-line-width"`
	GridLineDash        []float32 `mapstructure:"grid-line-dash"`
	LabelTextSize       float32   `mapstructure:"label-text-size"`
	TitleTextSize       float32   `mapstructure:"title-text-size"`
	LabelMargin         float32   `mapstructure:"label-margin"`
	MarkerRadius        float32   `mapstructure:"marker-radius"`
	CornerRadius        float32   `mapstructure:"corner-radius"`
}

// PaletteConfig holds chart colors as hex strings or color names.
type PaletteConfig struct {
	Primary            string `mapstructure:"primary"`
	Secondary          string `mapstructure:"secondary"`
	Error              string `mapstructure:"error"`
	Surface            string `mapstructure:"surface"`
	OnSurface          string `mapstructure:"on-surface"`
	PrimaryContainer   string `mapstructure:"primary-container"`
	OnPrimaryContainer string `mapstructure:"on-primary-container"`
}

// Config is the application configuration, merged from defaults, the
// config file, MATERIALCHART_* environment variables and flags.
type Config struct {
	LogLevel       string        `mapstructure:"log-level"`
	Mode           string        `mapstructure:"mode"`
	Interactive    bool          `mapstructure:"interactive"`
	LongPressDelay time.Duration `mapstructure:"long-press-delay"`
	Timezone       string        `mapstructure:"timezone"`
	Style          StyleConfig   `mapstructure:"style"`
	Palette        PaletteConfig `mapstructure:"palette"`
}

func setDefaults(v *viper.Viper) {
	st := plot.DefaultStyleDp()
	p := render.DefaultPalette()
	dash := make([]float32, 0, len(st.GridLineDash))
	for _, d := range st.GridLineDash {
		dash = append(dash, float32(d))
	}
	defaults := map[string]any{
		"log-level":                    "info",
		"mode":                         "",
		"interactive":                  false,
		"long-press-delay":             interact.DefaultDelay,
		"timezone":                     "",
		"style.x-margin":               float32(st.XMargin),
		"style.y-margin":               float32(st.YMargin),
		"style.x-padding":              float32(st.XPadding),
		"style.y-padding":              float32(st.YPadding),
		"style.x-spacing":              float32(st.XSpacing),
		"style.y-spacing":              float32(st.YSpacing),
		"style.half-tick-length":       float32(st.HalfTickLength),
		"style.axis-width":             float32(st.AxisStrokeWidth),
		"style.tick-width":             float32(st.TickStrokeWidth),
		"style.line-width":             float32(st.LineStrokeWidth),
		"style.grid-line-width":        float32(st.GridLineStrokeWidth),
		"style.grid-line-dash":         dash,
		"style.label-text-size":        float32(st.LabelTextSize),
		"style.title-text-size":        float32(st.TitleTextSize),
		"style.label-margin":           float32(st.LabelMargin),
		"style.marker-radius":          float32(st.MarkerRadius),
		"style.corner-radius":          float32(st.CornerRadius),
		"palette.primary":              formatColor(p.Primary),
		"palette.secondary":            formatColor(p.Secondary),
		"palette.error":                formatColor(p.Error),
		"palette.surface":              formatColor(p.Surface),
		"palette.on-surface":           formatColor(p.OnSurface),
		"palette.primary-container":    formatColor(p.PrimaryContainer),
		"palette.on-primary-container": formatColor(p.OnPrimaryContainer),
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// initConfig prepares v to read the config file at path, or
// materialchart.yaml from the working or home directory when path is
// empty. A missing default file is not an error.
func initConfig(v *viper.Viper, path string) error {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed reading config: %w", err)
	}
	return nil
}

// LoadConfig decodes the merged configuration held by v.
func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed decoding config: %w", err)
	}
	return cfg, nil
}

func (c Config) StyleDp() plot.StyleDp {
	s := c.Style
	st := plot.StyleDp{
		XMargin:             unit.Dp(s.XMargin),
		YMargin:             unit.Dp(s.YMargin),
		XPadding:            unit.Dp(s.XPadding),
		YPadding:            unit.Dp(s.YPadding),
		XSpacing:            unit.Dp(s.XSpacing),
		YSpacing:            unit.Dp(s.YSpacing),
		HalfTickLength:      unit.Dp(s.HalfTickLength),
		AxisStrokeWidth:     unit.Dp(s.AxisStrokeWidth),
		TickStrokeWidth:     unit.Dp(s.TickStrokeWidth),
		LineStrokeWidth:     unit.Dp(s.LineStrokeWidth),
		GridLineStrokeWidth: unit.Dp(s.GridLineStrokeWidth),
		LabelTextSize:       unit.Sp(s.LabelTextSize),
		TitleTextSize:       unit.Sp(s.TitleTextSize),
		LabelMargin:         unit.Dp(s.LabelMargin),
		MarkerRadius:        unit.Dp(s.MarkerRadius),
		CornerRadius:        unit.Dp(s.CornerRadius),
	}
	for _, d := range s.GridLineDash {
		st.GridLineDash = append(st.GridLineDash, unit.Dp(d))
	}
	return st
}

// ChartPalette resolves the configured colors. Every invalid entry is
// reported.
func (c Config) ChartPalette() (render.Palette, error) {
	var (
		p    render.Palette
		errs []error
	)
	resolve := func(name, value string, dst *color.NRGBA) {
		col, err := parseColor(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", name, err))
			return
		}
		*dst = col
	}
	resolve("primary", c.Palette.Primary, &p.Primary)
	resolve("secondary", c.Palette.Secondary, &p.Secondary)
	resolve("error", c.Palette.Error, &p.Error)
	resolve("surface", c.Palette.Surface, &p.Surface)
	resolve("on-surface", c.Palette.OnSurface, &p.OnSurface)
	resolve("primary-container", c.Palette.PrimaryContainer, &p.PrimaryContainer)
	resolve("on-primary-container", c.Palette.OnPrimaryContainer, &p.OnPrimaryContainer)
	return p, errors.Join(errs...)
}

// Location loads the configured time zone. Empty means local time.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	return loc, nil
}

func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// DatasetOptions returns the overrides applied to every loaded dataset.
func (c Config) DatasetOptions() ([]backend.Option, error) {
	var opts []backend.Option
	if c.Mode != "" {
		mode, err := chartdata.ParseGraphMode(c.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, func(ds *chartdata.Dataset) {
			ds.GraphMode = mode
		})
	}
	if c.Interactive {
		opts = append(opts, func(ds *chartdata.Dataset) {
			ds.IsInteractive = true
		})
	}
	return opts, nil
}
