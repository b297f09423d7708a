// Command materialchart displays a chart dataset file and redraws it
// whenever the file changes.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"git.sr.ht/~whereswaldon/materialchart/backend"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "materialchart [dataset-file]",
		Short: "Display a dataset as a step line chart",
		Long: heredoc.Doc(`
			Display a dataset as a step line chart.

			The dataset file is YAML, JSON, or CSV and is reloaded whenever
			it changes on disk. Press and hold the chart to reveal a crosshair
			when the dataset is interactive.
		`),
		Example: heredoc.Doc(`
			# Show a dataset grouped by week
			$ materialchart --mode week usage.yaml

			# Force the crosshair on and log layout passes
			$ MATERIALCHART_LOG_LEVEL=debug materialchart --interactive usage.json
		`),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return run(cfg, path)
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is materialchart.yaml in the working or home directory)")
	flags := cmd.Flags()
	flags.String("mode", "", "override the graph mode: day, week, month, or quarter")
	flags.Bool("interactive", false, "enable the crosshair for every dataset")
	flags.String("log-level", "info", "log level: debug, info, warn, or error")
	flags.String("timezone", "", "IANA time zone used for x axis labels (default local)")
	for _, name := range []string{"mode", "interactive", "log-level", "timezone"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func newLogger(cfg Config) (*log.Logger, error) {
	lvl, err := cfg.Level()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "materialchart",
	})
	return logger, err
}

func run(cfg Config, path string) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	palette, err := cfg.ChartPalette()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	opts, err := cfg.DatasetOptions()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	bundle, err := backend.NewBundle(ctx, slog.New(logger), opts...)
	if err != nil {
		cancel()
		return err
	}
	if path != "" {
		if err := bundle.Source.Open(path); err != nil {
			logger.Error("failed loading dataset", "path", path, "error", err)
		}
	}
	go func() {
		defer cancel()
		w := app.NewWindow(app.Title("Material Chart"), app.Size(unit.Dp(800), unit.Dp(600)))
		expl := explorer.NewExplorer(w)
		ws := backend.NewWindowState(ctx, bundle, w)
		ui := NewUI(ws, expl, slog.New(logger))
		ui.chart.Style = cfg.StyleDp()
		ui.chart.Palette = palette
		ui.chart.Location = loc
		ui.chart.LongPressDelay = cfg.LongPressDelay
		if err := loop(w, ui, expl); err != nil {
			logger.Fatal("window closed", "error", err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func loop(w *app.Window, ui *UI, expl *explorer.Explorer) error {
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			if errors.Is(ev.Err, context.Canceled) {
				return nil
			}
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
