// Command materialchart-gen writes synthetic datasets for materialchart.
// With --follow it keeps appending samples to a CSV file, which the chart
// redraws as they arrive.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/materialchart/backend"
	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

type options struct {
	output      string
	format      string
	mode        string
	points      int
	step        time.Duration
	invalidRate float64
	target      float64
	interactive bool
	follow      bool
	interval    time.Duration
	seed        int64
}

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "materialchart-gen",
		Short: "Write a synthetic chart dataset",
		Example: heredoc.Doc(`
			# A day of hourly samples as YAML
			$ materialchart-gen --points 24 --output day.yaml

			# Stream a sample every second into a CSV file
			$ materialchart-gen --format csv --follow --output live.csv &
			$ materialchart live.csv
		`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(opts, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "-", "output file")
	flags.StringVar(&opts.format, "format", "yaml", "output format: yaml or csv")
	flags.StringVar(&opts.mode, "mode", "day", "graph mode written to YAML output")
	flags.IntVarP(&opts.points, "points", "n", 24, "number of samples written up front")
	flags.DurationVar(&opts.step, "step", time.Hour, "time between samples")
	flags.Float64Var(&opts.invalidRate, "invalid-rate", 0.1, "fraction of samples flagged invalid")
	flags.Float64Var(&opts.target, "target", 0, "add a target grid line at this value (YAML only)")
	flags.BoolVar(&opts.interactive, "interactive", true, "enable the crosshair in YAML output")
	flags.BoolVar(&opts.follow, "follow", false, "keep appending samples until interrupted (CSV only)")
	flags.DurationVar(&opts.interval, "interval", time.Second, "wall time between appended samples")
	flags.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "random seed")
	return cmd
}

func generate(opts options, stdout io.Writer) error {
	if opts.follow && opts.format != "csv" {
		return fmt.Errorf("--follow requires --format csv")
	}
	mode, err := chartdata.ParseGraphMode(opts.mode)
	if err != nil {
		return err
	}
	var output io.WriteCloser = nopCloser{stdout}
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed opening output file %q: %w", opts.output, err)
		}
		output = f
	}
	defer func() {
		if err := output.Close(); err != nil {
			log.Error("failed closing output", "error", err)
		}
	}()

	start := time.Now().Add(-time.Duration(opts.points) * opts.step).Truncate(opts.step)
	gen := newGenerator(opts.seed, start, opts.step, opts.invalidRate)
	switch opts.format {
	case "yaml":
		ds := &chartdata.Dataset{
			ShowXAxis:     true,
			ShowYAxis:     true,
			IsInteractive: opts.interactive,
			GraphMode:     mode,
			XLabel:        "time",
			YLabel:        "value",
			Data:          gen.take(opts.points),
		}
		if opts.target != 0 {
			ds.GridLines = append(ds.GridLines, chartdata.GridLine{Name: "target", Value: opts.target})
		}
		return backend.Encode(output, ds)
	case "csv":
		cw, err := newCSVWriter(output, "time", "value")
		if err != nil {
			return fmt.Errorf("failed writing CSV header: %w", err)
		}
		if err := cw.Write(gen.take(opts.points)...); err != nil {
			return fmt.Errorf("failed writing samples: %w", err)
		}
		if opts.follow {
			return follow(cw, gen, opts.interval)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

// follow appends one sample per interval until interrupted.
func follow(cw *csvWriter, gen *generator, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)
	for {
		select {
		case <-sigChan:
			return nil
		case <-ticker.C:
			p := gen.next()
			if err := cw.Write(p); err != nil {
				return fmt.Errorf("failed writing sample: %w", err)
			}
			log.Debug("appended sample", "x", p.X, "y", p.Y)
		}
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
