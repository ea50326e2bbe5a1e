// Command pd0diag decodes PD0 files and prints what it found: file
// metadata, instrument configuration, read diagnostics, sensor summaries
// and, when configured, backscatter, masks and beam geometry.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-pd0/internal/config"
	"github.com/robert-malhotra/go-pd0/internal/logging"
	"github.com/robert-malhotra/go-pd0/metrics"
	"github.com/robert-malhotra/go-pd0/pd0"
)

type flags struct {
	config   string
	start    int
	end      int
	workers  int
	textfile string
	write    string
	pt3      string
	geometry bool
	pose     string
	level    string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "pd0diag [flags] file.000 [file.000 ...]",
		Short: "Decode and summarise Teledyne RDI PD0 files",
		Long: `pd0diag reads one or more PD0 ensemble files and reports what was decoded.

Settings come from built-in defaults, then the YAML file given with
--config, then PD0_ environment variables, then command line flags.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			if err := f.apply(cmd, cfg); err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	fl.IntVar(&f.start, "start", 0, "first ensemble to read, counted from 1")
	fl.IntVar(&f.end, "end", 0, "last ensemble to read (0 reads to the end)")
	fl.IntVarP(&f.workers, "workers", "w", 0, "files opened concurrently")
	fl.StringVar(&f.textfile, "metrics-textfile", "", "write decode metrics to this file in Prometheus text format")
	fl.StringVarP(&f.write, "write", "o", "", "re-encode the loaded ensembles to this file (single input only)")
	fl.StringVar(&f.pt3, "pt3", "", "PT3 report with the RSSI calibration; enables backscatter")
	fl.BoolVarP(&f.geometry, "geometry", "g", false, "compute beam geometry for a platform fixed at the origin")
	fl.StringVar(&f.pose, "pose", "", "CSV platform track (time,x,y,z,pitch,roll,heading); implies --geometry")
	fl.StringVar(&f.level, "log-level", "", "log level (debug, info, warn, error)")
	return cmd
}

// apply copies explicitly set flags over cfg.
func (f flags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("start") {
		cfg.Decode.Start = f.start
	}
	if fl.Changed("end") {
		cfg.Decode.End = f.end
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("metrics-textfile") {
		cfg.MetricsTextfile = f.textfile
	}
	if fl.Changed("pt3") {
		cfg.Backscatter.Enabled = true
		cfg.Backscatter.PT3 = f.pt3
	}
	if fl.Changed("log-level") {
		cfg.Logging.Level = f.level
	}
	return cfg.Validate()
}

func run(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, f flags, paths []string) error {
	if f.write != "" && len(paths) != 1 {
		return fmt.Errorf("--write needs exactly one input file, got %d", len(paths))
	}

	runID := logging.NewRunID()
	ctx = logging.WithRunID(ctx, runID)
	log := logging.New(stderr, cfg.Logging)
	log.InfoContext(ctx, "starting", "files", len(paths), "workers", cfg.Workers)

	m := metrics.New()
	opts := []pd0.Option{
		pd0.WithoutLoad(),
		pd0.WithTimezone(cfg.Decode.Timezone()),
		pd0.WithMagneticDeviation(cfg.Decode.MagneticDeviation),
		pd0.WithSearch(cfg.Decode.Window, cfg.Decode.MaxIter),
		pd0.WithLogger(log.With("run_id", runID)),
		pd0.WithMetrics(m),
	}
	datasets, err := pd0.OpenAll(ctx, paths, cfg.Workers, opts...)
	if err != nil {
		return err
	}

	for _, ds := range datasets {
		if err := process(ctx, stdout, log, cfg, f, ds); err != nil {
			return fmt.Errorf("%s: %w", ds.Path(), err)
		}
	}

	if cfg.MetricsTextfile != "" {
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return err
		}
		log.InfoContext(ctx, "metrics written", "path", cfg.MetricsTextfile)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("pd0diag failed", "error", err)
		os.Exit(1)
	}
}
