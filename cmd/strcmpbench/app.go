package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"strcmpbench/bench"
	"strcmpbench/config"
	"strcmpbench/errutil"
	"strcmpbench/report"
	"strcmpbench/utils"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "strcmpbench",
		Usage:   "benchmark byte-wise string comparison loops over an input-size sweep",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags:   globalFlags(),
		Action:  runAction,
		Commands: []*cli.Command{
			listCommand(),
			sizesCommand(),
		},
	}
}

// globalFlags mirrors what go test -bench offers natively; everything else
// comes from the config file or STRCMPBENCH_* variables.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file",
			EnvVars: []string{"STRCMPBENCH_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"bench"},
			Usage:   "regular expression selecting cases by name",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "runs per case and size",
		},
		&cli.StringFlag{
			Name:  "benchtime",
			Usage: "time per run (1s) or fixed iterations (100x)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: console, json, yaml, csv, prom",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the report to a file instead of stdout",
		},
		&cli.StringFlag{
			Name:  "history",
			Usage: "append one CSV line per result to this file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, warn, error",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "hide the progress bar",
		},
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.NewLoader(config.WithConfigFile(c.String("config"))).Load()
	if err != nil {
		return cfg, err
	}

	if c.IsSet("filter") {
		cfg.Filter = c.String("filter")
	}
	if c.IsSet("count") {
		cfg.Count = c.Int("count")
	}
	if c.IsSet("benchtime") {
		cfg.BenchTime = c.String("benchtime")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("history") {
		cfg.History = c.String("history")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.LogConfig, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "strcmpbench",
		Level:      hclog.LevelFromString(cfg.Level),
		Output:     w,
		JSONFormat: cfg.JSON,
	})
}

func runAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, c.App.ErrWriter)

	sizes, err := cfg.Sizes()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := bench.Options{
		Filter:    cfg.Filter,
		Sizes:     sizes,
		Count:     cfg.Count,
		BenchTime: cfg.BenchTime,
		Logger:    logger.Named("bench"),
	}
	var bar *progressbar.ProgressBar
	if !c.Bool("no-progress") {
		opts.Progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(c.App.ErrWriter),
					progressbar.OptionSetDescription("sweep"),
					progressbar.OptionClearOnFinish())
			}
			_ = bar.Set(done)
		}
	}

	logger.Info("starting sweep", "filter", cfg.Filter, "sizes", len(sizes),
		"min", humanize.IBytes(uint64(sizes[0])), "max", humanize.IBytes(uint64(sizes[len(sizes)-1])),
		"count", cfg.Count)

	started := time.Now()
	results, runErr := bench.Run(ctx, opts)
	if bar != nil {
		_ = bar.Finish()
	}
	switch {
	case runErr == nil:
	case errors.Is(runErr, context.Canceled) && len(results) > 0:
		logger.Warn("sweep interrupted, reporting partial results", "completed", len(results))
	default:
		return runErr
	}

	if diff := bench.Disagreements(results); len(diff) > 0 {
		logger.Warn("comparison variants disagree", "sizes", diff)
	}

	rep := report.New(started, cfg.BenchTime, results)
	if err := writeReport(c.App.Writer, cfg.Output, rep, format); err != nil {
		return err
	}
	if cfg.History != "" {
		if err := utils.AppendHistory(cfg.History, rep.Rows()); err != nil {
			return err
		}
	}

	logger.Info("sweep finished", "run_id", rep.RunID, "results", len(results),
		"elapsed", time.Since(started).Round(time.Millisecond))
	return runErr
}

func writeReport(stdout io.Writer, path string, rep *report.Report, format report.Format) error {
	if path == "" {
		return rep.Write(stdout, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	werr := rep.Write(f, format)
	return errutil.First(werr, f.Close())
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list registered cases",
		ArgsUsage: "[prefix]",
		Action: func(c *cli.Context) error {
			for _, bc := range bench.DefaultRegistry().WithPrefix(c.Args().First()) {
				fmt.Fprintln(c.App.Writer, bc.Name)
			}
			return nil
		},
	}
}

func sizesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sizes",
		Usage: "print the input sizes the sweep will use",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			sizes, err := cfg.Sizes()
			if err != nil {
				return err
			}
			for _, n := range sizes {
				fmt.Fprintf(c.App.Writer, "%d\t%s\n", n, humanize.IBytes(uint64(n)))
			}
			return nil
		},
	}
}
