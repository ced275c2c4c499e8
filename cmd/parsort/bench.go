package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/katalvlaran/parsort/config"
	"github.com/katalvlaran/parsort/dataset"
	"github.com/katalvlaran/parsort/forkjoin"
	"github.com/katalvlaran/parsort/harness"
	"github.com/katalvlaran/parsort/hostinfo"
	"github.com/katalvlaran/parsort/quicksort"
	"github.com/katalvlaran/parsort/report"
)

var reportFlag = cli.StringFlag{
	Name:  "report",
	Usage: "benchmark CSV destination (overrides the configured path)",
}

func benchCommand() cli.Command {
	return cli.Command{
		Name:   "bench",
		Usage:  "benchmark the engine family across the configured input sizes",
		Flags:  []cli.Flag{reportFlag},
		Action: runBench,
	}
}

// runBench drives the full benchmark: host context, engines, harness run,
// stdout table, CSV file.
func runBench(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger.Info("host", "params", hostinfo.Collect())

	gen, err := dataset.NewGenerator(resolveSeed(cfg.Seed), dataset.WithMaxValue(cfg.MaxValue))
	if err != nil {
		return err
	}

	workers := boundedWorkers(cfg)
	logger.Info("bounded pool sized", "workers", workers,
		"size_threshold", cfg.SizeThreshold, "depth_limit", cfg.DepthLimit)

	baseline, variants, err := buildEngines(cfg, workers)
	if err != nil {
		return err
	}

	h, err := harness.New(gen, baseline, variants,
		harness.WithOnTrial(func(tr harness.TrialResult) {
			logger.Debug("trial", "engine", tr.Engine, "size", tr.Size,
				"run", tr.Run, "elapsed", tr.Elapsed)
		}),
		harness.WithOnRow(func(row harness.Row) {
			logger.Info("size done", "size", row.Size,
				"baseline_s", row.BaselineSeconds)
		}),
	)
	if err != nil {
		return err
	}

	rows, err := h.Run(cfg.Sizes, cfg.Runs)
	if err != nil {
		return err
	}

	if err = report.WriteTable(os.Stdout, rows); err != nil {
		return err
	}

	path := cfg.ReportFile
	if override := ctx.String(reportFlag.Name); override != "" {
		path = override
	}
	if err = report.WriteCSVFile(path, rows); err != nil {
		return err
	}
	logger.Info("report written", "path", path)

	return nil
}

// boundedWorkers picks the bounded engine's pool capacity: the configured
// count, or the size heuristic over the largest benchmarked input.
func boundedWorkers(cfg config.Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}

	largest := 0
	for _, n := range cfg.Sizes {
		if n > largest {
			largest = n
		}
	}

	return forkjoin.WorkersForSize(largest)
}

// buildEngines constructs the stock family: the sequential baseline, the
// bounded engine over a capped pool, and the unbounded engine over an
// uncapped one.
func buildEngines(cfg config.Config, workers int) (harness.Engine, []harness.Engine, error) {
	boundedPool, err := forkjoin.NewPool(workers)
	if err != nil {
		return nil, nil, err
	}
	unboundedPool, err := forkjoin.NewPool(forkjoin.Unlimited)
	if err != nil {
		return nil, nil, err
	}

	opts := []quicksort.Option{
		quicksort.WithSizeThreshold(cfg.SizeThreshold),
		quicksort.WithOnFork(func(depth int) {
			logger.Debug("fork", "depth", depth)
		}),
	}

	bounded, err := quicksort.NewBounded[int64](boundedPool,
		append(opts, quicksort.WithDepthLimit(cfg.DepthLimit))...)
	if err != nil {
		return nil, nil, err
	}
	unbounded, err := quicksort.NewUnbounded[int64](unboundedPool, opts...)
	if err != nil {
		return nil, nil, err
	}

	return quicksort.NewSequential[int64](), []harness.Engine{bounded, unbounded}, nil
}
