package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/katalvlaran/parsort/config"
	"github.com/katalvlaran/parsort/dataset"
	"github.com/katalvlaran/parsort/forkjoin"
	"github.com/katalvlaran/parsort/harness"
	"github.com/katalvlaran/parsort/quicksort"
	"github.com/katalvlaran/parsort/sequence"
)

var (
	sizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "number of random values to generate",
		Value: 1_000_000,
	}
	outputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "destination CSV file",
		Value: "numbers.csv",
	}
	inputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "existing dataset CSV to sort (generated fresh when empty)",
	}
	engineFlag = cli.StringFlag{
		Name:  "engine",
		Usage: "engine to sort with: sequential, bounded, or unbounded",
		Value: "bounded",
	}
)

func generateCommand() cli.Command {
	return cli.Command{
		Name:   "generate",
		Usage:  "generate a random dataset and persist it as CSV",
		Flags:  []cli.Flag{sizeFlag, outputFlag},
		Action: runGenerate,
	}
}

func sortCommand() cli.Command {
	return cli.Command{
		Name:   "sort",
		Usage:  "sort a dataset with one engine and report per-phase timings",
		Flags:  []cli.Flag{sizeFlag, inputFlag, outputFlag, engineFlag},
		Action: runSort,
	}
}

func runGenerate(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	gen, err := dataset.NewGenerator(resolveSeed(cfg.Seed), dataset.WithMaxValue(cfg.SortMaxValue))
	if err != nil {
		return err
	}

	size := ctx.Int(sizeFlag.Name)
	start := time.Now()
	seq, err := gen.Uniform(size)
	if err != nil {
		return err
	}
	generated := time.Since(start)

	path := ctx.String(outputFlag.Name)
	start = time.Now()
	if err = dataset.WriteFile(path, seq); err != nil {
		return err
	}
	written := time.Since(start)

	logger.Info("dataset generated", "size", size, "path", path,
		"generate", generated, "write", written, "total", generated+written)

	return nil
}

// runSort mirrors the standalone sorter pipeline: obtain a dataset
// (load or generate), sort it with the selected engine, persist the
// sorted record, and report each phase's wall time.
func runSort(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	total := time.Now()

	// 1) Obtain the dataset.
	var (
		seq      *sequence.Sequence[int64]
		obtained time.Duration
	)
	if path := ctx.String(inputFlag.Name); path != "" {
		start := time.Now()
		if seq, err = dataset.ReadFile(path); err != nil {
			return err
		}
		obtained = time.Since(start)
		logger.Info("dataset loaded", "path", path, "size", seq.Len(), "elapsed", obtained)
	} else {
		gen, genErr := dataset.NewGenerator(resolveSeed(cfg.Seed), dataset.WithMaxValue(cfg.SortMaxValue))
		if genErr != nil {
			return genErr
		}
		start := time.Now()
		if seq, err = gen.Uniform(ctx.Int(sizeFlag.Name)); err != nil {
			return err
		}
		obtained = time.Since(start)
		logger.Info("dataset generated", "size", seq.Len(), "elapsed", obtained)
	}

	engine, err := selectEngine(ctx.String(engineFlag.Name), cfg, seq.Len())
	if err != nil {
		return err
	}

	// 2) Sort in place, timed monotonically.
	start := time.Now()
	if err = engine.Sort(seq); err != nil {
		return err
	}
	sorted := time.Since(start)

	// 3) Persist the sorted record.
	path := ctx.String(outputFlag.Name)
	start = time.Now()
	if err = dataset.WriteFile(path, seq); err != nil {
		return err
	}
	written := time.Since(start)

	perSecond := float64(seq.Len()) / sorted.Seconds()
	logger.Info("sorted", "engine", engine.Name(), "size", seq.Len(), "path", path,
		"sort", sorted, "write", written, "total", time.Since(total),
		"elements_per_s", fmt.Sprintf("%.0f", perSecond))

	return nil
}

// selectEngine builds the named engine, sizing the bounded pool to the
// dataset via the worker heuristic.
func selectEngine(name string, cfg config.Config, size int) (harness.Engine, error) {
	switch name {
	case "sequential":
		return quicksort.NewSequential[int64](), nil
	case "bounded":
		workers := cfg.Workers
		if workers == 0 {
			workers = forkjoin.WorkersForSize(size)
		}
		pool, err := forkjoin.NewPool(workers)
		if err != nil {
			return nil, err
		}

		return quicksort.NewBounded[int64](pool,
			quicksort.WithSizeThreshold(cfg.SizeThreshold),
			quicksort.WithDepthLimit(cfg.DepthLimit))
	case "unbounded":
		pool, err := forkjoin.NewPool(forkjoin.Unlimited)
		if err != nil {
			return nil, err
		}

		return quicksort.NewUnbounded[int64](pool,
			quicksort.WithSizeThreshold(cfg.SizeThreshold))
	default:
		return nil, fmt.Errorf("unknown engine %q (want sequential, bounded, or unbounded)", name)
	}
}
