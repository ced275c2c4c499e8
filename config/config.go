package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Default tunables, mirroring the stock benchmark setup.
const (
	DefaultRuns          = 5
	DefaultSizeThreshold = 1000
	DefaultDepthLimit    = 3
	DefaultMaxValue      = 1_000_000
	DefaultSortMaxValue  = 1000
	DefaultReportFile    = "performance_report.csv"
	DefaultLogLevel      = "info"
)

// DefaultSizes returns the stock benchmark input sizes.
func DefaultSizes() []int {
	return []int{10_000, 100_000, 1_000_000, 10_000_000}
}

// Sentinel errors for loading and validation.
var (
	// ErrUnknownKey is returned by Load when the file carries a key the
	// Config struct does not declare.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidConfig is returned by Validate for out-of-range values.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config holds every knob of a benchmark or sorter-pipeline run.
type Config struct {
	// Sizes are the benchmark input lengths, benched in order.
	Sizes []int `toml:"sizes"`

	// Runs is the trial count per size.
	Runs int `toml:"runs"`

	// SizeThreshold and DepthLimit tune the parallel engines.
	SizeThreshold int `toml:"size_threshold"`
	DepthLimit    int `toml:"depth_limit"`

	// MaxValue bounds dataset values for the benchmark; SortMaxValue
	// bounds them for the standalone sorter pipeline.
	MaxValue     int64 `toml:"max_value"`
	SortMaxValue int64 `toml:"sort_max_value"`

	// Seed feeds dataset generation; 0 means derive from the wall clock
	// once at startup.
	Seed int64 `toml:"seed"`

	// Workers caps the bounded engine's pool; 0 means derive from the
	// dataset size and GOMAXPROCS.
	Workers int `toml:"workers"`

	// ReportFile receives the benchmark CSV.
	ReportFile string `toml:"report_file"`

	// LogLevel names the CLI logger's threshold.
	LogLevel string `toml:"log_level"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Sizes:         DefaultSizes(),
		Runs:          DefaultRuns,
		SizeThreshold: DefaultSizeThreshold,
		DepthLimit:    DefaultDepthLimit,
		MaxValue:      DefaultMaxValue,
		SortMaxValue:  DefaultSortMaxValue,
		Seed:          0,
		Workers:       0,
		ReportFile:    DefaultReportFile,
		LogLevel:      DefaultLogLevel,
	}
}

// Load decodes the TOML file at path over Default and validates the
// result.
//
// Steps:
//  1. Start from Default so the file may set only what it changes.
//  2. Strict-decode: any key Config does not declare is ErrUnknownKey.
//  3. Validate the merged result.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %q in %s", ErrUnknownKey, undecoded[0].String(), path)
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every knob's range and returns ErrInvalidConfig on the
// first violation.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: sizes must not be empty", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, n)
		}
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be ≥ 1, got %d", ErrInvalidConfig, c.Runs)
	}
	if c.SizeThreshold < 1 {
		return fmt.Errorf("%w: size_threshold must be ≥ 1, got %d", ErrInvalidConfig, c.SizeThreshold)
	}
	if c.DepthLimit < 0 {
		return fmt.Errorf("%w: depth_limit must be ≥ 0, got %d", ErrInvalidConfig, c.DepthLimit)
	}
	if c.MaxValue < 1 {
		return fmt.Errorf("%w: max_value must be ≥ 1, got %d", ErrInvalidConfig, c.MaxValue)
	}
	if c.SortMaxValue < 1 {
		return fmt.Errorf("%w: sort_max_value must be ≥ 1, got %d", ErrInvalidConfig, c.SortMaxValue)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be ≥ 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.ReportFile == "" {
		return fmt.Errorf("%w: report_file must not be empty", ErrInvalidConfig)
	}

	return nil
}
