package solver

import (
	"fmt"
	"runtime"
)

// Strategy selects how guesses are scored.
type Strategy string

const (
	// Auto scores exhaustively at or below the threshold, heuristically above it.
	Auto       Strategy = "auto"
	Exhaustive Strategy = "exhaustive"
	Heuristic  Strategy = "heuristic"
	Sampled    Strategy = "sampled"
	// Opening is reported for the configured first guess; it is not selectable.
	Opening Strategy = "opening"
)

func (s Strategy) IsValid() bool {
	switch s {
	case Auto, Exhaustive, Heuristic, Sampled:
		return true
	}
	return false
}

// Reduction folds the per-answer remaining counts of one guess into its score.
type Reduction string

const (
	// Mean is the expected number of remaining candidates.
	Mean Reduction = "mean"
	// Max is the worst-case number of remaining candidates.
	Max Reduction = "max"
)

func (r Reduction) IsValid() bool { return r == Mean || r == Max }

// Config controls candidate eligibility and scoring.
type Config struct {
	Threshold    int       `yaml:"threshold" env:"PAIRROT_THRESHOLD" env-default:"500"`
	Strategy     Strategy  `yaml:"strategy" env:"PAIRROT_STRATEGY" env-default:"auto"`
	Reduction    Reduction `yaml:"reduction" env:"PAIRROT_REDUCTION" env-default:"mean"`
	Seed         uint64    `yaml:"seed" env:"PAIRROT_SEED" env-default:"42"`
	Workers      int       `yaml:"workers" env:"PAIRROT_WORKERS" env-default:"0"`
	IncludeMaybe bool      `yaml:"include_maybe" env:"PAIRROT_INCLUDE_MAYBE"`
	FirstGuess   string    `yaml:"first_guess" env:"PAIRROT_FIRST_GUESS"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Threshold:    500,
		Strategy:     Auto,
		Reduction:    Mean,
		Seed:         42,
		IncludeMaybe: true,
	}
}

// Validate checks enum fields and ranges.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must be >= 0, got %d", c.Threshold)
	}
	if !c.Strategy.IsValid() {
		return fmt.Errorf("unknown strategy %q (use auto, exhaustive, heuristic, sampled)", c.Strategy)
	}
	if !c.Reduction.IsValid() {
		return fmt.Errorf("unknown reduction %q (use mean, max)", c.Reduction)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
