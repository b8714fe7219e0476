// Package config loads and validates the benchmark run configuration from
// process environment variables. The configuration is built exactly once at
// startup and is read-only afterwards; downstream consumers share the value
// without locking.
package config

import (
	"fmt"
	"os"

	"github.com/pradeep-ramanna/rccl-developer/internal/log"
	"github.com/pradeep-ramanna/rccl-developer/internal/pattern"
)

// Defaults for the bounded integer options. Mode flags and BYTE_OFFSET
// default to 0.
const (
	DefaultNumWarmups     = 3
	DefaultNumIterations  = 10
	DefaultSamplingFactor = 1
	DefaultNumCPUPerLink  = 4
)

// Config holds the validated run configuration. Mode flags keep their
// historical 0/1 integer representation; any non-zero value enables the
// behavior.
type Config struct {
	UseHipCall     int // use native copy/memset calls instead of custom kernels
	UseMemset      int // perform a memset instead of a copy
	UseSingleSync  int // synchronize once after all iterations, not per iteration
	UseInteractive int // pause for user input before the transfer loop
	UseSleep       int // sleep 100ms after each synchronization
	CombineTiming  int // combine timing with kernel launch
	ShowAddr       int // print memory addresses for each link
	OutputToCSV    int // emit CSV instead of console output

	ByteOffset     int // byte offset for memory allocations, multiple of 4
	NumWarmups     int // untimed warmup iterations, >= 0
	NumIterations  int // timed iterations, > 0
	SamplingFactor int // extra samples between powers of two, >= 1
	NumCPUPerLink  int // CPU threads per CPU-executed copy link, >= 1

	// FillPattern is the decoded fill pattern. Its length is always a
	// multiple of pattern.ElementSize; empty means "use the pseudo-random
	// default fill".
	FillPattern []byte

	patternText string
	patternSet  bool
}

// PatternText returns the raw FILL_PATTERN string, or "" when unset.
func (c Config) PatternText() string {
	return c.patternText
}

// PatternSet reports whether FILL_PATTERN was present in the environment.
func (c Config) PatternSet() bool {
	return c.patternSet
}

// Load reads the environment and returns a validated Config. It fails on the
// first violation: FILL_PATTERN format errors surface as wrapped
// pattern.ErrOddLength/pattern.ErrDigit, range violations as
// *ValidationError. No partial Config is returned on failure.
func Load() (Config, error) {
	cfg := Config{
		UseHipCall:     envInt("USE_HIP_CALL", 0),
		UseMemset:      envInt("USE_MEMSET", 0),
		UseSingleSync:  envInt("USE_SINGLE_SYNC", 0),
		UseInteractive: envInt("USE_INTERACTIVE", 0),
		UseSleep:       envInt("USE_SLEEP", 0),
		CombineTiming:  envInt("COMBINE_TIMING", 0),
		ShowAddr:       envInt("SHOW_ADDR", 0),
		OutputToCSV:    envInt("OUTPUT_TO_CSV", 0),
		ByteOffset:     envInt("BYTE_OFFSET", 0),
		NumWarmups:     envInt("NUM_WARMUPS", DefaultNumWarmups),
		NumIterations:  envInt("NUM_ITERATIONS", DefaultNumIterations),
		SamplingFactor: envInt("SAMPLING_FACTOR", DefaultSamplingFactor),
		NumCPUPerLink:  envInt("NUM_CPU_PER_LINK", DefaultNumCPUPerLink),
	}

	if raw, ok := os.LookupEnv("FILL_PATTERN"); ok {
		buf, err := pattern.Decode(raw)
		if err != nil {
			return Config{}, fmt.Errorf("FILL_PATTERN %w", err)
		}
		cfg.FillPattern = buf
		cfg.patternText = raw
		cfg.patternSet = true
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	logger := log.WithComponent("config")
	logger.Debug().
		Int("byte_offset", cfg.ByteOffset).
		Int("num_warmups", cfg.NumWarmups).
		Int("num_iterations", cfg.NumIterations).
		Int("sampling_factor", cfg.SamplingFactor).
		Int("num_cpu_per_link", cfg.NumCPUPerLink).
		Int("fill_pattern_bytes", len(cfg.FillPattern)).
		Msg("configuration loaded")
	return cfg, nil
}

// validate checks the range rules in their historical order and stops at the
// first violation.
func (c Config) validate() error {
	switch {
	case c.ByteOffset%pattern.ElementSize != 0:
		return &ValidationError{
			Var:   "BYTE_OFFSET",
			Rule:  fmt.Sprintf("must be set to a multiple of %d", pattern.ElementSize),
			Value: c.ByteOffset,
		}
	case c.NumWarmups < 0:
		return &ValidationError{
			Var:   "NUM_WARMUPS",
			Rule:  "must be set to a non-negative number",
			Value: c.NumWarmups,
		}
	case c.NumIterations <= 0:
		return &ValidationError{
			Var:   "NUM_ITERATIONS",
			Rule:  "must be set to a positive number",
			Value: c.NumIterations,
		}
	case c.SamplingFactor < 1:
		return &ValidationError{
			Var:   "SAMPLING_FACTOR",
			Rule:  "must be greater or equal to 1",
			Value: c.SamplingFactor,
		}
	case c.NumCPUPerLink < 1:
		return &ValidationError{
			Var:   "NUM_CPU_PER_LINK",
			Rule:  "must be greater or equal to 1",
			Value: c.NumCPUPerLink,
		}
	}
	return nil
}
