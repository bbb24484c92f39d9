package proptest

import (
	"math"
	"os"
	"strconv"
	"testing"
)

// DefaultTrials is the number of trials a check runs unless configured.
const DefaultTrials = 16

// Config controls property test behavior.
type Config struct {
	// NumTrials is the number of test iterations. Default: 16.
	NumTrials int

	// Seed is the random seed for reproducibility.
	// Set to 0 for a time-based seed.
	Seed uint32

	// Verbose enables additional logging.
	Verbose bool
}

// DefaultConfig returns sensible defaults for property testing.
func DefaultConfig() Config {
	return Config{
		NumTrials: DefaultTrials,
		Seed:      0, // Will be set from time or environment
	}
}

// EffectiveSeed returns the seed to use, checking the PROPTEST_SEED
// environment variable first. The variable accepts decimal or 0x-prefixed hex.
func EffectiveSeed(cfg Config) uint32 {
	if envSeed := os.Getenv("PROPTEST_SEED"); envSeed != "" {
		if seed, err := strconv.ParseUint(envSeed, 0, 32); err == nil {
			return uint32(seed)
		}
	}
	return cfg.Seed
}

// Trials runs prop n times with g and stops at the first failing trial.
// It returns the 1-based number of the failing trial, or 0 and true if every
// trial passed.
func Trials(g *Generator, n int, prop func(g *Generator) bool) (int, bool) {
	for i := 0; i < n; i++ {
		if !prop(g) {
			return i + 1, false
		}
	}
	return 0, true
}

// Check runs a property multiple times with different random inputs.
// On failure, it logs the seed for reproducibility.
//
// Example:
//
//	proptest.Check(t, "norm non-negative", proptest.Config{NumTrials: 50}, func(g *proptest.Generator) bool {
//	    return g.Vector(5).Norm() >= 0
//	})
func Check(t *testing.T, name string, cfg Config, prop func(g *Generator) bool) {
	t.Helper()

	if cfg.NumTrials <= 0 {
		cfg.NumTrials = DefaultTrials
	}

	g := New(EffectiveSeed(cfg))
	seed := g.Seed()

	if cfg.Verbose {
		t.Logf("proptest %q: running %d trials with seed %d", name, cfg.NumTrials, seed)
	}

	if trial, ok := Trials(g, cfg.NumTrials, prop); !ok {
		t.Errorf("proptest %q failed on trial %d (seed=%d, use PROPTEST_SEED=%d to reproduce)",
			name, trial, seed, seed)
		return
	}

	if cfg.Verbose {
		t.Logf("proptest %q: passed %d trials", name, cfg.NumTrials)
	}
}

// QuickCheck runs a property with default configuration.
func QuickCheck(t *testing.T, name string, prop func(g *Generator) bool) {
	t.Helper()
	Check(t, name, DefaultConfig(), prop)
}

// =============================================================================
// Assertion Helpers
// =============================================================================

// ApproxEqual reports whether |a - b| <= tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// SameSign reports whether a and b are both negative or both non-negative.
func SameSign(a, b float64) bool {
	return math.Signbit(a) == math.Signbit(b)
}
