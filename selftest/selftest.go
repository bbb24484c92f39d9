// Package selftest verifies the lorentz package against mathematical
// invariants using randomized trials.
//
// Each Case draws fresh vectors and scalars from a shared proptest.Generator,
// runs a fixed number of trials and fails at the first trial that breaks its
// invariant. Run executes cases in order and aggregates the outcome into a
// Report.
package selftest

import (
	"time"

	"github.com/fourvec/fourvec/proptest"
)

// DefaultSeed seeds the generator when no seed is configured.
const DefaultSeed uint32 = 0xDEADBEEF

// Options tunes the checks returned by Cases.
type Options struct {
	// Trials is the number of randomized trials per check.
	Trials int

	// Tolerance is the absolute tolerance for arithmetic comparisons.
	Tolerance float64

	// RenderTolerance is the absolute tolerance for the text round trip.
	RenderTolerance float64
}

// DefaultOptions returns the options used by the fourvec command.
func DefaultOptions() Options {
	return Options{
		Trials:          proptest.DefaultTrials,
		Tolerance:       1e-8,
		RenderTolerance: 1.0,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Trials <= 0 {
		o.Trials = d.Trials
	}
	if o.Tolerance <= 0 {
		o.Tolerance = d.Tolerance
	}
	if o.RenderTolerance <= 0 {
		o.RenderTolerance = d.RenderTolerance
	}
	return o
}

// Case is a named check. Check runs all of its trials against g and reports
// whether every one of them passed.
type Case struct {
	Name  string
	Check func(g *proptest.Generator) bool
}

// Result is the outcome of one case.
type Result struct {
	Name     string
	Passed   bool
	Duration time.Duration
}

// Report aggregates the results of a run.
type Report struct {
	Seed      uint32
	Trials    int
	StartedAt time.Time
	Results   []Result
	Passed    int
	Failed    int
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Observer is called after each case completes. index is 1-based.
type Observer func(index, total int, res Result)

// Run executes cases in order against g. obs may be nil.
func Run(g *proptest.Generator, trials int, cases []Case, obs Observer) Report {
	rep := Report{
		Seed:      g.Seed(),
		Trials:    trials,
		StartedAt: time.Now(),
		Results:   make([]Result, 0, len(cases)),
	}

	for i, c := range cases {
		start := time.Now()
		res := Result{
			Name:   c.Name,
			Passed: c.Check(g),
		}
		res.Duration = time.Since(start)

		if res.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
		rep.Results = append(rep.Results, res)

		if obs != nil {
			obs(i+1, len(cases), res)
		}
	}

	return rep
}
