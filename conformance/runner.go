package conformance

import (
	"fmt"

	"github.com/HarryPehkonen/Computo-sub001"
	"github.com/HarryPehkonen/Computo-sub001/value"
)

// TestResult is the outcome of running a single TestCase.
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance fixtures against the evaluator. It holds no
// state of its own — every Execute call is independent (§4.9) — but is
// kept as a type for symmetry with hosts that want to extend it (e.g. to
// collect timing statistics).
type Runner struct{}

// NewRunner returns a ready-to-use Runner.
func NewRunner() *Runner { return &Runner{} }

// Run executes a single fixture and checks its expectation.
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}

	script, err := value.FromNative(test.Test.Script)
	if err != nil {
		return TestResult{Test: test, Error: fmt.Errorf("script conversion: %w", err)}
	}
	inputs := make([]value.Value, len(test.Test.Inputs))
	for i, raw := range test.Test.Inputs {
		v, err := value.FromNative(raw)
		if err != nil {
			return TestResult{Test: test, Error: fmt.Errorf("input %d conversion: %w", i, err)}
		}
		inputs[i] = v
	}

	opts := computo.DefaultOptions()
	if test.Test.Options != nil {
		if test.Test.Options.ArrayKey != "" {
			opts.ArrayKey = test.Test.Options.ArrayKey
		}
		opts.TemplateOptions.EnableInterpolation = test.Test.Options.EnableInterpolation
	}

	result, err := computo.Execute(script, inputs, opts)
	passed, checkErr := r.checkExpectation(test.Test, result, err)
	return TestResult{Test: test, Passed: passed, Error: checkErr}
}

// RunAll executes every fixture in tests.
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, t := range tests {
		results[i] = r.Run(t)
	}
	return results
}

func (r *Runner) checkExpectation(test TestCase, result value.Value, runErr error) (bool, error) {
	expect := test.Expect

	if expect.ErrorKind != "" {
		if runErr == nil {
			return false, fmt.Errorf("expected error kind %s, got value %v", expect.ErrorKind, result)
		}
		cerr, ok := runErr.(*computo.Error)
		if !ok {
			return false, fmt.Errorf("expected *computo.Error, got %T (%v)", runErr, runErr)
		}
		if cerr.Kind.String() != expect.ErrorKind {
			return false, fmt.Errorf("expected error kind %s, got %s", expect.ErrorKind, cerr.Kind)
		}
		return true, nil
	}

	if runErr != nil {
		return false, fmt.Errorf("unexpected error: %w", runErr)
	}

	if expect.Value != nil {
		expected, err := value.FromNative(expect.Value)
		if err != nil {
			return false, fmt.Errorf("expected value conversion: %w", err)
		}
		if !result.Equal(expected) {
			return false, fmt.Errorf("expected %s, got %s", expected.String(), result.String())
		}
		return true, nil
	}

	return false, fmt.Errorf("fixture %q specifies no expectation", test.Name)
}

// SummaryStats tallies TestResults.
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats summarizes results.
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, res := range results {
		switch {
		case res.Skipped:
			stats.Skipped++
		case res.Passed:
			stats.Passed++
		default:
			stats.Failed++
		}
	}
	return stats
}

// FormatStats renders stats as a one-line human-readable summary.
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)", stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}
