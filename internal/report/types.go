// Package report aggregates check outcomes and renders them for the user.
package report

import "time"

// RunInfo describes the run before any check executes.
type RunInfo struct {
	ExecutablePath string
	ScratchDir     string
	TotalChecks    int
}

// Totals contains the per-outcome counters.
type Totals struct {
	Passed  int
	Failed  int
	Skipped int
}

// Total returns the grand total across all outcomes.
func (t Totals) Total() int {
	return t.Passed + t.Failed + t.Skipped
}

// Summary contains the final aggregate state of a run.
type Summary struct {
	Totals     Totals
	ScratchDir string
	Elapsed    time.Duration
}

// RunError contains error information for user display.
type RunError struct {
	Title      string
	Message    string
	Suggestion string
}
