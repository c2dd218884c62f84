package report

import "github.com/five82/ffcheck/internal/check"

// Tally accumulates pass/fail/skip counts as checks complete. Counters are
// monotonic: recording an outcome increments exactly one of them and nothing
// ever decrements.
type Tally struct {
	passed  int
	failed  int
	skipped int
}

// Record accounts for one completed check.
func (t *Tally) Record(result check.Result) {
	switch result.Outcome {
	case check.OutcomePass:
		t.passed++
	case check.OutcomeFail:
		t.failed++
	case check.OutcomeSkip:
		t.skipped++
	}
}

// Totals returns a read-only snapshot of the counters. It may be called at
// any time during the run.
func (t *Tally) Totals() Totals {
	return Totals{
		Passed:  t.passed,
		Failed:  t.failed,
		Skipped: t.skipped,
	}
}

// ExitCode returns the process exit code for the current aggregate state:
// zero when no check failed. Skips never affect the exit code.
func (t *Tally) ExitCode() int {
	if t.failed == 0 {
		return 0
	}
	return 1
}

// Recorder couples a Tally with a Reporter so each completed check is
// counted and rendered in one step. It implements check.Observer.
type Recorder struct {
	Tally    *Tally
	Reporter Reporter
}

// CheckStarted forwards the event to the reporter.
func (r *Recorder) CheckStarted(name string) {
	r.Reporter.CheckStarted(name)
}

// CheckComplete records the outcome, then renders it.
func (r *Recorder) CheckComplete(result check.Result) {
	r.Tally.Record(result)
	r.Reporter.CheckComplete(result)
}
