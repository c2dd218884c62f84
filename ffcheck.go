// Package ffcheck provides a Go library for validating freshly built
// FFmpeg-style binaries.
//
// ffcheck probes the binary's advertised capabilities, optionally exercises
// it with a real transcode of a synthesized sample, and inspects its
// dynamic-library linkage. Checks whose preconditions are unmet in the host
// environment are skipped rather than failed.
//
// Basic usage:
//
//	harness, err := ffcheck.New("./ffmpeg", "./ffcheck-out")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := harness.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("passed=%d failed=%d skipped=%d usable=%v\n",
//	    summary.Passed, summary.Failed, summary.Skipped, summary.Usable)
package ffcheck

import (
	"context"
	"time"

	"github.com/five82/ffcheck/internal/check"
	"github.com/five82/ffcheck/internal/config"
	"github.com/five82/ffcheck/internal/errors"
	"github.com/five82/ffcheck/internal/ffmpeg"
	"github.com/five82/ffcheck/internal/report"
	"github.com/five82/ffcheck/internal/target"
)

// CheckResult is the recorded outcome of a single check.
type CheckResult struct {
	Name       string
	Kind       string
	Outcome    string
	Detail     string
	SkipReason string
	LogPath    string
}

// Summary contains the aggregate result of one validation run.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
	Total   int
	Usable  bool
	Results []CheckResult
}

// Option configures the harness.
type Option func(*config.Config)

// WithTimeout bounds each child-process invocation. Zero (the default)
// preserves the original behavior of waiting indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *config.Config) {
		c.Timeout = d
	}
}

// Harness is the main entry point for build validation.
type Harness struct {
	cfg *config.Config
}

// New creates a new Harness for the given executable and scratch directory.
func New(executablePath, scratchDir string, opts ...Option) (*Harness, error) {
	cfg := config.NewConfig(executablePath, scratchDir)
	cfg.NoLog = true // library callers own their logging

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("invalid configuration", err)
	}

	return &Harness{cfg: cfg}, nil
}

// Run executes the full check catalogue and returns the aggregate summary.
// It returns an error only for the fatal case of an unresolvable executable;
// individual check failures are reported through the Summary.
func (h *Harness) Run(ctx context.Context) (*Summary, error) {
	t, err := target.Resolve(h.cfg.ExecutablePath, h.cfg.ScratchDir)
	if err != nil {
		return nil, err
	}

	tally := &report.Tally{}
	recorder := &report.Recorder{Tally: tally, Reporter: report.NullReporter{}}

	runner := check.NewRunner(t, ffmpeg.ExecInvoker{Timeout: h.cfg.Timeout}, nil)
	results := runner.Run(ctx, recorder)

	totals := tally.Totals()
	summary := &Summary{
		Passed:  totals.Passed,
		Failed:  totals.Failed,
		Skipped: totals.Skipped,
		Total:   totals.Total(),
		Usable:  totals.Failed == 0,
		Results: make([]CheckResult, 0, len(results)),
	}
	for _, r := range results {
		summary.Results = append(summary.Results, CheckResult{
			Name:       r.Name,
			Kind:       r.Kind.String(),
			Outcome:    r.Outcome.String(),
			Detail:     r.Detail,
			SkipReason: r.SkipReason,
			LogPath:    r.LogPath,
		})
	}
	return summary, nil
}
