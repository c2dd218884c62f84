package report

import (
	"github.com/five82/ffcheck/internal/check"
	"github.com/five82/ffcheck/internal/logging"
	"github.com/five82/ffcheck/internal/util"
)

// LogReporter mirrors run events into the run log file. All methods are safe
// on a nil logger (log file creation disabled).
type LogReporter struct {
	log *logging.Logger
}

// NewLogReporter creates a reporter backed by the run log.
func NewLogReporter(log *logging.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) RunStarted(info RunInfo) {
	r.log.Info("validating %s (%d checks, scratch dir %s)",
		info.ExecutablePath, info.TotalChecks, info.ScratchDir)
}

func (r *LogReporter) CheckStarted(name string) {
	r.log.Debug("running check: %s", name)
}

func (r *LogReporter) CheckComplete(result check.Result) {
	switch result.Outcome {
	case check.OutcomePass:
		r.log.Info("PASS %s %s", result.Name, result.Detail)
	case check.OutcomeFail:
		r.log.Error("FAIL %s %s", result.Name, result.Detail)
	case check.OutcomeSkip:
		r.log.Warn("SKIP %s (%s)", result.Name, result.SkipReason)
	}
}

func (r *LogReporter) RunComplete(summary Summary) {
	totals := summary.Totals
	r.log.Info("run complete: %d passed, %d failed, %d skipped (%d total) in %s",
		totals.Passed, totals.Failed, totals.Skipped, totals.Total(),
		util.FormatDurationFromSecs(int64(summary.Elapsed.Seconds())))
}

func (r *LogReporter) Warning(message string) {
	r.log.Warn("%s", message)
}

func (r *LogReporter) Error(err RunError) {
	r.log.Error("%s: %s", err.Title, err.Message)
}
