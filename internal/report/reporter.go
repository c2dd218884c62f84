package report

import "github.com/five82/ffcheck/internal/check"

// Reporter defines the interface for run progress reporting.
type Reporter interface {
	RunStarted(info RunInfo)
	CheckStarted(name string)
	CheckComplete(result check.Result)
	RunComplete(summary Summary)
	Warning(message string)
	Error(err RunError)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) RunStarted(RunInfo)         {}
func (NullReporter) CheckStarted(string)        {}
func (NullReporter) CheckComplete(check.Result) {}
func (NullReporter) RunComplete(Summary)        {}
func (NullReporter) Warning(string)             {}
func (NullReporter) Error(RunError)             {}
