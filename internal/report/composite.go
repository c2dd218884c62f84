package report

import "github.com/five82/ffcheck/internal/check"

// CompositeReporter fans out events to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a composite reporter.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	return &CompositeReporter{reporters: reporters}
}

func (c *CompositeReporter) RunStarted(info RunInfo) {
	for _, r := range c.reporters {
		r.RunStarted(info)
	}
}

func (c *CompositeReporter) CheckStarted(name string) {
	for _, r := range c.reporters {
		r.CheckStarted(name)
	}
}

func (c *CompositeReporter) CheckComplete(result check.Result) {
	for _, r := range c.reporters {
		r.CheckComplete(result)
	}
}

func (c *CompositeReporter) RunComplete(summary Summary) {
	for _, r := range c.reporters {
		r.RunComplete(summary)
	}
}

func (c *CompositeReporter) Warning(message string) {
	for _, r := range c.reporters {
		r.Warning(message)
	}
}

func (c *CompositeReporter) Error(err RunError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}
