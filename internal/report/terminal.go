package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/five82/ffcheck/internal/check"
	"github.com/five82/ffcheck/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal. Each check
// prints one line as it completes; a progress bar on stderr tracks overall
// checklist position.
type TerminalReporter struct {
	progress *progressbar.ProgressBar
	cyan     *color.Color
	green    *color.Color
	yellow   *color.Color
	red      *color.Color
	bold     *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:   color.New(color.FgCyan, color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		bold:   color.New(color.Bold),
	}
}

// printLabel prints a bold label with fixed width padding followed by a value.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) RunStarted(info RunInfo) {
	fmt.Println()
	_, _ = r.cyan.Println("TARGET")
	r.printLabel(11, "Executable:", info.ExecutablePath)
	r.printLabel(11, "Scratch:", info.ScratchDir)
	r.printLabel(11, "Checks:", fmt.Sprintf("%d", info.TotalChecks))

	fmt.Println()
	_, _ = r.cyan.Println("CHECKS")

	r.progress = progressbar.NewOptions(
		info.TotalChecks,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Checking [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) CheckStarted(name string) {
	if r.progress != nil {
		r.progress.Describe(name)
	}
}

func (r *TerminalReporter) CheckComplete(result check.Result) {
	if r.progress != nil {
		_ = r.progress.Add(1)
	}

	switch result.Outcome {
	case check.OutcomePass:
		if result.Detail != "" {
			fmt.Printf("  %s %s (%s)\n", r.green.Sprint("✓"), result.Name, result.Detail)
		} else {
			fmt.Printf("  %s %s\n", r.green.Sprint("✓"), result.Name)
		}
	case check.OutcomeFail:
		if result.Detail != "" {
			fmt.Printf("  %s %s (%s)\n", r.red.Sprint("✗"), result.Name, result.Detail)
		} else {
			fmt.Printf("  %s %s\n", r.red.Sprint("✗"), result.Name)
		}
	case check.OutcomeSkip:
		fmt.Printf("  %s %s (skipped: %s)\n", r.yellow.Sprint("-"), result.Name, result.SkipReason)
	}
}

func (r *TerminalReporter) RunComplete(summary Summary) {
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}

	totals := summary.Totals

	fmt.Println()
	_, _ = r.cyan.Println("SUMMARY")
	r.printLabel(8, "Passed:", r.green.Sprintf("%d", totals.Passed))
	r.printLabel(8, "Failed:", r.red.Sprintf("%d", totals.Failed))
	r.printLabel(8, "Skipped:", r.yellow.Sprintf("%d", totals.Skipped))
	r.printLabel(8, "Total:", fmt.Sprintf("%d", totals.Total()))
	r.printLabel(8, "Elapsed:", util.FormatDurationFromSecs(int64(summary.Elapsed.Seconds())))

	fmt.Println()
	if totals.Failed == 0 {
		fmt.Printf("%s %s\n", r.green.Add(color.Bold).Sprint("✓"), r.bold.Sprint("Build is usable"))
	} else {
		fmt.Printf("%s %s\n", r.red.Sprint("✗"),
			r.bold.Sprintf("%d check(s) failed - inspect the capture logs under %s", totals.Failed, summary.ScratchDir))
	}
}

func (r *TerminalReporter) Warning(message string) {
	fmt.Println()
	_, _ = r.yellow.Add(color.Bold).Printf("WARN: %s\n", message)
}

func (r *TerminalReporter) Error(err RunError) {
	_, _ = fmt.Fprintln(os.Stderr)
	_, _ = r.red.Fprintf(os.Stderr, "ERROR %s\n", err.Title)
	_, _ = fmt.Fprintf(os.Stderr, "  %s\n", err.Message)
	if err.Suggestion != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Suggestion: %s\n", err.Suggestion)
	}
}
