// Package main provides the CLI entry point for ffcheck.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/ffcheck/internal/check"
	"github.com/five82/ffcheck/internal/config"
	"github.com/five82/ffcheck/internal/errors"
	"github.com/five82/ffcheck/internal/ffmpeg"
	"github.com/five82/ffcheck/internal/logging"
	"github.com/five82/ffcheck/internal/report"
	"github.com/five82/ffcheck/internal/target"
)

const (
	appName    = "ffcheck"
	appVersion = "0.3.0"
)

type runFlags struct {
	timeout time.Duration
	verbose bool
	noLog   bool
}

func main() {
	code, err := execute(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func execute(args []string) (int, error) {
	var flags runFlags
	exitCode := 0

	rootCmd := &cobra.Command{
		Use:   appName + " [executable] [scratch-dir]",
		Short: "Validate a freshly built multimedia binary",
		Long: `ffcheck probes a freshly built FFmpeg-style binary for its advertised
capabilities (version, codecs, hardware accelerators, encoders, decoders,
filters), optionally exercises it with a real transcode, and inspects its
dynamic-library linkage.

The exit code is 0 when every executed check passed (skipped checks are
allowed) and 1 when the executable is missing or any check failed.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runChecks(args, flags)
			exitCode = code
			return err
		},
	}

	rootCmd.Flags().DurationVar(&flags.timeout, "timeout", config.DefaultTimeout,
		"per-invocation timeout (0 waits indefinitely)")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"enable verbose run logging")
	rootCmd.Flags().BoolVar(&flags.noLog, "no-log", false,
		"disable run log file creation")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	})

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 1, err
	}
	return exitCode, nil
}

func runChecks(args []string, flags runFlags) (int, error) {
	executable := config.DefaultExecutablePath
	scratchDir := config.DefaultScratchDir
	if len(args) > 0 {
		executable = args[0]
	}
	if len(args) > 1 {
		scratchDir = args[1]
	}

	cfg := config.NewConfig(executable, scratchDir)
	cfg.Timeout = flags.timeout
	cfg.Verbose = flags.verbose
	cfg.NoLog = flags.noLog
	if err := cfg.Validate(); err != nil {
		return 1, errors.NewConfigError("invalid configuration", err)
	}

	term := report.NewTerminalReporter()

	// A missing executable is fatal: no checks run, no summary is emitted.
	t, err := target.Resolve(cfg.ExecutablePath, cfg.ScratchDir)
	if err != nil {
		term.Error(report.RunError{
			Title:      "cannot resolve target",
			Message:    err.Error(),
			Suggestion: "check the executable path, or build the binary first",
		})
		return 1, nil
	}

	logger, err := logging.Setup(cfg.GetLogDir(), cfg.Verbose, cfg.NoLog)
	if err != nil {
		return 1, fmt.Errorf("failed to setup logging: %w", err)
	}
	if logger != nil {
		defer func() { _ = logger.Close() }()
	}

	rep := report.NewCompositeReporter(
		term,
		report.NewLogReporter(logger),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		rep.Warning("interrupt received, cancelling run")
		cancel()
	}()

	tally := &report.Tally{}
	recorder := &report.Recorder{Tally: tally, Reporter: rep}

	runner := check.NewRunner(t, ffmpeg.ExecInvoker{Timeout: cfg.Timeout}, logger)

	rep.RunStarted(report.RunInfo{
		ExecutablePath: t.ExecutablePath,
		ScratchDir:     t.ScratchDir,
		TotalChecks:    len(check.Catalogue()),
	})

	start := time.Now()
	runner.Run(ctx, recorder)

	rep.RunComplete(report.Summary{
		Totals:     tally.Totals(),
		ScratchDir: t.ScratchDir,
		Elapsed:    time.Since(start),
	})

	return tally.ExitCode(), nil
}
