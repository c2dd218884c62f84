// Package config provides configuration types and defaults for ffcheck.
package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Default constants
const (
	// DefaultExecutablePath is the conventional location of a freshly built binary.
	DefaultExecutablePath = "./ffmpeg"

	// DefaultScratchDir is the conventional scratch directory for logs and artifacts.
	DefaultScratchDir = "./ffcheck-out"

	// DefaultTimeout is the per-invocation timeout. Zero preserves the original
	// behavior of waiting indefinitely for child processes.
	DefaultTimeout time.Duration = 0
)

// Config holds all configuration for one validation run.
type Config struct {
	// ExecutablePath is the multimedia binary under test.
	ExecutablePath string

	// ScratchDir holds per-check capture logs and transient media artifacts.
	ScratchDir string

	// LogDir is where the run log is written. Defaults to ScratchDir/logs.
	LogDir string

	// Timeout bounds each child-process invocation. Zero means unbounded.
	Timeout time.Duration

	// Verbose enables debug-level run logging.
	Verbose bool

	// NoLog disables run log file creation.
	NoLog bool
}

// NewConfig creates a new Config with default values.
func NewConfig(executablePath, scratchDir string) *Config {
	return &Config{
		ExecutablePath: executablePath,
		ScratchDir:     scratchDir,
		LogDir:         filepath.Join(scratchDir, "logs"),
		Timeout:        DefaultTimeout,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.ExecutablePath == "" {
		return ErrMissingExecutable
	}
	if c.ScratchDir == "" {
		return ErrMissingScratchDir
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}
	return nil
}

// GetLogDir returns the log directory, falling back to ScratchDir/logs if not set.
func (c *Config) GetLogDir() string {
	if c.LogDir != "" {
		return c.LogDir
	}
	return filepath.Join(c.ScratchDir, "logs")
}
