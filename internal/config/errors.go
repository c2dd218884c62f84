// Package config provides configuration types and defaults for ffcheck.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrMissingExecutable indicates no executable path was provided.
	ErrMissingExecutable = errors.New("executable path is required")

	// ErrMissingScratchDir indicates no scratch directory was provided.
	ErrMissingScratchDir = errors.New("scratch directory is required")

	// ErrInvalidTimeout indicates a negative invocation timeout.
	ErrInvalidTimeout = errors.New("timeout must not be negative")
)
