// Package target locates the executable under test and prepares the scratch
// directory. A missing executable is the only fatal condition in a run.
package target

import (
	"fmt"
	"path/filepath"

	"github.com/five82/ffcheck/internal/errors"
	"github.com/five82/ffcheck/internal/util"
)

// Target identifies a resolved executable under test and its scratch directory.
type Target struct {
	// ExecutablePath is the absolute path of the binary under test.
	ExecutablePath string

	// ScratchDir is the absolute path of the directory owned by this run.
	ScratchDir string
}

// Resolve verifies the executable exists and creates the scratch directory.
// Creating the scratch directory is idempotent; it must not fail if the
// directory already exists.
func Resolve(executablePath, scratchDir string) (*Target, error) {
	exe, err := filepath.Abs(executablePath)
	if err != nil {
		return nil, errors.NewPathError(fmt.Sprintf("invalid executable path %s: %v", executablePath, err))
	}

	if !util.FileExists(exe) {
		return nil, errors.NewPathError(fmt.Sprintf("executable not found: %s", exe))
	}

	scratch, err := filepath.Abs(scratchDir)
	if err != nil {
		return nil, errors.NewPathError(fmt.Sprintf("invalid scratch directory %s: %v", scratchDir, err))
	}

	if err := util.EnsureDirectory(scratch); err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("failed to create scratch directory %s", scratch), err)
	}

	return &Target{
		ExecutablePath: exe,
		ScratchDir:     scratch,
	}, nil
}
