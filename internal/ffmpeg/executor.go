package ffmpeg

import (
	"context"
	"os/exec"
	"time"

	"github.com/five82/ffcheck/internal/errors"
)

// Capture contains the combined output and exit code of one invocation.
type Capture struct {
	Output   string
	ExitCode int
}

// Invoker runs an external command and captures its combined stdout+stderr.
// A non-zero exit status is reported through Capture, not as an error; an
// error means no output could be obtained at all.
type Invoker interface {
	Invoke(ctx context.Context, name string, args ...string) (Capture, error)
}

// ExecInvoker is the production Invoker backed by os/exec.
type ExecInvoker struct {
	// Timeout bounds each invocation. Zero means wait indefinitely.
	Timeout time.Duration
}

// Invoke runs the command and captures combined stdout+stderr.
func (e ExecInvoker) Invoke(ctx context.Context, name string, args ...string) (Capture, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.Canceled {
			return Capture{}, errors.NewCancelledError()
		}
		if ctx.Err() != nil {
			return Capture{}, errors.NewCaptureError(name+" did not complete", ctx.Err())
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return Capture{Output: string(out), ExitCode: exitErr.ExitCode()}, nil
		}
		return Capture{}, errors.WrapExecError(name, err, "")
	}

	return Capture{Output: string(out), ExitCode: 0}, nil
}

// LookPath reports the resolved path of a host tool. Variable so tests can
// substitute a fake without touching PATH.
var LookPath = exec.LookPath
