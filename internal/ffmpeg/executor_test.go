package ffmpeg

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/five82/ffcheck/internal/errors"
)

func TestExecInvokerCapturesOutput(t *testing.T) {
	capture, err := ExecInvoker{}.Invoke(context.Background(), "sh", "-c", "echo probe output")
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if capture.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", capture.ExitCode)
	}
	if strings.TrimSpace(capture.Output) != "probe output" {
		t.Errorf("Output = %q, want probe output", capture.Output)
	}
}

func TestExecInvokerNonZeroExitIsNotAnError(t *testing.T) {
	capture, err := ExecInvoker{}.Invoke(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err != nil {
		t.Fatalf("Invoke() error = %v, non-zero exit must be reported via Capture", err)
	}
	if capture.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", capture.ExitCode)
	}
	if !strings.Contains(capture.Output, "boom") {
		t.Errorf("Output = %q, want stderr captured", capture.Output)
	}
}

func TestExecInvokerMissingBinary(t *testing.T) {
	_, err := ExecInvoker{}.Invoke(context.Background(), "/nonexistent/ffcheck-no-such-binary")
	if err == nil {
		t.Fatal("Invoke() expected error for missing binary")
	}
	if !errors.IsKind(err, errors.KindCommand) {
		t.Errorf("error kind = %v, want command", err)
	}
}

func TestExecInvokerTimeout(t *testing.T) {
	start := time.Now()
	_, err := ExecInvoker{Timeout: 50 * time.Millisecond}.Invoke(context.Background(), "sh", "-c", "sleep 5")
	if err == nil {
		t.Fatal("Invoke() expected error on timeout")
	}
	if !errors.IsKind(err, errors.KindCapture) {
		t.Errorf("error kind = %v, want capture", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Invoke() took %v, timeout did not bound the child process", elapsed)
	}
}

func TestExecInvokerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExecInvoker{}.Invoke(ctx, "sh", "-c", "sleep 5")
	if err == nil {
		t.Fatal("Invoke() expected error for cancelled context")
	}
	if !errors.IsCancelled(err) {
		t.Errorf("error kind = %v, want cancelled", err)
	}
}
