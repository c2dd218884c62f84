package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/ffcheck/internal/capability"
	"github.com/five82/ffcheck/internal/errors"
	"github.com/five82/ffcheck/internal/ffmpeg"
	"github.com/five82/ffcheck/internal/logging"
	"github.com/five82/ffcheck/internal/target"
	"github.com/five82/ffcheck/internal/util"
)

const (
	// sampleTool is the host tool used to synthesize test media. It is a
	// system install, independent of the binary under test.
	sampleTool = "ffmpeg"

	// introspectionTool lists the dynamic libraries a binary links against.
	introspectionTool = "ldd"

	// sampleFilename is the synthesized clip used by behavioral probes.
	sampleFilename = "ffcheck_sample.mp4"
)

// accelLibFragments are matched case-insensitively against the linked
// library list. Any single match satisfies the linkage check.
var accelLibFragments = []string{"libnvidia", "libcuda", "libnvcuvid", "libnpp"}

// sampleState tracks the one-time test media preparation shared by the
// behavioral probes.
type sampleState struct {
	prepared    bool
	toolMissing bool
	toolPath    string
	path        string
	err         error
}

// Runner executes the check catalogue in its fixed order. Every per-check
// error is converted locally to a fail or skip outcome; no check can abort
// the run.
type Runner struct {
	target   *target.Target
	invoker  ffmpeg.Invoker
	index    *capability.Index
	log      *logging.Logger
	lookPath func(string) (string, error)

	sample    sampleState
	artifacts []string
}

// NewRunner creates a Runner for the resolved target.
func NewRunner(t *target.Target, invoker ffmpeg.Invoker, log *logging.Logger) *Runner {
	return &Runner{
		target:   t,
		invoker:  invoker,
		index:    capability.NewIndex(invoker, t.ExecutablePath, t.ScratchDir),
		log:      log,
		lookPath: ffmpeg.LookPath,
	}
}

// Run executes every catalogued check in order and reports each completion
// to the observer as it happens. Transient media artifacts are removed when
// the run ends, regardless of outcomes.
func (r *Runner) Run(ctx context.Context, obs Observer) []Result {
	checks := Catalogue()
	results := make([]Result, 0, len(checks))

	defer r.cleanup()

	for _, c := range checks {
		obs.CheckStarted(c.Name)
		res := r.execute(ctx, c)
		results = append(results, res)
		obs.CheckComplete(res)

		r.log.Debug("check %q (%s): %s", res.Name, res.Kind, res.Outcome)
	}

	return results
}

func (r *Runner) execute(ctx context.Context, c Check) Result {
	switch c.Kind {
	case KindBehavioral:
		return r.runBehavioral(ctx, c)
	case KindLinkage:
		return r.runLinkage(ctx, c)
	default:
		return r.runCapability(ctx, c)
	}
}

// runCapability classifies a listing probe by exit code, or a token probe by
// case-sensitive substring match against the cached listing.
func (r *Runner) runCapability(ctx context.Context, c Check) Result {
	res := Result{Name: c.Name, Kind: c.Kind}

	if c.Token == "" {
		listing, err := r.index.Listing(ctx, c.Category)
		res.LogPath = r.index.LogPath(c.Category)
		if err != nil {
			res.Outcome = OutcomeFail
			res.Detail = err.Error()
			return res
		}
		res.Outcome = OutcomePass
		if c.Category == capability.CategoryVersion {
			res.Detail = util.FirstLine(listing)
		}
		return res
	}

	ok, err := r.index.Has(ctx, c.Category, c.Token)
	res.LogPath = r.index.LogPath(c.Category)
	if err != nil {
		res.Outcome = OutcomeFail
		res.Detail = err.Error()
		return res
	}
	if !ok {
		// Expected but absent capability is a failure, not a skip.
		res.Outcome = OutcomeFail
		res.Detail = fmt.Sprintf("%q not found in %s listing", c.Token, c.Category)
		return res
	}

	res.Outcome = OutcomePass
	return res
}

// runBehavioral transcodes the synthesized sample with the check's encoder.
// Missing preconditions (sample tool, advertised hardware encoder,
// compatible device) degrade to skips.
func (r *Runner) runBehavioral(ctx context.Context, c Check) Result {
	res := Result{Name: c.Name, Kind: c.Kind}

	r.prepareSample(ctx)

	if r.sample.toolMissing {
		res.Outcome = OutcomeSkip
		res.SkipReason = SkipNoSampleTool
		return res
	}

	hardware := c.GateToken != ""
	if hardware {
		advertised, err := r.index.Has(ctx, capability.CategoryEncoders, c.GateToken)
		if err != nil {
			res.Outcome = OutcomeFail
			res.Detail = "could not query encoder listing: " + err.Error()
			return res
		}
		if !advertised {
			res.Outcome = OutcomeSkip
			res.SkipReason = SkipEncoderNotAvailable
			return res
		}
	}

	if r.sample.err != nil {
		res.Outcome = OutcomeFail
		res.Detail = "could not generate test media: " + r.sample.err.Error()
		return res
	}

	outPath := filepath.Join(r.target.ScratchDir, util.SlugName(c.Name)+".mp4")
	r.artifacts = append(r.artifacts, outPath)

	capture, err := r.invoker.Invoke(ctx, r.target.ExecutablePath,
		ffmpeg.TranscodeArgs(r.sample.path, outPath, c.Encoder)...)
	if err == nil {
		res.LogPath = r.writeCaptureLog(c.Name, capture.Output)
	}

	switch {
	case err == nil && capture.ExitCode == 0:
		res.Outcome = OutcomePass
	case errors.IsCancelled(err):
		// Cancellation says nothing about the device.
		res.Outcome = OutcomeFail
		res.Detail = err.Error()
	case hardware:
		// The encoder is advertised but the device or driver cannot run it.
		// That is an environment fact, not a build defect.
		res.Outcome = OutcomeSkip
		res.SkipReason = SkipIncompatibleDevice
	case err != nil:
		res.Outcome = OutcomeFail
		res.Detail = err.Error()
	default:
		res.Outcome = OutcomeFail
		res.Detail = fmt.Sprintf("%s exited with code %d", c.Encoder, capture.ExitCode)
	}
	return res
}

// runLinkage captures the dynamic-library list and looks for any expected
// acceleration-library name fragment, case-insensitively.
func (r *Runner) runLinkage(ctx context.Context, c Check) Result {
	res := Result{Name: c.Name, Kind: c.Kind}

	toolPath, err := r.lookPath(introspectionTool)
	if err != nil {
		res.Outcome = OutcomeSkip
		res.SkipReason = SkipNoIntrospectionTool
		return res
	}

	capture, err := r.invoker.Invoke(ctx, toolPath, r.target.ExecutablePath)
	if err != nil || capture.ExitCode != 0 {
		if err == nil {
			res.LogPath = r.writeCaptureLog(introspectionTool, capture.Output)
		}
		res.Outcome = OutcomeFail
		res.Detail = "could not analyze dependencies"
		return res
	}

	res.LogPath = r.writeCaptureLog(introspectionTool, capture.Output)

	linked := strings.ToLower(capture.Output)
	for _, fragment := range accelLibFragments {
		if strings.Contains(linked, fragment) {
			res.Outcome = OutcomePass
			res.Detail = "found " + fragment
			return res
		}
	}

	res.Outcome = OutcomeFail
	res.Detail = "expected acceleration library not linked"
	return res
}

// prepareSample synthesizes the behavioral test clip once per run.
func (r *Runner) prepareSample(ctx context.Context) {
	if r.sample.prepared {
		return
	}
	r.sample.prepared = true

	toolPath, err := r.lookPath(sampleTool)
	if err != nil {
		r.sample.toolMissing = true
		r.log.Info("sample tool %s not found, behavioral probes will be skipped", sampleTool)
		return
	}
	r.sample.toolPath = toolPath

	samplePath := filepath.Join(r.target.ScratchDir, sampleFilename)
	r.artifacts = append(r.artifacts, samplePath)

	capture, err := r.invoker.Invoke(ctx, toolPath, ffmpeg.SampleArgs(samplePath)...)
	if err != nil {
		r.sample.err = err
		return
	}
	if capture.ExitCode != 0 {
		r.sample.err = fmt.Errorf("%s exited with code %d: %s",
			toolPath, capture.ExitCode, util.FirstLine(capture.Output))
		return
	}

	r.sample.path = samplePath
	r.log.Debug("generated test sample: %s", samplePath)
}

// writeCaptureLog stores a probe's captured output under the scratch
// directory and returns the log path, or empty if the write failed.
func (r *Runner) writeCaptureLog(name, output string) string {
	path := filepath.Join(r.target.ScratchDir, util.SlugName(name)+".log")
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		r.log.Warn("failed to write capture log %s: %v", path, err)
		return ""
	}
	return path
}

// cleanup removes transient media artifacts. Capture logs are kept for
// post-run inspection.
func (r *Runner) cleanup() {
	for _, path := range r.artifacts {
		if err := util.RemoveIfExists(path); err != nil {
			r.log.Warn("failed to remove artifact %s: %v", path, err)
		}
	}
	r.artifacts = nil
}
