// Package capability caches the capability listings advertised by the
// executable under test so repeated token checks against the same listing do
// not re-invoke it.
package capability

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/ffcheck/internal/errors"
	"github.com/five82/ffcheck/internal/ffmpeg"
)

// Category identifies one capability listing of the executable under test.
type Category string

const (
	CategoryVersion  Category = "version"
	CategoryCodecs   Category = "codecs"
	CategoryEncoders Category = "encoders"
	CategoryDecoders Category = "decoders"
	CategoryHWAccels Category = "hwaccels"
	CategoryFilters  Category = "filters"
)

// Args returns the argument set that produces this category's listing.
func (c Category) Args() []string {
	if c == CategoryVersion {
		return []string{"-version"}
	}
	return []string{"-hide_banner", "-" + string(c)}
}

// entry is the cached result of building one category listing.
type entry struct {
	listing string
	logPath string
	err     error
}

// Index lazily builds and caches one listing per category per run.
// Built entries are immutable; the run is single-threaded so no locking
// is required.
type Index struct {
	invoker    ffmpeg.Invoker
	executable string
	scratchDir string
	entries    map[Category]*entry
}

// NewIndex creates an Index for the given executable and scratch directory.
func NewIndex(invoker ffmpeg.Invoker, executable, scratchDir string) *Index {
	return &Index{
		invoker:    invoker,
		executable: executable,
		scratchDir: scratchDir,
		entries:    make(map[Category]*entry),
	}
}

// Listing returns the full captured text of a category, building it on first
// use. Build failures are cached too: a listing that could not be captured
// stays failed for the rest of the run.
func (ix *Index) Listing(ctx context.Context, cat Category) (string, error) {
	e := ix.build(ctx, cat)
	return e.listing, e.err
}

// Has reports whether the category listing contains the token. The match is
// case-sensitive.
func (ix *Index) Has(ctx context.Context, cat Category, token string) (bool, error) {
	listing, err := ix.Listing(ctx, cat)
	if err != nil {
		return false, err
	}
	return strings.Contains(listing, token), nil
}

// LogPath returns the capture file for a category, or empty if the listing
// was never captured.
func (ix *Index) LogPath(cat Category) string {
	if e, ok := ix.entries[cat]; ok {
		return e.logPath
	}
	return ""
}

func (ix *Index) build(ctx context.Context, cat Category) *entry {
	if e, ok := ix.entries[cat]; ok {
		return e
	}

	e := &entry{}
	ix.entries[cat] = e

	capture, err := ix.invoker.Invoke(ctx, ix.executable, cat.Args()...)
	if err != nil {
		e.err = errors.NewCaptureError(fmt.Sprintf("could not capture %s listing", cat), err)
		return e
	}

	e.listing = capture.Output
	e.logPath = filepath.Join(ix.scratchDir, string(cat)+".log")
	if werr := os.WriteFile(e.logPath, []byte(capture.Output), 0644); werr != nil {
		e.logPath = ""
	}

	if capture.ExitCode != 0 {
		e.err = errors.NewCommandFailedError(ix.executable, capture.ExitCode, "")
	}
	return e
}
