package target

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/ffcheck/internal/errors"
	"github.com/five82/ffcheck/internal/util"
)

func writeExecutable(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("failed to write executable: %v", err)
	}
	return path
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	exe := writeExecutable(t, dir)
	scratch := filepath.Join(dir, "out")

	tgt, err := Resolve(exe, scratch)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !filepath.IsAbs(tgt.ExecutablePath) {
		t.Errorf("ExecutablePath = %q, want absolute", tgt.ExecutablePath)
	}
	if !filepath.IsAbs(tgt.ScratchDir) {
		t.Errorf("ScratchDir = %q, want absolute", tgt.ScratchDir)
	}
	if !util.DirectoryExists(tgt.ScratchDir) {
		t.Errorf("scratch directory %s was not created", tgt.ScratchDir)
	}
}

func TestResolveMissingExecutable(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(filepath.Join(dir, "no-such-binary"), filepath.Join(dir, "out"))
	if err == nil {
		t.Fatal("Resolve() expected error for missing executable")
	}
	if !errors.IsKind(err, errors.KindPath) {
		t.Errorf("error kind = %v, want path", err)
	}
	if !strings.Contains(err.Error(), "executable not found") {
		t.Errorf("error = %q, want mention of missing executable", err)
	}
}

func TestResolveExecutableIsDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(dir, filepath.Join(dir, "out"))
	if err == nil {
		t.Fatal("Resolve() expected error when executable path is a directory")
	}
	if !errors.IsKind(err, errors.KindPath) {
		t.Errorf("error kind = %v, want path", err)
	}
}

func TestResolveScratchDirIdempotent(t *testing.T) {
	dir := t.TempDir()
	exe := writeExecutable(t, dir)
	scratch := filepath.Join(dir, "out")

	if _, err := Resolve(exe, scratch); err != nil {
		t.Fatalf("first Resolve() error = %v", err)
	}

	// A leftover file from a previous run must survive re-resolution.
	marker := filepath.Join(scratch, "codecs.log")
	if err := os.WriteFile(marker, []byte("h264"), 0644); err != nil {
		t.Fatalf("failed to write marker: %v", err)
	}

	if _, err := Resolve(exe, scratch); err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}
	if !util.FileExists(marker) {
		t.Error("existing scratch content was destroyed by re-resolution")
	}
}
