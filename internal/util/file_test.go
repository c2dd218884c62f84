package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.log")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !FileExists(file) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists() = true for missing path")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.log")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !DirectoryExists(dir) {
		t.Error("DirectoryExists() = false for existing directory")
	}
	if DirectoryExists(file) {
		t.Error("DirectoryExists() = true for file")
	}
	if DirectoryExists(filepath.Join(dir, "missing")) {
		t.Error("DirectoryExists() = true for missing path")
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")

	if err := EnsureDirectory(nested); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}
	if !DirectoryExists(nested) {
		t.Error("nested directory was not created")
	}

	// Re-ensuring must be a no-op.
	if err := EnsureDirectory(nested); err != nil {
		t.Errorf("EnsureDirectory() on existing directory error = %v", err)
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "artifact.mp4")
	if err := os.WriteFile(file, []byte("media"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := RemoveIfExists(file); err != nil {
		t.Fatalf("RemoveIfExists() error = %v", err)
	}
	if FileExists(file) {
		t.Error("file survived RemoveIfExists()")
	}

	// Removing again is not an error.
	if err := RemoveIfExists(file); err != nil {
		t.Errorf("RemoveIfExists() on missing file error = %v", err)
	}
}
