package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveOutputPathBareName(t *testing.T) {
	outputDir := t.TempDir()

	got, err := ResolveOutputPath("ducked.m4a", outputDir)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(outputDir, "ducked.m4a")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolveOutputPathWithSeparatorIgnoresOutputDir(t *testing.T) {
	outputDir := t.TempDir()
	target := filepath.Join(t.TempDir(), "elsewhere", "ducked.m4a")

	got, err := ResolveOutputPath(target, outputDir)
	if err != nil {
		t.Fatal(err)
	}
	if got != target {
		t.Fatalf("expected %q, got %q", target, got)
	}
}

func TestResolveOutputPathRelativeWithSeparator(t *testing.T) {
	got, err := ResolveOutputPath("mixes/ducked.m4a", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %q", got)
	}
	if filepath.Base(got) != "ducked.m4a" || filepath.Base(filepath.Dir(got)) != "mixes" {
		t.Fatalf("unexpected resolution: %q", got)
	}
}

func TestResolveOutputPathExpandsTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := ResolveOutputPath("~/music/ducked.m4a", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(tempHome, "music", "ducked.m4a")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolveOutputPathRejectsBlank(t *testing.T) {
	if _, err := ResolveOutputPath("   ", t.TempDir()); err == nil {
		t.Fatal("expected error for blank output path")
	}
}

func TestEnsureParentDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "out.m4a")
	if err := EnsureParentDir(target); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(filepath.Dir(target))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory at %q", filepath.Dir(target))
	}

	// Idempotent on an existing directory.
	if err := EnsureParentDir(target); err != nil {
		t.Fatal(err)
	}
}
