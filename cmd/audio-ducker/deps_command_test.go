package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIDepsReportsToolsAndOutputDir(t *testing.T) {
	env := setupCLITestEnv(t)
	binDir := filepath.Join(filepath.Dir(env.configPath), "bin")
	ffmpegPath := writeStubTool(t, binDir, "ffmpeg", "ffmpeg version 6.1-stub Copyright (c) the FFmpeg developers")
	ffprobePath := writeStubTool(t, binDir, "ffprobe", "ffprobe version 6.1-stub Copyright (c) the FFmpeg developers")
	t.Setenv("AUDIO_DUCKER_FFMPEG", ffmpegPath)
	t.Setenv("AUDIO_DUCKER_FFPROBE", ffprobePath)

	out, _, err := runCLI(t, env.configPath, "deps")
	if err != nil {
		t.Fatalf("deps: %v", err)
	}

	requireContains(t, out, "== External Tools ==")
	requireContains(t, out, "FFmpeg:")
	requireContains(t, out, "FFprobe:")
	requireContains(t, out, "[OK]")
	requireContains(t, out, "ffmpeg version 6.1-stub")
	requireContains(t, out, "== Output Directory ==")
	requireContains(t, out, env.outputDir)
	if strings.Contains(out, "[ERROR]") {
		t.Fatalf("expected all checks to pass:\n%s", out)
	}
}

func TestCLIDepsFlagsMissingTool(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("AUDIO_DUCKER_FFMPEG", filepath.Join(filepath.Dir(env.configPath), "missing-ffmpeg"))

	out, _, err := runCLI(t, env.configPath, "deps")
	if err != nil {
		t.Fatalf("deps should report rather than fail: %v", err)
	}

	requireContains(t, out, "[ERROR]")
	requireContains(t, out, "Missing tools")
	requireContains(t, out, "FFmpeg")
}
