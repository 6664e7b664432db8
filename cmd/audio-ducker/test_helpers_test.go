package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cosmicsplendor/audio-ducker/internal/config"
	"github.com/cosmicsplendor/audio-ducker/internal/ducking"
	"github.com/cosmicsplendor/audio-ducker/internal/services/ffmpeg"
	"github.com/cosmicsplendor/audio-ducker/internal/testsupport"
)

type cliTestEnv struct {
	configPath    string
	outputDir     string
	musicPath     string
	intervalsPath string

	probeCalls   int
	probeErr     error
	requests     []ffmpeg.Request
	transcodeErr error
}

type cliStubTranscoder struct {
	env *cliTestEnv
}

func (s cliStubTranscoder) Transcode(_ context.Context, req ffmpeg.Request, _ func(ffmpeg.ProgressUpdate)) error {
	s.env.requests = append(s.env.requests, req)
	if s.env.transcodeErr != nil {
		return s.env.transcodeErr
	}
	return os.WriteFile(req.OutputPath, []byte("ducked audio"), 0o644)
}

// setupCLITestEnv writes a config file plus input fixtures into a temp dir and
// swaps buildEngine for one backed by in-process stubs, so commands run
// end to end without the real ffmpeg tools.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		configPath:    filepath.Join(base, "config.toml"),
		outputDir:     filepath.Join(base, "output"),
		musicPath:     filepath.Join(base, "track.mp3"),
		intervalsPath: filepath.Join(base, "intervals.json"),
	}
	writeTestConfig(t, env.configPath, env.outputDir)
	testsupport.WriteFile(t, env.musicPath, 64)
	testsupport.WriteIntervals(t, env.intervalsPath, `[{"start": 2, "duration": 3, "speaker": "host_speaker"}]`)

	original := buildEngine
	buildEngine = func(cfg *config.Config, logger *slog.Logger) (*ducking.Engine, error) {
		prober := ducking.ProberFunc(func(_ context.Context, _ string) (float64, error) {
			env.probeCalls++
			if env.probeErr != nil {
				return 0, env.probeErr
			}
			return 10, nil
		})
		return ducking.New(cfg, logger, ducking.WithProber(prober), ducking.WithTranscoder(cliStubTranscoder{env: env}))
	}
	t.Cleanup(func() { buildEngine = original })

	return env
}

func writeTestConfig(t *testing.T, path, outputDir string) {
	t.Helper()
	content := fmt.Sprintf("[output]\ndir = %q\n", outputDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cliArgs := args
	if configPath != "" {
		cliArgs = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(cliArgs)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeStubTool(t *testing.T, dir, name, banner string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir stub dir: %v", err)
	}
	path := filepath.Join(dir, name)
	script := fmt.Sprintf("#!/bin/sh\necho %q\nexit 0\n", banner)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, output)
	}
}
