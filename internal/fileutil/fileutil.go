package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cosmicsplendor/audio-ducker/internal/config"
)

// ResolveOutputPath decides where a ducked file lands. A bare file name
// resolves into outputDir; anything containing a path separator is honoured
// as given. The result is absolute with tilde shortcuts expanded.
func ResolveOutputPath(outputArg, outputDir string) (string, error) {
	trimmed := strings.TrimSpace(outputArg)
	if trimmed == "" {
		return "", errors.New("output path is empty")
	}
	if isBareName(trimmed) {
		return config.ExpandPath(filepath.Join(outputDir, trimmed))
	}
	return config.ExpandPath(trimmed)
}

func isBareName(path string) bool {
	return !strings.ContainsAny(path, `/\`) && path != "~"
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}
