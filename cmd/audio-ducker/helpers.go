package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cosmicsplendor/audio-ducker/internal/config"
	"github.com/cosmicsplendor/audio-ducker/internal/services"
)

// resolveInputFile expands shortcuts in a positional argument and confirms a
// regular file is there before any processing starts.
func resolveInputFile(label, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", services.Wrap(services.ErrValidation, "cli", "resolve input",
			fmt.Sprintf("%s path is empty", label), nil)
	}
	path, err := config.ExpandPath(arg)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "cli", "resolve input", "", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "cli", "resolve input",
			fmt.Sprintf("%s not found: %s", label, path), nil)
	}
	if info.IsDir() {
		return "", services.Wrap(services.ErrValidation, "cli", "resolve input",
			fmt.Sprintf("%s is a directory: %s", label, path), nil)
	}
	return path, nil
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 2, 64) + "s"
}
