package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for the failure taxonomy. Every error that escapes a
// processing entry point carries exactly one of these, so callers can
// classify failures with errors.Is without inspecting message text.
var (
	// ErrValidation marks malformed interval input: non-array payloads,
	// missing or non-numeric start/duration fields, non-positive durations.
	ErrValidation = errors.New("validation error")

	// ErrProbe marks duration-probe failures from the external media
	// inspector (unreadable file, unrecognized container, missing stream).
	ErrProbe = errors.New("probe error")

	// ErrTranscode marks failures reported by the external transcoding
	// engine while rendering a synthesized filter.
	ErrTranscode = errors.New("transcode error")

	// ErrProcessing is the unifying wrapper applied by the orchestration
	// layer; the underlying marker stays reachable via errors.Is.
	ErrProcessing = errors.New("processing error")

	// ErrUsage marks command-line invocation mistakes surfaced before any
	// processing starts, such as a wrong argument count.
	ErrUsage = errors.New("usage error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrProcessing
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitMessage condenses a processing failure into the single line printed to
// stderr before the process exits non-zero.
func ExitMessage(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimSpace(err.Error())
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "processing failure"
	}
	return strings.Join(parts, ": ")
}
