// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no ducking-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties with audio details
//   - Format: container-level metadata (duration, size, bitrate)
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns a parsed Result
//   - ProbeDuration: inspects a file and resolves its audio duration,
//     falling back to stream durations when the container omits one
//
// Helper methods on Result provide convenient access to stream counts,
// duration parsing, and bitrate extraction.
package ffprobe
