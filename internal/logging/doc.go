// Package logging assembles the structured slog loggers and formatting
// helpers used across the ducking pipeline.
//
// It owns the configurable console/JSON handlers, centralizes level plumbing,
// and exposes context-aware helpers so pipeline code can automatically tag
// log lines with job IDs, stages, and correlation IDs. All output goes to
// stderr so stdout stays reserved for command results. The package also
// provides a no-op logger for tests and wiring code that cannot fail, plus a
// progress sampler that throttles noisy transcode progress events.
//
// Prefer these constructors over hand-rolled slog setup so components emit
// data with the same shape as the rest of the tool.
package logging
