// Package envelope turns timed speech intervals into a volume envelope for
// an audio track.
//
// This package has no tool-specific dependencies and could be extracted as a
// standalone library.
//
// Key types:
//   - Interval: a half-open span of speech with optional transcript metadata
//   - Segment: a span of the track held at one volume level
//   - Keyframe: a point-in-time volume pin used by smooth mode
//
// Primary entry points:
//   - DecodeIntervals: parse and normalize a JSON interval set
//   - BuildSegments: sweep intervals into a gapless, alternating envelope
//   - BuildKeyframes: derive fade ramps around each interval
//
// Segment envelopes always cover exactly [0, total) with no gaps and no two
// adjacent segments sharing a volume; BuildSegments merges overlapping
// intervals and clamps spans to the track end to keep that contract.
package envelope
