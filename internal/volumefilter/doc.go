// Package volumefilter renders volume envelopes into ffmpeg audio filter
// expressions.
//
// Two synthesis strategies form a closed set selected by configuration:
//   - Step: one gated constant-volume stage per segment, hard cuts at
//     boundaries.
//   - Pulse (smooth mode): fade keyframes summed as narrow indicator
//     pulses, a documented discrete approximation of a ramp.
//
// The package only formats strings; envelope math lives in the envelope
// package and process execution in the ffmpeg client.
package volumefilter
