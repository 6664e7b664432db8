// Package ffmpeg shells out to the ffmpeg binary so the ducking engine can
// render a synthesized volume filter and observe structured progress updates.
//
// It exposes a Client interface and a CLI implementation that parses the
// key=value feed produced by "-progress pipe:1" into typed ProgressUpdate
// values. Oversized filter expressions are spilled to a scratch filter
// script so long interval lists never overflow argv limits. Tests can swap
// in fakes to avoid executing the real transcoder while still exercising
// engine behaviour.
package ffmpeg
