// Package ducking orchestrates speech-aware volume processing. The engine
// loads and validates speech intervals, obtains the track duration from the
// probe collaborator, derives the volume envelope for the selected filter
// mode, and drives the external transcoder that renders the ducked output.
//
// Each invocation is independent and stateless; failures are terminal and
// surface as processing errors that keep the underlying failure class
// (validation, probe, transcode) reachable through errors.Is.
package ducking
