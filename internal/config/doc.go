// Package config loads, normalizes, and validates audio-ducker configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// AUDIO_DUCKER_FFMPEG. The Config type centralizes every knob the CLI needs,
// so ducking levels, output policy, and tool locations are discovered in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical modes, and clear validation errors.
package config
