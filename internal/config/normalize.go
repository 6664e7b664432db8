package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeDucking()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeFFmpeg()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeDucking() {
	c.Ducking.Mode = strings.ToLower(strings.TrimSpace(c.Ducking.Mode))
	if c.Ducking.Mode == "" {
		c.Ducking.Mode = defaultMode
	}
}

func (c *Config) normalizeOutput() error {
	var err error
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = defaultOutputDir
	}
	if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	c.Output.Codec = strings.TrimSpace(c.Output.Codec)
	c.Output.Bitrate = strings.TrimSpace(c.Output.Bitrate)
	return nil
}

// normalizeFFmpeg fills in binary defaults and honours environment overrides.
// AUDIO_DUCKER_FFMPEG and AUDIO_DUCKER_FFPROBE take precedence over file
// values so wrappers and CI can redirect the tools without editing config.
func (c *Config) normalizeFFmpeg() {
	if value, ok := os.LookupEnv("AUDIO_DUCKER_FFMPEG"); ok && strings.TrimSpace(value) != "" {
		c.FFmpeg.FFmpegBinary = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("AUDIO_DUCKER_FFPROBE"); ok && strings.TrimSpace(value) != "" {
		c.FFmpeg.FFprobeBinary = strings.TrimSpace(value)
	}
	c.FFmpeg.FFmpegBinary = strings.TrimSpace(c.FFmpeg.FFmpegBinary)
	if c.FFmpeg.FFmpegBinary == "" {
		c.FFmpeg.FFmpegBinary = defaultFFmpegBinary
	}
	c.FFmpeg.FFprobeBinary = strings.TrimSpace(c.FFmpeg.FFprobeBinary)
	if c.FFmpeg.FFprobeBinary == "" {
		c.FFmpeg.FFprobeBinary = defaultFFprobeBinary
	}
	if c.FFmpeg.FilterScriptLimit <= 0 {
		c.FFmpeg.FilterScriptLimit = defaultFilterScriptLimit
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
