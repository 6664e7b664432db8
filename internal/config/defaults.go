package config

const (
	defaultDuckVolume        = 0.2
	defaultNormalVolume      = 1.0
	defaultFadeIn            = 0.1
	defaultFadeOut           = 0.1
	defaultMode              = "step"
	defaultOutputDir         = "./output"
	defaultCodec             = "aac"
	defaultBitrate           = "192k"
	defaultFFmpegBinary      = "ffmpeg"
	defaultFFprobeBinary     = "ffprobe"
	defaultFilterScriptLimit = 4096
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Ducking: Ducking{
			DuckVolume:   defaultDuckVolume,
			NormalVolume: defaultNormalVolume,
			FadeIn:       defaultFadeIn,
			FadeOut:      defaultFadeOut,
			Mode:         defaultMode,
		},
		Output: Output{
			Dir:     defaultOutputDir,
			Codec:   defaultCodec,
			Bitrate: defaultBitrate,
		},
		FFmpeg: FFmpeg{
			FFmpegBinary:      defaultFFmpegBinary,
			FFprobeBinary:     defaultFFprobeBinary,
			FilterScriptLimit: defaultFilterScriptLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
