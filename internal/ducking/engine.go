package ducking

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/cosmicsplendor/audio-ducker/internal/config"
	"github.com/cosmicsplendor/audio-ducker/internal/envelope"
	"github.com/cosmicsplendor/audio-ducker/internal/fileutil"
	"github.com/cosmicsplendor/audio-ducker/internal/logging"
	"github.com/cosmicsplendor/audio-ducker/internal/media/ffprobe"
	"github.com/cosmicsplendor/audio-ducker/internal/services"
	"github.com/cosmicsplendor/audio-ducker/internal/services/ffmpeg"
	"github.com/cosmicsplendor/audio-ducker/internal/volumefilter"
)

// Prober reports the total duration of a media file in seconds.
type Prober interface {
	ProbeDuration(ctx context.Context, path string) (float64, error)
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context, path string) (float64, error)

// ProbeDuration calls f.
func (f ProberFunc) ProbeDuration(ctx context.Context, path string) (float64, error) {
	return f(ctx, path)
}

// Engine wires the envelope math to its external collaborators.
type Engine struct {
	cfg        *config.Config
	logger     *slog.Logger
	prober     Prober
	transcoder ffmpeg.Client
}

// Option customizes an Engine, mainly so tests and dry runs can substitute
// collaborators.
type Option func(*Engine)

// WithProber replaces the ffprobe-backed duration probe.
func WithProber(p Prober) Option {
	return func(e *Engine) {
		if p != nil {
			e.prober = p
		}
	}
}

// WithTranscoder replaces the ffmpeg CLI transcoder.
func WithTranscoder(client ffmpeg.Client) Option {
	return func(e *Engine) {
		if client != nil {
			e.transcoder = client
		}
	}
}

// New constructs a processing engine from configuration. A nil logger
// silences engine logging.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("ducking engine requires configuration")
	}
	engine := &Engine{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "ducking"),
		prober: ProberFunc(func(ctx context.Context, path string) (float64, error) {
			return ffprobe.ProbeDuration(ctx, cfg.FFmpeg.FFprobeBinary, path)
		}),
		transcoder: ffmpeg.NewCLI(
			ffmpeg.WithBinary(cfg.FFmpeg.FFmpegBinary),
			ffmpeg.WithFilterScriptLimit(cfg.FFmpeg.FilterScriptLimit),
		),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine, nil
}

// Process ducks musicPath around the speech intervals in intervalsPath using
// the configured filter mode and returns the resolved output path.
func (e *Engine) Process(ctx context.Context, musicPath, intervalsPath, outputArg string) (string, error) {
	strategy, err := volumefilter.ParseStrategy(e.cfg.Ducking.Mode)
	if err != nil {
		return "", wrapProcessing("select mode", err)
	}
	return e.run(ctx, strategy, musicPath, intervalsPath, outputArg)
}

// ProcessStep ducks with hard volume cuts at interval boundaries regardless
// of the configured mode.
func (e *Engine) ProcessStep(ctx context.Context, musicPath, intervalsPath, outputArg string) (string, error) {
	return e.run(ctx, volumefilter.StrategyStep, musicPath, intervalsPath, outputArg)
}

// ProcessSmooth ducks with pulse-approximated fades regardless of the
// configured mode. No duration probe runs in this mode; the last keyframe
// stands in for the track length when reporting progress.
func (e *Engine) ProcessSmooth(ctx context.Context, musicPath, intervalsPath, outputArg string) (string, error) {
	return e.run(ctx, volumefilter.StrategySmooth, musicPath, intervalsPath, outputArg)
}

func (e *Engine) run(ctx context.Context, strategy volumefilter.Strategy, musicPath, intervalsPath, outputArg string) (string, error) {
	ctx = services.WithJobID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, e.logger)

	outputPath, err := e.resolveOutput(outputArg)
	if err != nil {
		return "", wrapProcessing("resolve output", err)
	}

	plan, err := e.buildPlan(ctx, strategy, musicPath, intervalsPath)
	if err != nil {
		return "", wrapProcessing("build envelope", err)
	}

	logger.Info("starting transcode",
		logging.String(logging.FieldEventType, "transcode_started"),
		logging.String("input", musicPath),
		logging.String("output", outputPath),
		logging.String("mode", string(strategy)),
		logging.Int("intervals", len(plan.Intervals)),
		logging.Int("filter_bytes", len(plan.Filter)),
	)

	if err := e.transcode(ctx, logger, plan, musicPath, outputPath); err != nil {
		return "", wrapProcessing("render", err)
	}

	logger.Info("ducked output written",
		logging.String(logging.FieldEventType, "output_written"),
		logging.String("output", outputPath))
	return outputPath, nil
}

func (e *Engine) resolveOutput(outputArg string) (string, error) {
	outputPath, err := fileutil.ResolveOutputPath(outputArg, e.cfg.Output.Dir)
	if err != nil {
		return "", err
	}
	if err := fileutil.EnsureParentDir(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

// transcode holds a lock file next to the output for the duration of the
// ffmpeg run so two invocations cannot clobber the same file.
func (e *Engine) transcode(ctx context.Context, logger *slog.Logger, plan *Plan, musicPath, outputPath string) error {
	lock := flock.New(outputPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock output %s: %w", outputPath, err)
	}
	if !locked {
		return fmt.Errorf("output %s is being written by another invocation", outputPath)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if !e.cfg.Output.Overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("output file %s already exists (set output.overwrite or pass --overwrite)", outputPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check output path: %w", err)
		}
	}

	sampler := logging.NewProgressSampler(0)
	req := ffmpeg.Request{
		InputPath:  musicPath,
		OutputPath: outputPath,
		Filter:     plan.Filter,
		Codec:      e.cfg.Output.Codec,
		Bitrate:    e.cfg.Output.Bitrate,
		Overwrite:  e.cfg.Output.Overwrite,
		Duration:   plan.progressDuration(),
	}
	err = e.transcoder.Transcode(ctx, req, func(update ffmpeg.ProgressUpdate) {
		if !sampler.ShouldLog(update.Percent, update.Stage) {
			return
		}
		logger.Info("transcode progress",
			logging.String(logging.FieldStage, update.Stage),
			logging.Float64("percent", update.Percent),
			logging.Float64("speed", update.Speed),
			logging.Duration("out_time", update.OutTime),
		)
	})
	if err != nil {
		return services.Wrap(services.ErrTranscode, "ffmpeg", "transcode", "", err)
	}
	return nil
}

func loadIntervals(path string) ([]envelope.Interval, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open intervals file: %w", err)
	}
	defer file.Close()
	return envelope.DecodeIntervals(file)
}

func wrapProcessing(operation string, err error) error {
	return services.Wrap(services.ErrProcessing, "ducking", operation, "", err)
}
