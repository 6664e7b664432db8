package ducking

import (
	"context"

	"github.com/cosmicsplendor/audio-ducker/internal/envelope"
	"github.com/cosmicsplendor/audio-ducker/internal/services"
	"github.com/cosmicsplendor/audio-ducker/internal/volumefilter"
)

// Plan captures everything the engine derives before handing off to the
// transcoder: the normalized intervals, the envelope for the selected mode,
// and the rendered filter expression.
type Plan struct {
	Strategy  volumefilter.Strategy
	Intervals []envelope.Interval
	// Duration is the probed track length in seconds. Smooth mode never
	// probes, so it stays zero there.
	Duration  float64
	Segments  []envelope.Segment
	Keyframes []envelope.Keyframe
	Filter    string
}

// Plan derives the envelope and filter expression for musicPath without
// invoking the transcoder, using the configured filter mode.
func (e *Engine) Plan(ctx context.Context, musicPath, intervalsPath string) (*Plan, error) {
	strategy, err := volumefilter.ParseStrategy(e.cfg.Ducking.Mode)
	if err != nil {
		return nil, wrapProcessing("select mode", err)
	}
	plan, err := e.buildPlan(ctx, strategy, musicPath, intervalsPath)
	if err != nil {
		return nil, wrapProcessing("plan", err)
	}
	return plan, nil
}

func (e *Engine) buildPlan(ctx context.Context, strategy volumefilter.Strategy, musicPath, intervalsPath string) (*Plan, error) {
	intervals, err := loadIntervals(intervalsPath)
	if err != nil {
		return nil, err
	}
	levels := envelope.Levels{Duck: e.cfg.Ducking.DuckVolume, Normal: e.cfg.Ducking.NormalVolume}
	plan := &Plan{Strategy: strategy, Intervals: intervals}

	switch strategy {
	case volumefilter.StrategySmooth:
		fades := envelope.Fades{In: e.cfg.Ducking.FadeIn, Out: e.cfg.Ducking.FadeOut}
		keyframes, err := envelope.BuildKeyframes(intervals, fades, levels)
		if err != nil {
			return nil, err
		}
		plan.Keyframes = keyframes
		plan.Filter = volumefilter.Pulse(keyframes, levels.Normal)
	default:
		duration, err := e.prober.ProbeDuration(ctx, musicPath)
		if err != nil {
			return nil, services.Wrap(services.ErrProbe, "ffprobe", "probe duration", "", err)
		}
		segments, err := envelope.BuildSegments(intervals, duration, levels)
		if err != nil {
			return nil, err
		}
		plan.Duration = duration
		plan.Segments = segments
		plan.Filter = volumefilter.Step(segments)
	}
	return plan, nil
}

// progressDuration is the denominator for transcode percentages: the probed
// track length in step mode, the last keyframe time in smooth mode.
func (p *Plan) progressDuration() float64 {
	if p.Duration > 0 {
		return p.Duration
	}
	last := 0.0
	for _, kf := range p.Keyframes {
		if kf.Time > last {
			last = kf.Time
		}
	}
	return last
}
