package envelope_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cosmicsplendor/audio-ducker/internal/envelope"
	"github.com/cosmicsplendor/audio-ducker/internal/services"
)

var stdFades = envelope.Fades{In: 0.1, Out: 0.1}

func expectKeyframes(t *testing.T, got, want []envelope.Keyframe) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d keyframes, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if math.Abs(got[i].Time-want[i].Time) > 1e-9 || got[i].Volume != want[i].Volume {
			t.Fatalf("keyframe %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildKeyframesSingleInterval(t *testing.T) {
	keyframes, err := envelope.BuildKeyframes([]envelope.Interval{{Start: 10, Duration: 2}}, stdFades, stdLevels)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	expectKeyframes(t, keyframes, []envelope.Keyframe{
		{Time: 9.9, Volume: 1.0},
		{Time: 10, Volume: 0.2},
		{Time: 12, Volume: 0.2},
		{Time: 12.1, Volume: 1.0},
	})
}

func TestBuildKeyframesNoIntervals(t *testing.T) {
	keyframes, err := envelope.BuildKeyframes(nil, stdFades, stdLevels)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(keyframes) != 0 {
		t.Fatalf("expected no keyframes, got %+v", keyframes)
	}
}

func TestBuildKeyframesClampsLeadInAtZero(t *testing.T) {
	keyframes, err := envelope.BuildKeyframes([]envelope.Interval{{Start: 0.05, Duration: 1}}, stdFades, stdLevels)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	expectKeyframes(t, keyframes, []envelope.Keyframe{
		{Time: 0, Volume: 1.0},
		{Time: 0.05, Volume: 0.2},
		{Time: 1.05, Volume: 0.2},
		{Time: 1.15, Volume: 1.0},
	})
}

func TestBuildKeyframesIntervalAtZeroSkipsLeadIn(t *testing.T) {
	keyframes, err := envelope.BuildKeyframes([]envelope.Interval{{Start: 0, Duration: 2}}, stdFades, stdLevels)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	expectKeyframes(t, keyframes, []envelope.Keyframe{
		{Time: 2, Volume: 0.2},
		{Time: 2.1, Volume: 1.0},
	})
}

func TestBuildKeyframesSkipsApproachInsideFadeWindow(t *testing.T) {
	intervals := []envelope.Interval{
		{Start: 2, Duration: 1},
		{Start: 3.05, Duration: 1},
	}
	keyframes, err := envelope.BuildKeyframes(intervals, stdFades, stdLevels)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	expectKeyframes(t, keyframes, []envelope.Keyframe{
		{Time: 1.9, Volume: 1.0},
		{Time: 2, Volume: 0.2},
		{Time: 3, Volume: 0.2},
		{Time: 3.1, Volume: 1.0},
		{Time: 4.05, Volume: 0.2},
		{Time: 4.15, Volume: 1.0},
	})
}

func TestBuildKeyframesSeparatedIntervalsGetOwnRamps(t *testing.T) {
	intervals := []envelope.Interval{
		{Start: 2, Duration: 1},
		{Start: 6, Duration: 1},
	}
	keyframes, err := envelope.BuildKeyframes(intervals, stdFades, stdLevels)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	expectKeyframes(t, keyframes, []envelope.Keyframe{
		{Time: 1.9, Volume: 1.0},
		{Time: 2, Volume: 0.2},
		{Time: 3, Volume: 0.2},
		{Time: 3.1, Volume: 1.0},
		{Time: 5.9, Volume: 1.0},
		{Time: 6, Volume: 0.2},
		{Time: 7, Volume: 0.2},
		{Time: 7.1, Volume: 1.0},
	})
}

func TestBuildKeyframesZeroFades(t *testing.T) {
	keyframes, err := envelope.BuildKeyframes([]envelope.Interval{{Start: 2, Duration: 1}}, envelope.Fades{}, stdLevels)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	expectKeyframes(t, keyframes, []envelope.Keyframe{
		{Time: 2, Volume: 1.0},
		{Time: 2, Volume: 0.2},
		{Time: 3, Volume: 0.2},
		{Time: 3, Volume: 1.0},
	})
}

func TestBuildKeyframesRejectsNegativeFade(t *testing.T) {
	if _, err := envelope.BuildKeyframes(nil, envelope.Fades{In: -0.1, Out: 0.1}, stdLevels); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := envelope.BuildKeyframes(nil, envelope.Fades{In: 0.1, Out: math.NaN()}, stdLevels); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for NaN fade, got %v", err)
	}
}
