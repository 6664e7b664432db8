package envelope

import (
	"fmt"
	"math"

	"github.com/cosmicsplendor/audio-ducker/internal/services"
)

// Keyframe pins the envelope to a volume level at a point in time. A pair of
// keyframes with differing volumes describes a ramp between their times.
type Keyframe struct {
	Time   float64
	Volume float64
}

// Fades carries the ramp durations, in seconds, applied around each speech
// interval in smooth mode. Out is the fade-down leading into speech, In the
// fade-up trailing it.
type Fades struct {
	In  float64
	Out float64
}

// BuildKeyframes derives the smooth-mode envelope for the sorted speech
// intervals: around every interval it plants a fade-down ramp ending at the
// interval start, a hold at the ducked level, and a fade-up ramp starting at
// the interval end.
//
// Intervals whose start falls inside the previous fade-up window extend the
// ducked region instead of receiving their own fade-down, so ramps never
// fight each other. The lead-in ramp is clamped so no keyframe lands before
// time zero. Keyframe times are not bounded by the track duration; levels
// past the end of the track are simply never reached during playback.
func BuildKeyframes(intervals []Interval, fades Fades, levels Levels) ([]Keyframe, error) {
	if err := validateFade("fade_in", fades.In); err != nil {
		return nil, err
	}
	if err := validateFade("fade_out", fades.Out); err != nil {
		return nil, err
	}
	if err := validateLevel("keyframes", "duck_volume", levels.Duck); err != nil {
		return nil, err
	}
	if err := validateLevel("keyframes", "normal_volume", levels.Normal); err != nil {
		return nil, err
	}

	keyframes := make([]Keyframe, 0, 4*len(intervals))
	cursor := 0.0
	for _, iv := range intervals {
		if iv.Start > cursor {
			keyframes = append(keyframes,
				Keyframe{Time: math.Max(0, iv.Start-fades.Out), Volume: levels.Normal},
				Keyframe{Time: iv.Start, Volume: levels.Duck},
			)
		}
		end := iv.End()
		keyframes = append(keyframes,
			Keyframe{Time: end, Volume: levels.Duck},
			Keyframe{Time: end + fades.In, Volume: levels.Normal},
		)
		cursor = end + fades.In
	}
	return keyframes, nil
}

func validateFade(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return services.Wrap(services.ErrValidation, "keyframes", "build",
			fmt.Sprintf("%s must be a non-negative number, got %g", name, value), nil)
	}
	return nil
}
