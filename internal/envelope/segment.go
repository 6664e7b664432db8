package envelope

import (
	"fmt"
	"math"

	"github.com/cosmicsplendor/audio-ducker/internal/services"
)

// Segment is a half-open span [Start, End) holding a single volume level.
type Segment struct {
	Start  float64
	End    float64
	Volume float64
}

// Levels carries the two volume levels of the ducking envelope. Values are
// linear multipliers in [0, 1]; Duck is typically lower than Normal but the
// builder does not require it.
type Levels struct {
	Duck   float64
	Normal float64
}

// BuildSegments sweeps the sorted speech intervals and produces the complete
// volume envelope for a track of the given total duration: a gapless,
// alternating sequence of segments covering exactly [0, total).
//
// Intervals must already be normalized (see NormalizeIntervals). Overlapping
// or touching intervals merge into one ducked span. Intervals reaching past
// the track end are clamped to it; intervals starting at or after it are
// dropped. Adjacent segments that would share a volume level are coalesced,
// so Duck == Normal collapses the whole envelope into a single segment.
func BuildSegments(intervals []Interval, total float64, levels Levels) ([]Segment, error) {
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return nil, services.Wrap(services.ErrValidation, "segments", "build",
			fmt.Sprintf("Track duration must be a positive number, got %g", total), nil)
	}
	if err := validateLevel("segments", "duck_volume", levels.Duck); err != nil {
		return nil, err
	}
	if err := validateLevel("segments", "normal_volume", levels.Normal); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, 2*len(intervals)+1)
	cursor := 0.0
	for _, iv := range intervals {
		if iv.Start >= total {
			break
		}
		end := iv.End()
		if end > total {
			end = total
		}
		if iv.Start > cursor {
			segments = appendSegment(segments, Segment{Start: cursor, End: iv.Start, Volume: levels.Normal})
			segments = appendSegment(segments, Segment{Start: iv.Start, End: end, Volume: levels.Duck})
			cursor = end
			continue
		}
		// Interval overlaps or touches the ducked span already swept.
		if end > cursor {
			segments = appendSegment(segments, Segment{Start: cursor, End: end, Volume: levels.Duck})
			cursor = end
		}
	}
	if cursor < total {
		segments = appendSegment(segments, Segment{Start: cursor, End: total, Volume: levels.Normal})
	}
	return segments, nil
}

// appendSegment adds seg to the envelope, extending the previous segment
// instead when both hold the same volume.
func appendSegment(segments []Segment, seg Segment) []Segment {
	if seg.End <= seg.Start {
		return segments
	}
	if n := len(segments); n > 0 && segments[n-1].Volume == seg.Volume && segments[n-1].End == seg.Start {
		segments[n-1].End = seg.End
		return segments
	}
	return append(segments, seg)
}

// ValidateSegments checks the structural envelope contract: non-empty,
// starting at zero, ending at total, gapless, and strictly alternating in
// volume. The builder upholds this by construction; the check guards the
// synthesis path against malformed hand-built input.
func ValidateSegments(segments []Segment, total float64) error {
	if len(segments) == 0 {
		return services.Wrap(services.ErrValidation, "segments", "validate", "Envelope is empty", nil)
	}
	if segments[0].Start != 0 {
		return services.Wrap(services.ErrValidation, "segments", "validate",
			fmt.Sprintf("Envelope starts at %g; expected 0", segments[0].Start), nil)
	}
	if last := segments[len(segments)-1]; last.End != total {
		return services.Wrap(services.ErrValidation, "segments", "validate",
			fmt.Sprintf("Envelope ends at %g; expected %g", last.End, total), nil)
	}
	for i, seg := range segments {
		if seg.End <= seg.Start {
			return services.Wrap(services.ErrValidation, "segments", "validate",
				fmt.Sprintf("Segment %d spans [%g, %g); end must exceed start", i, seg.Start, seg.End), nil)
		}
		if i == 0 {
			continue
		}
		prev := segments[i-1]
		if seg.Start != prev.End {
			return services.Wrap(services.ErrValidation, "segments", "validate",
				fmt.Sprintf("Segment %d starts at %g but the previous segment ends at %g", i, seg.Start, prev.End), nil)
		}
		if seg.Volume == prev.Volume {
			return services.Wrap(services.ErrValidation, "segments", "validate",
				fmt.Sprintf("Segments %d and %d share volume %g; they should be merged", i-1, i, seg.Volume), nil)
		}
	}
	return nil
}

func validateLevel(component, name string, value float64) error {
	if !(value >= 0 && value <= 1) {
		return services.Wrap(services.ErrValidation, component, "build",
			fmt.Sprintf("%s must be within [0, 1], got %g", name, value), nil)
	}
	return nil
}
