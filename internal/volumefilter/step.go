package volumefilter

import (
	"fmt"
	"strings"

	"github.com/cosmicsplendor/audio-ducker/internal/envelope"
)

// Step renders a segment envelope as a chain of gated volume stages, one per
// segment. Each stage multiplies by its segment's volume only while the
// playback clock t satisfies start <= t < end, so across a gapless envelope
// exactly one stage is active at any instant.
//
// Transitions between segments are hard cuts. Configured fade durations
// deliberately have no effect in this mode; smooth transitions are the pulse
// strategy's job.
func Step(segments []envelope.Segment) string {
	stages := make([]string, 0, len(segments))
	for _, seg := range segments {
		stages = append(stages, fmt.Sprintf(
			"volume=volume=%s:enable='gte(t,%s)*lt(t,%s)'",
			FormatNumber(seg.Volume),
			FormatNumber(seg.Start),
			FormatNumber(seg.End),
		))
	}
	return strings.Join(stages, ",")
}
