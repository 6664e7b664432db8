package volumefilter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cosmicsplendor/audio-ducker/internal/envelope"
)

// pulseWidth is the indicator window, in seconds, each keyframe occupies in
// the rendered expression.
const pulseWidth = 0.001

// Pulse renders fade keyframes as a single volume filter whose expression
// sums one narrow indicator pulse per keyframe, each weighted by its target
// volume and evaluated per frame.
//
// This is a discrete approximation of a ramp, not continuous interpolation:
// between pulses the expression contributes nothing, so the audible level is
// pinned only inside each one-millisecond window. With no keyframes at all
// the filter degenerates to a constant stage at the normal volume.
func Pulse(keyframes []envelope.Keyframe, normalVolume float64) string {
	if len(keyframes) == 0 {
		return fmt.Sprintf("volume=volume=%s", FormatNumber(normalVolume))
	}
	ordered := make([]envelope.Keyframe, len(keyframes))
	copy(ordered, keyframes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time < ordered[j].Time
	})
	terms := make([]string, 0, len(ordered))
	for _, kf := range ordered {
		terms = append(terms, fmt.Sprintf(
			"%s*between(t,%s,%s)",
			FormatNumber(kf.Volume),
			FormatNumber(kf.Time),
			FormatNumber(kf.Time+pulseWidth),
		))
	}
	return fmt.Sprintf("volume=volume='%s':eval=frame", strings.Join(terms, "+"))
}
