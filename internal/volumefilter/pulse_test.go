package volumefilter_test

import (
	"strings"
	"testing"

	"github.com/cosmicsplendor/audio-ducker/internal/envelope"
	"github.com/cosmicsplendor/audio-ducker/internal/volumefilter"
)

func TestPulseRendersWeightedPulses(t *testing.T) {
	keyframes := []envelope.Keyframe{
		{Time: 9.9, Volume: 1.0},
		{Time: 10, Volume: 0.2},
		{Time: 12, Volume: 0.2},
		{Time: 12.1, Volume: 1.0},
	}
	got := volumefilter.Pulse(keyframes, 1.0)
	want := "volume=volume='" +
		"1*between(t,9.9,9.901)+" +
		"0.2*between(t,10,10.001)+" +
		"0.2*between(t,12,12.001)+" +
		"1*between(t,12.1,12.101)" +
		"':eval=frame"
	if got != want {
		t.Fatalf("pulse filter mismatch\n got %q\nwant %q", got, want)
	}
}

func TestPulseOrdersKeyframesByTime(t *testing.T) {
	keyframes := []envelope.Keyframe{
		{Time: 5, Volume: 0.2},
		{Time: 1, Volume: 1.0},
	}
	got := volumefilter.Pulse(keyframes, 1.0)
	first := strings.Index(got, "between(t,1,")
	second := strings.Index(got, "between(t,5,")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected time-ordered pulses, got %q", got)
	}
}

func TestPulseWithoutKeyframesIsConstant(t *testing.T) {
	if got := volumefilter.Pulse(nil, 1.0); got != "volume=volume=1" {
		t.Fatalf("expected constant filter, got %q", got)
	}
	if got := volumefilter.Pulse(nil, 0.85); got != "volume=volume=0.85" {
		t.Fatalf("expected constant filter, got %q", got)
	}
}

func TestPulseLeavesInputUnsorted(t *testing.T) {
	keyframes := []envelope.Keyframe{
		{Time: 5, Volume: 0.2},
		{Time: 1, Volume: 1.0},
	}
	volumefilter.Pulse(keyframes, 1.0)
	if keyframes[0].Time != 5 {
		t.Fatalf("input slice was reordered: %+v", keyframes)
	}
}
