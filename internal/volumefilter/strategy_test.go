package volumefilter_test

import (
	"errors"
	"testing"

	"github.com/cosmicsplendor/audio-ducker/internal/services"
	"github.com/cosmicsplendor/audio-ducker/internal/volumefilter"
)

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		input string
		want  volumefilter.Strategy
	}{
		{"step", volumefilter.StrategyStep},
		{"smooth", volumefilter.StrategySmooth},
		{" Step ", volumefilter.StrategyStep},
		{"SMOOTH", volumefilter.StrategySmooth},
	}
	for _, tc := range cases {
		got, err := volumefilter.ParseStrategy(tc.input)
		if err != nil || got != tc.want {
			t.Fatalf("ParseStrategy(%q) = %v,%v want %v", tc.input, got, err, tc.want)
		}
	}
}

func TestParseStrategyRejectsUnknownMode(t *testing.T) {
	if _, err := volumefilter.ParseStrategy("linear"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{2.0, "2"},
		{0.2, "0.2"},
		{1.0, "1"},
		{0, "0"},
		{7.25, "7.25"},
		{0.123456789, "0.123457"},
		{1e-9, "0"},
		{-0.5, "-0.5"},
		{10.001, "10.001"},
	}
	for _, tc := range cases {
		if got := volumefilter.FormatNumber(tc.input); got != tc.want {
			t.Fatalf("FormatNumber(%g) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
