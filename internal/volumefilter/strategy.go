package volumefilter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cosmicsplendor/audio-ducker/internal/services"
)

// Strategy names one of the filter synthesis modes.
type Strategy string

const (
	// StrategyStep renders hard volume cuts at segment boundaries.
	StrategyStep Strategy = "step"
	// StrategySmooth renders fade keyframes as narrow additive pulses.
	StrategySmooth Strategy = "smooth"
)

// ParseStrategy maps a configuration string onto the closed strategy set.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case StrategyStep:
		return StrategyStep, nil
	case StrategySmooth:
		return StrategySmooth, nil
	default:
		return "", services.Wrap(services.ErrValidation, "volumefilter", "parse mode",
			fmt.Sprintf("Unknown ducking mode %q (expected step or smooth)", value), nil)
	}
}

// FormatNumber renders a float for embedding in a filter expression: six
// decimal places with trailing zeros (and a bare trailing point) trimmed, so
// 2.0 becomes "2" and 0.2 stays "0.2".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
