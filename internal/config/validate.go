package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

var bitratePattern = regexp.MustCompile(`^[0-9]+[kKmM]?$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDucking(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDucking() error {
	if err := ensureUnitRange(map[string]float64{
		"ducking.duck_volume":   c.Ducking.DuckVolume,
		"ducking.normal_volume": c.Ducking.NormalVolume,
	}); err != nil {
		return err
	}
	if err := ensureFiniteSeconds(map[string]float64{
		"ducking.fade_in":  c.Ducking.FadeIn,
		"ducking.fade_out": c.Ducking.FadeOut,
	}); err != nil {
		return err
	}
	switch c.Ducking.Mode {
	case "step", "smooth":
	default:
		return fmt.Errorf("ducking.mode must be step or smooth, got %q", c.Ducking.Mode)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir must be set")
	}
	if c.Output.Bitrate != "" && !bitratePattern.MatchString(c.Output.Bitrate) {
		return fmt.Errorf("output.bitrate must look like 192k or 256000, got %q", c.Output.Bitrate)
	}
	return nil
}

func ensureUnitRange(values map[string]float64) error {
	for key, value := range values {
		if !(value >= 0 && value <= 1) {
			return fmt.Errorf("%s must be between 0 and 1", key)
		}
	}
	return nil
}

func ensureFiniteSeconds(values map[string]float64) error {
	for key, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return fmt.Errorf("%s must be a non-negative number of seconds", key)
		}
	}
	return nil
}
