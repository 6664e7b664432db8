package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/cosmicsplendor/audio-ducker/internal/services"
)

// Interval is a half-open span of speech [Start, Start+Duration) measured in
// seconds from the beginning of the track. Speaker and Text are optional
// transcript metadata carried through for display; they never influence the
// envelope math.
type Interval struct {
	Start    float64
	Duration float64
	Speaker  string
	Text     string
}

// End returns the exclusive end of the interval in seconds.
func (iv Interval) End() float64 {
	return iv.Start + iv.Duration
}

// intervalRecord is the wire shape of a single interval. Pointer fields let
// decoding distinguish an absent start or duration from a literal zero.
type intervalRecord struct {
	Start    *float64 `json:"start"`
	Duration *float64 `json:"duration"`
	Speaker  string   `json:"speaker"`
	Text     string   `json:"text"`
}

// DecodeIntervals reads a JSON array of interval records and returns the
// normalized interval set: every record validated and the result sorted by
// ascending start time. The top-level value must be an array; each record
// must carry numeric start and duration fields. All failures are tagged
// services.ErrValidation.
func DecodeIntervals(r io.Reader) ([]Interval, error) {
	dec := json.NewDecoder(r)
	var records []intervalRecord
	if err := dec.Decode(&records); err != nil {
		return nil, services.Wrap(services.ErrValidation, "intervals", "decode", describeDecodeError(err), err)
	}
	if records == nil {
		return nil, services.Wrap(services.ErrValidation, "intervals", "decode",
			"Expected a JSON array of interval records, got null", nil)
	}
	intervals := make([]Interval, 0, len(records))
	for i, rec := range records {
		if rec.Start == nil {
			return nil, services.Wrap(services.ErrValidation, "intervals", "decode",
				fmt.Sprintf("Record %d is missing the start field", i), nil)
		}
		if rec.Duration == nil {
			return nil, services.Wrap(services.ErrValidation, "intervals", "decode",
				fmt.Sprintf("Record %d is missing the duration field", i), nil)
		}
		intervals = append(intervals, Interval{
			Start:    *rec.Start,
			Duration: *rec.Duration,
			Speaker:  rec.Speaker,
			Text:     rec.Text,
		})
	}
	return NormalizeIntervals(intervals)
}

// NormalizeIntervals validates the given intervals and returns a copy sorted
// by ascending start time. Records that tie on start keep their original
// relative order. Overlapping intervals are legal here; overlap resolution
// happens during segment construction.
func NormalizeIntervals(intervals []Interval) ([]Interval, error) {
	for i, iv := range intervals {
		if err := validateInterval(i, iv); err != nil {
			return nil, err
		}
	}
	out := make([]Interval, len(intervals))
	copy(out, intervals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out, nil
}

func validateInterval(index int, iv Interval) error {
	if math.IsNaN(iv.Start) || math.IsInf(iv.Start, 0) {
		return services.Wrap(services.ErrValidation, "intervals", "validate",
			fmt.Sprintf("Record %d has a non-finite start", index), nil)
	}
	if math.IsNaN(iv.Duration) || math.IsInf(iv.Duration, 0) {
		return services.Wrap(services.ErrValidation, "intervals", "validate",
			fmt.Sprintf("Record %d has a non-finite duration", index), nil)
	}
	if iv.Start < 0 {
		return services.Wrap(services.ErrValidation, "intervals", "validate",
			fmt.Sprintf("Record %d starts at %g; start must be >= 0", index, iv.Start), nil)
	}
	if iv.Duration <= 0 {
		return services.Wrap(services.ErrValidation, "intervals", "validate",
			fmt.Sprintf("Record %d has duration %g; duration must be > 0", index, iv.Duration), nil)
	}
	return nil
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return fmt.Sprintf("Expected a JSON array of interval records, got %s", typeErr.Value)
		}
		return fmt.Sprintf("Field %q must be numeric, got %s", typeErr.Field, typeErr.Value)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("Malformed JSON at offset %d", syntaxErr.Offset)
	}
	if errors.Is(err, io.EOF) {
		return "Interval file is empty"
	}
	return "Failed to parse interval JSON"
}
