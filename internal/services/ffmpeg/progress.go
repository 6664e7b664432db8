package ffmpeg

import (
	"strconv"
	"strings"
	"time"
)

// Stages reported through ProgressUpdate.
const (
	StageTranscoding = "transcoding"
	StageComplete    = "complete"
)

// ProgressUpdate captures ffmpeg progress events. Percent is derived from
// the request's probed duration and stays zero when that duration is unknown.
type ProgressUpdate struct {
	Percent float64
	OutTime time.Duration
	Speed   float64
	Stage   string
}

// progressParser folds ffmpeg's key=value progress feed into updates. The
// feed arrives in blocks terminated by a "progress=" line; intermediate keys
// accumulate and each terminator emits one update.
type progressParser struct {
	duration float64
	outTime  time.Duration
	speed    float64
}

func newProgressParser(duration float64) *progressParser {
	return &progressParser{duration: duration}
}

func (p *progressParser) consume(line string) (ProgressUpdate, bool) {
	key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return ProgressUpdate{}, false
	}
	value = strings.TrimSpace(value)
	switch key {
	case "out_time_us", "out_time_ms":
		// Both keys carry microseconds; out_time_ms is misnamed upstream.
		if us, err := strconv.ParseInt(value, 10, 64); err == nil && us >= 0 {
			p.outTime = time.Duration(us) * time.Microsecond
		}
	case "out_time":
		if d, ok := parseClock(value); ok {
			p.outTime = d
		}
	case "speed":
		if s, err := strconv.ParseFloat(strings.TrimSuffix(value, "x"), 64); err == nil && s >= 0 {
			p.speed = s
		}
	case "progress":
		update := ProgressUpdate{
			Percent: p.percent(),
			OutTime: p.outTime,
			Speed:   p.speed,
			Stage:   StageTranscoding,
		}
		if value == "end" {
			update.Stage = StageComplete
			if p.duration > 0 {
				update.Percent = 100
			}
		}
		return update, true
	}
	return ProgressUpdate{}, false
}

func (p *progressParser) percent() float64 {
	if p.duration <= 0 {
		return 0
	}
	pct := p.outTime.Seconds() / p.duration * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// parseClock reads ffmpeg's HH:MM:SS.micro timestamps. ffmpeg emits a large
// negative clock before the first frame lands; those are rejected.
func parseClock(value string) (time.Duration, bool) {
	if value == "" || strings.HasPrefix(value, "-") || value == "N/A" {
		return 0, false
	}
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, false
	}
	total := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	total += time.Duration(seconds * float64(time.Second))
	return total, true
}
