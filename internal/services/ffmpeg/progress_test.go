package ffmpeg

import (
	"testing"
	"time"
)

func TestProgressParserEmitsOnBlockTerminator(t *testing.T) {
	parser := newProgressParser(100)
	for _, line := range []string{"bitrate= 128.0kbits/s", "out_time_us=25000000", "speed=10x"} {
		if _, ok := parser.consume(line); ok {
			t.Fatalf("line %q should not emit an update", line)
		}
	}
	update, ok := parser.consume("progress=continue")
	if !ok {
		t.Fatal("expected update on progress line")
	}
	if update.Percent != 25 {
		t.Fatalf("expected 25 percent, got %v", update.Percent)
	}
	if update.OutTime != 25*time.Second {
		t.Fatalf("expected out time 25s, got %s", update.OutTime)
	}
	if update.Speed != 10 {
		t.Fatalf("expected speed 10, got %v", update.Speed)
	}
	if update.Stage != StageTranscoding {
		t.Fatalf("expected transcoding stage, got %q", update.Stage)
	}
}

func TestProgressParserEndForcesCompletion(t *testing.T) {
	parser := newProgressParser(50)
	parser.consume("out_time_us=49000000")
	update, ok := parser.consume("progress=end")
	if !ok || update.Stage != StageComplete || update.Percent != 100 {
		t.Fatalf("unexpected final update: %+v (%v)", update, ok)
	}
}

func TestProgressParserUnknownDuration(t *testing.T) {
	parser := newProgressParser(0)
	parser.consume("out_time_us=30000000")
	update, ok := parser.consume("progress=continue")
	if !ok || update.Percent != 0 {
		t.Fatalf("expected zero percent without duration, got %+v", update)
	}
	if update.OutTime != 30*time.Second {
		t.Fatalf("expected out time carried through, got %s", update.OutTime)
	}
}

func TestProgressParserClampsOverrun(t *testing.T) {
	parser := newProgressParser(10)
	parser.consume("out_time_us=15000000")
	update, _ := parser.consume("progress=continue")
	if update.Percent != 100 {
		t.Fatalf("expected clamp at 100, got %v", update.Percent)
	}
}

func TestProgressParserFallsBackToClock(t *testing.T) {
	parser := newProgressParser(200)
	parser.consume("out_time=00:01:40.500000")
	update, _ := parser.consume("progress=continue")
	want := time.Minute + 40*time.Second + 500*time.Millisecond
	if update.OutTime != want {
		t.Fatalf("expected out time %s, got %s", want, update.OutTime)
	}
}

func TestProgressParserIgnoresGarbage(t *testing.T) {
	parser := newProgressParser(100)
	parser.consume("out_time=-577014:32:22.77")
	parser.consume("out_time_us=N/A")
	parser.consume("speed=N/A")
	update, ok := parser.consume("progress=continue")
	if !ok {
		t.Fatal("expected update")
	}
	if update.OutTime != 0 || update.Speed != 0 || update.Percent != 0 {
		t.Fatalf("expected zeroed update, got %+v", update)
	}
}
