package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cosmicsplendor/audio-ducker/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrTranscode, "transcode", "render", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrTranscode) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"transcode", "render", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToProcessingMarker(t *testing.T) {
	err := services.Wrap(nil, "engine", "run", "", errors.New("io"))
	if !errors.Is(err, services.ErrProcessing) {
		t.Fatalf("expected processing marker for nil input, got %v", err)
	}
}

func TestWrapKeepsNestedMarkerReachable(t *testing.T) {
	inner := services.Wrap(services.ErrProbe, "probe", "duration", "no streams", nil)
	outer := services.Wrap(services.ErrProcessing, "engine", "run", "", inner)
	if !errors.Is(outer, services.ErrProcessing) {
		t.Fatalf("expected outer marker, got %v", outer)
	}
	if !errors.Is(outer, services.ErrProbe) {
		t.Fatalf("expected nested probe marker to remain reachable, got %v", outer)
	}
}

func TestExitMessage(t *testing.T) {
	if msg := services.ExitMessage(nil); msg != "" {
		t.Fatalf("expected empty message for nil error, got %q", msg)
	}
	err := services.Wrap(services.ErrValidation, "intervals", "decode", "record 2 missing start", nil)
	msg := services.ExitMessage(err)
	if msg == "" || !strings.Contains(msg, "record 2 missing start") {
		t.Fatalf("unexpected exit message %q", msg)
	}
}
