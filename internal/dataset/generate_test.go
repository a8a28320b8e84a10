package dataset

import (
	"testing"
	"time"
)

var generatorNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestGeneratorInteractions(t *testing.T) {
	gen := NewGenerator(42, generatorNow)
	events := gen.Interactions(200, []int64{10, 20, 30})

	if len(events) != 200 {
		t.Fatalf("Expected 200 events, got %d", len(events))
	}

	known := map[Action]bool{}
	for _, a := range Actions {
		known[a] = true
	}
	earliest := generatorNow.Add(-24 * time.Hour)
	for i, ev := range events {
		if ev.UserID < 1 || ev.UserID > 10 {
			t.Fatalf("Event %d: user %d outside synthetic range", i, ev.UserID)
		}
		if ev.TrackID != 10 && ev.TrackID != 20 && ev.TrackID != 30 {
			t.Fatalf("Event %d: track %d not from supplied ids", i, ev.TrackID)
		}
		if !known[ev.Action] {
			t.Fatalf("Event %d: unknown action %q", i, ev.Action)
		}
		if ev.Timestamp.Before(earliest) || ev.Timestamp.After(generatorNow) {
			t.Fatalf("Event %d: timestamp %v outside trailing 24h window", i, ev.Timestamp)
		}
	}
}

func TestGeneratorFallbackTrackRange(t *testing.T) {
	gen := NewGenerator(1, generatorNow)
	events := gen.Interactions(500, nil)

	for i, ev := range events {
		if ev.TrackID < 1 || ev.TrackID > 100 {
			t.Fatalf("Event %d: track %d outside fallback range [1, 100]", i, ev.TrackID)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(7, generatorNow).Interactions(50, nil)
	b := NewGenerator(7, generatorNow).Interactions(50, nil)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Event %d differs between identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratorContext(t *testing.T) {
	gen := NewGenerator(3, generatorNow)
	records := gen.Context(100)

	if len(records) != 100 {
		t.Fatalf("Expected 100 records, got %d", len(records))
	}
	for i, rec := range records {
		if rec.Mood < 0 || rec.Mood > 1 {
			t.Fatalf("Record %d: mood %v outside [0, 1]", i, rec.Mood)
		}
		if rec.Device != "mobile" && rec.Device != "desktop" {
			t.Fatalf("Record %d: unexpected device %q", i, rec.Device)
		}
	}
}
