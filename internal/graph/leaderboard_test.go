package graph

import (
	"math"
	"reflect"
	"testing"

	"github.com/soundsift/soundsift/internal/dataset"
)

func TestLeaderboardSingleLike(t *testing.T) {
	g := Build(
		[]dataset.ProcessedInteraction{processedRow(7, 1, dataset.ActionLike, "A")},
		[]dataset.TrackMetadata{{TrackID: 1, ArtistName: "A"}},
		nil,
	)

	entries := g.Leaderboard()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Artist != "A" || math.Abs(entries[0].Score-1.8) > 1e-9 {
		t.Errorf("Expected (A, 1.8), got %+v", entries[0])
	}
}

func TestLeaderboardAggregatesAndSorts(t *testing.T) {
	processed := []dataset.ProcessedInteraction{
		processedRow(1, 1, dataset.ActionPlay, "A"),        // A: 1.0
		processedRow(1, 2, dataset.ActionLike, "B"),        // B: 1.5
		processedRow(2, 1, dataset.ActionPlaylistAdd, "A"), // A: +1.2
	}
	tracks := []dataset.TrackMetadata{
		{TrackID: 1, ArtistName: "A"},
		{TrackID: 2, ArtistName: "B"},
	}

	entries := Build(processed, tracks, nil).Leaderboard()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Artist != "A" || math.Abs(entries[0].Score-2.2*1.2) > 1e-9 {
		t.Errorf("Expected A first with 2.64, got %+v", entries[0])
	}
	if entries[1].Artist != "B" || math.Abs(entries[1].Score-1.5*1.2) > 1e-9 {
		t.Errorf("Expected B second with 1.8, got %+v", entries[1])
	}
}

func TestLeaderboardTiesKeepFirstSeenOrder(t *testing.T) {
	processed := []dataset.ProcessedInteraction{
		processedRow(1, 2, dataset.ActionPlay, "B"),
		processedRow(1, 1, dataset.ActionPlay, "A"),
	}
	tracks := []dataset.TrackMetadata{
		{TrackID: 1, ArtistName: "A"},
		{TrackID: 2, ArtistName: "B"},
	}

	entries := Build(processed, tracks, nil).Leaderboard()
	if entries[0].Artist != "B" || entries[1].Artist != "A" {
		t.Errorf("Tied scores must keep first-encountered order, got %+v", entries)
	}
}

func TestLeaderboardUnknownArtistBucket(t *testing.T) {
	processed := []dataset.ProcessedInteraction{
		processedRow(1, 42, dataset.ActionPlay, dataset.UnknownArtist),
	}

	entries := Build(processed, nil, nil).Leaderboard()
	if len(entries) != 1 || entries[0].Artist != dataset.UnknownArtist {
		t.Errorf("Unmapped tracks must bucket under %q, got %+v", dataset.UnknownArtist, entries)
	}
}

func TestLeaderboardIdempotent(t *testing.T) {
	processed := []dataset.ProcessedInteraction{
		processedRow(1, 1, dataset.ActionPlay, "A"),
		processedRow(2, 2, dataset.ActionLike, "B"),
		processedRow(3, 3, dataset.ActionSkip, "C"),
	}
	tracks := []dataset.TrackMetadata{
		{TrackID: 1, ArtistName: "A"},
		{TrackID: 2, ArtistName: "B"},
		{TrackID: 3, ArtistName: "C"},
	}

	g := Build(processed, tracks, nil)
	first := g.Leaderboard()
	second := g.Leaderboard()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated aggregation differs: %+v vs %+v", first, second)
	}
}
