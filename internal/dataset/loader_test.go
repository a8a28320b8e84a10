package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMetadata(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing metadata file: %v", err)
	}
	return path
}

func TestLoadTrackMetadata(t *testing.T) {
	path := writeMetadata(t, strings.Join([]string{
		"track_id,track_name,artist_name,danceability,energy",
		"1,Track One,Artist A,0.8,0.6",
		"2,Track Two,Artist B,0.3,0.9",
	}, "\n"))

	tracks, warnings, err := LoadTrackMetadata(path)
	if err != nil {
		t.Fatalf("LoadTrackMetadata: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if len(tracks) != 2 {
		t.Fatalf("Expected 2 tracks, got %d", len(tracks))
	}
	if tracks[0].TrackID != 1 || tracks[0].ArtistName != "Artist A" || tracks[0].TrackName != "Track One" {
		t.Errorf("Unexpected first track: %+v", tracks[0])
	}
	if got := tracks[0].AudioFeatures["danceability"]; got != 0.8 {
		t.Errorf("Expected danceability 0.8, got %v", got)
	}
	if got := tracks[1].AudioFeatures["energy"]; got != 0.9 {
		t.Errorf("Expected energy 0.9, got %v", got)
	}
}

func TestLoadTrackMetadataAliasesArtistColumn(t *testing.T) {
	for _, alias := range []string{"artists", "artist"} {
		path := writeMetadata(t, strings.Join([]string{
			"track_id,track_name," + alias,
			"1,Track One,Artist A",
		}, "\n"))

		tracks, warnings, err := LoadTrackMetadata(path)
		if err != nil {
			t.Fatalf("LoadTrackMetadata with alias %q: %v", alias, err)
		}
		if len(tracks) != 1 || tracks[0].ArtistName != "Artist A" {
			t.Fatalf("Alias %q: expected Artist A, got %+v", alias, tracks)
		}
		if !hasWarningContaining(warnings, "aliased") {
			t.Errorf("Alias %q: expected an aliasing warning, got %v", alias, warnings)
		}
	}
}

func TestLoadTrackMetadataMissingFile(t *testing.T) {
	tracks, warnings, err := LoadTrackMetadata(filepath.Join(t.TempDir(), "nope.csv"))
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if len(tracks) != 0 {
		t.Errorf("Expected empty track set, got %d tracks", len(tracks))
	}
	if !hasWarningContaining(warnings, "unreadable") {
		t.Errorf("Expected an unreadable-source warning, got %v", warnings)
	}
}

func TestLoadTrackMetadataMissingColumns(t *testing.T) {
	path := writeMetadata(t, strings.Join([]string{
		"tempo",
		"120",
		"135",
	}, "\n"))

	tracks, warnings, err := LoadTrackMetadata(path)
	if err != nil {
		t.Fatalf("LoadTrackMetadata: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("Expected 2 tracks, got %d", len(tracks))
	}
	if !hasWarningContaining(warnings, "missing") {
		t.Errorf("Expected missing-column warnings, got %v", warnings)
	}
	if tracks[0].TrackID != 1 || tracks[1].TrackID != 2 {
		t.Errorf("Expected synthesized track ids 1 and 2, got %d and %d", tracks[0].TrackID, tracks[1].TrackID)
	}
	for _, track := range tracks {
		if track.ArtistName != UnknownArtist {
			t.Errorf("Expected placeholder artist, got %q", track.ArtistName)
		}
		if track.TrackName == "" {
			t.Errorf("Expected placeholder track name, got empty string")
		}
	}
	if got := tracks[1].AudioFeatures["tempo"]; got != 135 {
		t.Errorf("Expected tempo 135, got %v", got)
	}
}

func TestLoadTrackMetadataEmptyArtistCell(t *testing.T) {
	path := writeMetadata(t, strings.Join([]string{
		"track_id,track_name,artist_name",
		"1,Track One,",
	}, "\n"))

	tracks, _, err := LoadTrackMetadata(path)
	if err != nil {
		t.Fatalf("LoadTrackMetadata: %v", err)
	}
	if tracks[0].ArtistName != UnknownArtist {
		t.Errorf("Expected empty artist backfilled with %q, got %q", UnknownArtist, tracks[0].ArtistName)
	}
}

func TestLoadTrackMetadataDuplicateIDs(t *testing.T) {
	path := writeMetadata(t, strings.Join([]string{
		"track_id,track_name,artist_name",
		"1,First,Artist A",
		"1,Second,Artist B",
	}, "\n"))

	tracks, warnings, err := LoadTrackMetadata(path)
	if err != nil {
		t.Fatalf("LoadTrackMetadata: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("Expected duplicate dropped, got %d tracks", len(tracks))
	}
	if tracks[0].TrackName != "First" {
		t.Errorf("Expected first occurrence kept, got %q", tracks[0].TrackName)
	}
	if !hasWarningContaining(warnings, "duplicate") {
		t.Errorf("Expected a duplicate warning, got %v", warnings)
	}
}

func hasWarningContaining(warnings []string, substring string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substring) {
			return true
		}
	}
	return false
}
