package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIngestWithMetadata(t *testing.T) {
	dir := t.TempDir()
	metadata := filepath.Join(dir, "metadata.csv")
	contents := "track_id,track_name,artist_name\n1,X,A\n2,Y,B\n"
	if err := os.WriteFile(metadata, []byte(contents), 0644); err != nil {
		t.Fatalf("writing metadata: %v", err)
	}

	logPath := filepath.Join(dir, "interaction_log.csv")
	raw, warnings, err := Ingest(IngestConfig{
		MetadataPath: metadata,
		Interactions: 20,
		LogPath:      logPath,
		Seed:         1,
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if len(raw.Tracks) != 2 {
		t.Fatalf("Expected 2 tracks, got %d", len(raw.Tracks))
	}
	if len(raw.Interactions) != 20 || len(raw.Context) != 20 {
		t.Fatalf("Expected 20 interactions and contexts, got %d and %d", len(raw.Interactions), len(raw.Context))
	}
	for i, ev := range raw.Interactions {
		if ev.TrackID != 1 && ev.TrackID != 2 {
			t.Fatalf("Event %d references unknown track %d", i, ev.TrackID)
		}
	}

	f, err := os.Open(logPath)
	if err != nil {
		t.Fatalf("Interaction log was not written: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading interaction log: %v", err)
	}
	if len(records) != 21 {
		t.Fatalf("Expected header plus 20 rows, got %d", len(records))
	}
}

func TestIngestMissingMetadataFallsBack(t *testing.T) {
	raw, warnings, err := Ingest(IngestConfig{
		MetadataPath: filepath.Join(t.TempDir(), "nope.csv"),
		Interactions: 10,
	})
	if err != nil {
		t.Fatalf("Ingest should degrade, not fail: %v", err)
	}
	if len(raw.Tracks) != 0 {
		t.Errorf("Expected empty track set, got %d", len(raw.Tracks))
	}
	if len(warnings) == 0 {
		t.Errorf("Expected a missing-source warning")
	}
	for i, ev := range raw.Interactions {
		if ev.TrackID < 1 || ev.TrackID > 100 {
			t.Fatalf("Event %d: track %d outside fallback range", i, ev.TrackID)
		}
	}
}

func TestIngestLogFailureIsWarning(t *testing.T) {
	raw, warnings, err := Ingest(IngestConfig{
		MetadataPath: filepath.Join(t.TempDir(), "nope.csv"),
		Interactions: 5,
		LogPath:      filepath.Join(t.TempDir(), "missing-dir", "log.csv"),
	})
	if err != nil {
		t.Fatalf("Log write failure must not abort ingestion: %v", err)
	}
	if len(raw.Interactions) != 5 {
		t.Fatalf("Expected 5 interactions, got %d", len(raw.Interactions))
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "interaction log") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a log-persist warning, got %v", warnings)
	}
}

func TestIngestNegativeCount(t *testing.T) {
	_, _, err := Ingest(IngestConfig{Interactions: -1})
	if err == nil {
		t.Fatalf("Expected error for negative interaction count")
	}
}
