package dataset

import (
	"fmt"
	"time"
)

// IngestConfig controls one ingestion pass.
type IngestConfig struct {
	// MetadataPath is the tabular track metadata source. May be empty or
	// point at a missing file; ingestion then proceeds with synthetic ids.
	MetadataPath string

	// Interactions is the number of synthetic events to generate.
	Interactions int

	// LogPath, when set, receives the flat-file interaction log.
	LogPath string

	// Seed drives all synthetic randomness.
	Seed int64

	// Now anchors the trailing 24-hour timestamp window. Zero means
	// time.Now().
	Now time.Time
}

// Ingest loads track metadata and synthesizes aligned interaction and
// context streams. Schema problems in the metadata source degrade to
// placeholders and are returned as warnings, never as errors.
func Ingest(cfg IngestConfig) (*RawData, []string, error) {
	if cfg.Interactions < 0 {
		return nil, nil, fmt.Errorf("interaction count must be non-negative, got %d", cfg.Interactions)
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	tracks, warnings, err := LoadTrackMetadata(cfg.MetadataPath)
	if err != nil {
		return nil, warnings, fmt.Errorf("loading track metadata: %w", err)
	}

	trackIDs := make([]int64, 0, len(tracks))
	for _, t := range tracks {
		trackIDs = append(trackIDs, t.TrackID)
	}

	gen := NewGenerator(cfg.Seed, now)
	raw := &RawData{
		Interactions: gen.Interactions(cfg.Interactions, trackIDs),
		Tracks:       tracks,
		Context:      gen.Context(cfg.Interactions),
	}

	if cfg.LogPath != "" {
		if err := PersistInteractionLog(cfg.LogPath, raw.Interactions); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	return raw, warnings, nil
}
