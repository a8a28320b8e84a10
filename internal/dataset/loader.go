package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// artistAliases maps column-name variants seen in metadata exports to the
// canonical artist_name column.
var artistAliases = map[string]string{
	"artists":   "artist_name",
	"artist":    "artist_name",
	"artist_id": "artist_name",
}

var requiredColumns = []string{"track_id", "track_name", "artist_name"}

// LoadTrackMetadata reads a tabular metadata file. An absent or unreadable
// file degrades to an empty track set with a warning rather than an error;
// callers then fall back to synthetic track ids. Missing required columns
// are synthesized with placeholder values and surfaced as warnings.
func LoadTrackMetadata(path string) ([]TrackMetadata, []string, error) {
	var warnings []string

	f, err := os.Open(path)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("metadata source %q unreadable: %v; using synthetic track ids", path, err))
		return nil, warnings, nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("metadata source %q unparsable: %v; using synthetic track ids", path, err))
		return nil, warnings, nil
	}
	if len(records) == 0 {
		warnings = append(warnings, fmt.Sprintf("metadata source %q is empty; using synthetic track ids", path))
		return nil, warnings, nil
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := artistAliases[name]; ok {
			if _, exists := columns[canonical]; !exists {
				warnings = append(warnings, fmt.Sprintf("metadata column %q aliased to %q", name, canonical))
			}
			name = canonical
		}
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			warnings = append(warnings, fmt.Sprintf("metadata column %q missing; synthesizing placeholder values", required))
		}
	}

	var tracks []TrackMetadata
	seen := make(map[int64]bool)
	for rowNum, row := range records[1:] {
		track := TrackMetadata{
			TrackID:       int64(rowNum + 1),
			TrackName:     fmt.Sprintf("Track %d", rowNum+1),
			ArtistName:    UnknownArtist,
			AudioFeatures: FeatureVector{},
		}

		cell := func(name string) (string, bool) {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return "", false
			}
			value := strings.TrimSpace(row[i])
			return value, value != ""
		}

		if value, ok := cell("track_id"); ok {
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("metadata row %d: bad track_id %q, skipping", rowNum+1, value))
				continue
			}
			track.TrackID = id
		}
		if seen[track.TrackID] {
			warnings = append(warnings, fmt.Sprintf("metadata row %d: duplicate track_id %d, keeping first", rowNum+1, track.TrackID))
			continue
		}
		seen[track.TrackID] = true

		if value, ok := cell("track_name"); ok {
			track.TrackName = value
		}
		if value, ok := cell("artist_name"); ok {
			track.ArtistName = value
		}

		// Any remaining numeric column is an audio feature.
		for name, i := range columns {
			switch name {
			case "track_id", "track_name", "artist_name":
				continue
			}
			if i >= len(row) {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				continue
			}
			track.AudioFeatures[name] = value
		}

		tracks = append(tracks, track)
	}

	return tracks, warnings, nil
}
