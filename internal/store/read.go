package store

import (
	"fmt"
	"time"
)

// ArtistCount is one row of the per-artist interaction rollup.
type ArtistCount struct {
	Artist string
	Count  int64
}

// TopArtists returns per-artist interaction counts over [start, end],
// descending. Interactions whose track has no metadata row fall into an
// "Unknown Artist" bucket via the LEFT JOIN.
func (s *Store) TopArtists(start, end time.Time) ([]ArtistCount, error) {
	const query = `
	SELECT COALESCE(Track.artist, 'Unknown Artist'), COUNT(Interaction.id)
	FROM Interaction
	LEFT JOIN Track ON Track.id = Interaction.track
	WHERE Interaction.date BETWEEN ? AND ?
	GROUP BY COALESCE(Track.artist, 'Unknown Artist')
	ORDER BY COUNT(*) DESC
	`
	rows, err := s.db.Query(query, start.Unix(), end.Unix())
	if err != nil {
		return nil, fmt.Errorf("querying top artists: %w", err)
	}
	defer rows.Close()

	var counts []ArtistCount
	for rows.Next() {
		var c ArtistCount
		if err := rows.Scan(&c.Artist, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning artist count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CountInteractions returns the number of stored interactions in
// [start, end].
func (s *Store) CountInteractions(start, end time.Time) (int64, error) {
	var count int64
	err := s.db.QueryRow(
		"SELECT COUNT(id) FROM Interaction WHERE date BETWEEN ? AND ?",
		start.Unix(), end.Unix()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting interactions: %w", err)
	}
	return count, nil
}

// HasInteractions reports whether any interactions have been recorded.
func (s *Store) HasInteractions() (bool, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(id) FROM Interaction").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking interactions: %w", err)
	}
	return count > 0, nil
}
