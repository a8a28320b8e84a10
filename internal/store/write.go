package store

import (
	"database/sql"
	"fmt"

	"github.com/soundsift/soundsift/internal/dataset"
)

// AddTracks upserts track metadata rows.
func (s *Store) AddTracks(tracks []dataset.TrackMetadata) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range tracks {
		if err := createTrack(tx, t.TrackID, t.TrackName, t.ArtistName); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// AddInteractions inserts a batch of events transactionally. Re-inserting
// the same event is a no-op, so repeated ingestion runs are idempotent.
func (s *Store) AddInteractions(events []dataset.InteractionEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ev := range events {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO Interaction (user, track, action, date) VALUES (?, ?, ?, ?)",
			ev.UserID, ev.TrackID, string(ev.Action), ev.Timestamp.Unix())
		if err != nil {
			return fmt.Errorf("inserting interaction for user %d: %w", ev.UserID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func createTrack(tx *sql.Tx, id int64, name, artist string) error {
	var dummy int64
	err := tx.QueryRow("SELECT id FROM Track WHERE id = ?", id).Scan(&dummy)
	if err == sql.ErrNoRows {
		_, err := tx.Exec("INSERT INTO Track (id, name, artist) VALUES (?, ?, ?)", id, name, artist)
		if err != nil {
			return fmt.Errorf("inserting track %d: %w", id, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking track %d: %w", id, err)
	}
	return nil
}
