// Package store persists ingested interactions to a local SQLite database
// for offline analysis. The pipeline core never depends on it; only the CLI
// commands read and write here.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	query := `
CREATE TABLE IF NOT EXISTS Track (
  id INTEGER PRIMARY KEY,
  name TEXT,
  artist TEXT
);

CREATE TABLE IF NOT EXISTS Interaction (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user INTEGER NOT NULL,
  track INTEGER NOT NULL,
  action TEXT NOT NULL,
  date INTEGER NOT NULL,
  UNIQUE (user, track, action, date),
  FOREIGN KEY (track) REFERENCES Track(id)
);

CREATE INDEX IF NOT EXISTS idx_interaction_user_date ON Interaction(user, date);
`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}
