package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/omustardo/proton-save-finder/internal/types"
)

// Store is the sqlite-backed catalog cache. One row per app plus a meta row
// recording when the catalog was downloaded.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the catalog database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog cache: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS apps (
		appid INTEGER PRIMARY KEY,
		name  TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating catalog schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Apps returns the cached catalog and the time it was downloaded. An empty
// cache returns no apps and a zero time, not an error.
func (s *Store) Apps() ([]types.SteamApp, time.Time, error) {
	var fetchedAt time.Time
	var unix int64
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'fetched_at'`).Scan(&unix)
	switch {
	case err == sql.ErrNoRows:
		// fall through with zero time
	case err != nil:
		return nil, time.Time{}, err
	default:
		fetchedAt = time.Unix(unix, 0)
	}

	rows, err := s.db.Query(`SELECT appid, name FROM apps ORDER BY appid`)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var apps []types.SteamApp
	for rows.Next() {
		var app types.SteamApp
		if err := rows.Scan(&app.AppID, &app.Name); err != nil {
			return nil, time.Time{}, err
		}
		apps = append(apps, app)
	}

	return apps, fetchedAt, rows.Err()
}

// Replace swaps the cached catalog for the given one inside a transaction.
func (s *Store) Replace(apps []types.SteamApp, fetchedAt time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM apps`); err != nil {
		return err
	}

	insert, err := tx.Prepare(`INSERT OR REPLACE INTO apps (appid, name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer insert.Close()

	for _, app := range apps {
		if _, err := insert.Exec(app.AppID, app.Name); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('fetched_at', ?)`, fetchedAt.Unix()); err != nil {
		return err
	}

	return tx.Commit()
}
