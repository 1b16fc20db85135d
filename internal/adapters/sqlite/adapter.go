// Package sqlite provides a SQLite-backed implementation of the run
// repository port: an audit log of generated playlists.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

// Adapter implements the run repository port for SQLite.
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.RunRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Save persists one generation run and its selected tracks. A missing run
// ID is filled in here.
func (a *Adapter) Save(ctx context.Context, run domain.RunRecord) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryRun := `
		INSERT INTO runs (id, playlist_id, name, description, track_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, queryRun,
		run.ID, run.PlaylistID, run.Name, run.Description, run.TrackCount, run.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_tracks (run_id, position, track_id, title, artists, score)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range run.Tracks {
		if _, err := stmt.ExecContext(ctx, run.ID, t.Position, t.TrackID, t.Title, t.Artists, t.Score); err != nil {
			return fmt.Errorf("failed to save run track %s: %w", t.TrackID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}

	return nil
}

// Recent returns the most recent runs, newest first, tracks included.
func (a *Adapter) Recent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, playlist_id, name, description, track_count, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		var run domain.RunRecord
		if err := rows.Scan(&run.ID, &run.PlaylistID, &run.Name, &run.Description, &run.TrackCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	for i := range runs {
		tracks, err := a.runTracks(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Tracks = tracks
	}

	return runs, nil
}

func (a *Adapter) runTracks(ctx context.Context, runID string) ([]domain.RunTrack, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT position, track_id, title, artists, score
		FROM run_tracks
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run tracks: %w", err)
	}
	defer rows.Close()

	var tracks []domain.RunTrack
	for rows.Next() {
		var t domain.RunTrack
		if err := rows.Scan(&t.Position, &t.TrackID, &t.Title, &t.Artists, &t.Score); err != nil {
			return nil, fmt.Errorf("failed to scan run track: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run tracks: %w", err)
	}

	return tracks, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		playlist_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		track_count INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS run_tracks (
		run_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		track_id TEXT NOT NULL,
		title TEXT NOT NULL,
		artists TEXT,
		score REAL,
		PRIMARY KEY (run_id, position),
		FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	return nil
}
