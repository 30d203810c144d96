// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchResult represents one finished match.
type MatchResult struct {
	ID           int64
	Mode         string // "1P" or "2P"
	Difficulty   string // CPU preset, empty for 2P matches
	ScoreL       int
	ScoreR       int
	Winner       int // 1 = left, 2 = right
	DurationSecs int
	CreatedAt    time.Time
}

// MatchStats contains aggregated match statistics.
type MatchStats struct {
	Played     int
	LeftWins   int
	RightWins  int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			score_l INTEGER NOT NULL,
			score_r INTEGER NOT NULL,
			winner INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (mode, difficulty, score_l, score_r, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.Mode, m.Difficulty, m.ScoreL, m.ScoreR, m.Winner, m.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, difficulty, score_l, score_r, winner, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var m MatchResult
		var createdAt any
		if err := rows.Scan(&m.ID, &m.Mode, &m.Difficulty, &m.ScoreL, &m.ScoreR, &m.Winner, &m.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTimestamp(createdAt)
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats retrieves aggregated statistics across all recorded matches.
func (s *Store) Stats() (*MatchStats, error) {
	stats := &MatchStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0)
		 FROM matches`,
	).Scan(&stats.Played, &stats.LeftWins, &stats.RightWins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
