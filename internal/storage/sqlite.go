// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LocalProfile is the profile used by the local `play` command.
const LocalProfile = "local"

// Store manages the SQLite database connection for high score persistence.
// Each profile (a local player or an SSH user) keeps one integer high score.
type Store struct {
	db *sql.DB
}

// ProfileScore is one persisted high score.
type ProfileScore struct {
	Profile   string
	Score     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		CREATE TABLE IF NOT EXISTS high_scores (
			profile TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC);
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

// HighScore returns the stored high score for a profile.
// Returns 0 when nothing is stored or the stored value is not a
// non-negative integer.
func (s *Store) HighScore(profile string) (int, error) {
	var raw any
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE profile = ?",
		profile,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	return sanitize(raw), nil
}

// sanitize converts whatever SQLite returned into a valid score.
func sanitize(raw any) int {
	var n int64
	switch v := raw.(type) {
	case int64:
		n = v
	case float64:
		n = int64(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}
		n = parsed
	case []byte:
		return sanitize(string(v))
	default:
		return 0
	}
	return int(max(n, 0))
}

// SaveHighScore stores a profile's high score. Negative scores are stored
// as 0. A lower value never replaces a higher one.
func (s *Store) SaveHighScore(profile string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (profile, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
		   score = MAX(excluded.score, CAST(high_scores.score AS INTEGER)),
		   updated_at = CURRENT_TIMESTAMP`,
		profile, max(score, 0),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// TopScores retrieves the best N profiles ordered by score descending.
func (s *Store) TopScores(limit int) ([]ProfileScore, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT profile, score, updated_at
		 FROM high_scores
		 ORDER BY score DESC, profile
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ProfileScore
	for rows.Next() {
		var e ProfileScore
		var raw, updatedAt any
		if err := rows.Scan(&e.Profile, &raw, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Score = sanitize(raw)

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearHighScore deletes a profile's high score.
func (s *Store) ClearHighScore(profile string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}
