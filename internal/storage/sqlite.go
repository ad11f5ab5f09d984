// Package storage provides SQLite-based persistence for leaderboards.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/yuchenlin/typebomb/internal/game"
)

// Store manages the SQLite database connection for leaderboard persistence.
type Store struct {
	db *sql.DB
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_mode ON leaderboard(mode);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_top ON leaderboard(mode, score DESC);
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

// Load retrieves the stored leaderboard for a mode, best score first.
// Ties keep insertion order so earlier submissions rank higher.
func (s *Store) Load(mode game.Mode) ([]game.Entry, error) {
	rows, err := s.db.Query(
		`SELECT name, score, created_at
		 FROM leaderboard
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		string(mode), game.MaxLeaderboardEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []game.Entry
	for rows.Next() {
		var e game.Entry
		var createdAt any
		if err := rows.Scan(&e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Save replaces the stored leaderboard for a mode with the given entries,
// preserving their order. Runs in a transaction so a failure leaves the old
// board intact.
func (s *Store) Save(mode game.Mode, entries []game.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM leaderboard WHERE mode = ?", string(mode)); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}

	for _, e := range entries {
		createdAt := e.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		if _, err := tx.Exec(
			"INSERT INTO leaderboard (mode, name, score, created_at) VALUES (?, ?, ?, ?)",
			string(mode), e.Name, e.Score, createdAt.UTC().Format("2006-01-02 15:04:05"),
		); err != nil {
			return fmt.Errorf("storage: cannot save entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit leaderboard: %w", err)
	}
	return nil
}

// HighScore returns the best stored score for a mode.
// Returns 0 if no entries exist.
func (s *Store) HighScore(mode game.Mode) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM leaderboard WHERE mode = ?",
		string(mode),
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Clear deletes all entries for the given mode.
func (s *Store) Clear(mode game.Mode) error {
	_, err := s.db.Exec("DELETE FROM leaderboard WHERE mode = ?", string(mode))
	if err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
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

// Ensure Store satisfies the engine's persistence contract.
var _ game.Leaderboard = (*Store)(nil)
