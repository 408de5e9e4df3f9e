// Package storage keeps finished runs in SQLite using the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultPath is where the game keeps its score database.
const DefaultPath = "~/.platformer/scores.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Run is the outcome of one play session.
type Run struct {
	Player string
	// Level is the last level reached.
	Level   string
	Score   int
	Coins   int
	Cleared bool
}

// ScoreEntry is a saved run.
type ScoreEntry struct {
	ID        int64
	RunID     string
	Run       Run
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			level TEXT NOT NULL,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run under a fresh run ID, which it returns.
func (s *Store) SaveRun(r Run) (string, error) {
	runID := uuid.NewString()
	cleared := 0
	if r.Cleared {
		cleared = 1
	}
	_, err := s.db.Exec(
		"INSERT INTO runs (run_id, player, level, score, coins, cleared) VALUES (?, ?, ?, ?, ?, ?)",
		runID, r.Player, r.Level, r.Score, r.Coins, cleared,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return runID, nil
}

// TopScores returns the best runs, highest score first. A non-empty level
// limits the result to runs that ended there.
func (s *Store) TopScores(level string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, run_id, player, level, score, coins, cleared, created_at FROM runs`
	args := []any{}
	if level != "" {
		query += ` WHERE level = ?`
		args = append(args, level)
	}
	query += ` ORDER BY score DESC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e         ScoreEntry
			cleared   int
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Run.Player, &e.Run.Level, &e.Run.Score, &e.Run.Coins, &cleared, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Run.Cleared = cleared != 0

		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore is the best score ever saved, or 0.
func (s *Store) HighScore() (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}
