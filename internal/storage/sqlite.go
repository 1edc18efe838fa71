// Package storage provides SQLite-based persistence for user profiles and
// attempt history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tracker/internal/game"
)

// ErrUserTaken is returned when claiming a user ID that already exists.
var ErrUserTaken = errors.New("storage: user id already taken")

// Store manages the SQLite database connection for profile persistence.
type Store struct {
	db *sql.DB
}

// AttemptEntry is a single persisted attempt record.
type AttemptEntry struct {
	ID        int64
	Level     uint32
	Elapsed   float64
	Completed bool
	CreatedAt time.Time
}

// Result converts the entry to its game-level representation.
func (e AttemptEntry) Result() game.AttemptResult {
	return game.AttemptResult{Level: e.Level, Elapsed: e.Elapsed, Completed: e.Completed}
}

// Profile is a fully loaded user record: the personal best plus the attempt
// history in chronological order.
type Profile struct {
	UserID       uint32
	PersonalBest uint32
	History      []AttemptEntry
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

	// Open database
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

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			personal_best INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			level INTEGER NOT NULL,
			elapsed_seconds REAL NOT NULL,
			completed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(user_id)
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_user ON attempts(user_id, id);
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

// UserExists reports whether the given user ID has been claimed.
func (s *Store) UserExists(userID uint32) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM users WHERE user_id = ?", userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot check user: %w", err)
	}
	return true, nil
}

// CreateUser claims a user ID. A claimed ID stays claimed forever;
// re-claiming returns ErrUserTaken.
func (s *Store) CreateUser(userID uint32) error {
	exists, err := s.UserExists(userID)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserTaken
	}

	if _, err := s.db.Exec("INSERT INTO users (user_id) VALUES (?)", userID); err != nil {
		return fmt.Errorf("storage: cannot create user: %w", err)
	}
	return nil
}

// LoadProfile loads a user's personal best and full history.
// Returns nil (and no error) if the user does not exist.
func (s *Store) LoadProfile(userID uint32) (*Profile, error) {
	var best uint32
	err := s.db.QueryRow(
		"SELECT personal_best FROM users WHERE user_id = ?",
		userID,
	).Scan(&best)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load profile: %w", err)
	}

	history, err := s.History(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		UserID:       userID,
		PersonalBest: best,
		History:      history,
	}, nil
}

// History retrieves all attempts for the user in chronological order.
func (s *Store) History(userID uint32) ([]AttemptEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, level, elapsed_seconds, completed, created_at
		 FROM attempts
		 WHERE user_id = ?
		 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var entries []AttemptEntry
	for rows.Next() {
		var e AttemptEntry
		var completed int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Elapsed, &completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Completed = completed != 0

		// Parse the datetime - handle both time.Time and string
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

// AppendAttempt adds a result to the end of the user's history.
func (s *Store) AppendAttempt(userID uint32, res game.AttemptResult) error {
	completed := 0
	if res.Completed {
		completed = 1
	}
	_, err := s.db.Exec(
		"INSERT INTO attempts (user_id, level, elapsed_seconds, completed) VALUES (?, ?, ?, ?)",
		userID, res.Level, res.Elapsed, completed,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot append attempt: %w", err)
	}
	return nil
}

// UpdateBestIfHigher persists level as the new personal best only if it
// exceeds the stored value. The best is monotonically non-decreasing.
func (s *Store) UpdateBestIfHigher(userID uint32, level uint32) error {
	_, err := s.db.Exec(
		"UPDATE users SET personal_best = ? WHERE user_id = ? AND personal_best < ?",
		level, userID, level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update personal best: %w", err)
	}
	return nil
}

// PersonalBest returns the user's highest completed level, or 0 if the user
// has no completed attempts (or does not exist).
func (s *Store) PersonalBest(userID uint32) (uint32, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT personal_best FROM users WHERE user_id = ?",
		userID,
	).Scan(&best)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query personal best: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return uint32(best.Int64), nil
}
