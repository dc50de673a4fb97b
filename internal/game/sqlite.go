package game

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"github.com/user/brain-heist/internal/interfaces"
	"github.com/user/brain-heist/internal/types"
)

// SQLiteStore persists game states as JSON blobs in SQLite, one row per
// identity.
type SQLiteStore struct {
	db *sql.DB
}

var _ interfaces.Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) an SQLite database at the given DSN
// and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS game_states (
		user_id TEXT PRIMARY KEY,
		state BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("migrate game_states: %w", err)
	}
	return nil
}

// Save upserts the state blob for the identity
func (s *SQLiteStore) Save(userID string, state *types.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO game_states (user_id, state, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		userID, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}

// Load returns the stored state, or (nil, nil) when the identity has no
// row yet.
func (s *SQLiteStore) Load(userID string) (*types.GameState, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT state FROM game_states WHERE user_id = ?`, userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load game state: %w", err)
	}

	var state types.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse game state: %w", err)
	}

	normalizeState(&state)
	return &state, nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
