package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no description exists under the requested
// name.
var ErrNotFound = errors.New("system description not found")

// Store persists named system descriptions in SQLite.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	store := &Store{conn: conn}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS systems (
		name TEXT PRIMARY KEY,
		description_json TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save stores the description under the given name, replacing any previous
// one. The description is validated by building it before it is written.
func (s *Store) Save(name string, description System) error {
	if _, err := description.Build(); err != nil {
		return err
	}

	payload, err := json.Marshal(description)
	if err != nil {
		return fmt.Errorf("marshal description %q: %w", name, err)
	}

	_, err = s.conn.Exec(
		"INSERT OR REPLACE INTO systems (name, description_json, updated_at) VALUES (?, ?, ?)",
		name, string(payload), time.Now().Unix(),
	)
	return err
}

// Load returns the description stored under the given name.
func (s *Store) Load(name string) (System, error) {
	var payload string
	if err := s.conn.Get(&payload, "SELECT description_json FROM systems WHERE name = ?", name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return System{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}

		return System{}, err
	}

	var description System
	if err := json.Unmarshal([]byte(payload), &description); err != nil {
		return System{}, fmt.Errorf("unmarshal description %q: %w", name, err)
	}

	return description, nil
}

// List returns the names of every stored description, oldest first.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.conn.Select(&names, "SELECT name FROM systems ORDER BY updated_at, name")
	return names, err
}

// Delete removes the description stored under the given name.
func (s *Store) Delete(name string) error {
	result, err := s.conn.Exec("DELETE FROM systems WHERE name = ?", name)
	if err != nil {
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return nil
}
