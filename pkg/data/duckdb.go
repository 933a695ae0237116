package data

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// DuckStore persists snapshots in a single-table DuckDB database. It is the
// default backend; FileStore exists for environments without the native
// bindings.
type DuckStore struct {
	db *sql.DB
}

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key VARCHAR PRIMARY KEY,
		blob VARCHAR NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return db, nil
}

func NewDuckStore(path string) (*DuckStore, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("opened snapshot store", "path", path)
	return &DuckStore{db: db}, nil
}

func (s *DuckStore) LoadSnapshot(key string) ([]byte, error) {
	var blob string
	err := s.db.QueryRow("SELECT blob FROM snapshots WHERE key = ?", key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return []byte(blob), nil
}

func (s *DuckStore) SaveSnapshot(key string, blob []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO snapshots (key, blob) VALUES (?, ?)",
		key, string(blob),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

func (s *DuckStore) Close() error {
	return s.db.Close()
}
