// Package storage keeps a ledger of finished simulated matches. It records
// outcomes only; matches in progress are never stored or resumed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// InitSQLite opens (creating if needed) the ledger database at dbPath.
func InitSQLite(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one writer; sqlite serialises anyway
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}
	return db, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS batches (
			batch_id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			runs INTEGER NOT NULL,
			board_size INTEGER NOT NULL,
			started_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS matches (
			match_id TEXT PRIMARY KEY,
			batch_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			winner TEXT NOT NULL,
			winner_index INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			shots INTEGER NOT NULL,
			rejected INTEGER NOT NULL,
			restarts INTEGER NOT NULL,
			FOREIGN KEY (batch_id) REFERENCES batches(batch_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_matches_batch ON matches(batch_id);`,
	}
	for _, s := range schemas {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
