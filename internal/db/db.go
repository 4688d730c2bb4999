// Package db owns the SQLite connection and schema for session
// persistence.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var (
	conn        *sql.DB
	initialized bool
)

// GetDB returns the database connection, initializing it on first use.
func GetDB() (*sql.DB, error) {
	if conn != nil {
		return conn, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".scriptsplit")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .scriptsplit directory: %w", err)
	}

	conn, err = sql.Open("sqlite3", filepath.Join(dir, "scriptsplit.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if !initialized {
		initialized = true
		if _, err := conn.Exec(GetSchemaSQL()); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return conn, nil
}

// Close closes the database connection.
func Close() error {
	if conn == nil {
		return nil
	}
	err := conn.Close()
	conn = nil
	initialized = false
	return err
}
