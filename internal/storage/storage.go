// Package storage persists the raw match event log in SQLite. Only raw events
// are stored; every derived statistic is recomputed from them on demand.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// pragmas applied to every connection. Deleting a match cascades to its events.
var pragmas = []string{"foreign_keys(1)", "journal_mode(WAL)"}

// DB is the event log.
type DB struct {
	conn *sql.DB
}

func dsn(path string) string {
	params := make([]string, len(pragmas))
	for i, p := range pragmas {
		params[i] = "_pragma=" + p
	}
	return "file:" + path + "?" + strings.Join(params, "&")
}

// Open opens the event log at path, creating the file and tables on first use.
// Pass ":memory:" for a throwaway log.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open event log %s: %w", path, err)
	}
	// ":memory:" databases live per connection.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) migrate() error {
	if _, err := db.conn.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create event log tables: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}
