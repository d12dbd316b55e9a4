package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// SourceExists returns true if a sheet with the given file hash is already stored.
func (db *DB) SourceExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE file_hash = ?", hash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ImportMatch replaces a match and its raw events in a single transaction.
// ImportID and ImportedAt are filled in when empty; the stored summary is returned.
func (db *DB) ImportMatch(summary model.MatchSummary, events []model.Event) (model.MatchSummary, error) {
	if summary.ImportID == "" {
		summary.ImportID = uuid.NewString()
	}
	if summary.ImportedAt == "" {
		summary.ImportedAt = time.Now().UTC().Format(time.RFC3339)
	}
	summary.RowCount = len(events)

	tx, err := db.conn.Begin()
	if err != nil {
		return summary, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM events WHERE match_id = ?", string(summary.Match)); err != nil {
		return summary, fmt.Errorf("clear events: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO matches(match_id, source_path, file_hash, import_id, imported_at, row_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(summary.Match), summary.SourcePath, summary.FileHash,
		summary.ImportID, summary.ImportedAt, summary.RowCount,
	); err != nil {
		return summary, fmt.Errorf("insert match: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events(match_id, seq, player, code, x, y, x2, y2, receiver, result)
		VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return summary, err
	}
	defer stmt.Close()

	for _, e := range events {
		_, err = stmt.Exec(
			string(summary.Match), e.Seq, e.Player, e.Code,
			nullCoord(e.X), nullCoord(e.Y), nullCoord(e.X2), nullCoord(e.Y2),
			e.Receiver, e.Result,
		)
		if err != nil {
			return summary, fmt.Errorf("insert event %d: %w", e.Seq, err)
		}
	}
	return summary, tx.Commit()
}

// DeleteMatch removes a match and its events. Deleting an unknown match is not an error.
func (db *DB) DeleteMatch(match model.MatchID) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec("DELETE FROM events WHERE match_id = ?", string(match)); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM matches WHERE match_id = ?", string(match)); err != nil {
		return err
	}
	return tx.Commit()
}

// ListMatches returns all stored match summaries ordered by match id.
func (db *DB) ListMatches() ([]model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, source_path, file_hash, import_id, imported_at, row_count
		FROM matches ORDER BY match_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetMatch returns the summary of one match, or nil if it is not stored.
func (db *DB) GetMatch(match model.MatchID) (*model.MatchSummary, error) {
	row := db.conn.QueryRow(`
		SELECT match_id, source_path, file_hash, import_id, imported_at, row_count
		FROM matches WHERE match_id = ?`, string(match))
	s, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Events returns the raw events in scope, ordered by match then row.
func (db *DB) Events(scope model.Scope) ([]model.Event, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, seq, player, code, x, y, x2, y2, receiver, result
		FROM events
		WHERE ? = '' OR match_id = ?
		ORDER BY match_id, seq`, string(scope.Match), string(scope.Match))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var (
			e      model.Event
			match  string
			x, y   sql.NullFloat64
			x2, y2 sql.NullFloat64
		)
		if err := rows.Scan(&match, &e.Seq, &e.Player, &e.Code, &x, &y, &x2, &y2, &e.Receiver, &e.Result); err != nil {
			return nil, err
		}
		e.Match = model.MatchID(match)
		e.Type = model.EventTypeFromCode(e.Code)
		e.X, e.Y, e.X2, e.Y2 = coordOf(x), coordOf(y), coordOf(x2), coordOf(y2)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Overview holds high-level counts for the summary command.
type Overview struct {
	Matches int
	Events  int
	Players int
}

// GetOverview counts matches, events and distinct identified players.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT
			(SELECT COUNT(1) FROM matches),
			(SELECT COUNT(1) FROM events),
			(SELECT COUNT(DISTINCT player) FROM events
			 WHERE TRIM(player) <> '' AND LOWER(TRIM(player)) <> 'unknown')`).
		Scan(&ov.Matches, &ov.Events, &ov.Players)
	return ov, err
}

// CodeCount is the number of events carrying one raw Event code.
type CodeCount struct {
	Code  string
	Count int
}

// GetCodeCounts returns event counts per raw code, most frequent first.
func (db *DB) GetCodeCounts() ([]CodeCount, error) {
	rows, err := db.conn.Query(`
		SELECT code, COUNT(1) AS n FROM events GROUP BY code ORDER BY n DESC, code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CodeCount
	for rows.Next() {
		var c CodeCount
		if err := rows.Scan(&c.Code, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch t := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(t)
			default:
				row[i] = fmt.Sprint(t)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(s scanner) (model.MatchSummary, error) {
	var (
		out   model.MatchSummary
		match string
	)
	err := s.Scan(&match, &out.SourcePath, &out.FileHash, &out.ImportID, &out.ImportedAt, &out.RowCount)
	out.Match = model.MatchID(match)
	return out, err
}

func nullCoord(c model.Coord) sql.NullFloat64 {
	return sql.NullFloat64{Float64: c.V, Valid: c.Valid}
}

func coordOf(n sql.NullFloat64) model.Coord {
	if !n.Valid {
		return model.Missing
	}
	return model.At(n.Float64)
}
