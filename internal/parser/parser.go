// Package parser reads semicolon-delimited match event sheets and turns them
// into tagged model.Event records.
package parser

import (
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// DefaultDelimiter is the column separator used by the scouting sheets.
const DefaultDelimiter = ';'

// Column names every match sheet must carry.
const (
	ColPlayer   = "Player"
	ColEvent    = "Event"
	ColX        = "X"
	ColY        = "Y"
	ColX2       = "X2"
	ColY2       = "Y2"
	ColResult   = "Result"
	ColReceiver = "recep"
)

// RequiredColumns lists the columns Load needs, in sheet order.
var RequiredColumns = []string{ColPlayer, ColEvent, ColX, ColY, ColX2, ColY2, ColResult, ColReceiver}

// Table is a raw table: one header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Source is one match's raw table tagged with its match id.
type Source struct {
	Match model.MatchID
	Path  string
	Hash  string // sha256 of the file, empty for in-memory tables
	Table Table
}

// ReadTable reads a delimited table. Rows shorter than the header are padded
// with blanks; longer rows and malformed quoting are errors.
func ReadTable(r io.Reader, delimiter rune) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err == io.EOF {
		return Table{}, errors.New("read header: empty table")
	}
	if err != nil {
		return Table{}, fmt.Errorf("read header: %w", err)
	}
	t := Table{Header: hdr}
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return Table{}, fmt.Errorf("read row: %w", err)
		}
		if len(rec) > len(hdr) {
			return Table{}, fmt.Errorf("row %d: %d fields, header has %d", line, len(rec), len(hdr))
		}
		for len(rec) < len(hdr) {
			rec = append(rec, "")
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// ParseFile opens, hashes and reads the sheet at path.
func ParseFile(path string, match model.MatchID, delimiter rune) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	// Hash file for idempotency key.
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("hash sheet: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek sheet: %w", err)
	}

	table, err := ReadTable(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Source{
		Match: match,
		Path:  path,
		Hash:  fmt.Sprintf("%x", h.Sum(nil)),
		Table: table,
	}, nil
}

// Load tags every source row with its match id and concatenates them. Row
// order within a match is preserved; no event type is filtered out. A source
// missing required columns contributes no events and its *SchemaError is
// joined into the returned error; the other sources still load.
func Load(sources []Source) ([]model.Event, error) {
	var (
		out  []model.Event
		errs []error
	)
	for _, src := range sources {
		events, err := Events(src)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, events...)
	}
	return out, errors.Join(errs...)
}

// Events converts a single source into events. Rows shorter than the header
// read their missing cells as blank.
func Events(src Source) ([]model.Event, error) {
	idx, err := columnIndex(src.Match, src.Table.Header)
	if err != nil {
		return nil, err
	}
	events := make([]model.Event, 0, len(src.Table.Rows))
	for i, row := range src.Table.Rows {
		cell := func(col string) string {
			if j := idx[col]; j < len(row) {
				return row[j]
			}
			return ""
		}
		code := strings.TrimSpace(cell(ColEvent))
		events = append(events, model.Event{
			Match:    src.Match,
			Seq:      i,
			Player:   strings.TrimSpace(cell(ColPlayer)),
			Code:     code,
			Type:     model.EventTypeFromCode(code),
			X:        ParseCoord(cell(ColX)),
			Y:        ParseCoord(cell(ColY)),
			X2:       ParseCoord(cell(ColX2)),
			Y2:       ParseCoord(cell(ColY2)),
			Receiver: strings.TrimSpace(cell(ColReceiver)),
			Result:   strings.TrimSpace(cell(ColResult)),
		})
	}
	return events, nil
}

// ParseCoord parses a coordinate cell. Blanks, the "-" placeholder and anything
// that is not a finite number become model.Missing.
func ParseCoord(s string) model.Coord {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return model.Missing
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return model.Missing
	}
	return model.At(v)
}

// columnIndex maps required column names to header positions.
func columnIndex(match model.MatchID, header []string) (map[string]int, error) {
	idx := make(map[string]int, len(RequiredColumns))
	for _, want := range RequiredColumns {
		idx[want] = -1
		for i, h := range header {
			h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
			if strings.EqualFold(h, want) {
				idx[want] = i
				break
			}
		}
	}
	var missing []string
	for _, want := range RequiredColumns {
		if idx[want] < 0 {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Match: match, Missing: missing}
	}
	return idx, nil
}
