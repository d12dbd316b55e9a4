package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/pable/go-pitch-metrics/internal/logger"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/pitch"
	"github.com/pable/go-pitch-metrics/internal/storage"
	"github.com/pable/go-pitch-metrics/pkg/metrics"
)

var (
	cMuted  = color.New(color.Faint)
	cError  = color.New(color.FgRed, color.Bold)
	cWarn   = color.New(color.FgYellow)
	cHeader = color.New(color.FgCyan, color.Bold)
	cOK     = color.New(color.FgGreen)
)

func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadEvents reads the raw event log for scope.
func loadEvents(db *storage.DB, scope model.Scope) ([]model.Event, error) {
	events, err := db.Events(scope)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	logger.GetLogger().WithField("scope", scope.String()).WithField("events", len(events)).Debug("events loaded")
	return events, nil
}

// noteDropped records rows removed by cleaning and mentions them when present.
func noteDropped(rep pitch.DropReport) {
	n := rep.Total()
	if n == 0 {
		return
	}
	metrics.RecordRowsDropped(n)
	for m, c := range rep.Dropped {
		logger.WithMatch(string(m), "").WithField("dropped", c).Debug("pass rows without usable coordinates")
	}
	cMuted.Fprintf(os.Stdout, "(%d pass row(s) skipped for missing or off-pitch coordinates)\n", n)
}

// noData prints the friendly empty-scope message.
func noData(format string, args ...any) {
	cWarn.Fprintf(os.Stdout, format+"\n", args...)
}

func section(title string) {
	cHeader.Fprintf(os.Stdout, "\n--- %s ---\n\n", title)
}

func writeSVG(path string, draw func(w io.Writer)) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	draw(f)
	if err := f.Close(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	cOK.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}
