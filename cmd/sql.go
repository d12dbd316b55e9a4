package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Query the raw event log",
	Long: `Query the raw event log with SQLite and print the result as a table.
Derived statistics are not stored; only matches and their events are.

  matches  match_id, source_path, file_hash, import_id, imported_at, row_count
  events   match_id, seq, player, code, x, y, x2, y2, receiver, result

x/y/x2/y2 are NULL where the sheet cell was blank or "-". y is stored as
recorded, before any display flip.

Example:
  pitchmetrics sql "SELECT player, COUNT(*) FROM events WHERE code = 'PB' GROUP BY player"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(strings.Join(args, " "))
	if err != nil {
		return err
	}
	report.PrintRows(os.Stdout, cols, rows)
	return nil
}
