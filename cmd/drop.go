package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/model"
)

var (
	dropForce bool
	dropMatch string
)

// dropCmd deletes one match or the whole event log.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete a match or the whole event log",
	Long:  "Delete one match with --match, or permanently delete the SQLite event log. Re-import your sheets afterwards to rebuild.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
	dropCmd.Flags().StringVar(&dropMatch, "match", "", "delete only this match")
}

func runDrop(cmd *cobra.Command, args []string) error {
	target := dbPath
	if dropMatch != "" {
		target = fmt.Sprintf("match %q in %s", dropMatch, dbPath)
	}
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", target)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}

	if dropMatch != "" {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.DeleteMatch(model.MatchID(dropMatch)); err != nil {
			return fmt.Errorf("delete match: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Deleted: %s\n", target)
		return nil
	}

	if err := os.Remove(dbPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove database: %w", err)
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		os.Remove(dbPath + suffix)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", dbPath)
	return nil
}
