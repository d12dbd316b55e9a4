package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/analysis"
	"github.com/pable/go-pitch-metrics/internal/config"
	"github.com/pable/go-pitch-metrics/internal/logger"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/parser"
	"github.com/pable/go-pitch-metrics/internal/storage"
	"github.com/pable/go-pitch-metrics/pkg/metrics"
)

var (
	importAll   bool
	importForce bool
)

var importCmd = &cobra.Command{
	Use:   "import <match> <sheet.csv>",
	Short: "Import a match event sheet into the event log",
	Long: `Read a delimited match sheet and store its raw events under the given
match identifier (the rival's name). Re-importing a match replaces it.

With --all, every source listed under "sources" in the config file is imported.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if importAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importAll, "all", false, "import every configured source")
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "re-import even if the same file is already stored")
}

func runImport(cmd *cobra.Command, args []string) error {
	sources := cfg.Sources
	if !importAll {
		sources = []config.Source{{Match: args[0], Path: args[1]}}
	}
	if len(sources) == 0 {
		return fmt.Errorf("import --all: %w", config.ErrNoSources)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var failed int
	for _, src := range sources {
		if err := importOne(db, src); err != nil {
			if !importAll {
				return err
			}
			failed++
			cError.Fprintf(os.Stderr, "%s: %v\n", src.Match, err)
		}
	}

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	metrics.UpdateStoredEvents(ov.Events)

	if failed > 0 {
		return fmt.Errorf("%d of %d source(s) failed to import", failed, len(sources))
	}
	return nil
}

func importOne(db *storage.DB, src config.Source) error {
	log := logger.WithMatch(src.Match, src.Path)

	parsed, err := parser.ParseFile(src.Path, model.MatchID(src.Match), cfg.DelimiterRune())
	if err != nil {
		return fmt.Errorf("parse sheet: %w", err)
	}

	if !importForce {
		exists, err := db.SourceExists(parsed.Hash)
		if err != nil {
			return fmt.Errorf("check source: %w", err)
		}
		if exists {
			cMuted.Fprintf(os.Stdout, "%s: %s already stored, skipping (use --force to re-import).\n", src.Match, src.Path)
			log.Debug("source already stored")
			return nil
		}
	}

	events, err := parser.Events(*parsed)
	if err != nil {
		if errors.Is(err, parser.ErrSchema) {
			metrics.RecordSchemaError()
		}
		return fmt.Errorf("read events: %w", err)
	}
	metrics.RecordRowsLoaded(len(events))

	stored, err := db.ImportMatch(model.MatchSummary{
		Match:      parsed.Match,
		SourcePath: parsed.Path,
		FileHash:   parsed.Hash,
	}, events)
	if err != nil {
		return fmt.Errorf("import match: %w", err)
	}
	metrics.RecordMatchImported()

	quality := analysis.Quality(events)
	log.WithField("rows", stored.RowCount).
		WithField("import_id", stored.ImportID).
		WithField("unusable_passes", quality.Total()).
		Info("match imported")

	cOK.Fprintf(os.Stdout, "%s: imported %d event(s)", stored.Match, stored.RowCount)
	if n := quality.Total(); n > 0 {
		cWarn.Fprintf(os.Stdout, ", %d pass row(s) lack usable coordinates", n)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
