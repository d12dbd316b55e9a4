package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/analysis"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/report"
	"github.com/pable/go-pitch-metrics/pkg/metrics"
)

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Show pass rows dropped for missing or off-pitch coordinates",
	Args:  cobra.NoArgs,
	RunE:  runQuality,
}

func runQuality(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := loadEvents(db, model.AllMatches)
	if err != nil {
		return err
	}

	done := metrics.Timer("quality")
	rep := analysis.Quality(events)
	done()

	if rep.Kept == 0 && rep.Total() == 0 {
		noData("No pass events stored.")
		return nil
	}
	metrics.RecordRowsDropped(rep.Total())
	report.PrintDropReport(os.Stdout, rep)
	return nil
}
