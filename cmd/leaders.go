package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/aggregator"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/report"
	"github.com/pable/go-pitch-metrics/pkg/metrics"
)

var (
	leadersMetric string
	leadersMatch  string
	leadersN      int
)

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Top players by a metric",
	Long: `Rank players by accuracy, goals, recoveries, passes or shots, over one
match or every stored match. Ties are listed alphabetically.`,
	Args: cobra.NoArgs,
	RunE: runLeaders,
}

func init() {
	leadersCmd.Flags().StringVar(&leadersMetric, "metric", string(aggregator.MetricGoals), "accuracy, goals, recoveries, passes or shots")
	leadersCmd.Flags().StringVar(&leadersMatch, "match", "", "restrict to one match (default: all matches)")
	leadersCmd.Flags().IntVarP(&leadersN, "top", "n", 0, "number of players (default from config)")
}

func runLeaders(cmd *cobra.Command, args []string) error {
	metric, err := aggregator.ParseMetric(leadersMetric)
	if err != nil {
		return err
	}
	n := leadersN
	if n <= 0 {
		n = cfg.TopN
	}
	scope := model.MatchScope(model.MatchID(leadersMatch))

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := loadEvents(db, scope)
	if err != nil {
		return err
	}

	done := metrics.Timer("leaders")
	entries := aggregator.Leaderboard(events, scope, metric, n)
	done()

	if len(entries) == 0 {
		noData("No players in %s.", scope)
		return nil
	}
	section("Top " + string(metric) + ", " + scope.String())
	report.PrintLeaderboard(os.Stdout, metric, entries)
	return nil
}
