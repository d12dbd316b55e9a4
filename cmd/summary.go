package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/aggregator"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/pkg/metrics"
)

// summaryCmd is the cobra command for displaying a high-level database overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the event log",
	Long: `Display aggregate counts about all matches stored in the event log:
match, event and player counts, the event code breakdown, and the most
active players.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	metrics.UpdateStoredEvents(ov.Events)
	if ov.Matches == 0 {
		noData("No matches stored yet. Run 'pitchmetrics import <match> <sheet.csv>' to add one.")
		return nil
	}

	cHeader.Fprintf(os.Stdout, "\n=== Event Log Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Matches stored : %d\n", ov.Matches)
	fmt.Fprintf(os.Stdout, "  Events         : %d\n", ov.Events)
	fmt.Fprintf(os.Stdout, "  Players seen   : %d\n", ov.Players)

	codes, err := db.GetCodeCounts()
	if err != nil {
		return fmt.Errorf("get code counts: %w", err)
	}
	section("Event codes")
	ct := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	ct.Header("CODE", "TYPE", "EVENTS")
	for _, c := range codes {
		ct.Append(c.Code, model.EventTypeFromCode(c.Code).String(), fmt.Sprintf("%d", c.Count))
	}
	ct.Render()

	// Most active players, recomputed from the raw log.
	events, err := loadEvents(db, model.AllMatches)
	if err != nil {
		return err
	}
	done := metrics.Timer("summary")
	byPlayer := aggregator.Aggregate(events, model.AllMatches)
	done()

	players := make([]*model.PlayerMatchStats, 0, len(byPlayer))
	for _, s := range byPlayer {
		players = append(players, s)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].MatchesPlayed != players[j].MatchesPlayed {
			return players[i].MatchesPlayed > players[j].MatchesPlayed
		}
		return players[i].Player < players[j].Player
	})
	if len(players) > 10 {
		players = players[:10]
	}

	section("Most active players")
	pt := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	pt.Header("NAME", "MATCHES", "PASSES", "ACC%", "GOALS", "REC")
	for _, p := range players {
		pt.Append(
			p.Player,
			fmt.Sprintf("%d", p.MatchesPlayed),
			fmt.Sprintf("%d", p.TotalPasses()),
			fmt.Sprintf("%.0f%%", p.AccuracyPct()),
			fmt.Sprintf("%d", p.Goals),
			fmt.Sprintf("%d", p.Recoveries),
		)
	}
	pt.Render()
	return nil
}
