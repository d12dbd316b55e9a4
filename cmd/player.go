package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/aggregator"
	"github.com/pable/go-pitch-metrics/internal/analysis"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/render"
	"github.com/pable/go-pitch-metrics/internal/report"
	"github.com/pable/go-pitch-metrics/pkg/metrics"
)

var (
	playerMatch string
	playerSVG   string
)

// playerCmd shows one player's pass map and statistics.
var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Individual view: pass map and stats for one player",
	Long: `Show one player's statistics for a match alongside their totals over
every stored match. Without --match, the first match (by id) the player
appears in is used. With --svg, the match pass map is written as SVG.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlayer,
}

func init() {
	playerCmd.Flags().StringVar(&playerMatch, "match", "", "match identifier (rival)")
	playerCmd.Flags().StringVar(&playerSVG, "svg", "", "write the pass map to this SVG file")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	name := args[0]
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := loadEvents(db, model.AllMatches)
	if err != nil {
		return err
	}

	match := model.MatchID(playerMatch)
	if match == "" {
		match = firstMatchOf(events, name)
		if match == "" {
			noData("No events found for player %q.", name)
			return nil
		}
	}

	done := metrics.Timer("player")
	view := analysis.Individual(events, match, name)
	done()

	if view.Empty() {
		noData("No data for %s in %s.", name, match)
		return nil
	}

	section(fmt.Sprintf("%s vs %s", name, match))
	report.PrintPlayerStats(os.Stdout, view.MatchStats, view.Overall)
	noteDropped(view.Dropped)

	if playerSVG != "" {
		title := fmt.Sprintf("%s vs %s", name, match)
		return writeSVG(playerSVG, func(w io.Writer) { render.PassMap(w, title, view.Arrows) })
	}
	return nil
}

// firstMatchOf returns the first match id, in sorted order, where player has an event.
func firstMatchOf(events []model.Event, player string) model.MatchID {
	for _, m := range aggregator.Matches(events) {
		for _, p := range aggregator.Players(events, model.MatchScope(m)) {
			if p == player {
				return m
			}
		}
	}
	return ""
}
