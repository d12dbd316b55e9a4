package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/analysis"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/render"
	"github.com/pable/go-pitch-metrics/internal/report"
	"github.com/pable/go-pitch-metrics/pkg/metrics"
)

var (
	teamMatch   string
	teamSVG     string
	teamHeatmap string
	teamFocus   string
)

// teamCmd shows the team view of one match.
var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Team view: stats, pass network, zones and heatmap for one match",
	Args:  cobra.NoArgs,
	RunE:  runTeam,
}

func init() {
	teamCmd.Flags().StringVar(&teamMatch, "match", "", "match identifier (rival)")
	teamCmd.Flags().StringVar(&teamSVG, "svg", "", "write the pass network to this SVG file")
	teamCmd.Flags().StringVar(&teamHeatmap, "heatmap", "", "write the pass-start heatmap to this SVG file")
	teamCmd.Flags().StringVar(&teamFocus, "player", "", "mark this player's row")
	teamCmd.MarkFlagRequired("match")
}

func runTeam(cmd *cobra.Command, args []string) error {
	match := model.MatchID(teamMatch)
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := loadEvents(db, model.MatchScope(match))
	if err != nil {
		return err
	}

	done := metrics.Timer("team")
	view := analysis.Team(events, match)
	done()

	if view.Empty() {
		noData("No data for match %q.", match)
		return nil
	}

	section("Team stats vs " + string(match))
	report.PrintTeamStats(os.Stdout, view.Stats, teamFocus)

	section("Pass network")
	if view.Network.Empty() {
		noData("No completed passes with usable coordinates.")
	} else {
		report.PrintNetwork(os.Stdout, view.Network)
	}

	section("Zones")
	report.PrintZones(os.Stdout, view.StartZones, view.EndZones)

	section("Pass starts")
	report.PrintHistogram(os.Stdout, view.Heatmap)
	noteDropped(view.Dropped)

	if teamSVG != "" {
		title := fmt.Sprintf("Pass network vs %s", match)
		if err := writeSVG(teamSVG, func(w io.Writer) { render.Network(w, title, view.Network) }); err != nil {
			return err
		}
	}
	if teamHeatmap != "" {
		title := fmt.Sprintf("Pass starts vs %s", match)
		if err := writeSVG(teamHeatmap, func(w io.Writer) { render.Heatmap(w, title, view.Heatmap) }); err != nil {
			return err
		}
	}
	return nil
}
