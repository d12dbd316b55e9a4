package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-pitch-metrics/internal/aggregator"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/pitch"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// pct formats a percentage. Ratios over an empty denominator are already 0.
func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// PrintMatchList prints one row per stored match.
func PrintMatchList(w io.Writer, matches []model.MatchSummary) {
	table := newTable(w)
	table.Header("MATCH", "ROWS", "IMPORTED", "HASH", "SOURCE")
	for _, m := range matches {
		hash := m.FileHash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		table.Append(
			string(m.Match),
			strconv.Itoa(m.RowCount),
			m.ImportedAt,
			hash,
			m.SourcePath,
		)
	}
	table.Render()
}

// PrintPlayerStats prints a player's tallies for the selected match next to
// their totals over every match.
func PrintPlayerStats(w io.Writer, match, overall model.PlayerMatchStats) {
	table := newTable(w)
	table.Header("SCOPE", "MP", "PASSES", "CMP", "INC", "ACC%", "SHOTS", "ON_T", "SHOT_ACC%", "GOALS", "G/MP", "REC", "LOSS", "FC", "FR")
	for _, s := range []model.PlayerMatchStats{match, overall} {
		table.Append(statsRow(s.Scope.String(), s)...)
	}
	table.Render()
}

// PrintTeamStats prints one row per player followed by the team totals.
// If focus is non-empty, that player's row is marked with ">".
func PrintTeamStats(w io.Writer, ts model.TeamStats, focus string) {
	table := newTable(w)
	table.Header(" ", "PLAYER", "MP", "PASSES", "CMP", "INC", "ACC%", "SHOTS", "ON_T", "SHOT_ACC%", "GOALS", "G/MP", "REC", "LOSS", "FC", "FR")
	for _, s := range ts.Players {
		marker := " "
		if focus != "" && s.Player == focus {
			marker = ">"
		}
		table.Append(append([]any{marker}, statsRow(s.Player, s)...)...)
	}
	table.Append(append([]any{" "}, statsRow("TEAM", ts.Totals)...)...)
	table.Render()
}

func statsRow(label string, s model.PlayerMatchStats) []any {
	return []any{
		label,
		strconv.Itoa(s.MatchesPlayed),
		strconv.Itoa(s.TotalPasses()),
		strconv.Itoa(s.PassesComplete),
		strconv.Itoa(s.PassesIncomplete),
		pct(s.AccuracyPct()),
		strconv.Itoa(s.Shots),
		strconv.Itoa(s.ShotsOnTarget),
		pct(s.ShotAccuracyPct()),
		strconv.Itoa(s.Goals),
		fmt.Sprintf("%.2f", s.GoalsPerMatch()),
		strconv.Itoa(s.Recoveries),
		strconv.Itoa(s.Losses),
		strconv.Itoa(s.FoulsCommitted),
		strconv.Itoa(s.FoulsReceived),
	}
}

// PrintLeaderboard prints the ranked top-N rows for one metric.
func PrintLeaderboard(w io.Writer, metric aggregator.Metric, entries []aggregator.LeaderboardEntry) {
	table := newTable(w)
	table.Header("#", "PLAYER", metricLabel(metric), "MP", "PASSES", "GOALS", "SHOTS", "REC")
	for _, e := range entries {
		value := strconv.FormatFloat(e.Value, 'f', 0, 64)
		if metric == aggregator.MetricAccuracy {
			value = pct(e.Value)
		}
		table.Append(
			strconv.Itoa(e.Rank),
			e.Stats.Player,
			value,
			strconv.Itoa(e.Stats.MatchesPlayed),
			strconv.Itoa(e.Stats.TotalPasses()),
			strconv.Itoa(e.Stats.Goals),
			strconv.Itoa(e.Stats.Shots),
			strconv.Itoa(e.Stats.Recoveries),
		)
	}
	table.Render()
}

func metricLabel(m aggregator.Metric) string {
	switch m {
	case aggregator.MetricAccuracy:
		return "ACC%"
	case aggregator.MetricGoals:
		return "GOALS"
	case aggregator.MetricRecoveries:
		return "REC"
	case aggregator.MetricPasses:
		return "PASSES"
	case aggregator.MetricShots:
		return "SHOTS"
	default:
		return string(m)
	}
}

// PrintNetwork prints the network nodes, then its edges strongest first.
func PrintNetwork(w io.Writer, net model.Network) {
	direction := "as recorded"
	if net.Mirrored {
		direction = "mirrored"
	}
	fmt.Fprintf(w, "Goalkeeper: %s (avg x %.1f)  |  Direction: %s\n\n", net.Goalkeeper, net.GoalkeeperX, direction)

	nodes := newTable(w)
	nodes.Header("PLAYER", "X", "Y", "TOUCHES", "SIZE")
	for _, n := range net.Nodes {
		nodes.Append(
			n.Player,
			fmt.Sprintf("%.1f", n.Pos.X),
			fmt.Sprintf("%.1f", n.Pos.Y),
			strconv.Itoa(n.Touches),
			fmt.Sprintf("%.0f", n.MarkerSize),
		)
	}
	nodes.Render()
	fmt.Fprintln(w)

	edges := newTable(w)
	edges.Header("FROM", "TO", "PASSES", "WIDTH", "ALPHA")
	for _, e := range net.Edges {
		edges.Append(
			e.From,
			e.To,
			strconv.Itoa(e.Count),
			fmt.Sprintf("%.2f", e.Width),
			fmt.Sprintf("%.2f", e.Alpha),
		)
	}
	edges.Render()

	if net.OrphanPasses > 0 {
		fmt.Fprintf(w, "\n%d completed pass(es) to players with no passes of their own are not drawn.\n", net.OrphanPasses)
	}
}

// PrintZones prints start and end pass counts for the nine zones.
func PrintZones(w io.Writer, start, end model.ZoneCounts) {
	table := newTable(w)
	table.Header("ZONE", "STARTS", "START%", "ENDS", "END%")
	st, et := start.Total(), end.Total()
	for _, z := range model.AllZones() {
		table.Append(
			z.String(),
			strconv.Itoa(start[z]),
			pct(share(start[z], st)),
			strconv.Itoa(end[z]),
			pct(share(end[z], et)),
		)
	}
	table.Render()
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// PrintHistogram prints the 3x3 start-position grid, highest y band first,
// columns from own goal to rival goal.
func PrintHistogram(w io.Writer, h model.Histogram) {
	table := newTable(w)
	table.Header("Y \\ X", "0-33", "33-66", "66-100")
	labels := [3]string{"0-33", "33-66", "66-100"}
	for yb := 2; yb >= 0; yb-- {
		table.Append(
			labels[yb],
			strconv.Itoa(h.Bins[0][yb]),
			strconv.Itoa(h.Bins[1][yb]),
			strconv.Itoa(h.Bins[2][yb]),
		)
	}
	table.Render()
	fmt.Fprintf(w, "Total: %d\n", h.Total)
}

// PrintDropReport prints per-match counts of pass rows removed by cleaning.
func PrintDropReport(w io.Writer, rep pitch.DropReport) {
	matches := make([]string, 0, len(rep.Dropped))
	for m := range rep.Dropped {
		matches = append(matches, string(m))
	}
	sort.Strings(matches)

	table := newTable(w)
	table.Header("MATCH", "DROPPED")
	for _, m := range matches {
		table.Append(m, strconv.Itoa(rep.Dropped[model.MatchID(m)]))
	}
	table.Render()
	fmt.Fprintf(w, "Kept: %d  |  Dropped: %d\n", rep.Kept, rep.Total())
}

// PrintRows prints an ad hoc query result. Coordinate columns keep the stored
// orientation, so NULL marks a blank or "-" cell in the source sheet.
func PrintRows(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = strings.ToUpper(c)
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		table.Append(cells...)
	}
	table.Render()
	fmt.Fprintf(w, "%d row(s)\n", len(rows))
}
