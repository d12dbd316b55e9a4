package cmd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/aggregator"
	"github.com/pable/go-pitch-metrics/internal/analysis"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/report"
	"github.com/pable/go-pitch-metrics/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the event log. Type 'help' for available commands. Quote names that contain spaces.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cGreeting.Println("pitchmetrics shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("pitchmetrics")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		tokens, err := splitLine(scanner.Text())
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "list":
			shellList(db)
		case "player":
			if len(args) < 2 {
				cError.Fprintln(os.Stderr, "usage: player <name> <match>")
				continue
			}
			shellPlayer(db, args[0], model.MatchID(args[1]))
		case "team":
			if len(args) != 1 {
				cError.Fprintln(os.Stderr, "usage: team <match>")
				continue
			}
			shellTeam(db, model.MatchID(args[0]))
		case "leaders":
			shellLeaders(db, args)
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return nil
}

// splitLine splits on spaces, honouring double quotes.
func splitLine(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = ' '
	r.LazyQuotes = true
	rec, err := r.Read()
	if err != nil {
		if strings.TrimSpace(line) == "" {
			return nil, nil
		}
		return nil, err
	}
	out := rec[:0]
	for _, f := range rec {
		if f != "" {
			out = append(out, f)
		}
	}
	return out, nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"list", "list all stored matches"},
		{"player <name> <match>", "a player's stats in one match and overall"},
		{"team <match>", "team stats, pass network and zones"},
		{"leaders [metric] [match] [n]", "top players (default: goals, all matches)"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-32s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellList(db *storage.DB) {
	matches, err := db.ListMatches()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		cMuted.Println("No matches stored yet.")
		return
	}
	report.PrintMatchList(os.Stdout, matches)
}

func shellPlayer(db *storage.DB, name string, match model.MatchID) {
	events, err := db.Events(model.AllMatches)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	view := analysis.Individual(events, match, name)
	if view.Empty() {
		cWarn.Printf("No data for %s in %s.\n", name, match)
		return
	}
	report.PrintPlayerStats(os.Stdout, view.MatchStats, view.Overall)
}

func shellTeam(db *storage.DB, match model.MatchID) {
	events, err := db.Events(model.MatchScope(match))
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	view := analysis.Team(events, match)
	if view.Empty() {
		cWarn.Printf("No data for match %q.\n", match)
		return
	}
	report.PrintTeamStats(os.Stdout, view.Stats, "")
	fmt.Println()
	if !view.Network.Empty() {
		report.PrintNetwork(os.Stdout, view.Network)
		fmt.Println()
	}
	report.PrintZones(os.Stdout, view.StartZones, view.EndZones)
}

func shellLeaders(db *storage.DB, args []string) {
	metric := aggregator.MetricGoals
	scope := model.AllMatches
	n := cfg.TopN
	if len(args) > 0 {
		m, err := aggregator.ParseMetric(args[0])
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		metric = m
	}
	if len(args) > 1 {
		scope = model.MatchScope(model.MatchID(args[1]))
	}
	if len(args) > 2 {
		v, err := strconv.Atoi(args[2])
		if err != nil || v <= 0 {
			cError.Fprintf(os.Stderr, "invalid count %q\n", args[2])
			return
		}
		n = v
	}
	events, err := db.Events(scope)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	entries := aggregator.Leaderboard(events, scope, metric, n)
	if len(entries) == 0 {
		cWarn.Printf("No players in %s.\n", scope)
		return
	}
	report.PrintLeaderboard(os.Stdout, metric, entries)
}
