package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/pable/go-pitch-metrics/internal/aggregator"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/pitch"
)

func TestPrintPlayerStats_NoPassesShowsZero(t *testing.T) {
	var buf bytes.Buffer
	match := model.PlayerMatchStats{Player: "Rocio", Scope: model.MatchScope("Midland"), Recoveries: 2, MatchesPlayed: 1}
	overall := model.PlayerMatchStats{Player: "Rocio", Scope: model.AllMatches, PassesComplete: 3, PassesIncomplete: 1, MatchesPlayed: 2}
	PrintPlayerStats(&buf, match, overall)

	out := buf.String()
	if !strings.Contains(out, "Midland") {
		t.Errorf("expected match scope label, got:\n%s", out)
	}
	if !strings.Contains(out, "0.0%") {
		t.Errorf("expected 0.0%% accuracy with no passes, got:\n%s", out)
	}
	if strings.Contains(out, "—") || strings.Contains(out, "NaN") {
		t.Errorf("expected no placeholder or NaN, got:\n%s", out)
	}
	if !strings.Contains(out, "75.0%") {
		t.Errorf("expected overall accuracy 75.0%%, got:\n%s", out)
	}
}

func TestPrintTeamStats_MarksFocus(t *testing.T) {
	var buf bytes.Buffer
	ts := model.TeamStats{
		Players: []model.PlayerMatchStats{{Player: "Julieta", PassesComplete: 1}, {Player: "Rocio"}},
		Totals:  model.PlayerMatchStats{PassesComplete: 1},
	}
	PrintTeamStats(&buf, ts, "Rocio")
	out := buf.String()
	if !strings.Contains(out, ">") || !strings.Contains(out, "TEAM") {
		t.Errorf("expected focus marker and team row, got:\n%s", out)
	}
}

func TestPrintLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	entries := []aggregator.LeaderboardEntry{
		{Rank: 1, Value: 3, Stats: model.PlayerMatchStats{Player: "Julieta", Goals: 3}},
		{Rank: 2, Value: 1, Stats: model.PlayerMatchStats{Player: "Rocio", Goals: 1}},
	}
	PrintLeaderboard(&buf, aggregator.MetricGoals, entries)
	out := buf.String()
	if strings.Index(out, "Julieta") > strings.Index(out, "Rocio") {
		t.Errorf("expected rank order preserved, got:\n%s", out)
	}
}

func TestPrintNetwork_OrphanNote(t *testing.T) {
	var buf bytes.Buffer
	net := model.Network{
		Nodes:        []model.PlayerNode{{Player: "A", Pos: r2.Point{X: 40, Y: 60}, Touches: 2, MarkerSize: 500}},
		Goalkeeper:   "A",
		Mirrored:     true,
		OrphanPasses: 2,
	}
	PrintNetwork(&buf, net)
	out := buf.String()
	if !strings.Contains(out, "mirrored") || !strings.Contains(out, "2 completed pass(es)") {
		t.Errorf("unexpected network output:\n%s", out)
	}
}

func TestPrintZones_EmptyShowsZero(t *testing.T) {
	var buf bytes.Buffer
	PrintZones(&buf, model.ZoneCounts{}, model.ZoneCounts{})
	out := buf.String()
	if strings.Count(out, "0.0%") != 18 {
		t.Errorf("expected 0.0%% for all 18 shares, got:\n%s", out)
	}
}

func TestPrintDropReport(t *testing.T) {
	var buf bytes.Buffer
	PrintDropReport(&buf, pitch.DropReport{Kept: 10, Dropped: map[model.MatchID]int{"Midland": 2, "Banfield": 1}})
	out := buf.String()
	if strings.Index(out, "Banfield") > strings.Index(out, "Midland") {
		t.Errorf("expected matches sorted, got:\n%s", out)
	}
	if !strings.Contains(out, "Dropped: 3") {
		t.Errorf("expected dropped total, got:\n%s", out)
	}
}

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	PrintRows(&buf, []string{"player", "x"}, [][]string{{"Rocio", "10"}, {"Julieta", "NULL"}})
	out := buf.String()
	if !strings.Contains(out, "PLAYER") || !strings.Contains(out, "NULL") || !strings.Contains(out, "2 row(s)") {
		t.Errorf("unexpected rows output:\n%s", out)
	}

	buf.Reset()
	PrintRows(&buf, []string{"player"}, nil)
	if buf.String() != "(no rows)\n" {
		t.Errorf("expected empty marker, got %q", buf.String())
	}
}
