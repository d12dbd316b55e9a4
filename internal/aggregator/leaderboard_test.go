package aggregator

import (
	"testing"

	"github.com/pable/go-pitch-metrics/internal/model"
)

func TestClassifyShot(t *testing.T) {
	cases := []struct {
		in   string
		want ShotOutcome
	}{
		{"Goal", ShotGoal},
		{"GOAL - header", ShotGoal},
		{"Gol", ShotGoal},
		{"OnTarget", ShotOnTarget},
		{"shot on target, saved", ShotOnTarget},
		{"Wide", ShotOff},
		{"", ShotOff},
		{"Blocked", ShotOff},
	}
	for _, c := range cases {
		if got := ClassifyShot(c.in); got != c.want {
			t.Errorf("ClassifyShot(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLeaderboard_TopNAndTies(t *testing.T) {
	var events []model.Event
	recoveries := map[string]int{"Eve": 3, "Ana": 5, "Bea": 3, "Cid": 1, "Dan": 3, "Fer": 0, "Gus": 2}
	for p, n := range recoveries {
		for i := 0; i < n; i++ {
			events = append(events, makeEvent(matchA, p, model.EventRecovery, ""))
		}
	}
	events = append(events, makeEvent(matchA, "Fer", model.EventLoss, ""))

	board := Leaderboard(events, model.AllMatches, MetricRecoveries, 0)
	if len(board) != DefaultTopN {
		t.Fatalf("expected %d entries, got %d", DefaultTopN, len(board))
	}
	want := []string{"Ana", "Bea", "Dan", "Eve", "Gus"}
	for i, e := range board {
		if e.Stats.Player != want[i] {
			t.Errorf("rank %d: got %s, want %s", i+1, e.Stats.Player, want[i])
		}
		if e.Rank != i+1 {
			t.Errorf("rank field %d, want %d", e.Rank, i+1)
		}
	}
	if board[0].Value != 5 {
		t.Errorf("expected top value 5, got %v", board[0].Value)
	}
}

func TestLeaderboard_Accuracy(t *testing.T) {
	events := []model.Event{
		makePass(matchA, "A", true, 1, 1, 2, 2),
		makePass(matchA, "A", false, 1, 1, 2, 2),
		makePass(matchA, "B", true, 1, 1, 2, 2),
		makeEvent(matchA, "C", model.EventRecovery, ""),
	}
	board := Leaderboard(events, model.MatchScope(matchA), MetricAccuracy, 2)
	if len(board) != 2 || board[0].Stats.Player != "B" || board[1].Stats.Player != "A" {
		t.Fatalf("unexpected board: %+v", board)
	}
	if board[1].Value != 50 {
		t.Errorf("expected 50, got %v", board[1].Value)
	}
	if got := Leaderboard(events, model.MatchScope(matchB), MetricAccuracy, 5); len(got) != 0 {
		t.Errorf("expected empty board for empty scope, got %v", got)
	}
}

func TestParseMetric(t *testing.T) {
	if m, err := ParseMetric("goals"); err != nil || m != MetricGoals {
		t.Errorf("ParseMetric(goals) = %v, %v", m, err)
	}
	if _, err := ParseMetric("xg"); err == nil {
		t.Error("expected error for unknown metric")
	}
}
