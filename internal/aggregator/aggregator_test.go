package aggregator

import (
	"math"
	"testing"

	"github.com/pable/go-pitch-metrics/internal/model"
)

const (
	matchA model.MatchID = "Sportivo Italiano"
	matchB model.MatchID = "Midland"
)

// makePass builds a pass event with all four coordinates set.
func makePass(match model.MatchID, player string, complete bool, x, y, x2, y2 float64) model.Event {
	t := model.EventPassIncomplete
	if complete {
		t = model.EventPassComplete
	}
	return model.Event{
		Match: match, Player: player, Type: t,
		X: model.At(x), Y: model.At(y), X2: model.At(x2), Y2: model.At(y2),
	}
}

// makeEvent builds a coordinate-less non-pass event.
func makeEvent(match model.MatchID, player string, t model.EventType, result string) model.Event {
	return model.Event{Match: match, Player: player, Type: t, Result: result}
}

// Scenario: one completed and one missed pass → 1/2, 50%.
func TestStatsFor_PassAccuracy(t *testing.T) {
	events := []model.Event{
		makePass(matchA, "A", true, 10, 10, 20, 20),
		makePass(matchA, "A", false, 10, 10, 99, 99),
	}
	s := StatsFor(events, "A", model.AllMatches)
	if s.PassesComplete != 1 || s.TotalPasses() != 2 {
		t.Errorf("expected 1/2 passes, got %d/%d", s.PassesComplete, s.TotalPasses())
	}
	if s.AccuracyPct() != 50.0 {
		t.Errorf("expected 50%% accuracy, got %v", s.AccuracyPct())
	}
}

// Scenario: zero passes → accuracy 0, no division error.
func TestStatsFor_NoPasses(t *testing.T) {
	events := []model.Event{makeEvent(matchA, "A", model.EventRecovery, "")}
	s := StatsFor(events, "A", model.MatchScope(matchA))
	if s.TotalPasses() != 0 || s.AccuracyPct() != 0 {
		t.Errorf("expected 0 passes and 0%%, got %d and %v", s.TotalPasses(), s.AccuracyPct())
	}
	if math.IsNaN(s.AccuracyPct()) || math.IsNaN(s.GoalsPerMatch()) || math.IsNaN(s.ShotAccuracyPct()) {
		t.Error("ratio produced NaN")
	}
}

func TestStatsFor_EmptyScope(t *testing.T) {
	events := []model.Event{makePass(matchA, "A", true, 10, 10, 20, 20)}
	s := StatsFor(events, "A", model.MatchScope(matchB))
	if !s.Empty() {
		t.Errorf("expected empty result for player absent from scope, got %+v", s)
	}
	if s.GoalsPerMatch() != 0 || s.AccuracyPct() != 0 {
		t.Error("expected zero ratios on empty result")
	}
	if s.Player != "A" || s.Scope.Match != matchB {
		t.Errorf("expected player/scope echoed, got %+v", s)
	}
}

// Passes with missing coordinates do not count; non-pass tallies ignore coordinates.
func TestStatsFor_CleaningAsymmetry(t *testing.T) {
	bad := makePass(matchA, "A", true, 10, 10, 20, 20)
	bad.X = model.Missing
	offPitch := makePass(matchA, "A", false, 10, 10, 130, 20)
	rec := makeEvent(matchA, "A", model.EventRecovery, "")
	rec.X = model.Missing

	s := StatsFor([]model.Event{bad, offPitch, rec}, "A", model.AllMatches)
	if s.TotalPasses() != 0 {
		t.Errorf("expected invalid passes excluded, got %d", s.TotalPasses())
	}
	if s.Recoveries != 1 {
		t.Errorf("expected recovery counted without coordinates, got %d", s.Recoveries)
	}
	if s.MatchesPlayed != 1 {
		t.Errorf("expected matches played to count any event, got %d", s.MatchesPlayed)
	}
}

func TestStatsFor_AllTallies(t *testing.T) {
	events := []model.Event{
		makeEvent(matchA, "A", model.EventShot, "Goal"),
		makeEvent(matchA, "A", model.EventShot, "OnTarget"),
		makeEvent(matchA, "A", model.EventShot, "Wide"),
		makeEvent(matchB, "A", model.EventShot, ""),
		makeEvent(matchB, "A", model.EventLoss, ""),
		makeEvent(matchB, "A", model.EventFoulCommitted, ""),
		makeEvent(matchB, "A", model.EventFoulReceived, ""),
		makeEvent(matchB, "A", model.EventFoulReceived, ""),
		makeEvent(matchB, "B", model.EventShot, "Goal"),
	}
	all := StatsFor(events, "A", model.AllMatches)
	if all.Shots != 4 || all.ShotsOnTarget != 2 || all.Goals != 1 {
		t.Errorf("shots: got %d/%d/%d", all.Shots, all.ShotsOnTarget, all.Goals)
	}
	if all.Losses != 1 || all.FoulsCommitted != 1 || all.FoulsReceived != 2 {
		t.Errorf("other tallies wrong: %+v", all)
	}
	if all.MatchesPlayed != 2 {
		t.Errorf("expected 2 matches played, got %d", all.MatchesPlayed)
	}
	if all.GoalsPerMatch() != 0.5 {
		t.Errorf("expected 0.5 goals per match, got %v", all.GoalsPerMatch())
	}
	if all.ShotAccuracyPct() != 50 {
		t.Errorf("expected 50%% shot accuracy, got %v", all.ShotAccuracyPct())
	}

	single := StatsFor(events, "A", model.MatchScope(matchA))
	if single.Shots != 3 || single.MatchesPlayed != 1 || single.Losses != 0 {
		t.Errorf("single-match scope leaked: %+v", single)
	}
}

func TestAggregate_SkipsUnknownPlayers(t *testing.T) {
	events := []model.Event{
		makeEvent(matchA, "unknown", model.EventRecovery, ""),
		makeEvent(matchA, "Unknown", model.EventRecovery, ""),
		makeEvent(matchA, "", model.EventRecovery, ""),
		makeEvent(matchA, "A", model.EventRecovery, ""),
	}
	got := Aggregate(events, model.AllMatches)
	if len(got) != 1 || got["A"] == nil {
		t.Errorf("expected only A aggregated, got %v", got)
	}
	if ps := Players(events, model.AllMatches); len(ps) != 1 || ps[0] != "A" {
		t.Errorf("Players = %v", ps)
	}
}

// Property: accuracy stays within [0,100] and is 0 exactly when there are no passes.
func TestAccuracyBound(t *testing.T) {
	for complete := 0; complete <= 4; complete++ {
		for missed := 0; missed <= 4; missed++ {
			var events []model.Event
			for i := 0; i < complete; i++ {
				events = append(events, makePass(matchA, "A", true, 1, 1, 2, 2))
			}
			for i := 0; i < missed; i++ {
				events = append(events, makePass(matchA, "A", false, 1, 1, 2, 2))
			}
			s := StatsFor(events, "A", model.AllMatches)
			acc := s.AccuracyPct()
			if acc < 0 || acc > 100 {
				t.Fatalf("accuracy %v out of bounds for %d/%d", acc, complete, missed)
			}
			if (acc == 0) != (complete == 0) {
				t.Fatalf("accuracy %v with %d complete of %d", acc, complete, complete+missed)
			}
		}
	}
}

func TestTeamStatsFor(t *testing.T) {
	events := []model.Event{
		makePass(matchA, "A", true, 10, 10, 20, 20),
		makePass(matchA, "B", false, 10, 10, 20, 20),
		makeEvent(matchA, "B", model.EventShot, "gol"),
		makeEvent(matchB, "C", model.EventRecovery, ""),
	}
	ts := TeamStatsFor(events, model.MatchScope(matchA))
	if len(ts.Players) != 2 || ts.Players[0].Player != "A" || ts.Players[1].Player != "B" {
		t.Fatalf("unexpected player rows: %+v", ts.Players)
	}
	if ts.Totals.TotalPasses() != 2 || ts.Totals.AccuracyPct() != 50 || ts.Totals.Goals != 1 {
		t.Errorf("unexpected totals: %+v", ts.Totals)
	}
	if ts.Totals.MatchesPlayed != 1 {
		t.Errorf("expected 1 match in scope, got %d", ts.Totals.MatchesPlayed)
	}

	all := TeamStatsFor(events, model.AllMatches)
	if all.Totals.MatchesPlayed != 2 || all.Totals.Recoveries != 1 {
		t.Errorf("unexpected all-match totals: %+v", all.Totals)
	}
	if empty := TeamStatsFor(nil, model.AllMatches); !empty.Empty() {
		t.Error("expected empty team stats")
	}
}

func TestMatches(t *testing.T) {
	events := []model.Event{
		makeEvent(matchA, "A", model.EventOther, ""),
		makeEvent(matchB, "A", model.EventOther, ""),
		makeEvent(matchA, "B", model.EventOther, ""),
	}
	got := Matches(events)
	if len(got) != 2 || got[0] != matchB || got[1] != matchA {
		t.Errorf("Matches = %v", got)
	}
}
