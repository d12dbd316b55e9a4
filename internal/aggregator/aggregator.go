package aggregator

import (
	"sort"

	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/pitch"
)

// Aggregate computes PlayerMatchStats for every known player with at least one
// event in scope, keyed by player.
//
// Pass counts only include passes whose four coordinates survive cleaning.
// Every other tally (shots, recoveries, losses, fouls, matches played) counts
// all matching events regardless of coordinates.
func Aggregate(events []model.Event, scope model.Scope) map[string]*model.PlayerMatchStats {
	out := make(map[string]*model.PlayerMatchStats)
	matches := make(map[string]map[model.MatchID]struct{})

	for _, e := range events {
		if !scope.Contains(e) || !model.IsKnownPlayer(e.Player) {
			continue
		}
		s, ok := out[e.Player]
		if !ok {
			s = &model.PlayerMatchStats{Player: e.Player, Scope: scope}
			out[e.Player] = s
			matches[e.Player] = make(map[model.MatchID]struct{})
		}
		matches[e.Player][e.Match] = struct{}{}

		switch e.Type {
		case model.EventPassComplete:
			if pitch.Valid(e, pitch.PassFields) {
				s.PassesComplete++
			}
		case model.EventPassIncomplete:
			if pitch.Valid(e, pitch.PassFields) {
				s.PassesIncomplete++
			}
		case model.EventShot:
			s.Shots++
			switch ClassifyShot(e.Result) {
			case ShotGoal:
				s.Goals++
				s.ShotsOnTarget++
			case ShotOnTarget:
				s.ShotsOnTarget++
			}
		case model.EventRecovery:
			s.Recoveries++
		case model.EventLoss:
			s.Losses++
		case model.EventFoulCommitted:
			s.FoulsCommitted++
		case model.EventFoulReceived:
			s.FoulsReceived++
		}
	}

	for player, s := range out {
		s.MatchesPlayed = len(matches[player])
	}
	return out
}

// StatsFor returns one player's stats over scope. A player with no events in
// scope gets zero tallies; check Empty() rather than an error.
func StatsFor(events []model.Event, player string, scope model.Scope) model.PlayerMatchStats {
	if s, ok := Aggregate(events, scope)[player]; ok {
		return *s
	}
	return model.PlayerMatchStats{Player: player, Scope: scope}
}

// Players returns the known players with any event in scope, sorted by name.
func Players(events []model.Event, scope model.Scope) []string {
	seen := make(map[string]struct{})
	for _, e := range events {
		if scope.Contains(e) && model.IsKnownPlayer(e.Player) {
			seen[e.Player] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Matches returns the distinct match ids in events, sorted.
func Matches(events []model.Event) []model.MatchID {
	seen := make(map[model.MatchID]struct{})
	for _, e := range events {
		seen[e.Match] = struct{}{}
	}
	out := make([]model.MatchID, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TeamStatsFor sums every player's tallies over scope. Totals.MatchesPlayed
// is the number of matches in scope that have any event.
func TeamStatsFor(events []model.Event, scope model.Scope) model.TeamStats {
	byPlayer := Aggregate(events, scope)
	ts := model.TeamStats{
		Scope:  scope,
		Totals: model.PlayerMatchStats{Scope: scope},
	}
	for _, p := range Players(events, scope) {
		s := *byPlayer[p]
		ts.Players = append(ts.Players, s)
		ts.Totals.Add(s)
	}

	matches := make(map[model.MatchID]struct{})
	for _, e := range events {
		if scope.Contains(e) {
			matches[e.Match] = struct{}{}
		}
	}
	ts.Totals.MatchesPlayed = len(matches)
	return ts
}
