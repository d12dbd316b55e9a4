// Package analysis composes the aggregation pipeline into the individual and
// team views. Every view is a pure function of the event log and the scope
// parameters passed in.
package analysis

import (
	"github.com/pable/go-pitch-metrics/internal/aggregator"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/network"
	"github.com/pable/go-pitch-metrics/internal/pitch"
	"github.com/pable/go-pitch-metrics/internal/zones"
)

// IndividualView is one player's pass map and stats.
type IndividualView struct {
	Player string
	Match  model.MatchID

	// Arrows are the player's cleaned passes in the selected match.
	Arrows     []model.PassArrow
	MatchStats model.PlayerMatchStats
	Overall    model.PlayerMatchStats

	Dropped pitch.DropReport
}

// Empty reports whether the player has nothing to show in the selected match.
func (v *IndividualView) Empty() bool {
	return len(v.Arrows) == 0 && v.MatchStats.Empty()
}

// TeamView is the team-level network, zones and heatmap for one match.
type TeamView struct {
	Match model.MatchID

	Stats      model.TeamStats
	Network    model.Network
	StartZones model.ZoneCounts
	EndZones   model.ZoneCounts
	Heatmap    model.Histogram

	Dropped pitch.DropReport
}

func (v *TeamView) Empty() bool { return v.Stats.Empty() }

// PassesIn returns the pass events (complete or not) of one match, before cleaning.
// A zero match selects every match.
func PassesIn(events []model.Event, scope model.Scope) []model.Event {
	var out []model.Event
	for _, e := range events {
		if e.Type.IsPass() && scope.Contains(e) && model.IsKnownPlayer(e.Player) {
			out = append(out, e)
		}
	}
	return out
}

// Individual builds the individual view for player in match.
func Individual(events []model.Event, match model.MatchID, player string) IndividualView {
	scope := model.MatchScope(match)
	var mine []model.Event
	for _, e := range PassesIn(events, scope) {
		if e.Player == player {
			mine = append(mine, e)
		}
	}
	cleaned, dropped := pitch.CleanWithReport(mine, pitch.PassFields)

	return IndividualView{
		Player:     player,
		Match:      match,
		Arrows:     pitch.PassArrows(cleaned),
		MatchStats: aggregator.StatsFor(events, player, scope),
		Overall:    aggregator.StatsFor(events, player, model.AllMatches),
		Dropped:    dropped,
	}
}

// Team builds the team view for match.
func Team(events []model.Event, match model.MatchID) TeamView {
	scope := model.MatchScope(match)
	passes, dropped := pitch.CleanWithReport(PassesIn(events, scope), pitch.PassFields)

	var completed []model.Event
	for _, p := range passes {
		if p.Type == model.EventPassComplete {
			completed = append(completed, p)
		}
	}

	net := network.Build(completed)
	start, end := zones.AssignZones(passes)

	return TeamView{
		Match:      match,
		Stats:      aggregator.TeamStatsFor(events, scope),
		Network:    net,
		StartZones: start,
		EndZones:   end,
		Heatmap:    zones.Histogram2D(zones.StartPoints(passes, net.Mirrored)),
		Dropped:    dropped,
	}
}

// Quality reports, per match, how many pass events cleaning would drop.
func Quality(events []model.Event) pitch.DropReport {
	_, rep := pitch.CleanWithReport(PassesIn(events, model.AllMatches), pitch.PassFields)
	return rep
}
