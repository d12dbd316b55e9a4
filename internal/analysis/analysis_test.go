package analysis

import (
	"testing"

	"github.com/pable/go-pitch-metrics/internal/model"
)

func ev(match model.MatchID, player string, t model.EventType, receiver string, coords ...float64) model.Event {
	e := model.Event{Match: match, Player: player, Type: t, Receiver: receiver}
	cs := []*model.Coord{&e.X, &e.Y, &e.X2, &e.Y2}
	for i, c := range coords {
		if c >= 0 {
			*cs[i] = model.At(c)
		}
	}
	return e
}

func fixture() []model.Event {
	return []model.Event{
		ev("Midland", "GK", model.EventPassComplete, "A", 80, 50, 60, 40),
		ev("Midland", "A", model.EventPassComplete, "GK", 90, 20, 85, 30),
		ev("Midland", "A", model.EventPassIncomplete, "", 95, 20, 99, 10),
		ev("Midland", "A", model.EventPassComplete, "GK", -1, 20, 85, 30), // x "-"
		ev("Midland", "A", model.EventRecovery, ""),
		ev("Sportivo Italiano", "A", model.EventPassComplete, "B", 20, 20, 30, 30),
		ev("Sportivo Italiano", "B", model.EventShot, ""),
	}
}

func TestIndividual(t *testing.T) {
	v := Individual(fixture(), "Midland", "A")
	if v.Empty() {
		t.Fatal("expected data for A in Midland")
	}
	if len(v.Arrows) != 2 {
		t.Errorf("expected 2 cleaned arrows, got %d", len(v.Arrows))
	}
	if v.Dropped.Total() != 1 {
		t.Errorf("expected 1 dropped pass, got %d", v.Dropped.Total())
	}
	if v.MatchStats.TotalPasses() != 2 || v.MatchStats.Recoveries != 1 {
		t.Errorf("unexpected match stats: %+v", v.MatchStats)
	}
	if v.Overall.TotalPasses() != 3 || v.Overall.MatchesPlayed != 2 {
		t.Errorf("unexpected overall stats: %+v", v.Overall)
	}
	if v.Arrows[0].Start.Y != 80 {
		t.Errorf("expected flipped start y 80, got %v", v.Arrows[0].Start.Y)
	}

	none := Individual(fixture(), "Midland", "B")
	if !none.Empty() {
		t.Errorf("expected empty view for B in Midland, got %+v", none)
	}
}

func TestTeam_MirroredMatch(t *testing.T) {
	v := Team(fixture(), "Midland")
	if v.Empty() {
		t.Fatal("expected team data")
	}
	if !v.Network.Mirrored || v.Network.Goalkeeper != "GK" {
		t.Errorf("expected mirrored network with GK keeper, got %+v", v.Network)
	}
	if v.StartZones.Total() != 3 || v.EndZones.Total() != 3 {
		t.Errorf("expected 3 passes zoned, got %d/%d", v.StartZones.Total(), v.EndZones.Total())
	}
	if v.Heatmap.Total != 3 {
		t.Errorf("expected heatmap total 3, got %d", v.Heatmap.Total)
	}
	// Raw start x=80,90,95 mirror into the first third.
	if v.Heatmap.Bins[0][0]+v.Heatmap.Bins[0][1]+v.Heatmap.Bins[0][2] != 3 {
		t.Errorf("expected mirrored heatmap in first x bin, got %v", v.Heatmap.Bins)
	}
	if v.Dropped.Total() != 1 {
		t.Errorf("expected 1 dropped, got %d", v.Dropped.Total())
	}
}

func TestTeam_UnmirroredMatch(t *testing.T) {
	v := Team(fixture(), "Sportivo Italiano")
	if v.Network.Mirrored {
		t.Error("did not expect mirroring")
	}
	if v.Heatmap.Bins[0][0] != 1 {
		t.Errorf("expected raw start in bin [0][0], got %v", v.Heatmap.Bins)
	}
	if len(v.Stats.Players) != 2 {
		t.Errorf("expected A and B, got %+v", v.Stats.Players)
	}
}

func TestTeam_EmptyMatch(t *testing.T) {
	v := Team(fixture(), "Nobody FC")
	if !v.Empty() || !v.Network.Empty() {
		t.Error("expected empty team view")
	}
}

func TestQuality(t *testing.T) {
	rep := Quality(fixture())
	if rep.Dropped["Midland"] != 1 || rep.Kept != 4 {
		t.Errorf("unexpected quality report: %+v", rep)
	}
}
