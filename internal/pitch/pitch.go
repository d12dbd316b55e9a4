// Package pitch normalizes event coordinates: it drops events whose
// coordinates are missing or off the pitch, and converts stored coordinates
// into the display frame.
//
// Coordinates are pitch-relative in [0,100] on both axes. The stored y axis
// has its origin on the opposite touchline to the one used for drawing, so
// every consumer converts with FlipY exactly once, at the point of use.
package pitch

import (
	"github.com/golang/geo/r2"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// Pitch bounds on both axes.
const (
	Min = 0.0
	Max = 100.0
)

// HalfwayX is the x threshold the goalkeeper heuristic compares against.
const HalfwayX = 50.0

// Field names one coordinate of an event.
type Field int

const (
	FieldX Field = iota
	FieldY
	FieldX2
	FieldY2
)

// Common field sets.
var (
	PassFields  = []Field{FieldX, FieldY, FieldX2, FieldY2}
	StartFields = []Field{FieldX, FieldY}
)

func (f Field) String() string {
	switch f {
	case FieldX:
		return "X"
	case FieldY:
		return "Y"
	case FieldX2:
		return "X2"
	case FieldY2:
		return "Y2"
	default:
		return "?"
	}
}

func coord(e model.Event, f Field) model.Coord {
	switch f {
	case FieldX:
		return e.X
	case FieldY:
		return e.Y
	case FieldX2:
		return e.X2
	case FieldY2:
		return e.Y2
	default:
		return model.Missing
	}
}

// InRange reports whether c holds a finite value on the pitch.
func InRange(c model.Coord) bool {
	return c.Valid && c.V >= Min && c.V <= Max
}

// Valid reports whether every requested field of e is present and on the pitch.
func Valid(e model.Event, fields []Field) bool {
	for _, f := range fields {
		if !InRange(coord(e, f)) {
			return false
		}
	}
	return true
}

// DropReport counts events excluded by cleaning, per match.
type DropReport struct {
	Kept    int
	Dropped map[model.MatchID]int
}

// Total returns the number of dropped events across all matches.
func (r DropReport) Total() int {
	n := 0
	for _, c := range r.Dropped {
		n += c
	}
	return n
}

// Clean returns the events whose requested fields are all present and on the
// pitch. Order is preserved and the input is not modified; missing values are
// never defaulted.
func Clean(events []model.Event, fields []Field) []model.Event {
	out, _ := CleanWithReport(events, fields)
	return out
}

// CleanWithReport is Clean plus a count of the dropped rows.
func CleanWithReport(events []model.Event, fields []Field) ([]model.Event, DropReport) {
	rep := DropReport{Dropped: make(map[model.MatchID]int)}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if !Valid(e, fields) {
			rep.Dropped[e.Match]++
			continue
		}
		out = append(out, e)
	}
	rep.Kept = len(out)
	return out, rep
}

// FlipY converts a stored y into the display frame and back.
func FlipY(y float64) float64 { return Max - y }

// MirrorX reverses the attacking direction of an x coordinate.
func MirrorX(x float64) float64 { return Max - x }

// Display converts a stored point into the display frame.
func Display(p r2.Point) r2.Point { return r2.Point{X: p.X, Y: FlipY(p.Y)} }

// Mirror reverses the attacking direction of a point.
func Mirror(p r2.Point) r2.Point { return r2.Point{X: MirrorX(p.X), Y: p.Y} }

// Located is anything with a player and an average position.
type Located struct {
	Player string
	X      float64
}

// AttackDirection applies the goalkeeper heuristic: the player with the lowest
// average x is taken to be the goalkeeper, and when that player sits past
// halfway the team attacked the other way and every x must be mirrored.
//
// Ties resolve to the first entry in order. A match without goalkeeper events
// or with an outfield player deeper than the keeper is misclassified; callers
// get no signal for that.
func AttackDirection(players []Located) (keeper Located, mirror bool) {
	if len(players) == 0 {
		return Located{}, false
	}
	keeper = players[0]
	for _, p := range players[1:] {
		if p.X < keeper.X {
			keeper = p
		}
	}
	return keeper, keeper.X > HalfwayX
}

// PassArrows converts cleaned passes into pass map arrows in display coordinates.
func PassArrows(passes []model.Event) []model.PassArrow {
	out := make([]model.PassArrow, 0, len(passes))
	for _, p := range passes {
		out = append(out, model.PassArrow{
			Start:    Display(p.Start()),
			End:      Display(p.End()),
			Complete: p.Type == model.EventPassComplete,
		})
	}
	return out
}
