// Package zones buckets pass locations into a 3x3 partition of the pitch.
package zones

import (
	"github.com/golang/geo/r2"

	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/pitch"
)

// BinEdges are shared by the named zones and the heatmap histogram. Bins are
// closed on the left; the last bin is also closed on the right.
var BinEdges = [4]float64{0, 33, 66, 100}

// Length bands along the attacking axis.
const (
	Exit model.Band = iota
	Middle
	FinalThird
)

// Lateral bands across the pitch, in display coordinates.
const (
	Right model.Band = iota
	Center
	Left
)

// bin returns the band index of v. Values outside [0,100] are clamped; callers
// are expected to pass cleaned coordinates.
func bin(v float64) model.Band {
	switch {
	case v < BinEdges[1]:
		return 0
	case v < BinEdges[2]:
		return 1
	default:
		return 2
	}
}

// ZoneOf returns the zone of a display-frame point. It does not depend on the
// attack-direction mirroring.
func ZoneOf(x, y float64) model.Zone {
	return model.Zone{Length: bin(x), Lateral: bin(y)}
}

// AssignZones counts cleaned passes by start zone and by end zone. Stored y
// values are flipped into the display frame here, once.
func AssignZones(passes []model.Event) (start, end model.ZoneCounts) {
	start = make(model.ZoneCounts, 9)
	end = make(model.ZoneCounts, 9)
	for _, p := range passes {
		s := pitch.Display(p.Start())
		e := pitch.Display(p.End())
		start[ZoneOf(s.X, s.Y)]++
		end[ZoneOf(e.X, e.Y)]++
	}
	return start, end
}

// StartPoints extracts raw pass start points for the heatmap, mirrored in x
// when the team attacked the other way.
func StartPoints(passes []model.Event, mirror bool) []r2.Point {
	out := make([]r2.Point, 0, len(passes))
	for _, p := range passes {
		pt := p.Start()
		if mirror {
			pt = pitch.Mirror(pt)
		}
		out = append(out, pt)
	}
	return out
}

// Histogram2D bins raw (unflipped) points over BinEdges on both axes.
func Histogram2D(points []r2.Point) model.Histogram {
	var h model.Histogram
	for _, p := range points {
		h.Bins[bin(p.X)][bin(p.Y)]++
		h.Total++
	}
	return h
}
