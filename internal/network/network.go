// Package network builds a directed pass network from completed passes.
package network

import (
	"sort"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/pitch"
)

// Visual scaling constants.
const (
	MaxWidth      = 10.0
	MinAlpha      = 0.1
	MaxMarkerSize = 500.0
)

type pairKey struct{ from, to string }

// Build computes the pass network for one match scope. passes should be
// cleaned, completed passes of a single match; events of any other type are
// ignored.
//
// Node positions are the mean pass start of each passer, converted to the
// display frame and, when the goalkeeper heuristic says so, mirrored so the
// team attacks left to right. A player who only ever receives the ball has no
// node; passes to such players are counted in OrphanPasses and draw no edge.
func Build(passes []model.Event) model.Network {
	type accum struct {
		xs, ys []float64
	}
	byPasser := make(map[string]*accum)
	pairCounts := make(map[pairKey]int)

	for _, p := range passes {
		if p.Type != model.EventPassComplete || !model.IsKnownPlayer(p.Player) {
			continue
		}
		a, ok := byPasser[p.Player]
		if !ok {
			a = &accum{}
			byPasser[p.Player] = a
		}
		a.xs = append(a.xs, p.X.V)
		a.ys = append(a.ys, p.Y.V)

		if !model.IsKnownPlayer(p.Receiver) || p.Receiver == p.Player {
			continue
		}
		pairCounts[pairKey{p.Player, p.Receiver}]++
	}

	var net model.Network
	if len(byPasser) == 0 {
		return net
	}

	// ---- Nodes: mean start position, flipped into the display frame once. ----
	players := make([]string, 0, len(byPasser))
	for p := range byPasser {
		players = append(players, p)
	}
	sort.Strings(players)

	located := make([]pitch.Located, 0, len(players))
	for _, p := range players {
		a := byPasser[p]
		pos := pitch.Display(r2.Point{X: stat.Mean(a.xs, nil), Y: stat.Mean(a.ys, nil)})
		net.Nodes = append(net.Nodes, model.PlayerNode{Player: p, Pos: pos, Touches: len(a.xs)})
		located = append(located, pitch.Located{Player: p, X: pos.X})
	}

	// ---- Attack direction. ----
	keeper, mirror := pitch.AttackDirection(located)
	net.Goalkeeper = keeper.Player
	net.GoalkeeperX = keeper.X
	net.Mirrored = mirror
	if mirror {
		for i := range net.Nodes {
			net.Nodes[i].Pos = pitch.Mirror(net.Nodes[i].Pos)
		}
	}

	nodeIdx := make(map[string]int, len(net.Nodes))
	for i, n := range net.Nodes {
		nodeIdx[n.Player] = i
	}

	// ---- Edges: one per ordered pair, endpoints at node positions. ----
	for k, c := range pairCounts {
		to, ok := nodeIdx[k.to]
		if !ok {
			net.OrphanPasses += c
			continue
		}
		net.Edges = append(net.Edges, model.PassEdge{
			From:  k.from,
			To:    k.to,
			Start: net.Nodes[nodeIdx[k.from]].Pos,
			End:   net.Nodes[to].Pos,
			Count: c,
		})
	}
	sort.Slice(net.Edges, func(i, j int) bool {
		a, b := net.Edges[i], net.Edges[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	scale(&net)
	return net
}

// scale sets edge width/alpha and node marker size relative to this
// network's own maxima.
func scale(net *model.Network) {
	maxCount := 0
	for _, e := range net.Edges {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	for i := range net.Edges {
		ratio := float64(net.Edges[i].Count) / float64(maxCount)
		net.Edges[i].Width = ratio * MaxWidth
		net.Edges[i].Alpha = MinAlpha + ratio*(1-MinAlpha)
	}

	maxTouches := 0
	for _, n := range net.Nodes {
		if n.Touches > maxTouches {
			maxTouches = n.Touches
		}
	}
	for i := range net.Nodes {
		net.Nodes[i].MarkerSize = float64(net.Nodes[i].Touches) / float64(maxTouches) * MaxMarkerSize
	}
}
