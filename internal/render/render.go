// Package render draws pass maps, pass networks and start-position heatmaps
// as SVG on a 0-100 pitch.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/pitch"
	"github.com/pable/go-pitch-metrics/internal/zones"
)

// Canvas size in pixels. The pitch fills the canvas inside the margin.
const (
	Width  = 960
	Height = 680
	margin = 40
)

const (
	completeColor   = "#2e7d32"
	incompleteColor = "#c62828"
	nodeColor       = "#1565c0"
	lineColor       = "white"
	grassColor      = "#3a7d44"
)

// vmap maps one range into another.
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

// px converts a display-frame pitch point to canvas pixels. Display y grows
// upward, canvas y grows downward.
func px(x, y float64) (int, int) {
	cx := vmap(x, pitch.Min, pitch.Max, margin, Width-margin)
	cy := vmap(y, pitch.Min, pitch.Max, Height-margin, margin)
	return int(math.Round(cx)), int(math.Round(cy))
}

func field(canvas *svg.SVG, title string) {
	canvas.Rect(0, 0, Width, Height, "fill:"+grassColor)
	x0, y0 := px(pitch.Min, pitch.Max)
	x1, y1 := px(pitch.Max, pitch.Min)
	style := "fill:none;stroke:" + lineColor + ";stroke-width:2"
	canvas.Rect(x0, y0, x1-x0, y1-y0, style)

	hx, _ := px(pitch.HalfwayX, 0)
	canvas.Line(hx, y0, hx, y1, style)
	cx, cy := px(pitch.HalfwayX, (pitch.Min+pitch.Max)/2)
	canvas.Circle(cx, cy, (y1-y0)/7, style)

	// Thirds used by the zone table.
	dashed := "stroke:" + lineColor + ";stroke-opacity:0.4;stroke-dasharray:6,6"
	for _, e := range zones.BinEdges[1:3] {
		ex, _ := px(e, 0)
		canvas.Line(ex, y0, ex, y1, dashed)
		_, ey := px(0, e)
		canvas.Line(x0, ey, x1, ey, dashed)
	}

	if title != "" {
		canvas.Text(margin, margin-12, title, "fill:white;font-family:sans-serif;font-size:18px")
	}
}

// PassMap draws one arrow per pass. Completed passes are green, the rest red.
func PassMap(w io.Writer, title string, arrows []model.PassArrow) {
	canvas := svg.New(w)
	canvas.Start(Width, Height)
	field(canvas, title)

	complete := 0
	for _, a := range arrows {
		color := incompleteColor
		if a.Complete {
			color = completeColor
			complete++
		}
		x1, y1 := px(a.Start.X, a.Start.Y)
		x2, y2 := px(a.End.X, a.End.Y)
		canvas.Line(x1, y1, x2, y2, "stroke-width:3;stroke:"+color)
		canvas.Circle(x2, y2, 4, "fill:"+color)
	}
	canvas.Text(Width-margin, Height-12,
		fmt.Sprintf("%d passes, %d complete", len(arrows), complete),
		"text-anchor:end;fill:white;font-family:sans-serif;font-size:14px")
	canvas.End()
}

// Network draws edges under nodes, with edge width and opacity taken from the
// network scaling and node area proportional to touches.
func Network(w io.Writer, title string, net model.Network) {
	canvas := svg.New(w)
	canvas.Start(Width, Height)
	field(canvas, title)

	// Weakest edges first so the strongest end up on top.
	for i := len(net.Edges) - 1; i >= 0; i-- {
		e := net.Edges[i]
		x1, y1 := px(e.Start.X, e.Start.Y)
		x2, y2 := px(e.End.X, e.End.Y)
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:white;stroke-width:%.2f;stroke-opacity:%.2f", e.Width, e.Alpha))
	}
	for _, n := range net.Nodes {
		x, y := px(n.Pos.X, n.Pos.Y)
		canvas.Circle(x, y, nodeRadius(n.MarkerSize), "fill:"+nodeColor+";stroke:white;stroke-width:2")
		canvas.Text(x, y+4, n.Player, "text-anchor:middle;fill:white;font-family:sans-serif;font-size:11px")
	}
	canvas.End()
}

// nodeRadius turns a marker area into a pixel radius.
func nodeRadius(size float64) int {
	r := int(math.Round(math.Sqrt(size)))
	if r < 4 {
		return 4
	}
	return r
}

// Heatmap shades each of the nine start-position bins by its share of the
// busiest bin.
func Heatmap(w io.Writer, title string, h model.Histogram) {
	canvas := svg.New(w)
	canvas.Start(Width, Height)
	field(canvas, title)

	peak := 0
	for xb := range h.Bins {
		for yb := range h.Bins[xb] {
			if h.Bins[xb][yb] > peak {
				peak = h.Bins[xb][yb]
			}
		}
	}
	for xb := 0; xb < 3; xb++ {
		for yb := 0; yb < 3; yb++ {
			n := h.Bins[xb][yb]
			x0, y0 := px(zones.BinEdges[xb], zones.BinEdges[yb+1])
			x1, y1 := px(zones.BinEdges[xb+1], zones.BinEdges[yb])
			opacity := 0.0
			if peak > 0 {
				opacity = 0.8 * float64(n) / float64(peak)
			}
			canvas.Rect(x0, y0, x1-x0, y1-y0, fmt.Sprintf("fill:#ffeb3b;fill-opacity:%.2f", opacity))
			canvas.Text((x0+x1)/2, (y0+y1)/2, fmt.Sprintf("%d", n),
				"text-anchor:middle;fill:white;font-family:sans-serif;font-size:20px")
		}
	}
	canvas.End()
}
