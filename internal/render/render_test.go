package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/pable/go-pitch-metrics/internal/model"
)

func TestPx_FlipsCanvasAxis(t *testing.T) {
	x, y := px(0, 100)
	if x != margin || y != margin {
		t.Errorf("top-left of pitch = (%d,%d), want (%d,%d)", x, y, margin, margin)
	}
	x, y = px(100, 0)
	if x != Width-margin || y != Height-margin {
		t.Errorf("bottom-right of pitch = (%d,%d)", x, y)
	}
}

func TestPassMap(t *testing.T) {
	var buf bytes.Buffer
	PassMap(&buf, "Rocio vs Midland", []model.PassArrow{
		{Start: r2.Point{X: 10, Y: 10}, End: r2.Point{X: 50, Y: 50}, Complete: true},
		{Start: r2.Point{X: 20, Y: 80}, End: r2.Point{X: 90, Y: 90}},
	})
	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a complete svg document, got:\n%s", out)
	}
	if !strings.Contains(out, completeColor) || !strings.Contains(out, incompleteColor) {
		t.Error("expected both pass colours")
	}
	if !strings.Contains(out, "2 passes, 1 complete") {
		t.Error("expected pass count caption")
	}
}

func TestNetwork_DrawsNodesAndEdges(t *testing.T) {
	var buf bytes.Buffer
	net := model.Network{
		Nodes: []model.PlayerNode{
			{Player: "A", Pos: r2.Point{X: 30, Y: 40}, Touches: 4, MarkerSize: 500},
			{Player: "B", Pos: r2.Point{X: 60, Y: 70}, Touches: 1, MarkerSize: 125},
		},
		Edges: []model.PassEdge{{From: "A", To: "B", Start: r2.Point{X: 30, Y: 40}, End: r2.Point{X: 60, Y: 70}, Count: 3, Width: 10, Alpha: 1}},
	}
	Network(&buf, "Midland", net)
	out := buf.String()
	for _, want := range []string{">A<", ">B<", "stroke-width:10.00", "stroke-opacity:1.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestHeatmap_EmptyIsTransparent(t *testing.T) {
	var buf bytes.Buffer
	Heatmap(&buf, "", model.Histogram{})
	if strings.Count(buf.String(), "fill-opacity:0.00") != 9 {
		t.Error("expected nine transparent bins for an empty histogram")
	}
}

func TestNodeRadius(t *testing.T) {
	if nodeRadius(0) != 4 {
		t.Error("expected minimum radius")
	}
	if nodeRadius(400) != 20 {
		t.Errorf("expected radius 20, got %d", nodeRadius(400))
	}
}
