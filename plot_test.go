package splot

import (
	"strings"
	"testing"

	"gonum.org/v1/plot/plotter"
)

// diag binds the unit-ish domain of (0,0)..(10,10) to a 100x100 rect,
// so x maps 1:10 and y flips: (0,0) lands at the bottom left pixel
// (0,100) and (10,10) at the top right (100,0).
func diag() BoundDomain {
	data := plotter.XYs{{X: 0, Y: 0}, {X: 10, Y: 10}}
	return DomainOf(data).Bind(NewRect(0, 0, 100, 100))
}

func TestLinePath(t *testing.T) {
	data := plotter.XYs{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}}
	got := Line("up", data).Path(diag())
	if want := "M0 100 L50 50 L100 0"; got != want {
		t.Errorf("line path = %q, want %q", got, want)
	}
}

func TestAreaPath(t *testing.T) {
	data := plotter.XYs{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}}
	got := Area("up", data).Path(diag())
	want := "M0 100 L0 100 L50 50 L100 0 L100 100 Z"
	if got != want {
		t.Errorf("area path = %q, want %q", got, want)
	}
}

func TestAreaPathSinglePoint(t *testing.T) {
	data := plotter.XYs{{X: 5, Y: 5}}
	got := Area("dot", data).Path(diag())
	if want := "M50 100 L50 50 L50 100 Z"; got != want {
		t.Errorf("single-point area path = %q, want %q", got, want)
	}
	// Still a closed polygon: move, two segments, close.
	n := strings.Count(got, "M") + strings.Count(got, "L") + strings.Count(got, "Z")
	if n != 4 {
		t.Errorf("single-point area has %d commands, want 4", n)
	}
}

func TestScatterPath(t *testing.T) {
	data := plotter.XYs{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}}
	got := Scatter("pts", data).Path(diag())
	if want := "M0 100 M50 50 M100 0"; got != want {
		t.Errorf("scatter path = %q, want %q", got, want)
	}
	if strings.Contains(got, "L") {
		t.Errorf("scatter path %q contains line segments", got)
	}
}

func TestEmptyPath(t *testing.T) {
	b := diag()
	for _, p := range []Plot{
		Line("", plotter.XYs{}),
		Area("", plotter.XYs{}),
		Scatter("", plotter.XYs{}),
	} {
		if got := p.Path(b); got != "" {
			t.Errorf("empty %s path = %q, want empty", p.kind.class(), got)
		}
	}
}

func TestPlotName(t *testing.T) {
	if got := Line("speed", plotter.XYs{}).Name(); got != "speed" {
		t.Errorf("Name() = %q, want %q", got, "speed")
	}
}
