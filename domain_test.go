package splot

import (
	"testing"

	"gonum.org/v1/plot/plotter"
)

var sampleData = plotter.XYs{
	{X: 13, Y: 74}, {X: 111, Y: 37}, {X: 125, Y: 52}, {X: 190, Y: 66},
}

func TestDomainOf(t *testing.T) {
	d := DomainOf(sampleData)
	if x := d.X(); x.Start() != 0 || x.Stop() != 200 || x.TickSpacing() != 25 {
		t.Errorf("x scale = %v, want [0:200] by 25", x)
	}
	if y := d.Y(); y.Start() != 30 || y.Stop() != 80 || y.TickSpacing() != 10 {
		t.Errorf("y scale = %v, want [30:80] by 10", y)
	}
}

func TestDomainOfEmpty(t *testing.T) {
	d := DomainOf(plotter.XYs{})
	if x := d.X(); x.Start() != 0 || x.Stop() != 1 {
		t.Errorf("empty x scale = %v, want [0:1]", x)
	}
}

func TestDomainIncluding(t *testing.T) {
	more := plotter.XYs{{X: 22, Y: 50}, {X: 105, Y: 44}, {X: 210, Y: 43}}
	d := DomainOf(sampleData).Including(more)
	if x := d.X(); x.Start() > 13 || x.Stop() < 210 {
		t.Errorf("including x scale = %v does not cover 13..210", x)
	}
}

func TestDomainAxisTicks(t *testing.T) {
	d := DomainOf(sampleData)

	bottom := d.Axis("X", Bottom)
	ticks := bottom.Ticks()
	if len(ticks) != 9 || ticks[0].Label != "0" || ticks[8].Label != "200" {
		t.Errorf("bottom axis ticks = %v", ticks)
	}

	// Left and right axes carry the inverted Y scale: the largest
	// value comes first, at the top of the band.
	left := d.Axis("Y", Left)
	ticks = left.Ticks()
	if len(ticks) != 6 || ticks[0].Label != "80" || ticks[5].Label != "30" {
		t.Errorf("left axis ticks = %v", ticks)
	}
	if ticks[0].Value != 0 || ticks[5].Value != 1 {
		t.Errorf("left axis tick positions = %g..%g, want 0..1",
			ticks[0].Value, ticks[5].Value)
	}
}

func TestBoundDomainMapping(t *testing.T) {
	d := DomainOf(sampleData) // x [0:200], y [30:80]
	b := d.Bind(NewRect(100, 50, 400, 200))

	if got := b.XMap(0); got != 100 {
		t.Errorf("XMap(0) = %d, want 100", got)
	}
	if got := b.XMap(200); got != 500 {
		t.Errorf("XMap(200) = %d, want 500", got)
	}
	if got := b.XMap(100); got != 300 {
		t.Errorf("XMap(100) = %d, want 300", got)
	}

	// Larger y values land higher on the canvas.
	if got := b.YMap(80); got != 50 {
		t.Errorf("YMap(80) = %d, want 50", got)
	}
	if got := b.YMap(30); got != 250 {
		t.Errorf("YMap(30) = %d, want 250", got)
	}
}

func TestBoundDomainAffineConsistency(t *testing.T) {
	d := DomainOf(sampleData)
	small := d.Bind(NewRect(0, 0, 200, 100))
	large := d.Bind(NewRect(60, 40, 800, 400))

	// Mapping the same value through two bindings must scale with the
	// rect: the normalized position is the same in both.
	for _, x := range []float64{0, 50, 100, 150, 200} {
		ps := float64(small.XMap(x)-0) / 200
		pl := float64(large.XMap(x)-60) / 800
		if ps != pl {
			t.Errorf("XMap(%g): %g vs %g", x, ps, pl)
		}
	}
	for _, y := range []float64{30, 55, 80} {
		ps := float64(small.YMap(y)-0) / 100
		pl := float64(large.YMap(y)-40) / 400
		if ps != pl {
			t.Errorf("YMap(%g): %g vs %g", y, ps, pl)
		}
	}
}

func TestDomainWithXY(t *testing.T) {
	fixed := plotter.XYs{{X: 0, Y: 0}, {X: 100, Y: 1000}}
	d := DomainOf(sampleData).WithX(fixed).WithY(fixed)
	if x := d.X(); x.Start() != 0 || x.Stop() != 100 {
		t.Errorf("WithX scale = %v, want [0:100]", x)
	}
	if y := d.Y(); y.Start() != 0 || y.Stop() != 1000 {
		t.Errorf("WithY scale = %v, want [0:1000]", y)
	}
}
