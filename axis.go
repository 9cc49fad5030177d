package splot

import (
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// ----------------------------------------------------------------------------
// Axis

// Reserved band sizes in pixels.
const (
	axisSpace      = 80
	axisNamedSpace = 160
)

// Axis draws tick marks and labels along one edge of a chart. An axis
// is obtained from Domain.Axis and carries its ticks already normalized
// against the owning scale.
type Axis struct {
	edge  Edge
	name  string
	ticks []Tick
}

// Edge returns the chart edge the axis is attached to.
func (a Axis) Edge() Edge { return a.edge }

// Ticks returns the axis ticks.
func (a Axis) Ticks() []Tick { return a.ticks }

// space is the size of the band the axis reserves for itself.
func (a Axis) space() int {
	if a.name != "" {
		return axisNamedSpace
	}
	return axisSpace
}

// split carves the axis band off the working area.
func (a Axis) split(area Rect) (rem, band Rect) {
	return area.Split(a.edge, a.space())
}

// horizontal reports whether the axis runs along the top or bottom.
func (a Axis) horizontal() bool {
	return a.edge == Top || a.edge == Bottom
}

// render draws the axis into its band. The band is first clipped to the
// extent of the final plot area so that every axis aligns with the plot
// rectangle, not with the working area at its own carve-off moment.
func (a Axis) render(s *svg.SVG, band, area Rect) {
	if a.horizontal() {
		band = band.IntersectHoriz(area)
	} else {
		band = band.IntersectVert(area)
	}
	if a.name != "" {
		var r Rect
		band, r = band.Split(a.edge, a.space()/2)
		s.Text(0, 0, a.name, textAttrs("axis", a.edge, Middle, r))
	}
	a.tickLines(s, band)
	a.tickLabels(s, band)
}

// grid draws grid lines across the plot area, one per tick.
func (a Axis) grid(s *svg.SVG, area Rect) {
	var d strings.Builder
	if a.horizontal() {
		for _, t := range a.ticks {
			x := t.x(a.edge, area, 0)
			fmt.Fprintf(&d, "M%d %dv%d", x, area.Y, area.H)
		}
		s.Path(d.String(), `class="grid-x"`)
		return
	}
	for _, t := range a.ticks {
		y := t.y(a.edge, area, 0)
		fmt.Fprintf(&d, "M%d %dh%d", area.X, y, area.W)
	}
	s.Path(d.String(), `class="grid-y"`)
}

// tickLines draws the axis baseline and one short mark per tick.
func (a Axis) tickLines(s *svg.SVG, rect Rect) {
	var d strings.Builder
	if a.horizontal() {
		y, l := rect.Y, -tickLen
		if a.edge == Top {
			y, l = rect.Bottom(), tickLen
		}
		fmt.Fprintf(&d, "M%d %dh%d", rect.X, y, rect.W)
		for _, t := range a.ticks {
			fmt.Fprintf(&d, " M%d %dv%d",
				t.x(a.edge, rect, tickLen), t.y(a.edge, rect, tickLen), l)
		}
	} else {
		x, l := rect.Right(), tickLen
		if a.edge == Right {
			x, l = rect.X, -tickLen
		}
		fmt.Fprintf(&d, "M%d %dv%d", x, rect.Y, rect.H)
		for _, t := range a.ticks {
			fmt.Fprintf(&d, " M%d %dh%d",
				t.x(a.edge, rect, tickLen), t.y(a.edge, rect, tickLen), l)
		}
	}
	s.Path(d.String(), `class="axis-line"`)
}

// tickLabels draws one label per tick, anchored toward the plot area.
func (a Axis) tickLabels(s *svg.SVG, rect Rect) {
	anchor := Middle
	switch a.edge {
	case Left:
		anchor = End
	case Right:
		anchor = Start
	}
	attrs := fmt.Sprintf("class=%q text-anchor=%q dy=\"0.33em\"", "tick", anchor)
	for _, t := range a.ticks {
		x := t.x(a.edge, rect, tickHLen)
		y := t.y(a.edge, rect, tickVLen)
		s.Text(x, y, t.Label, attrs)
	}
}
