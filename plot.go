package splot

import (
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Plot

type plotKind int

const (
	kindLine plotKind = iota
	kindArea
	kindScatter
)

func (k plotKind) class() string {
	return []string{"plot-line", "plot-area", "plot-scatter"}[int(k)]
}

// Plot is one data series to render. The data is a read-only borrow of
// the caller's values; geometry is computed at render time against the
// chart's bound domain and never cached.
type Plot struct {
	kind plotKind
	name string
	data plotter.XYer
}

// Line returns a plot drawing the points connected by line segments.
func Line(name string, data plotter.XYer) Plot {
	return Plot{kind: kindLine, name: name, data: data}
}

// Area returns a plot drawing the points as a filled area closed
// against the y=0 baseline.
func Area(name string, data plotter.XYer) Plot {
	return Plot{kind: kindArea, name: name, data: data}
}

// Scatter returns a plot drawing the points as unconnected markers.
func Scatter(name string, data plotter.XYer) Plot {
	return Plot{kind: kindScatter, name: name, data: data}
}

// Name returns the series name.
func (p Plot) Name() string { return p.name }

// Path returns the SVG path description of the series mapped through b.
//
// Line paths move to the first point and draw line segments to the
// rest. Area paths start and end on the y=0 baseline below the first
// and last point and close explicitly, so even a single-point series
// forms a valid (degenerate) polygon. Scatter paths emit one
// independent move per point with no connecting segments; each
// zero-length subpath anchors a marker glyph.
func (p Plot) Path(b BoundDomain) string {
	n := p.data.Len()
	if n == 0 {
		return ""
	}
	var d strings.Builder
	switch p.kind {
	case kindLine:
		for i := 0; i < n; i++ {
			x, y := p.data.XY(i)
			if i == 0 {
				fmt.Fprintf(&d, "M%d %d", b.XMap(x), b.YMap(y))
			} else {
				fmt.Fprintf(&d, " L%d %d", b.XMap(x), b.YMap(y))
			}
		}
	case kindArea:
		base := b.YMap(0)
		x, _ := p.data.XY(0)
		fmt.Fprintf(&d, "M%d %d", b.XMap(x), base)
		for i := 0; i < n; i++ {
			x, y := p.data.XY(i)
			fmt.Fprintf(&d, " L%d %d", b.XMap(x), b.YMap(y))
		}
		x, _ = p.data.XY(n - 1)
		fmt.Fprintf(&d, " L%d %d Z", b.XMap(x), base)
	case kindScatter:
		for i := 0; i < n; i++ {
			x, y := p.data.XY(i)
			if i > 0 {
				d.WriteByte(' ')
			}
			fmt.Fprintf(&d, "M%d %d", b.XMap(x), b.YMap(y))
		}
	}
	return d.String()
}

// render draws the series path. The num index selects the color class
// (mod 10); scatter plots reference their own marker from the defs,
// whose glyph shape is assigned mod 8.
func (p Plot) render(s *svg.SVG, num int, b BoundDomain) {
	attrs := fmt.Sprintf("class=\"plot-%d %s\"", num%numPlotStyles, p.kind.class())
	if p.kind == kindScatter {
		attrs += fmt.Sprintf(" style=\"marker:url(#marker-%d)\"", num)
	}
	s.Path(p.Path(b), attrs)
}
