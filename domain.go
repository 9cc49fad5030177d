package splot

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Domain

// Domain pairs an X and a Y scale into a 2D data coordinate system.
// The Y scale is stored ascending and inverted at mapping time, since
// screen Y grows downward.
type Domain struct {
	x, y Scale
}

// DomainOf fits a domain around the given data points. Empty data
// yields the default 0..1 domain on both axes.
func DomainOf(xy plotter.XYer) Domain {
	x, y := dataScales(xy)
	return Domain{x: x, y: y}
}

// Including widens the domain to cover the given data points, refitting
// each scale so the combined bounds stay nice.
func (d Domain) Including(xy plotter.XYer) Domain {
	x, y := dataScales(xy)
	d.x = d.x.Union(x)
	d.y = d.y.Union(y)
	return d
}

// WithX replaces the X scale with one fitted to the given data.
func (d Domain) WithX(xy plotter.XYer) Domain {
	d.x, _ = dataScales(xy)
	return d
}

// WithY replaces the Y scale with one fitted to the given data.
func (d Domain) WithY(xy plotter.XYer) Domain {
	_, d.y = dataScales(xy)
	return d
}

// X returns the X scale.
func (d Domain) X() Scale { return d.x }

// Y returns the Y scale, in its stored (ascending) direction.
func (d Domain) Y() Scale { return d.y }

// Axis returns an axis for the given edge. Top and bottom axes carry
// the X ticks, left and right axes the inverted Y ticks.
func (d Domain) Axis(name string, edge Edge) Axis {
	var ticks []Tick
	switch edge {
	case Top, Bottom:
		ticks = d.x.Ticks()
	default:
		ticks = d.y.Inverted().Ticks()
	}
	return Axis{edge: edge, name: name, ticks: ticks}
}

// Bind freezes the domain against a pixel rectangle. The returned
// value maps data coordinates to pixels; rebinding creates a new
// value and never mutates d.
func (d Domain) Bind(r Rect) BoundDomain {
	return BoundDomain{domain: d, rect: r}
}

func dataScales(xy plotter.XYer) (x, y Scale) {
	if xy == nil || xy.Len() == 0 {
		return NewScale(0, 1), NewScale(0, 1)
	}
	xmin, xmax, ymin, ymax := plotter.XYRange(xy)
	return NewScale(xmin, xmax), NewScale(ymin, ymax)
}

// ----------------------------------------------------------------------------
// BoundDomain

// BoundDomain is a Domain fixed to a pixel rectangle. Its mapping
// functions are pure over the domain and the rectangle.
type BoundDomain struct {
	domain Domain
	rect   Rect
}

// Rect returns the bound pixel rectangle.
func (b BoundDomain) Rect() Rect { return b.rect }

// XMap maps a data x value to a pixel x coordinate, rounded to the
// nearest integer.
func (b BoundDomain) XMap(x float64) int {
	return b.rect.X + int(math.Round(float64(b.rect.W)*b.domain.x.Normalize(x)))
}

// YMap maps a data y value to a pixel y coordinate, rounded to the
// nearest integer. The Y scale is applied inverted so that larger
// values land higher on the canvas.
func (b BoundDomain) YMap(y float64) int {
	return b.rect.Y + int(math.Round(float64(b.rect.H)*b.domain.y.Inverted().Normalize(y)))
}
