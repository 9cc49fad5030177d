package splot

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// chartInset is the outer margin between the canvas and any content.
const chartInset = 40

// ----------------------------------------------------------------------------
// Chart

// Chart renders titles, axes and plots as a standalone SVG document.
// Charts are assembled through the staged builder starting at New,
// which fixes the construction order to aspect ratio, domain, titles,
// axes, plots. The order matters: every band split off for a title or
// axis shrinks the working area, and all plot geometry is bound to the
// final plot area left over after the last split.
type Chart struct {
	aspect AspectRatio
	domain Domain
	titles []Title
	axes   []Axis
	plots  []Plot
}

// area applies the layout order and returns the final plot area:
// inset margin, then one band per title, then one band per axis.
func (c *Chart) area() Rect {
	area := c.aspect.rect().Inset(chartInset)
	for _, t := range c.titles {
		area, _ = area.Split(t.edge, titleSpace)
	}
	for _, a := range c.axes {
		area, _ = a.split(area)
	}
	return area
}

// WriteSVG renders the chart to w.
func (c *Chart) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	c.render(svg.New(ew))
	return ew.err
}

// String renders the chart as an SVG document.
func (c *Chart) String() string {
	var b strings.Builder
	c.WriteSVG(&b)
	return b.String()
}

func (c *Chart) render(s *svg.SVG) {
	canvas := c.aspect.rect()
	s.Startview(canvas.W, canvas.H, canvas.X, canvas.Y, canvas.W, canvas.H)
	s.Style("text/css", defaultCSS)
	c.defs(s)

	area := canvas.Inset(chartInset)
	for _, t := range c.titles {
		var band Rect
		area, band = area.Split(t.edge, titleSpace)
		t.render(s, band)
	}
	bands := make([]Rect, len(c.axes))
	for i, a := range c.axes {
		area, bands[i] = a.split(area)
	}
	for _, a := range c.axes {
		a.grid(s, area)
	}
	for i, a := range c.axes {
		a.render(s, bands[i], area)
	}

	bound := c.domain.Bind(area)
	s.Group(`clip-path="url(#clip-plot)"`)
	for i, p := range c.plots {
		p.render(s, i, bound)
	}
	s.Gend()
	s.End()
}

// defs emits one marker per series and the plot-area clip path.
func (c *Chart) defs(s *svg.SVG) {
	s.Def()
	for i := range c.plots {
		s.Marker(fmt.Sprintf("marker-%d", i), 0, 0, 5, 5,
			`viewBox="-1 -1 2 2"`)
		drawMarker(s, i)
		s.MarkerEnd()
	}
	area := c.area()
	s.ClipPath(`id="clip-plot"`)
	s.Rect(area.X, area.Y, area.W, area.H)
	s.ClipEnd()
	s.DefEnd()
}

// errWriter keeps the first write error and swallows the rest, so the
// svgo calls can run to completion.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
		return len(p), nil
	}
	return n, nil
}

// ----------------------------------------------------------------------------
// Builder stages

// New starts building a chart on the given canvas. The builder moves
// through typed stages so that the construction order is fixed at
// compile time: a domain must be set before titles, titles come before
// axes, axes before plots. Adding an axis after a plot does not
// compile.
func New(aspect AspectRatio) Builder {
	return Builder{chart: &Chart{
		aspect: aspect,
		domain: Domain{x: NewScale(0, 1), y: NewScale(0, 1)},
	}}
}

// Builder is the first stage: it only accepts the chart's domain.
type Builder struct {
	chart *Chart
}

// Domain sets the data domain and moves to the title stage.
func (b Builder) Domain(d Domain) TitleStage {
	b.chart.domain = d
	return TitleStage{AxisStage{PlotStage{chart: b.chart}}}
}

// TitleStage accepts titles, axes, plots and Build.
type TitleStage struct {
	AxisStage
}

// Title adds a title band.
func (t TitleStage) Title(title Title) TitleStage {
	t.chart.titles = append(t.chart.titles, title)
	return t
}

// AxisStage accepts axes, plots and Build; titles are closed.
type AxisStage struct {
	PlotStage
}

// Axis adds an axis for the chart's domain on the given edge.
func (a AxisStage) Axis(name string, edge Edge) AxisStage {
	a.chart.axes = append(a.chart.axes, a.chart.domain.Axis(name, edge))
	return a
}

// PlotStage accepts plots and Build; titles and axes are closed.
type PlotStage struct {
	chart *Chart
}

// Plot adds a data series.
func (p PlotStage) Plot(plot Plot) PlotStage {
	p.chart.plots = append(p.chart.plots, plot)
	return p
}

// Build returns the finished chart.
func (p PlotStage) Build() *Chart {
	return p.chart
}
