// Package splot renders 2D data series as SVG charts.
//
// The package maps raw numeric data onto a fixed pixel canvas: a Scale
// fits a "nice" tick spacing and range around the data, a Domain pairs
// an X and a Y scale, and a Rect is carved into title bands, axis bands
// and the residual plot area. Line, area and scatter plots are drawn
// against the plot area through a Domain bound to it.
//
// Scales
//
// A scale's bounds and tick spacing are chosen so that ticks land on
// round decimal multiples (1, 2.5, 5 or 10 times a power of ten) and
// the axis carries between 4 and 10 of them regardless of the data
// magnitude. Data for scales and plots is anything implementing
// gonum.org/v1/plot/plotter.XYer; plotter.XYs is the ready-made
// concrete type.
//
// Construction order
//
// A chart is assembled in a fixed phase order: aspect ratio, domain,
// titles, axes, plots. Each builder stage only offers the legal next
// operations, so an illegal order (an axis added after a plot) does
// not compile:
//
//	data := plotter.XYs{{X: 13, Y: 74}, {X: 111, Y: 37}, {X: 125, Y: 52}, {X: 190, Y: 66}}
//	chart := splot.New(splot.Landscape).
//		Domain(splot.DomainOf(data)).
//		Title(splot.NewTitle("Chart Title")).
//		Axis("X Axis Name", splot.Bottom).
//		Axis("Y Axis Name", splot.Left).
//		Plot(splot.Line("Series A", data)).
//		Build()
//	chart.WriteSVG(os.Stdout)
//
// Rendering is a pure, single-pass computation with no shared state;
// charts and their parts are cheap value types.
package splot
