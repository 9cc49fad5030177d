package splot

import svg "github.com/ajstarks/svgo"

// ----------------------------------------------------------------------------
// Stylesheet

// numPlotStyles is the size of the series color palette; series indices
// wrap around it.
const numPlotStyles = 10

// defaultCSS is the stylesheet embedded into every rendered chart.
// The plot-N classes cycle through a 10-color palette.
const defaultCSS = `text { font-family: sans-serif; }
.title { font-size: 48px; }
.axis { font-size: 36px; fill: #333; }
.tick { font-size: 28px; fill: #333; }
.axis-line { stroke: #666; stroke-width: 2; fill: none; }
.grid-x, .grid-y { stroke: #ddd; stroke-width: 1; fill: none; }
.plot-line { fill: none; stroke-width: 5; }
.plot-scatter { fill: none; stroke: none; }
.plot-area { stroke: none; fill-opacity: 0.6; }
.plot-0 { stroke: #4e79a7; fill: #4e79a7; }
.plot-1 { stroke: #f28e2b; fill: #f28e2b; }
.plot-2 { stroke: #e15759; fill: #e15759; }
.plot-3 { stroke: #76b7b2; fill: #76b7b2; }
.plot-4 { stroke: #59a14f; fill: #59a14f; }
.plot-5 { stroke: #edc948; fill: #edc948; }
.plot-6 { stroke: #b07aa1; fill: #b07aa1; }
.plot-7 { stroke: #ff9da7; fill: #ff9da7; }
.plot-8 { stroke: #9c755f; fill: #9c755f; }
.plot-9 { stroke: #bab0ac; fill: #bab0ac; }
`

// ----------------------------------------------------------------------------
// Markers

// numMarkers is the number of distinct marker glyph shapes; series
// indices wrap around it.
const numMarkers = 8

// markerPaths holds the glyph outlines for markers 1..7 in the
// -1..1 marker viewBox. Marker 0 is a circle, drawn separately.
var markerPaths = []string{
	"M-1 -1h2v2h-2z",
	"M0 -1 1 1 -1 1z",
	"M1 0 -1 1 -1 -1z",
	"M0 1 -1 -1 1 -1z",
	"M-1 0 1 -1 1 1z",
	"M0 -1 1 0 0 1 -1 0z",
	"M-1 -1 0 -0.5 1 -1 0.5 0 1 1 0 0.5 -1 1 -0.5 0z",
}

// drawMarker emits the glyph for marker shape i (mod numMarkers) into
// the currently open marker element.
func drawMarker(s *svg.SVG, i int) {
	i %= numMarkers
	if i == 0 {
		s.Circle(0, 0, 1)
		return
	}
	s.Path(markerPaths[i-1])
}
