package splot

import svg "github.com/ajstarks/svgo"

// ----------------------------------------------------------------------------
// Title

// titleSpace is the band a title reserves along its edge.
const titleSpace = 100

// Title is a chart title placed along one edge. Titles on the left and
// right edge are rotated to read along the axis.
type Title struct {
	text   string
	anchor Anchor
	edge   Edge
}

// NewTitle returns a title centered on the top edge.
func NewTitle(text string) Title {
	return Title{text: text, anchor: Middle, edge: Top}
}

// AtStart anchors the title text at the start of its band.
func (t Title) AtStart() Title {
	t.anchor = Start
	return t
}

// AtEnd anchors the title text at the end of its band.
func (t Title) AtEnd() Title {
	t.anchor = End
	return t
}

// OnBottom moves the title to the bottom edge.
func (t Title) OnBottom() Title {
	t.edge = Bottom
	return t
}

// OnLeft moves the title to the left edge.
func (t Title) OnLeft() Title {
	t.edge = Left
	return t
}

// OnRight moves the title to the right edge.
func (t Title) OnRight() Title {
	t.edge = Right
	return t
}

// render draws the title into its band.
func (t Title) render(s *svg.SVG, band Rect) {
	s.Text(0, 0, t.text, textAttrs("title", t.edge, t.anchor, band))
}
