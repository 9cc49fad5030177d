package splot

import (
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// Anchor

// Anchor selects where a text element attaches to its position.
type Anchor int

const (
	Start Anchor = iota
	Middle
	End
)

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	return []string{"start", "middle", "end"}[int(a)]
}

// ----------------------------------------------------------------------------
// Text placement

// textPos computes the anchor point and rotation (degrees) for a text
// element placed inside rect along the given edge. Left and right edge
// text reads bottom-up respectively top-down.
func textPos(edge Edge, anchor Anchor, rect Rect) (x, y, rot int) {
	switch {
	case (edge == Top || edge == Bottom) && anchor == Start:
		x = rect.X
	case (edge == Top || edge == Bottom) && anchor == End:
		x = rect.Right()
	default:
		x = rect.X + rect.W/2
	}
	switch {
	case (edge == Left && anchor == End) || (edge == Right && anchor == Start):
		y = rect.Y
	case (edge == Left && anchor == Start) || (edge == Right && anchor == End):
		y = rect.Bottom()
	default:
		y = rect.Y + rect.H/2
	}
	switch edge {
	case Left:
		rot = -90
	case Right:
		rot = 90
	}
	return x, y, rot
}

// textAttrs builds the attribute string for a text element placed in
// rect along the given edge: class, anchor and the translate/rotate
// transform. The caller renders the text at (0, 0).
func textAttrs(class string, edge Edge, anchor Anchor, rect Rect) string {
	x, y, rot := textPos(edge, anchor, rect)
	var b strings.Builder
	fmt.Fprintf(&b, "class=%q text-anchor=%q", class, anchor)
	fmt.Fprintf(&b, " transform=\"translate(%d %d)", x, y)
	if rot != 0 {
		fmt.Fprintf(&b, " rotate(%d)", rot)
	}
	b.WriteString("\"")
	return b.String()
}
