package splot

import "fmt"

// ----------------------------------------------------------------------------
// Edge

// Edge is one of the four sides of a Rect from which space can be
// partitioned and to which titles and axes attach.
type Edge int

const (
	Top Edge = iota
	Left
	Bottom
	Right
)

// String returns the name of the edge.
func (e Edge) String() string {
	return []string{"top", "left", "bottom", "right"}[int(e)]
}

// ----------------------------------------------------------------------------
// Rect

// Rect is an axis-aligned pixel rectangle. Width and height are never
// negative: all operations clamp to zero instead of underflowing.
//
// Rect is a plain value type. Partitioning operations return new values
// and never mutate their receiver.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the rectangle with origin (x,y) and the given size.
// Negative sizes are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Inset shrinks r symmetrically on all four sides. A margin larger than
// half the extent collapses that dimension to zero.
func (r Rect) Inset(v int) Rect {
	if v < 0 {
		v = 0
	}
	return NewRect(r.X+v, r.Y+v, r.W-2*v, r.H-2*v)
}

// Split carves a strip of v pixels off the given edge of r. It returns
// the remainder and the carved-off strip; together they tile r exactly.
// Requesting more space than available yields a zero-size strip at the
// edge and leaves the remainder untouched.
func (r Rect) Split(edge Edge, v int) (rem, strip Rect) {
	dim := r.H
	if edge == Left || edge == Right {
		dim = r.W
	}
	if v < 0 || v > dim {
		v = 0
	}
	switch edge {
	case Top:
		strip = NewRect(r.X, r.Y, r.W, v)
		rem = NewRect(r.X, r.Y+v, r.W, r.H-v)
	case Left:
		strip = NewRect(r.X, r.Y, v, r.H)
		rem = NewRect(r.X+v, r.Y, r.W-v, r.H)
	case Bottom:
		strip = NewRect(r.X, r.Bottom()-v, r.W, v)
		rem = NewRect(r.X, r.Y, r.W, r.H-v)
	case Right:
		strip = NewRect(r.Right()-v, r.Y, v, r.H)
		rem = NewRect(r.X, r.Y, r.W-v, r.H)
	}
	return rem, strip
}

// IntersectHoriz clips r to the horizontal extent of o. The vertical
// extent of r is unchanged.
func (r Rect) IntersectHoriz(o Rect) Rect {
	x := r.X
	if o.X > x {
		x = o.X
	}
	x2 := r.Right()
	if o.Right() < x2 {
		x2 = o.Right()
	}
	return NewRect(x, r.Y, x2-x, r.H)
}

// IntersectVert clips r to the vertical extent of o. The horizontal
// extent of r is unchanged.
func (r Rect) IntersectVert(o Rect) Rect {
	y := r.Y
	if o.Y > y {
		y = o.Y
	}
	y2 := r.Bottom()
	if o.Bottom() < y2 {
		y2 = o.Bottom()
	}
	return NewRect(r.X, y, r.W, y2-y)
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", r.W, r.H, r.X, r.Y)
}

// ----------------------------------------------------------------------------
// AspectRatio

// AspectRatio selects one of the three fixed pixel canvases a chart can
// be rendered on.
type AspectRatio int

const (
	Landscape AspectRatio = iota
	Square
	Portrait
)

// rect returns the canvas for the aspect ratio.
func (a AspectRatio) rect() Rect {
	switch a {
	case Square:
		return NewRect(0, 0, 2000, 2000)
	case Portrait:
		return NewRect(0, 0, 1500, 2000)
	}
	return NewRect(0, 0, 2000, 1500)
}
