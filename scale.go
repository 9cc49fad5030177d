package splot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ----------------------------------------------------------------------------
// Scale

// scaleEps is the span below which a scale counts as degenerate.
const scaleEps = 1e-9

// Scale is a fitted numeric range plus tick spacing for one chart axis.
//
// Start and stop are always exact multiples of the tick spacing and
// enclose the data the scale was fitted to. The spacing itself is
// always positive; the rendering direction is carried separately in
// the descending flag.
type Scale struct {
	start, stop float64
	spacing     float64
	descending  bool
}

// NewScale fits a scale with "nice" bounds and tick spacing around
// [min, max]. The spacing is chosen in two passes: a coarse spacing
// 10^floor(log10(max-min)) determines a provisional step count, the
// step count selects the final spacing from {spc/10, spc/4, spc/2,
// spc}, and start/stop are then recomputed as the containing multiples
// of that spacing. This keeps the tick count between 4 and 10 for any
// data magnitude.
func NewScale(min, max float64) Scale {
	spacing := niceSpacing(min, max)
	return Scale{
		start:   math.Floor(min/spacing) * spacing,
		stop:    math.Ceil(max/spacing) * spacing,
		spacing: spacing,
	}
}

func niceSpacing(min, max float64) float64 {
	span := max - min
	if !(span > 0) {
		// Degenerate domain. Any spacing works, 1 keeps the
		// bounds finite; Normalize handles the rest.
		return 1
	}
	power := math.Floor(math.Log10(span))
	spc := math.Pow(10, power)
	start := math.Floor(min/spc) * spc
	stop := math.Ceil(max/spc) * spc
	steps := (stop - start) / spc
	switch {
	case steps <= 1:
		return spc / 10
	case steps <= 2:
		return spc / 4
	case steps < 5:
		return spc / 2
	}
	return spc
}

// Start returns the lower bound of the scale.
func (s Scale) Start() float64 { return s.start }

// Stop returns the upper bound of the scale.
func (s Scale) Stop() float64 { return s.stop }

// TickSpacing returns the distance between two adjacent ticks.
// It is always positive, regardless of the rendering direction.
func (s Scale) TickSpacing() float64 { return s.spacing }

// Descending reports whether larger values map to smaller normalized
// positions.
func (s Scale) Descending() bool { return s.descending }

// Inverted returns a copy of s with the rendering direction flipped.
// Bounds and spacing are unchanged.
func (s Scale) Inverted() Scale {
	s.descending = !s.descending
	return s
}

// Union returns a scale covering both s and o. The result is refitted
// with NewScale so that spacing and bounds stay nice for the combined
// range; it keeps the direction of s.
func (s Scale) Union(o Scale) Scale {
	u := NewScale(math.Min(s.start, o.start), math.Max(s.stop, o.stop))
	u.descending = s.descending
	return u
}

// Normalize maps a value to its proportion in [0, 1] along the scale.
// Values outside [start, stop] map outside [0, 1]. A degenerate scale
// maps every value to the center, 0.5.
func (s Scale) Normalize(v float64) float64 {
	d := s.stop - s.start
	if d <= scaleEps {
		return 0.5
	}
	if s.descending {
		return (s.stop - v) / d
	}
	return (v - s.start) / d
}

// Ticks returns one tick per spacing step from start to stop, both ends
// included. Tick values are computed from an integer step index so they
// land on exact multiples of the spacing instead of accumulated float
// artifacts.
func (s Scale) Ticks() []Tick {
	n := int(math.Round((s.stop - s.start) / s.spacing))
	ticks := make([]Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := s.start + float64(i)*s.spacing
		if s.descending {
			v = s.stop - float64(i)*s.spacing
		}
		ticks = append(ticks, Tick{
			Value: s.Normalize(v),
			Label: formatTick(v, s.spacing),
		})
	}
	return ticks
}

func (s Scale) String() string {
	dir := "asc"
	if s.descending {
		dir = "desc"
	}
	return fmt.Sprintf("[%g:%g] by %g %s", s.start, s.stop, s.spacing, dir)
}

// ----------------------------------------------------------------------------
// Tick

// Tick is one labeled mark on an axis. Value is the normalized position
// in [0, 1], not the raw data value; Label is the human-readable form
// of the raw value.
type Tick struct {
	Value float64
	Label string
}

// Tick mark geometry in pixels.
const (
	tickLen  = 20
	tickHLen = tickLen + 8
	tickVLen = tickLen * 2
)

// x returns the pixel x position of the tick relative to rect.
// For vertical axes the position is a fixed offset from the edge.
func (t Tick) x(edge Edge, rect Rect, l int) int {
	switch edge {
	case Left:
		return rect.Right() - l
	case Right:
		return rect.X + l
	}
	return rect.X + int(math.Round(t.Value*float64(rect.W)))
}

// y returns the pixel y position of the tick relative to rect.
func (t Tick) y(edge Edge, rect Rect, l int) int {
	switch edge {
	case Top:
		return rect.Bottom() - l
	case Bottom:
		return rect.Y + l
	}
	return rect.Y + int(math.Round(t.Value*float64(rect.H)))
}

// formatTick renders a tick value with just enough decimals for the
// given spacing, trimming trailing zeros.
func formatTick(v, spacing float64) string {
	label := strconv.FormatFloat(v, 'f', tickDecimals(spacing), 64)
	if strings.Contains(label, ".") {
		label = strings.TrimRight(label, "0")
		label = strings.TrimRight(label, ".")
	}
	if label == "-0" {
		label = "0"
	}
	return label
}

// tickDecimals counts the decimal digits needed to print an exact
// multiple of spacing.
func tickDecimals(spacing float64) int {
	d := 0
	for d < 12 {
		_, frac := math.Modf(spacing)
		if frac < 1e-6 || frac > 1-1e-6 {
			break
		}
		spacing *= 10
		d++
	}
	return d
}
