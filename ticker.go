package splot

import (
	"math"

	"gonum.org/v1/plot"
)

// NiceTicks is a plot.Ticker producing ticks with the same nice-number
// fitting the splot scales use. It can be assigned to the Tick.Marker
// of a gonum/plot axis to get identical tick placement there.
type NiceTicks struct{}

var _ plot.Ticker = NiceTicks{}

// Ticks implements plot.Ticker. Ticks falling outside [min, max] are
// dropped, since the fitted bounds may be wider than the axis range.
func (NiceTicks) Ticks(min, max float64) []plot.Tick {
	s := NewScale(min, max)
	var ticks []plot.Tick
	n := int(math.Round((s.Stop() - s.Start()) / s.TickSpacing()))
	for i := 0; i <= n; i++ {
		v := s.Start() + float64(i)*s.TickSpacing()
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: formatTick(v, s.TickSpacing()),
		})
	}
	return ticks
}
