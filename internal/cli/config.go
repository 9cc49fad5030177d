package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/splot"
)

// Config describes one chart in a TOML file:
//
//	title = "Line Plot"
//	aspect = "landscape"
//
//	[[axis]]
//	name = "X Axis"
//	edge = "bottom"
//
//	[[series]]
//	name = "Series A"
//	kind = "line"
//	points = [[13, 74], [111, 37], [125, 52], [190, 66]]
type Config struct {
	Title  string         `toml:"title"`
	Aspect string         `toml:"aspect"`
	Axes   []AxisConfig   `toml:"axis"`
	Series []SeriesConfig `toml:"series"`
}

// AxisConfig places one named axis on a chart edge.
type AxisConfig struct {
	Name string `toml:"name"`
	Edge string `toml:"edge"`
}

// SeriesConfig is one data series with its plot kind and inline points.
type SeriesConfig struct {
	Name   string      `toml:"name"`
	Kind   string      `toml:"kind"`
	Points [][]float64 `toml:"points"`
}

// LoadConfig reads and validates a chart description.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Series) == 0 {
		return fmt.Errorf("no series defined")
	}
	if _, err := parseAspect(c.Aspect); err != nil {
		return err
	}
	for _, a := range c.Axes {
		if _, err := parseEdge(a.Edge); err != nil {
			return err
		}
	}
	for _, s := range c.Series {
		switch s.Kind {
		case "line", "area", "scatter":
		default:
			return fmt.Errorf("series %q: unknown kind %q", s.Name, s.Kind)
		}
		if len(s.Points) == 0 {
			return fmt.Errorf("series %q: no points", s.Name)
		}
		for i, p := range s.Points {
			if len(p) != 2 {
				return fmt.Errorf("series %q: point %d has %d values, want 2",
					s.Name, i, len(p))
			}
		}
	}
	return nil
}

// Chart builds the chart described by c. The domain covers the union
// of all series.
func (c *Config) Chart() (*splot.Chart, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	aspect, _ := parseAspect(c.Aspect)

	data := make([]plotter.XYs, len(c.Series))
	for i, s := range c.Series {
		data[i] = s.xys()
	}
	dom := splot.DomainOf(data[0])
	for _, xy := range data[1:] {
		dom = dom.Including(xy)
	}

	ts := splot.New(aspect).Domain(dom)
	if c.Title != "" {
		ts = ts.Title(splot.NewTitle(c.Title))
	}
	as := ts.AxisStage
	for _, a := range c.Axes {
		edge, _ := parseEdge(a.Edge)
		as = as.Axis(a.Name, edge)
	}
	ps := as.PlotStage
	for i, s := range c.Series {
		switch s.Kind {
		case "line":
			ps = ps.Plot(splot.Line(s.Name, data[i]))
		case "area":
			ps = ps.Plot(splot.Area(s.Name, data[i]))
		case "scatter":
			ps = ps.Plot(splot.Scatter(s.Name, data[i]))
		}
	}
	return ps.Build(), nil
}

func (s SeriesConfig) xys() plotter.XYs {
	xy := make(plotter.XYs, len(s.Points))
	for i, p := range s.Points {
		xy[i].X, xy[i].Y = p[0], p[1]
	}
	return xy
}

func parseAspect(s string) (splot.AspectRatio, error) {
	switch s {
	case "", "landscape":
		return splot.Landscape, nil
	case "square":
		return splot.Square, nil
	case "portrait":
		return splot.Portrait, nil
	}
	return 0, fmt.Errorf("unknown aspect %q (want landscape, square or portrait)", s)
}

func parseEdge(s string) (splot.Edge, error) {
	switch s {
	case "top":
		return splot.Top, nil
	case "left", "":
		return splot.Left, nil
	case "bottom":
		return splot.Bottom, nil
	case "right":
		return splot.Right, nil
	}
	return 0, fmt.Errorf("unknown edge %q (want top, left, bottom or right)", s)
}
