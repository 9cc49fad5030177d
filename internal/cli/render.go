package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdobler/splot"
)

// newRenderCmd creates the render command. Each input file yields one
// SVG next to it unless -o is given; an .html output collects all
// charts into a single page.
func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <chart.toml>...",
		Short: "Render chart descriptions to SVG or HTML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"output file; .html collects all charts into one page (default: input name with .svg)")
	return cmd
}

func runRender(ctx context.Context, paths []string, output string) error {
	logger := loggerFromContext(ctx)

	charts := make([]*splot.Chart, len(paths))
	for i, path := range paths {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		chart, err := cfg.Chart()
		if err != nil {
			return err
		}
		logger.Debug("loaded chart", "path", path, "series", len(cfg.Series))
		charts[i] = chart
	}

	if strings.HasSuffix(output, ".html") {
		page := splot.NewPage()
		for _, c := range charts {
			page.Chart(c)
		}
		if err := writeTo(output, page.WriteHTML); err != nil {
			return err
		}
		logger.Info("wrote page", "path", output, "charts", len(charts))
		return nil
	}

	if output != "" && len(paths) > 1 {
		return fmt.Errorf("multiple inputs need an .html output, got %q", output)
	}
	for i, path := range paths {
		out := output
		if out == "" {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
		}
		if err := writeTo(out, charts[i].WriteSVG); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", out)
	}
	return nil
}

func writeTo(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
