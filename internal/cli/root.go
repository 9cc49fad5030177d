// Package cli implements the splot command-line interface.
//
// The CLI reads chart descriptions from TOML files and renders them as
// SVG documents or as a single HTML page. It is built on cobra and
// logs through the charmbracelet/log library; all commands support
// --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the splot CLI and returns an error if a command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "splot",
		Short:        "splot renders data series as SVG charts",
		Long:         `splot reads chart descriptions from TOML files and renders line, area and scatter plots as SVG documents with nice axis ticks.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
