// Package cli implements the modreport command-line interface.
//
// The CLI exports module-dependency graphs as DOT or HTML reports, drives a
// Graphviz layout engine over DOT output, and can serve the report over
// HTTP. It is built on cobra with structured logging via charmbracelet/log.
//
// # Commands
//
//   - export: Populate the graph and write a DOT or HTML report
//   - render: Rasterize an existing DOT file with a layout engine
//   - serve: Serve the HTML report and DOT text over HTTP
//
// All commands support --verbose (-v) for debug-level logging and --config
// for TOML defaults. Loggers are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modreport/modreport/pkg/buildinfo"
)

// Execute runs the modreport CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger is attached to the command context and retrieved by
// subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "modreport",
		Short:        "modreport exports module-dependency graphs as DOT and HTML reports",
		Long:         `modreport turns a module-dependency graph into reports: a Graphviz DOT description, an HTML document, or a rendered image produced by a layout engine.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default: ./modreport.toml if present)")

	root.AddCommand(newExportCmd(&configPath))
	root.AddCommand(newRenderCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))

	return root.ExecuteContext(ctx)
}
