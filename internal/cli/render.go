package cli

import (
	"github.com/spf13/cobra"

	"github.com/modreport/modreport/pkg/render"
)

// newRenderCmd creates the render command for rasterizing an existing DOT
// file with a layout engine.
func newRenderCmd(configPath *string) *cobra.Command {
	var (
		format string
		engine string
	)

	cmd := &cobra.Command{
		Use:   "render [file.dot]",
		Short: "Render a DOT report with a Graphviz layout engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") && cfg.Render.Format != "" {
				format = cfg.Render.Format
			}
			if engine == "" {
				engine = cfg.Render.Engine
			}
			if err := render.ValidateFormat(format); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debugf("Rendering %s as %s", args[0], format)

			path, err := render.New(engine).Render(cmd.Context(), args[0], format)
			if err != nil {
				return err
			}
			printGenerated(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "render format: html, ps, pdf (default), png, gif, jpg, json, svg")
	cmd.Flags().StringVar(&engine, "engine", "", "layout engine binary (default: dot)")

	return cmd
}
