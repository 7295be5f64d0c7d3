package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/modreport/modreport/pkg/errors"
	"github.com/modreport/modreport/pkg/render"
	"github.com/modreport/modreport/pkg/report"
)

// graphOpts holds the graph-population flags shared by export and serve.
type graphOpts struct {
	modules       []string
	scripts       []string
	distributions []string
	excludes      []string
	paths         []string
	excludeStdlib bool
}

// addGraphFlags registers the graph-population flags on cmd.
func addGraphFlags(cmd *cobra.Command, opts *graphOpts) {
	cmd.Flags().StringArrayVarP(&opts.modules, "module", "m", nil, "module name to add as entry point (repeatable)")
	cmd.Flags().StringArrayVar(&opts.scripts, "script", nil, "script document to add as entry point (repeatable)")
	cmd.Flags().StringArrayVar(&opts.distributions, "distribution", nil, "distribution name to add (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.excludes, "exclude", "x", nil, "module name to exclude from traversal (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.paths, "path", "p", nil, "search path for module indexes, highest priority first (repeatable)")
	cmd.Flags().BoolVar(&opts.excludeStdlib, "exclude-stdlib", false, "exclude standard-library modules")
}

// mergeGraphOpts fills unset population flags from the config file.
func mergeGraphOpts(cmd *cobra.Command, opts *graphOpts, cfg exportConfig) {
	if !cmd.Flags().Changed("module") {
		opts.modules = cfg.Modules
	}
	if !cmd.Flags().Changed("script") {
		opts.scripts = cfg.Scripts
	}
	if !cmd.Flags().Changed("distribution") {
		opts.distributions = cfg.Distributions
	}
	if !cmd.Flags().Changed("exclude") {
		opts.excludes = cfg.Excludes
	}
	if !cmd.Flags().Changed("path") {
		opts.paths = cfg.Paths
	}
	if !cmd.Flags().Changed("exclude-stdlib") && cfg.ExcludeStdlib {
		opts.excludeStdlib = true
	}
}

// reportConfig converts the population flags into a report configuration.
func (o *graphOpts) reportConfig(output, format string) report.Config {
	return report.Config{
		Output:        output,
		Format:        format,
		Modules:       o.modules,
		Scripts:       o.scripts,
		Distributions: o.distributions,
		Excludes:      o.excludes,
		Paths:         o.paths,
		ExcludeStdlib: o.excludeStdlib,
	}
}

// newExportCmd creates the export command, the main operation: populate the
// graph and write the report, optionally rendering DOT output with a layout
// engine.
func newExportCmd(configPath *string) *cobra.Command {
	var (
		opts         graphOpts
		output       string
		format       string
		renderFormat string
		engine       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dependency graph as a DOT or HTML report",
		Long: `Export the dependency graph as a DOT or HTML report.

Entry points (modules, scripts, distributions) are resolved against the
module indexes found on the search paths, the reachable graph is populated,
and the report is written to the output file or standard output.

With --render, the written DOT file is additionally passed to a Graphviz
layout engine to produce a rendered image or document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			mergeGraphOpts(cmd, &opts, cfg.Export)
			if !cmd.Flags().Changed("output") && cfg.Export.Output != "" {
				output = cfg.Export.Output
			}
			if !cmd.Flags().Changed("format") && cfg.Export.Format != "" {
				format = cfg.Export.Format
			}
			if renderFormat == "" {
				renderFormat = cfg.Render.Format
			}
			if engine == "" {
				engine = cfg.Render.Engine
			}

			if err := report.ValidateFormat(format); err != nil {
				return err
			}
			if renderFormat != "" {
				if err := render.ValidateFormat(renderFormat); err != nil {
					return err
				}
				if format != report.FormatDOT {
					return errors.New(errors.ErrCodeInvalidInput, "--render requires --format dot")
				}
				if output == "" {
					return errors.New(errors.ErrCodeInvalidInput, "--render requires an output file")
				}
			}

			return runExport(cmd.Context(), opts.reportConfig(output, format), renderFormat, engine)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: standard output)")
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatDOT, "output format: dot (default), html")
	cmd.Flags().StringVar(&renderFormat, "render", "", "render the DOT output with the layout engine: html, ps, pdf, png, gif, jpg, json, svg")
	cmd.Flags().StringVar(&engine, "engine", "", "layout engine binary (default: dot)")
	addGraphFlags(cmd, &opts)

	return cmd
}

// runExport performs one export run: populate, write, optionally render.
func runExport(ctx context.Context, cfg report.Config, renderFormat, engine string) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Starting export run %s", uuid.NewString())

	b := report.NewBuilder(cfg)

	prog := newProgress(logger)
	if err := b.Populate(); err != nil {
		return err
	}
	g := b.Graph()
	prog.done(fmt.Sprintf("Populated graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))

	if err := b.Export(); err != nil {
		return err
	}
	if cfg.Output != "" {
		printGenerated(cfg.Output)
	}

	if renderFormat == "" {
		return nil
	}

	path, err := b.Render(ctx, render.New(engine), renderFormat)
	if err != nil {
		return err
	}
	printGenerated(path)
	return nil
}
