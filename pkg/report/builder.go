package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/modreport/modreport/pkg/errors"
	"github.com/modreport/modreport/pkg/graph"
	"github.com/modreport/modreport/pkg/render"
	"github.com/modreport/modreport/pkg/report/dot"
	"github.com/modreport/modreport/pkg/report/html"
)

// Output formats for exported reports.
const (
	FormatDOT  = "dot"
	FormatHTML = "html"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{FormatDOT: true, FormatHTML: true}

// ValidateFormat checks that the requested output format is supported. The
// configuration surface must reject illegal formats here; an unsupported
// format reaching the dispatch point in [Builder.Print] is a programming
// error and panics.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'dot' or 'html')", format)
	}
	return nil
}

// Config holds the export parameters. It is immutable after the Builder is
// constructed.
type Config struct {
	// Output is the destination file path; "" writes to standard output.
	Output string
	// Format selects the report format, FormatDOT or FormatHTML.
	Format string
	// Modules, Scripts and Distributions are added as graph entry points,
	// in order.
	Modules       []string
	Scripts       []string
	Distributions []string
	// Excludes lists module names excluded from traversal.
	Excludes []string
	// Paths are search directories for module indexes, highest priority
	// first.
	Paths []string
	// ExcludeStdlib merges the standard-library module names into
	// Excludes.
	ExcludeStdlib bool
}

// Builder orchestrates a single export run: it populates the graph from the
// configured entry points, serializes it in the requested format, and can
// drive a layout engine to rasterize DOT output.
//
// A Builder is single-use: population is a one-shot, non-idempotent step.
type Builder struct {
	cfg       Config
	excludes  []string
	graph     *graph.Graph
	populated bool
}

// NewBuilder creates a builder for the given configuration. When
// Config.ExcludeStdlib is set, the standard-library name set is merged into
// the exclusion list exactly once, here.
func NewBuilder(cfg Config) *Builder {
	excludes := slices.Clone(cfg.Excludes)
	if cfg.ExcludeStdlib {
		excludes = append(excludes, graph.StdlibNames()...)
	}
	return &Builder{cfg: cfg, excludes: excludes}
}

// Excludes returns the effective exclusion list, including merged
// standard-library names.
func (b *Builder) Excludes() []string {
	return slices.Clone(b.excludes)
}

// Graph returns the populated graph, or nil before Populate.
func (b *Builder) Graph() *graph.Graph {
	return b.graph
}

// Populate builds the dependency graph: exclusions are registered first,
// then every configured module, script, and distribution is added as an
// entry point, in configuration order. Populate must be called exactly once.
func (b *Builder) Populate() error {
	if b.populated {
		return errors.New(errors.ErrCodeInternal, "graph already populated")
	}
	b.populated = true

	src, err := graph.NewPathSource(b.cfg.Paths)
	if err != nil {
		return err
	}

	g := graph.New(src)
	g.AddExcludes(b.excludes)

	for _, name := range b.cfg.Modules {
		if _, err := g.AddModule(name); err != nil {
			return err
		}
	}
	for _, path := range b.cfg.Scripts {
		if _, err := g.AddScript(path); err != nil {
			return err
		}
	}
	for _, name := range b.cfg.Distributions {
		if _, err := g.AddDistribution(name); err != nil {
			return err
		}
	}

	b.graph = g
	return nil
}

// Print serializes the populated graph to w in the configured format.
//
// The DOT path wires in the node and edge attribute formatters and the
// distribution clusterer; the HTML path renders the fixed report document.
// Any other format is an invariant violation upstream and panics.
func (b *Builder) Print(w io.Writer) error {
	switch b.cfg.Format {
	case FormatHTML:
		return html.Write(w, b.graph)
	case FormatDOT:
		g := b.graph
		return dot.Write(w, g,
			func(n *graph.Node) map[string]string { return NodeAttrs(n, g) },
			func(source, target *graph.Node, facts []graph.DependencyFact) map[string]string {
				return EdgeAttrs(source, target, facts)
			},
			Clusters,
		)
	default:
		panic(fmt.Sprintf("unsupported output format %q", b.cfg.Format))
	}
}

// Export writes the report to the configured destination, or to standard
// output when no destination is set. A destination that cannot be created
// or written is returned as an I/O error; it is not retried.
func (b *Builder) Export() error {
	if b.cfg.Output == "" {
		return b.Print(os.Stdout)
	}

	f, err := os.Create(b.cfg.Output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", b.cfg.Output)
	}

	if err := b.Print(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", b.cfg.Output)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", b.cfg.Output)
	}
	return nil
}

// Render drives the layout engine over the exported DOT file and returns
// the path of the rendered artifact. It is only meaningful for DOT reports
// written to a file; there is nothing to render from standard-output
// streaming. The engine's result, including a non-zero exit status, is
// surfaced to the caller.
func (b *Builder) Render(ctx context.Context, engine render.Engine, format string) (string, error) {
	if b.cfg.Format != FormatDOT {
		return "", errors.New(errors.ErrCodeUnsupported, "only DOT reports can be rendered")
	}
	if b.cfg.Output == "" {
		return "", errors.New(errors.ErrCodeUnsupported, "rendering requires a file destination")
	}
	return engine.Render(ctx, b.cfg.Output, format)
}
