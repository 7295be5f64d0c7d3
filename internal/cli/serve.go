package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/modreport/modreport/pkg/graph"
	"github.com/modreport/modreport/pkg/report"
	"github.com/modreport/modreport/pkg/report/dot"
	"github.com/modreport/modreport/pkg/report/html"
)

// newServeCmd creates the serve command, which populates the graph once and
// serves the HTML report and DOT text over HTTP.
func newServeCmd(configPath *string) *cobra.Command {
	var (
		opts graphOpts
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dependency report over HTTP",
		Long: `Serve the dependency report over HTTP.

The graph is populated once at startup. The HTML report is served at "/",
the DOT description at "/graph.dot".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			mergeGraphOpts(cmd, &opts, cfg.Export)
			return runServe(cmd.Context(), opts.reportConfig("", report.FormatHTML), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	addGraphFlags(cmd, &opts)

	return cmd
}

// runServe populates the graph and blocks serving it until ctx is canceled.
func runServe(ctx context.Context, cfg report.Config, addr string) error {
	logger := loggerFromContext(ctx)

	b := report.NewBuilder(cfg)
	prog := newProgress(logger)
	if err := b.Populate(); err != nil {
		return err
	}
	g := b.Graph()
	prog.done("Populated graph")

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := html.Write(w, g); err != nil {
			logger.Errorf("write HTML report: %v", err)
		}
	})
	r.Get("/graph.dot", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		err := dot.Write(w, g,
			func(n *graph.Node) map[string]string { return report.NodeAttrs(n, g) },
			func(source, target *graph.Node, facts []graph.DependencyFact) map[string]string {
				return report.EdgeAttrs(source, target, facts)
			},
			report.Clusters,
		)
		if err != nil {
			logger.Errorf("write DOT report: %v", err)
		}
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	logger.Infof("Serving report on http://%s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
