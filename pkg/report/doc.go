// Package report is the presentation layer for module-dependency graphs.
//
// # Overview
//
// The package turns an already-populated [graph.Graph] into human- and
// tool-consumable reports. It owns the three formatting policies and the
// export orchestration:
//
//   - [NodeAttrs] maps a node's kind and root status to shape and emphasis
//     attributes.
//   - [EdgeAttrs] maps an edge's dependency facts and structural containment
//     to line style, weight, and arrowhead attributes.
//   - [Clusters] groups nodes by owning distribution for cluster subgraphs.
//   - [Builder] owns the configuration, delegates graph population, selects
//     a serializer by output format, and optionally drives a layout engine
//     over the written DOT file.
//
// # Usage
//
//	b := report.NewBuilder(report.Config{
//	    Output:  "deps.dot",
//	    Format:  report.FormatDOT,
//	    Modules: []string{"pkg"},
//	    Paths:   []string{"."},
//	})
//	if err := b.Populate(); err != nil { ... }
//	if err := b.Export(); err != nil { ... }
//	path, err := b.Render(ctx, render.New(""), "pdf")
//
// The concrete serializers live in the dot and html subpackages; the DOT
// serializer receives the formatters and clusterer as callbacks and stays
// decoupled from the attribute policy defined here.
package report
