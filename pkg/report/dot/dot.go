// Package dot serializes a module-dependency graph as Graphviz DOT.
//
// The serializer is decoupled from attribute policy: callers supply
// formatter callbacks that map nodes and edges to DOT attributes, and a
// clusterer that groups nodes into subgraphs. The [report] package provides
// the standard callbacks.
//
// [report]: github.com/modreport/modreport/pkg/report
package dot

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/modreport/modreport/pkg/graph"
)

// NodeFormatter maps a node to DOT attributes. A nil or empty result emits
// the node without an attribute list.
type NodeFormatter func(n *graph.Node) map[string]string

// EdgeFormatter maps a directed edge, given as the source node, the target
// node, and all dependency facts recorded for that ordered pair, to DOT
// attributes.
type EdgeFormatter func(source, target *graph.Node, facts []graph.DependencyFact) map[string]string

// Cluster is a named group of nodes emitted as a DOT cluster subgraph.
type Cluster struct {
	Name  string
	Style string
	Nodes []*graph.Node
}

// Clusterer partitions graph nodes into clusters. Nodes absent from every
// cluster are emitted at the top level.
type Clusterer func(g *graph.Graph) []Cluster

// Write serializes g as a complete DOT document. Nodes belonging to a
// cluster are declared inside the cluster's subgraph; all remaining nodes
// are declared at the top level, followed by every edge. Attribute lists are
// emitted in sorted key order for reproducible output.
func Write(w io.Writer, g *graph.Graph, nodeFmt NodeFormatter, edgeFmt EdgeFormatter, clusterFn Clusterer) error {
	var b strings.Builder
	b.WriteString("digraph modulegraph {\n")
	b.WriteString("  rankdir=LR;\n\n")

	clustered := make(map[string]bool)
	if clusterFn != nil {
		for i, cluster := range clusterFn(g) {
			fmt.Fprintf(&b, "  subgraph cluster_%d {\n", i)
			fmt.Fprintf(&b, "    label=%q;\n", cluster.Name)
			if cluster.Style != "" {
				fmt.Fprintf(&b, "    shape=%q;\n", cluster.Style)
			}
			for _, n := range cluster.Nodes {
				writeNode(&b, "    ", n, nodeFmt)
				clustered[n.Identifier] = true
			}
			b.WriteString("  }\n")
		}
		b.WriteString("\n")
	}

	for _, n := range g.Nodes() {
		if clustered[n.Identifier] {
			continue
		}
		writeNode(&b, "  ", n, nodeFmt)
	}

	b.WriteString("\n")
	for _, e := range g.Edges() {
		var attrs map[string]string
		if edgeFmt != nil {
			attrs = edgeFmt(e.From, e.To, e.Facts)
		}
		fmt.Fprintf(&b, "  %q -> %q%s;\n", e.From.Identifier, e.To.Identifier, attrList(attrs))
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, indent string, n *graph.Node, nodeFmt NodeFormatter) {
	var attrs map[string]string
	if nodeFmt != nil {
		attrs = nodeFmt(n)
	}
	fmt.Fprintf(b, "%s%q%s;\n", indent, n.Identifier, attrList(attrs))
}

// attrList formats a DOT attribute list, or "" when there are no attributes.
func attrList(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		parts = append(parts, fmt.Sprintf("%s=%q", k, attrs[k]))
	}
	return " [" + strings.Join(parts, ", ") + "]"
}
