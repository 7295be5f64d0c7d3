package report

import (
	"strings"

	"github.com/modreport/modreport/pkg/graph"
)

// Attrs maps presentation attribute names to values.
type Attrs map[string]string

// nodeShapes maps each node kind to its fixed shape attributes. This is
// immutable configuration data; kinds absent from the table get no shape
// attributes.
var nodeShapes = map[graph.Kind]Attrs{
	graph.KindScript:          {"shape": "note"},
	graph.KindPackage:         {"shape": "folder"},
	graph.KindSourceModule:    {"shape": "rectangle"},
	graph.KindBytecodeModule:  {"shape": "rectangle"},
	graph.KindExtensionModule: {"shape": "parallelogram"},
	graph.KindBuiltinModule:   {"shape": "hexagon"},
	graph.KindMissingModule:   {"shape": "rectangle", "color": "red"},
}

// NodeAttrs returns the presentation attributes for a node. Graph roots get
// a thicker outline and a root marker; every known kind gets its shape from
// the fixed table. Unknown kinds yield no shape attributes.
// Deterministic given (n, g); no side effects.
func NodeAttrs(n *graph.Node, g *graph.Graph) Attrs {
	attrs := Attrs{}
	if g.IsRoot(n) {
		attrs["penwidth"] = "2"
		attrs["root"] = "true"
	}
	for k, v := range nodeShapes[n.Kind] {
		attrs[k] = v
	}
	return attrs
}

// EdgeAttrs returns the presentation attributes for the edge between source
// and target, given all dependency facts recorded for that ordered pair.
//
// An edge whose facts are all optional is drawn dashed; an empty fact set
// counts as fully optional. An edge whose target is an ancestor package of
// the source (a strict dotted-path prefix) depicts containment: it gets a
// high layout weight and no arrowhead. Both rules may apply at once; the
// attribute keys are disjoint.
func EdgeAttrs(source, target *graph.Node, facts []graph.DependencyFact) Attrs {
	attrs := Attrs{}

	optional := true
	for _, f := range facts {
		if !f.Optional {
			optional = false
			break
		}
	}
	if optional {
		attrs["style"] = "dashed"
	}

	// A plain string-prefix test: identifiers that are not dotted paths
	// simply never match.
	if strings.HasPrefix(source.Identifier, target.Identifier+".") {
		attrs["weight"] = "10"
		attrs["arrowhead"] = "none"
	}

	return attrs
}
