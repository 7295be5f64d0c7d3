// Package graph models a module-dependency graph and populates it from
// module index documents.
//
// # Overview
//
// A [Graph] holds nodes (modules, packages, scripts) and directed edges
// between them. Each edge carries one or more [DependencyFact] values, one
// per recorded reason the dependency exists. Nodes added directly through
// [Graph.AddModule], [Graph.AddScript], or [Graph.AddDistribution] become
// roots of the graph.
//
// # Population
//
// The graph does not analyze source code. It resolves module names against a
// [Source], typically a [PathSource] built from an ordered list of search
// directories. Each directory may contain a "modreport.json" index document
// declaring the modules it provides:
//
//	{
//	  "modules": [
//	    {
//	      "name": "pkg.sub",
//	      "kind": "source",
//	      "distribution": "pkg-dist",
//	      "imports": [{"name": "other", "optional": true}]
//	    }
//	  ]
//	}
//
// Resolution walks the search paths in priority order; the first index that
// defines a name wins. Import targets that no index defines become
// [KindMissingModule] nodes. Resolving a dotted name also resolves its
// ancestor packages and records a containment dependency from the submodule
// to its parent.
//
// # Determinism
//
// Node iteration order is insertion order and is stable for repeated calls
// against the same graph instance. All population operations are
// single-threaded; a Graph must not be shared between goroutines while it is
// being populated.
package graph
