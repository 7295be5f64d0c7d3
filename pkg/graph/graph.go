package graph

import (
	"strings"

	"github.com/modreport/modreport/pkg/errors"
)

// Edge is the set of dependency facts recorded between an ordered pair of
// nodes.
type Edge struct {
	From  *Node
	To    *Node
	Facts []DependencyFact
}

type edgeKey struct {
	from string
	to   string
}

// Graph is a module-dependency graph populated from a [Source].
//
// Population is one-shot: excludes must be registered before any add
// operation, and a populated graph is never re-populated.
type Graph struct {
	source   Source
	excludes map[string]bool

	nodes map[string]*Node
	order []*Node

	roots     map[string]bool
	rootOrder []*Node

	facts map[edgeKey][]DependencyFact
	succ  map[string][]string
}

// New creates an empty graph that resolves module names through src.
func New(src Source) *Graph {
	return &Graph{
		source:   src,
		excludes: make(map[string]bool),
		nodes:    make(map[string]*Node),
		roots:    make(map[string]bool),
		facts:    make(map[edgeKey][]DependencyFact),
		succ:     make(map[string][]string),
	}
}

// AddExcludes registers module names that must not be traversed. Excluded
// names never produce nodes, not even missing ones.
func (g *Graph) AddExcludes(names []string) {
	for _, name := range names {
		g.excludes[name] = true
	}
}

// AddModule resolves a module name and marks it as a graph root. Names that
// no index defines become missing-module roots rather than errors; excluded
// names are rejected.
func (g *Graph) AddModule(name string) (*Node, error) {
	if err := errors.ValidateModuleName(name); err != nil {
		return nil, err
	}
	n := g.resolve(name)
	if n == nil {
		return nil, errors.New(errors.ErrCodeModuleNotFound, "module %s is excluded", name)
	}
	g.markRoot(n)
	return n, nil
}

// AddScript loads a script entry-point document and marks the script as a
// graph root. The script's identifier is its path.
func (g *Graph) AddScript(path string) (*Node, error) {
	rec, err := ReadScript(path)
	if err != nil {
		return nil, err
	}

	n, ok := g.nodes[rec.Name]
	if !ok {
		n = &Node{Identifier: rec.Name, Kind: KindScript}
		g.insert(n)
		g.followImports(n, rec.Imports)
	}
	g.markRoot(n)
	return n, nil
}

// AddDistribution resolves every module owned by the named distribution and
// marks each as a graph root.
func (g *Graph) AddDistribution(name string) ([]*Node, error) {
	members := g.source.Distribution(name)
	if len(members) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "distribution %s not found in any index", name)
	}

	var nodes []*Node
	for _, mod := range members {
		n := g.resolve(mod)
		if n == nil {
			continue
		}
		g.markRoot(n)
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Roots returns the nodes added directly as entry points, in the order they
// were added.
func (g *Graph) Roots() []*Node {
	out := make([]*Node, len(g.rootOrder))
	copy(out, g.rootOrder)
	return out
}

// IsRoot reports whether n was added directly as an entry point.
func (g *Graph) IsRoot(n *Node) bool {
	return n != nil && g.roots[n.Identifier]
}

// Nodes returns all nodes in insertion order. The order is stable for
// repeated calls against the same graph instance.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges. Edges are ordered by source-node insertion order,
// then by the order the targets were first recorded.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, n := range g.order {
		for _, to := range g.succ[n.Identifier] {
			out = append(out, Edge{
				From:  n,
				To:    g.nodes[to],
				Facts: g.Facts(n.Identifier, to),
			})
		}
	}
	return out
}

// Facts returns the dependency facts recorded for the ordered pair
// (from, to). The result is a copy.
func (g *Graph) Facts(from, to string) []DependencyFact {
	facts := g.facts[edgeKey{from, to}]
	out := make([]DependencyFact, len(facts))
	copy(out, facts)
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of distinct ordered node pairs with at least
// one recorded fact.
func (g *Graph) EdgeCount() int { return len(g.facts) }

// resolve returns the node for name, creating and traversing it on first
// sight. Excluded names resolve to nil. Names that no index defines become
// missing-module nodes.
func (g *Graph) resolve(name string) *Node {
	if g.excludes[name] {
		return nil
	}
	if n, ok := g.nodes[name]; ok {
		return n
	}

	rec, found := g.source.Resolve(name)

	n := &Node{Identifier: name}
	if found {
		n.Kind = KindFromString(rec.Kind)
		n.Distribution = rec.Distribution
	} else {
		n.Kind = KindMissingModule
	}
	// Insert before traversing imports so dependency cycles terminate.
	g.insert(n)

	g.linkAncestors(n)
	if found {
		g.followImports(n, rec.Imports)
	}
	return n
}

// linkAncestors resolves the parent package chain of a dotted name and
// records a containment dependency from the submodule to its parent.
func (g *Graph) linkAncestors(n *Node) {
	idx := strings.LastIndex(n.Identifier, ".")
	if idx <= 0 {
		return
	}
	parent := g.resolve(n.Identifier[:idx])
	if parent == nil {
		return
	}
	g.addFact(n, parent, DependencyFact{})
}

func (g *Graph) followImports(n *Node, imports []ImportRef) {
	for _, imp := range imports {
		target := g.resolve(imp.Name)
		if target == nil {
			continue
		}
		g.addFact(n, target, DependencyFact{Optional: imp.Optional, ImportedAs: imp.As})
	}
}

func (g *Graph) insert(n *Node) {
	g.nodes[n.Identifier] = n
	g.order = append(g.order, n)
}

func (g *Graph) markRoot(n *Node) {
	if g.roots[n.Identifier] {
		return
	}
	g.roots[n.Identifier] = true
	g.rootOrder = append(g.rootOrder, n)
}

// addFact records one dependency fact for the ordered pair (from, to).
// Identical facts are recorded once; distinct facts accumulate.
func (g *Graph) addFact(from, to *Node, fact DependencyFact) {
	key := edgeKey{from.Identifier, to.Identifier}
	existing, ok := g.facts[key]
	if !ok {
		g.succ[from.Identifier] = append(g.succ[from.Identifier], to.Identifier)
	}
	for _, f := range existing {
		if f == fact {
			return
		}
	}
	g.facts[key] = append(existing, fact)
}
