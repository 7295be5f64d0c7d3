package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestSource(records ...Record) *PathSource {
	src := &PathSource{
		records: make(map[string]Record),
		dists:   make(map[string][]string),
	}
	src.merge(records)
	return src
}

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Identifier
	}
	return out
}

func TestAddModuleResolves(t *testing.T) {
	src := newTestSource(
		Record{Name: "app", Kind: "source", Distribution: "app-dist",
			Imports: []ImportRef{{Name: "lib"}}},
		Record{Name: "lib", Kind: "extension"},
	)
	g := New(src)

	n, err := g.AddModule("app")
	if err != nil {
		t.Fatalf("AddModule: %v", err)
	}
	if n.Kind != KindSourceModule || n.Distribution != "app-dist" {
		t.Errorf("node = %+v", n)
	}
	if !g.IsRoot(n) {
		t.Error("added module is not a root")
	}

	got := ids(g.Nodes())
	want := []string{"app", "lib"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("nodes = %v, want %v", got, want)
	}

	facts := g.Facts("app", "lib")
	if len(facts) != 1 || facts[0].Optional {
		t.Errorf("facts = %v, want one mandatory fact", facts)
	}
}

func TestAddModuleMissing(t *testing.T) {
	g := New(newTestSource())
	n, err := g.AddModule("ghost")
	if err != nil {
		t.Fatalf("AddModule: %v", err)
	}
	if n.Kind != KindMissingModule {
		t.Errorf("kind = %v, want missing", n.Kind)
	}
}

func TestAddModuleRejectsInvalidName(t *testing.T) {
	g := New(newTestSource())
	if _, err := g.AddModule(""); err == nil {
		t.Error("empty module name accepted")
	}
	if _, err := g.AddModule("a/b"); err == nil {
		t.Error("module name with path separator accepted")
	}
}

func TestExcludesSkipTraversal(t *testing.T) {
	src := newTestSource(
		Record{Name: "app", Kind: "source",
			Imports: []ImportRef{{Name: "lib"}, {Name: "kept"}}},
		Record{Name: "lib", Kind: "source"},
		Record{Name: "kept", Kind: "source"},
	)
	g := New(src)
	g.AddExcludes([]string{"lib"})

	if _, err := g.AddModule("app"); err != nil {
		t.Fatal(err)
	}

	for _, n := range g.Nodes() {
		if n.Identifier == "lib" {
			t.Error("excluded module produced a node")
		}
	}
	if len(g.Facts("app", "kept")) != 1 {
		t.Error("non-excluded import was dropped")
	}
}

func TestExcludedRootRejected(t *testing.T) {
	g := New(newTestSource(Record{Name: "app", Kind: "source"}))
	g.AddExcludes([]string{"app"})

	if _, err := g.AddModule("app"); err == nil {
		t.Error("excluded root accepted")
	}
}

func TestAncestorLinking(t *testing.T) {
	src := newTestSource(
		Record{Name: "pkg", Kind: "package"},
		Record{Name: "pkg.sub", Kind: "package"},
		Record{Name: "pkg.sub.leaf", Kind: "source"},
	)
	g := New(src)

	if _, err := g.AddModule("pkg.sub.leaf"); err != nil {
		t.Fatal(err)
	}

	got := ids(g.Nodes())
	if len(got) != 3 {
		t.Fatalf("nodes = %v, want 3 entries", got)
	}
	if len(g.Facts("pkg.sub.leaf", "pkg.sub")) != 1 {
		t.Error("missing containment edge leaf -> pkg.sub")
	}
	if len(g.Facts("pkg.sub", "pkg")) != 1 {
		t.Error("missing containment edge pkg.sub -> pkg")
	}
}

func TestImportCycleTerminates(t *testing.T) {
	src := newTestSource(
		Record{Name: "a", Kind: "source", Imports: []ImportRef{{Name: "b"}}},
		Record{Name: "b", Kind: "source", Imports: []ImportRef{{Name: "a"}}},
	)
	g := New(src)

	if _, err := g.AddModule("a"); err != nil {
		t.Fatal(err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("node count = %d, want 2", g.NodeCount())
	}
	if len(g.Facts("a", "b")) != 1 || len(g.Facts("b", "a")) != 1 {
		t.Error("cycle edges not recorded")
	}
}

func TestFactsAccumulateAndDeduplicate(t *testing.T) {
	src := newTestSource(
		Record{Name: "app", Kind: "source", Imports: []ImportRef{
			{Name: "lib", Optional: true},
			{Name: "lib", Optional: true},
			{Name: "lib", Optional: false},
		}},
		Record{Name: "lib", Kind: "source"},
	)
	g := New(src)

	if _, err := g.AddModule("app"); err != nil {
		t.Fatal(err)
	}

	facts := g.Facts("app", "lib")
	if len(facts) != 2 {
		t.Errorf("facts = %v, want exactly one optional and one mandatory", facts)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("edge count = %d, want 1", g.EdgeCount())
	}
}

func TestAddDistribution(t *testing.T) {
	src := newTestSource(
		Record{Name: "m1", Kind: "source", Distribution: "dist"},
		Record{Name: "m2", Kind: "source", Distribution: "dist"},
		Record{Name: "other", Kind: "source"},
	)
	g := New(src)

	nodes, err := g.AddDistribution("dist")
	if err != nil {
		t.Fatalf("AddDistribution: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	for _, n := range nodes {
		if !g.IsRoot(n) {
			t.Errorf("distribution member %s is not a root", n.Identifier)
		}
	}

	if _, err := g.AddDistribution("nope"); err == nil {
		t.Error("unknown distribution accepted")
	}
}

func TestAddScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entry.json")
	doc := `{"imports": [{"name": "lib"}, {"name": "maybe", "optional": true}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New(newTestSource(Record{Name: "lib", Kind: "source"}))
	n, err := g.AddScript(path)
	if err != nil {
		t.Fatalf("AddScript: %v", err)
	}
	if n.Kind != KindScript {
		t.Errorf("kind = %v, want script", n.Kind)
	}
	if n.Identifier != path {
		t.Errorf("identifier = %q, want script path", n.Identifier)
	}
	if !g.IsRoot(n) {
		t.Error("script is not a root")
	}

	facts := g.Facts(path, "maybe")
	if len(facts) != 1 || !facts[0].Optional {
		t.Errorf("facts = %v, want one optional fact", facts)
	}
}

func TestNodesOrderStable(t *testing.T) {
	src := newTestSource(
		Record{Name: "app", Kind: "source", Imports: []ImportRef{{Name: "z"}, {Name: "a"}}},
		Record{Name: "z", Kind: "source"},
		Record{Name: "a", Kind: "source"},
	)
	g := New(src)
	if _, err := g.AddModule("app"); err != nil {
		t.Fatal(err)
	}

	first := ids(g.Nodes())
	second := ids(g.Nodes())
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("node order changed between calls: %v vs %v", first, second)
		}
	}
	// Insertion order, not sorted.
	if first[1] != "z" || first[2] != "a" {
		t.Errorf("nodes = %v, want insertion order [app z a]", first)
	}
}

func TestRootsOrder(t *testing.T) {
	src := newTestSource(
		Record{Name: "b", Kind: "source"},
		Record{Name: "a", Kind: "source"},
	)
	g := New(src)
	if _, err := g.AddModule("b"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddModule("a"); err != nil {
		t.Fatal(err)
	}
	// Re-adding must not duplicate the root.
	if _, err := g.AddModule("b"); err != nil {
		t.Fatal(err)
	}

	got := ids(g.Roots())
	if len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("roots = %v, want [b a]", got)
	}
}

func TestKindRoundTrip(t *testing.T) {
	for kind, name := range kindNames {
		if kind == KindUnknown {
			continue
		}
		if got := KindFromString(name); got != kind {
			t.Errorf("KindFromString(%q) = %v, want %v", name, got, kind)
		}
	}
	if got := KindFromString("no-such-kind"); got != KindUnknown {
		t.Errorf("unrecognized tag = %v, want KindUnknown", got)
	}
}
