package graph

// Kind classifies a node in the dependency graph. It is a closed set of
// tags; unknown kinds degrade gracefully during formatting instead of
// failing.
type Kind int

const (
	// KindUnknown is the zero value for records that declare no kind.
	KindUnknown Kind = iota
	// KindScript is an entry-point script added by path.
	KindScript
	// KindPackage is a module that contains submodules.
	KindPackage
	// KindSourceModule is a plain source module.
	KindSourceModule
	// KindBytecodeModule is a module available only in compiled form.
	KindBytecodeModule
	// KindExtensionModule is a native extension module.
	KindExtensionModule
	// KindBuiltinModule is a module bundled with the runtime.
	KindBuiltinModule
	// KindMissingModule marks a name that could not be resolved.
	KindMissingModule
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindScript:          "script",
	KindPackage:         "package",
	KindSourceModule:    "source",
	KindBytecodeModule:  "bytecode",
	KindExtensionModule: "extension",
	KindBuiltinModule:   "builtin",
	KindMissingModule:   "missing",
}

var kindFromString = map[string]Kind{
	"script":    KindScript,
	"package":   KindPackage,
	"source":    KindSourceModule,
	"bytecode":  KindBytecodeModule,
	"extension": KindExtensionModule,
	"builtin":   KindBuiltinModule,
	"missing":   KindMissingModule,
}

// String returns the lowercase tag used in index documents and reports.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// KindFromString maps an index document tag to a Kind.
// Unrecognized tags map to KindUnknown.
func KindFromString(s string) Kind {
	return kindFromString[s]
}

// Node is a single entity in the dependency graph. Nodes are immutable once
// added to a graph; the graph owns them.
type Node struct {
	// Identifier is a dotted path (or a file path for scripts), unique
	// within a graph.
	Identifier string
	// Kind classifies the node.
	Kind Kind
	// Distribution names the packaging distribution that provides this
	// node, or "" when the node is not owned by any distribution.
	Distribution string
}

// DependencyFact is one recorded reason an edge exists between two nodes.
// The edge between an ordered pair of nodes is the set of all facts recorded
// for that pair.
type DependencyFact struct {
	// Optional reports whether the dependency is conditional (for example
	// guarded by a failed-import handler).
	Optional bool
	// ImportedAs is the name the dependency was imported under, when it
	// differs from the target identifier. May be empty.
	ImportedAs string
}
