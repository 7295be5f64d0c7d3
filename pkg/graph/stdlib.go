package graph

// stdlibNames is the set of module names bundled with the runtime. It is
// plain immutable configuration data; exclude-stdlib merges it into the
// exclusion list before population.
var stdlibNames = []string{
	"abc",
	"argparse",
	"array",
	"base64",
	"binascii",
	"bisect",
	"builtins",
	"collections",
	"copy",
	"csv",
	"datetime",
	"decimal",
	"errno",
	"functools",
	"gc",
	"getopt",
	"glob",
	"hashlib",
	"heapq",
	"io",
	"itertools",
	"json",
	"logging",
	"marshal",
	"math",
	"os",
	"pathlib",
	"pickle",
	"platform",
	"queue",
	"random",
	"re",
	"select",
	"shutil",
	"signal",
	"socket",
	"sqlite3",
	"ssl",
	"stat",
	"string",
	"struct",
	"subprocess",
	"sys",
	"tempfile",
	"textwrap",
	"threading",
	"time",
	"traceback",
	"types",
	"typing",
	"unicodedata",
	"urllib",
	"uuid",
	"warnings",
	"weakref",
	"zlib",
}

// StdlibNames returns the names of all standard-library modules known to
// this tool. The returned slice is a copy; callers may append to it freely.
func StdlibNames() []string {
	out := make([]string, len(stdlibNames))
	copy(out, stdlibNames)
	return out
}
