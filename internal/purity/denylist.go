// Package purity checks Python schema modules for purity violations
// (environment, filesystem, network, process, random, and wall-clock access)
// and for file/class naming conventions derived from the module directory.
package purity

// forbiddenImports are module paths whose import violates purity. Matching is
// against both the top-level package name and the full dotted path.
var forbiddenImports = map[string]struct{}{
	"os":              {},
	"os.environ":      {},
	"dotenv":          {},
	"shutil":          {},
	"tempfile":        {},
	"glob":            {},
	"socket":          {},
	"urllib":          {},
	"urllib.request":  {},
	"urllib.parse":    {},
	"requests":        {},
	"httpx":           {},
	"aiohttp":         {},
	"time":            {},
	"subprocess":      {},
	"multiprocessing": {},
	"threading":       {},
	"signal":          {},
	"random":          {},
	"secrets":         {},
	"locale":          {},
}

// forbiddenCalls are fully qualified callables that read the environment or
// the current time. Deterministic parsers of pre-existing values, such as
// date.fromisoformat and timedelta, are deliberately absent.
var forbiddenCalls = map[string]struct{}{
	"datetime.now":       {},
	"datetime.today":     {},
	"datetime.utcnow":    {},
	"date.today":         {},
	"os.environ.get":     {},
	"os.getenv":          {},
	"os.getcwd":          {},
	"os.path.expanduser": {},
	"os.path.expandvars": {},
	"Path.home":          {},
	"Path.cwd":           {},
}

// minPartsForCallSimplification is the minimum dotted-segment count before a
// call name is retried as its trailing class.method pair, so that
// dt.datetime.now resolving to datetime.datetime.now still matches the
// datetime.now deny entry.
const minPartsForCallSimplification = 3

// Denylist bundles the immutable deny-sets consulted during a traversal. It
// is built once at startup and shared read-only across files, so parallel
// scans need no synchronization.
type Denylist struct {
	Imports map[string]struct{}
	Calls   map[string]struct{}
}

// DefaultDenylist returns the built-in deny-sets.
func DefaultDenylist() *Denylist {
	return &Denylist{Imports: forbiddenImports, Calls: forbiddenCalls}
}

// Extend returns a copy of the denylist with extra import and call entries.
func (d *Denylist) Extend(imports, calls []string) *Denylist {
	out := &Denylist{
		Imports: make(map[string]struct{}, len(d.Imports)+len(imports)),
		Calls:   make(map[string]struct{}, len(d.Calls)+len(calls)),
	}
	for k := range d.Imports {
		out.Imports[k] = struct{}{}
	}
	for _, k := range imports {
		out.Imports[k] = struct{}{}
	}
	for k := range d.Calls {
		out.Calls[k] = struct{}{}
	}
	for _, k := range calls {
		out.Calls[k] = struct{}{}
	}
	return out
}
