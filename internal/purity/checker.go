package purity

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/schemaguard/schemaguard/internal/pysrc"
	"github.com/schemaguard/schemaguard/internal/violation"
)

// Checker runs purity and naming checks over Python schema modules. A single
// Checker may be shared across goroutines; all per-file state lives in the
// traversal, not on the Checker.
type Checker struct {
	denylist *Denylist
}

// NewChecker creates a checker using the given denylist, or the default one
// when nil.
func NewChecker(denylist *Denylist) *Checker {
	if denylist == nil {
		denylist = DefaultDenylist()
	}
	return &Checker{denylist: denylist}
}

// CheckFile checks one file for purity and naming violations. The file is
// parsed once; nothing here returns an error, because every per-file failure
// is reported as a violation so a batch run never aborts early.
//
// guardRoots, when non-empty, enables the discovery-mode path guard: the file
// must resolve inside one of the roots. A literal ".." segment is rejected in
// both modes.
func (c *Checker) CheckFile(ctx context.Context, path string, guardRoots []string) []violation.Violation {
	var all []violation.Violation

	rules, schemaModule := namingRulesFor(path)
	if !schemaModule {
		return nil
	}

	namingExempt := isInitFile(path)
	if !namingExempt {
		all = append(all, checkFileName(path, rules)...)
	}

	source, fileViolations := readFileSafely(path, guardRoots)
	all = append(all, fileViolations...)
	if source == nil {
		return all
	}

	f, err := pysrc.Parse(ctx, path, source)
	if err != nil {
		all = append(all, violation.Violation{
			File:     path,
			Line:     1,
			Category: violation.CategoryFileError,
			Message:  fmt.Sprintf("Cannot parse file: %v", err),
		})
		return all
	}
	defer f.Close()

	if f.HasSyntaxError() {
		all = append(all, violation.Violation{
			File:     path,
			Line:     f.SyntaxErrorLine(),
			Category: violation.CategorySyntaxError,
			Message:  "Syntax error: file does not parse",
		})
		return all
	}

	if !namingExempt {
		all = append(all, checkClassNames(f, rules)...)
	}

	// Purity checks apply to __init__.py as well: package init files execute
	// on import, so impurity there is at least as harmful.
	walker := &purityWalker{
		file:     f,
		denylist: c.denylist,
		aliases:  pysrc.NewAliasMap(),
	}
	walker.walk(f.Root())
	return append(all, walker.violations...)
}

// purityWalker is the per-file traversal state: the alias map being built and
// the violations collected so far, in traversal order.
type purityWalker struct {
	file       *pysrc.File
	denylist   *Denylist
	aliases    *pysrc.AliasMap
	violations []violation.Violation
}

func (w *purityWalker) walk(node *sitter.Node) {
	switch node.Type() {
	case pysrc.KindImport, pysrc.KindImportFrom:
		w.checkImport(node)
		return // no purity-relevant nodes nested under imports
	case pysrc.KindCall:
		w.checkCall(node)
	case pysrc.KindAttribute:
		w.checkAttribute(node)
	case pysrc.KindSubscript:
		w.checkSubscript(node)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		w.walk(node.NamedChild(i))
	}
}

func (w *purityWalker) add(node *sitter.Node, category, message string) {
	w.violations = append(w.violations, violation.Violation{
		File:     w.file.Path,
		Line:     pysrc.Line(node),
		Category: category,
		Message:  message,
	})
}

// checkImport records alias bindings and flags forbidden modules. Both the
// top-level package name and the full dotted path are matched, so `import
// urllib.request` is caught through either entry.
func (w *purityWalker) checkImport(node *sitter.Node) {
	fromImport := node.Type() == pysrc.KindImportFrom
	for _, module := range w.aliases.RecordImports(w.file, node) {
		top := module
		if i := strings.IndexByte(module, '.'); i >= 0 {
			top = module[:i]
		}
		if _, ok := w.denylist.Imports[top]; !ok {
			if _, ok = w.denylist.Imports[module]; !ok {
				continue
			}
		}
		if fromImport {
			w.add(node, violation.CategoryForbiddenImport,
				fmt.Sprintf("Forbidden import from: '%s' (violates purity)", module))
		} else {
			w.add(node, violation.CategoryForbiddenImport,
				fmt.Sprintf("Forbidden import: '%s' (violates purity)", module))
		}
	}
}

// checkCall flags calls whose resolved dotted name is denied, either exactly
// or, for names of three or more segments, through the trailing class.method
// pair. Environment access through os.environ is flagged separately and can
// co-occur with the exact match for the same call.
func (w *purityWalker) checkCall(node *sitter.Node) {
	callName := w.aliases.ResolveCallee(w.file, node)
	if callName == "" {
		return
	}

	if _, ok := w.denylist.Calls[callName]; ok {
		w.add(node, violation.CategoryForbiddenCall,
			fmt.Sprintf("Forbidden call: '%s' (violates purity)", callName))
	} else if strings.Contains(callName, ".") {
		parts := strings.Split(callName, ".")
		if len(parts) >= minPartsForCallSimplification {
			simplified := parts[len(parts)-2] + "." + parts[len(parts)-1]
			if _, ok := w.denylist.Calls[simplified]; ok {
				w.add(node, violation.CategoryForbiddenCall,
					fmt.Sprintf("Forbidden call: '%s' (violates purity)", callName))
			}
		}
	}

	if strings.HasPrefix(callName, "os.environ") || strings.HasPrefix(callName, "environ.") {
		w.add(node, violation.CategoryForbiddenCall,
			fmt.Sprintf("Environment access: '%s' (violates purity)", callName))
	}
}

// checkAttribute flags attribute chains that reach into os.environ.
func (w *purityWalker) checkAttribute(node *sitter.Node) {
	chain := w.aliases.ResolveChain(w.file, node)
	if chain == "" {
		return
	}
	if chain == "os.environ" || strings.HasPrefix(chain, "os.environ.") {
		w.add(node, violation.CategoryForbiddenAccess,
			fmt.Sprintf("Environment access: '%s' (violates purity)", chain))
	}
}

// checkSubscript flags subscript access to os.environ, whether written out
// as os.environ[...] or through a name bound to it by an import.
func (w *purityWalker) checkSubscript(node *sitter.Node) {
	value := node.ChildByFieldName("value")
	if value == nil {
		return
	}

	var resolved string
	switch value.Type() {
	case pysrc.KindAttribute:
		resolved = w.aliases.ResolveChain(w.file, value)
	case pysrc.KindIdentifier:
		resolved = w.aliases.Resolve(w.file.Text(value))
	default:
		return
	}

	if resolved == "os.environ" {
		w.add(node, violation.CategoryForbiddenAccess,
			"Environment access via subscript: os.environ[...] (violates purity)")
	}
}
