package pysrc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// AliasMap maps locally bound import names to fully qualified dotted paths.
// It is file-global and point-in-time: a name rebound later in the file is
// not tracked, which is an accepted imprecision for schema modules. One map
// lives for one file traversal and is discarded afterwards.
type AliasMap struct {
	names map[string]string
}

// NewAliasMap returns an empty alias map.
func NewAliasMap() *AliasMap {
	return &AliasMap{names: make(map[string]string)}
}

// Record binds a local name to a fully qualified dotted path.
func (m *AliasMap) Record(alias, fullPath string) {
	m.names[alias] = fullPath
}

// Resolve returns the fully qualified path for a name, falling back to the
// name itself when unbound.
func (m *AliasMap) Resolve(name string) string {
	if full, ok := m.names[name]; ok {
		return full
	}
	return name
}

// RecordImports walks an import or import-from statement and records every
// binding it introduces. It returns the dotted module paths named by the
// statement (one per imported module for `import a, b`; the source module for
// `from m import ...`) so callers can run deny-list checks.
func (m *AliasMap) RecordImports(f *File, node *sitter.Node) []string {
	switch node.Type() {
	case KindImport:
		var modules []string
		for _, child := range NamedChildren(node) {
			name, alias := importBinding(f, child)
			if name == "" {
				continue
			}
			m.Record(alias, name)
			modules = append(modules, name)
		}
		return modules

	case KindImportFrom:
		moduleNode := node.ChildByFieldName("module_name")
		if moduleNode == nil || moduleNode.Type() == KindRelativeImport {
			return nil
		}
		module := f.Text(moduleNode)
		for _, child := range NamedChildren(node) {
			if child.StartByte() == moduleNode.StartByte() || child.Type() == KindWildcardImport {
				continue
			}
			name, alias := importBinding(f, child)
			if name == "" {
				continue
			}
			m.Record(alias, module+"."+name)
		}
		return []string{module}
	}
	return nil
}

// importBinding extracts (imported name, local alias) from a dotted_name or
// aliased_import child of an import statement.
func importBinding(f *File, node *sitter.Node) (name, alias string) {
	switch node.Type() {
	case KindDottedName, KindIdentifier:
		text := f.Text(node)
		return text, text
	case KindAliasedImport:
		nameNode := node.ChildByFieldName("name")
		aliasNode := node.ChildByFieldName("alias")
		if nameNode == nil {
			return "", ""
		}
		name = f.Text(nameNode)
		alias = name
		if aliasNode != nil {
			alias = f.Text(aliasNode)
		}
		return name, alias
	}
	return "", ""
}

// ResolveChain resolves an attribute chain (`a.b.c`) to a fully qualified
// dotted path, walking from the outermost attribute down to the base
// identifier and resolving the base through the alias map. Resolution fails
// (empty string) when the base is not a simple identifier, e.g. a call
// result; such chains are conservatively left unchecked.
func (m *AliasMap) ResolveChain(f *File, node *sitter.Node) string {
	var parts []string
	current := node
	for current != nil && current.Type() == KindAttribute {
		attr := current.ChildByFieldName("attribute")
		if attr == nil {
			return ""
		}
		parts = append(parts, f.Text(attr))
		current = current.ChildByFieldName("object")
	}
	if current == nil || current.Type() != KindIdentifier {
		return ""
	}
	parts = append(parts, m.Resolve(f.Text(current)))

	// parts were collected outermost-first; reverse into source order.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// ResolveCallee resolves the called expression of a call node: a bare name
// resolves through the alias map, an attribute chain through ResolveChain.
// Anything else (lambda, call result, subscript) yields "".
func (m *AliasMap) ResolveCallee(f *File, call *sitter.Node) string {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return ""
	}
	switch fn.Type() {
	case KindIdentifier:
		return m.Resolve(f.Text(fn))
	case KindAttribute:
		return m.ResolveChain(f, fn)
	}
	return ""
}
