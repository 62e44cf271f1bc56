// Package pysrc wraps the tree-sitter Python grammar behind the small surface
// the analyzers need: parse a file once, locate syntax errors, resolve import
// aliases, and extract docstrings with exact source-line positions.
package pysrc

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Node kind names from the tree-sitter Python grammar.
const (
	KindModule         = "module"
	KindImport         = "import_statement"
	KindImportFrom     = "import_from_statement"
	KindAliasedImport  = "aliased_import"
	KindDottedName     = "dotted_name"
	KindRelativeImport = "relative_import"
	KindWildcardImport = "wildcard_import"
	KindCall           = "call"
	KindAttribute      = "attribute"
	KindSubscript      = "subscript"
	KindIdentifier     = "identifier"
	KindClassDef       = "class_definition"
	KindFunctionDef    = "function_definition"
	KindDecoratedDef   = "decorated_definition"
	KindExpressionStmt = "expression_statement"
	KindString         = "string"
	KindComment        = "comment"
	KindError          = "ERROR"
)

// File is one parsed Python source file. The tree and the raw source share
// one lifetime: both are discarded when the caller is done with the file.
type File struct {
	Path   string
	Source []byte
	tree   *sitter.Tree
}

// Parse parses Python source into a concrete syntax tree. Tree-sitter always
// yields a tree, so a non-nil error here means the parser itself failed, not
// that the source is malformed; use SyntaxErrorLine for that.
func Parse(ctx context.Context, path string, source []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &File{Path: path, Source: source, tree: tree}, nil
}

// Root returns the module node of the parse tree.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Close releases the underlying tree.
func (f *File) Close() {
	f.tree.Close()
}

// HasSyntaxError reports whether the parse tree contains error or missing
// nodes anywhere.
func (f *File) HasSyntaxError() bool {
	return f.tree.RootNode().HasError()
}

// SyntaxErrorLine returns the 1-based line of the first error or missing node
// in the tree, or 1 when the tree has an error whose position cannot be
// pinned down.
func (f *File) SyntaxErrorLine() int {
	if line := firstErrorLine(f.tree.RootNode()); line > 0 {
		return line
	}
	return 1
}

func firstErrorLine(node *sitter.Node) int {
	if node.Type() == KindError || node.IsMissing() {
		return Line(node)
	}
	if !node.HasError() {
		return 0
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if line := firstErrorLine(node.Child(i)); line > 0 {
			return line
		}
	}
	return 0
}

// Line returns the 1-based source line of a node's first character.
func Line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// Text returns the source text covered by a node.
func (f *File) Text(node *sitter.Node) string {
	return node.Content(f.Source)
}

// NamedChildren returns the named children of a node in source order.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	n := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, n)
	for i := 0; i < n; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}
