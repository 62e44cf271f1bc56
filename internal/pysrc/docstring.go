package pysrc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Docstring is the docstring of one module, class, or function definition.
// Line is the 1-based source line of the opening quote delimiter, which is
// where suppression markers are looked up and where content-line offsets are
// anchored; it is not the logical start of the enclosing definition.
type Docstring struct {
	// DefLine is the definition's own line (1 for a module docstring).
	DefLine int
	// Line is the line of the string literal's opening delimiter.
	Line int
	// Content is the string value with quote delimiters and any string
	// prefix (r, b, f, u) stripped, but otherwise uncleaned.
	Content string
}

// Lines splits the docstring content into lines. The line at offset i sits on
// source line Line+i, so an opening delimiter alone on its own line yields an
// empty first element and pushes the real content to the next source line.
func (d Docstring) Lines() []string {
	return strings.Split(d.Content, "\n")
}

// Docstrings extracts the docstrings of the module and of every class and
// function definition in the file, in traversal order.
func (f *File) Docstrings() []Docstring {
	var docs []Docstring
	collectDocstrings(f, f.Root(), &docs)
	return docs
}

func collectDocstrings(f *File, node *sitter.Node, docs *[]Docstring) {
	switch node.Type() {
	case KindModule:
		if d, ok := docstringOf(f, node, 1); ok {
			*docs = append(*docs, d)
		}
	case KindFunctionDef, KindClassDef:
		body := node.ChildByFieldName("body")
		if body != nil {
			if d, ok := docstringOf(f, body, Line(node)); ok {
				*docs = append(*docs, d)
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectDocstrings(f, node.NamedChild(i), docs)
	}
}

// docstringOf checks whether the first statement of a body is a bare string
// literal and returns it as a docstring. Comments are named nodes in the
// grammar but not statements, so leading comments (shebang, license header)
// are skipped the way ast.get_docstring skips them.
func docstringOf(f *File, body *sitter.Node, defLine int) (Docstring, bool) {
	var first *sitter.Node
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == KindComment {
			continue
		}
		first = child
		break
	}
	if first == nil || first.Type() != KindExpressionStmt || first.NamedChildCount() == 0 {
		return Docstring{}, false
	}
	str := first.NamedChild(0)
	if str.Type() != KindString {
		return Docstring{}, false
	}
	return Docstring{
		DefLine: defLine,
		Line:    Line(str),
		Content: stringValue(f.Text(str)),
	}, true
}

// stringValue strips the prefix letters and quote delimiters from a string
// literal's raw text. Escape sequences are left as written; the slop rules
// match on surface text, not decoded values.
func stringValue(raw string) string {
	i := 0
	for i < len(raw) && raw[i] != '"' && raw[i] != '\'' {
		i++ // skip prefix letters like r, b, f, u
	}
	raw = raw[i:]
	for _, q := range []string{`"""`, "'''"} {
		if strings.HasPrefix(raw, q) {
			raw = strings.TrimPrefix(raw, q)
			return strings.TrimSuffix(raw, q)
		}
	}
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') {
		quote := raw[:1]
		raw = strings.TrimPrefix(raw, quote)
		return strings.TrimSuffix(raw, quote)
	}
	return raw
}
