package slop

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/schemaguard/schemaguard/internal/pysrc"
	"github.com/schemaguard/schemaguard/internal/violation"
)

// checkObviousComments flags comments that restate the following line of
// code, e.g. "# return result" directly above "return result". This is an
// INFO-level heuristic surfaced only in report mode: the comment text,
// normalized to lowercase tokens, must be a prefix of the next code line's
// tokens.
func checkObviousComments(f *pysrc.File, lines []string, marker string) []violation.Violation {
	var out []violation.Violation
	var visit func(node *sitter.Node)
	visit = func(node *sitter.Node) {
		if node.Type() == pysrc.KindComment {
			if v, ok := obviousComment(f, node, lines, marker); ok {
				out = append(out, v)
			}
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			visit(node.Child(i))
		}
	}
	visit(f.Root())
	return out
}

func obviousComment(f *pysrc.File, node *sitter.Node, lines []string, marker string) (violation.Violation, bool) {
	text := strings.TrimSpace(strings.TrimPrefix(f.Text(node), "#"))
	lineno := pysrc.Line(node)
	if text == "" || lineno >= len(lines) {
		return violation.Violation{}, false
	}
	if strings.Contains(lines[lineno-1], marker) {
		return violation.Violation{}, false
	}

	next := strings.TrimSpace(lines[lineno]) // line following the comment
	if next == "" {
		return violation.Violation{}, false
	}

	commentTokens := codeTokens(text)
	nextTokens := codeTokens(next)
	if len(commentTokens) == 0 || len(commentTokens) > len(nextTokens) {
		return violation.Violation{}, false
	}
	for i, tok := range commentTokens {
		if tok != nextTokens[i] {
			return violation.Violation{}, false
		}
	}
	return violation.Violation{
		File:       f.Path,
		Line:       lineno,
		Category:   violation.CheckObviousComment,
		Severity:   violation.SeverityInfo,
		Message:    fmt.Sprintf("Comment restates the code below it: %q", text),
		SourceLine: lines[lineno-1],
	}, true
}

// codeTokens lowercases and splits on non-alphanumeric characters, so
// "return result" and "return result_value" compare token-wise.
func codeTokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_')
	})
}
