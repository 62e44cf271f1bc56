package slop

import (
	"context"
	"fmt"
	"strings"

	"github.com/schemaguard/schemaguard/internal/pysrc"
	"github.com/schemaguard/schemaguard/internal/violation"
)

// Detector scans files for slop patterns. Report mode additionally collects
// INFO-level findings; it does not change exit-code semantics.
type Detector struct {
	Report bool
	// Marker overrides the default suppression token.
	Marker string
}

func (d *Detector) marker() string {
	if d.Marker != "" {
		return d.Marker
	}
	return SuppressionMarker
}

// CheckFile checks a single Python file. Unreadable and unparseable files
// become ERROR violations rather than returned errors, so multi-file runs
// always produce one aggregated report. The returned list is sorted by line.
func (d *Detector) CheckFile(ctx context.Context, path string, source []byte) []violation.Violation {
	f, err := pysrc.Parse(ctx, path, source)
	if err != nil {
		return []violation.Violation{{
			File:     path,
			Line:     0,
			Category: violation.CheckSyntaxError,
			Severity: violation.SeverityError,
			Message:  fmt.Sprintf("Cannot parse file: %v", err),
		}}
	}
	defer f.Close()

	if f.HasSyntaxError() {
		return []violation.Violation{{
			File:     path,
			Line:     f.SyntaxErrorLine(),
			Category: violation.CheckSyntaxError,
			Severity: violation.SeverityError,
			Message:  "Syntax error: file does not parse",
		}}
	}

	lines := strings.Split(string(source), "\n")

	var all []violation.Violation
	for _, doc := range f.Docstrings() {
		if suppressed(lines, d.marker(), doc.DefLine, doc.Line) {
			continue
		}
		all = append(all, checkDocstring(path, doc)...)
	}
	all = append(all, checkLines(path, lines, d.marker())...)
	if d.Report {
		all = append(all, checkObviousComments(f, lines, d.marker())...)
	}

	violation.SortByLine(all)
	return all
}

// CheckMarkdown checks a Markdown file. Only the line-based rules apply;
// there is no syntax tree for Markdown.
func (d *Detector) CheckMarkdown(path string, source []byte) []violation.Violation {
	all := checkLines(path, strings.Split(string(source), "\n"), d.marker())
	violation.SortByLine(all)
	return all
}

// suppressed reports whether the suppression marker appears on the
// definition line, the docstring's opening quote line, or the line
// immediately preceding the definition. A hit suppresses every docstring
// rule for that definition, not individual rules.
func suppressed(lines []string, marker string, defLine, docLine int) bool {
	check := func(lineno int) bool {
		return lineno >= 1 && lineno <= len(lines) &&
			strings.Contains(lines[lineno-1], marker)
	}
	return check(defLine) || check(docLine) || check(defLine-1)
}

// checkDocstring applies the docstring rule table to each content line,
// reporting against the true source line: the opening-delimiter line plus
// the line's offset within the docstring.
func checkDocstring(path string, doc pysrc.Docstring) []violation.Violation {
	var out []violation.Violation
	add := func(lineno int, check, severity, message, src string) {
		out = append(out, violation.Violation{
			File:       path,
			Line:       lineno,
			Category:   check,
			Severity:   severity,
			Message:    message,
			SourceLine: src,
		})
	}

	for offset, line := range doc.Lines() {
		lineno := doc.Line + offset
		trimmed := strings.TrimSpace(line)

		if sycophancyRe.MatchString(line) {
			add(lineno, violation.CheckSycophancy, violation.SeverityError,
				fmt.Sprintf("Sycophantic opener: %q", trimmed), line)
		}
		if restRe.MatchString(line) {
			add(lineno, violation.CheckRestDocstring, violation.SeverityError,
				fmt.Sprintf("reST-style docstring marker: %q", trimmed), line)
		}
		if boilerplateRe.MatchString(line) {
			add(lineno, violation.CheckBoilerplate, violation.SeverityWarning,
				fmt.Sprintf("Boilerplate docstring opener: %q", trimmed), line)
		}
		if mdSeparatorRe.MatchString(line) {
			add(lineno, violation.CheckMdSeparator, violation.SeverityWarning,
				fmt.Sprintf("Markdown-style separator in docstring: %q", trimmed), line)
		}
	}
	return out
}
