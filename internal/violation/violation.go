// Package violation provides the shared violation value type produced by the
// purity checker and the slop detector, plus sorting and grouping helpers used
// by the report layer.
package violation

import "sort"

// Severity levels for slop-detector violations. Purity-checker violations
// carry a category only; their severity is implied by the category.
const (
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
	SeverityInfo    = "INFO"
)

// Purity checker categories.
const (
	CategoryFileError       = "file_error"
	CategorySyntaxError     = "syntax_error"
	CategoryForbiddenImport = "forbidden_import"
	CategoryForbiddenCall   = "forbidden_call"
	CategoryForbiddenAccess = "forbidden_access"
	CategoryNamingFile      = "naming_file"
	CategoryNamingClass     = "naming_class"
)

// Slop detector check names.
const (
	CheckSycophancy     = "sycophancy"
	CheckRestDocstring  = "rest_docstring"
	CheckBoilerplate    = "boilerplate_docstring"
	CheckStepNarration  = "step_narration"
	CheckMdSeparator    = "md_separator"
	CheckObviousComment = "obvious_comment"
	CheckFileRead       = "file_read"
	CheckSyntaxError    = "syntax_error"
)

// Violation is a single finding against a source file. It is created during
// tree traversal and never mutated afterwards.
type Violation struct {
	File       string `json:"filename"`
	Line       int    `json:"line"`
	Category   string `json:"check"`
	Severity   string `json:"severity,omitempty"`
	Message    string `json:"message"`
	SourceLine string `json:"-"`
}

// SortByLine orders violations by line number ascending, preserving the
// original (traversal) order for equal lines.
func SortByLine(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		return vs[i].Line < vs[j].Line
	})
}

// GroupByCategory buckets violations by category, preserving insertion order
// within each bucket, and returns the bucket keys sorted alphabetically.
func GroupByCategory(vs []Violation) (map[string][]Violation, []string) {
	groups := make(map[string][]Violation)
	for _, v := range vs {
		groups[v.Category] = append(groups[v.Category], v)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return groups, keys
}

// HasSeverity reports whether any violation carries the given severity.
func HasSeverity(vs []Violation, severity string) bool {
	for _, v := range vs {
		if v.Severity == severity {
			return true
		}
	}
	return false
}
