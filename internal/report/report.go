// Package report renders violation findings for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/schemaguard/schemaguard/internal/violation"
)

// TextReporter writes a grouped, optionally colorized report.
type TextReporter struct {
	// NoColor disables ANSI colors regardless of terminal detection.
	NoColor bool
	// Verbose includes the offending source line under each finding when
	// available.
	Verbose bool
}

// NewTextReporter creates a text reporter with colors enabled.
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

func (tr *TextReporter) sprintf(c *color.Color, format string, args ...any) string {
	if tr.NoColor {
		return fmt.Sprintf(format, args...)
	}
	return c.Sprintf(format, args...)
}

func severityColor(severity string) *color.Color {
	switch severity {
	case violation.SeverityWarning:
		return color.New(color.FgYellow)
	case violation.SeverityInfo:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgRed)
	}
}

// Report writes all violations grouped by category, then a summary line.
func (tr *TextReporter) Report(w io.Writer, violations []violation.Violation) error {
	if len(violations) == 0 {
		_, err := fmt.Fprintln(w, tr.sprintf(color.New(color.FgGreen), "✅ No violations found"))
		return err
	}

	groups, categories := violation.GroupByCategory(violations)
	for _, category := range categories {
		header := tr.sprintf(color.New(color.Bold), "%s (%d)", category, len(groups[category]))
		if _, err := fmt.Fprintf(w, "\n%s\n", header); err != nil {
			return err
		}
		for _, v := range groups[category] {
			line := fmt.Sprintf("  %s:%d: %s %s",
				v.File, v.Line,
				tr.sprintf(severityColor(v.Severity), "[%s]", v.Category),
				v.Message)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			if tr.Verbose && v.SourceLine != "" {
				if _, err := fmt.Fprintf(w, "      %s\n", v.SourceLine); err != nil {
					return err
				}
			}
		}
	}

	summary := tr.sprintf(color.New(color.FgRed, color.Bold),
		"\n❌ Found %d violation(s)", len(violations))
	if warningsOnly(violations) {
		summary = tr.sprintf(color.New(color.FgYellow, color.Bold),
			"\n⚠️  Found %d warning(s)", len(violations))
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}

// warningsOnly reports whether every finding is WARNING or INFO. Purity
// findings carry no severity and count as errors.
func warningsOnly(violations []violation.Violation) bool {
	for _, v := range violations {
		if v.Severity != violation.SeverityWarning && v.Severity != violation.SeverityInfo {
			return false
		}
	}
	return true
}

// JSONReporter writes violations as a JSON array, one object per finding.
type JSONReporter struct{}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Report writes the violations as indented JSON. An empty result is an
// empty array, not null, so consumers can always iterate.
func (jr *JSONReporter) Report(w io.Writer, violations []violation.Violation) error {
	if violations == nil {
		violations = []violation.Violation{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(violations)
}

// purityEntry is the purity report's wire shape. Purity findings carry no
// severity and use "file"/"category" keys, unlike the slop report.
type purityEntry struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// ReportPurity writes purity violations as a JSON array in the purity wire
// shape.
func (jr *JSONReporter) ReportPurity(w io.Writer, violations []violation.Violation) error {
	entries := make([]purityEntry, 0, len(violations))
	for _, v := range violations {
		entries = append(entries, purityEntry{
			File:     v.File,
			Line:     v.Line,
			Category: v.Category,
			Message:  v.Message,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}
