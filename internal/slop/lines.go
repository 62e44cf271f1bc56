package slop

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemaguard/schemaguard/internal/violation"
)

var commentFragmentRe = regexp.MustCompile(`#(.+)`)

// checkLines runs the line-based rules, skipping lines inside triple-quoted
// strings via a quote-parity heuristic: count """ and ''' occurrences per
// line, toggling on an odd count of the open delimiter. Known limitation: a
// line with an odd number of triple-quotes inside unrelated string literals
// mis-toggles the state; this is accepted, not worked around.
//
// step_narration only fires for Markdown files. In Python, "# Step N:" is a
// legitimate ordered-step comment and is deliberately not flagged.
func checkLines(path string, lines []string, marker string) []violation.Violation {
	var out []violation.Violation
	isMarkdown := strings.HasSuffix(path, ".md")

	inTriple := false
	tripleChar := ""

	for i, line := range lines {
		lineno := i + 1
		stripped := strings.TrimRight(line, " \t\r")

		for _, tq := range []string{`"""`, "'''"} {
			count := strings.Count(stripped, tq)
			if count == 0 {
				continue
			}
			if !inTriple {
				if count%2 == 1 {
					inTriple = true
					tripleChar = tq
				}
			} else if tq == tripleChar {
				if count%2 == 1 {
					inTriple = false
					tripleChar = ""
				}
			}
		}

		if inTriple {
			continue
		}

		if isMarkdown {
			fragment := commentFragmentRe.FindString(stripped)
			if fragment != "" && stepNarrationRe.MatchString(fragment) &&
				!strings.Contains(stripped, marker) {
				out = append(out, violation.Violation{
					File:       path,
					Line:       lineno,
					Category:   violation.CheckStepNarration,
					Severity:   violation.SeverityWarning,
					Message:    fmt.Sprintf("Step narration comment: %q", strings.TrimSpace(fragment)),
					SourceLine: stripped,
				})
			}
		}
	}
	return out
}
