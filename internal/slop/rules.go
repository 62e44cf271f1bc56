// Package slop detects AI-generated boilerplate patterns in Python and
// Markdown sources: sycophantic docstring openers, reST field markers,
// boilerplate opener phrases, markdown separators inside docstrings, and
// step-narration headings in Markdown.
package slop

import "regexp"

// SuppressionMarker opts a definition or line out of slop checks. For a
// definition it is honored on the def/class line, the docstring's opening
// quote line, or the line immediately before the definition; for line-based
// checks it is honored on the flagged line itself.
const SuppressionMarker = "slop-ok"

// Sycophantic openers, matched case-insensitively at the start of docstring
// content and followed by punctuation or a space.
var sycophancyRe = regexp.MustCompile(
	`(?i)^\s*(Excellent|Great|Sure|Certainly|Absolutely|Of course|Happy to|` +
		`I would be|Gladly|Wonderful|Perfect|Fantastic|Awesome)[!,. ]`)

// reST field markers at the start of a docstring line.
var restRe = regexp.MustCompile(`^\s*:(param|type|returns?|rtype|raises?|var|ivar|cvar)\b`)

// Boilerplate "This <thing> provides/implements/..." openers.
var boilerplateRe = regexp.MustCompile(
	`(?i)^\s*This\s+(module|class|function|method|file|script|node|handler|service)` +
		`\s+(provides?|implements?|contains?|is responsible for|handles?|manages?|offers?)`)

// Step narration: "# Step N:" or "# Step N -". Only enforced in Markdown
// files; numbered-step comments in Python are legitimate documentation.
var stepNarrationRe = regexp.MustCompile(`(?i)#\s*Step\s+\d+\s*[:\-]`)

// Markdown separator: four or more consecutive = characters.
var mdSeparatorRe = regexp.MustCompile(`={4,}`)
