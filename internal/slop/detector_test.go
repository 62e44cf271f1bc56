package slop

import (
	"context"
	"testing"

	"github.com/schemaguard/schemaguard/internal/violation"
)

func checkPython(t *testing.T, source string) []violation.Violation {
	t.Helper()
	d := &Detector{}
	return d.CheckFile(context.Background(), "test.py", []byte(source))
}

func countCheck(vs []violation.Violation, check string) int {
	n := 0
	for _, v := range vs {
		if v.Category == check {
			n++
		}
	}
	return n
}

func TestSycophanticDocstring(t *testing.T) {
	source := `def helper():
    """Great! This computes the total."""
    return 0
`
	vs := checkPython(t, source)

	if countCheck(vs, violation.CheckSycophancy) != 1 {
		t.Fatalf("got %v, want one sycophancy finding", vs)
	}
	if vs[0].Severity != violation.SeverityError {
		t.Errorf("severity = %q, want ERROR", vs[0].Severity)
	}
	if vs[0].Line != 2 {
		t.Errorf("line = %d, want 2", vs[0].Line)
	}
}

func TestSycophancySuppressedOnLineAboveDef(t *testing.T) {
	source := `# slop-ok
def helper():
    """Great! This computes the total."""
    return 0
`
	vs := checkPython(t, source)

	if countCheck(vs, violation.CheckSycophancy) != 0 {
		t.Errorf("suppressed docstring still flagged: %v", vs)
	}
}

func TestSycophancySuppressedOnDefLine(t *testing.T) {
	source := `def helper():  # slop-ok
    """Perfect. Computes the total."""
    return 0
`
	vs := checkPython(t, source)

	if countCheck(vs, violation.CheckSycophancy) != 0 {
		t.Errorf("suppressed docstring still flagged: %v", vs)
	}
}

func TestSycophancyAfterLeadingComments(t *testing.T) {
	source := `#!/usr/bin/env python3
# SPDX-License-Identifier: MIT
"""Excellent! This module provides things."""
`
	vs := checkPython(t, source)

	if countCheck(vs, violation.CheckSycophancy) != 1 {
		t.Fatalf("module docstring after leading comments not checked: %v", vs)
	}
	for _, v := range vs {
		if v.Category == violation.CheckSycophancy && v.Line != 3 {
			t.Errorf("line = %d, want 3", v.Line)
		}
	}
}

func TestRestDocstringMarker(t *testing.T) {
	source := `def convert(value):
    """Convert a value.

    :param value: the raw value
    :returns: the converted value
    """
    return value
`
	vs := checkPython(t, source)

	if got := countCheck(vs, violation.CheckRestDocstring); got != 2 {
		t.Fatalf("got %d rest_docstring, want 2: %v", got, vs)
	}
	// True source lines of the two field markers.
	if vs[0].Line != 4 || vs[1].Line != 5 {
		t.Errorf("lines = %d, %d, want 4, 5", vs[0].Line, vs[1].Line)
	}
}

func TestBoilerplateDocstring(t *testing.T) {
	source := `"""This module provides order schema models."""

X = 1
`
	vs := checkPython(t, source)

	if countCheck(vs, violation.CheckBoilerplate) != 1 {
		t.Fatalf("got %v, want one boilerplate finding", vs)
	}
	if vs[0].Severity != violation.SeverityWarning {
		t.Errorf("severity = %q, want WARNING", vs[0].Severity)
	}
}

func TestMdSeparatorInDocstring(t *testing.T) {
	source := `def f():
    """Heading
    ==========
    Body text.
    """
`
	vs := checkPython(t, source)

	if countCheck(vs, violation.CheckMdSeparator) != 1 {
		t.Fatalf("got %v, want one md_separator finding", vs)
	}
	if vs[0].Line != 3 {
		t.Errorf("line = %d, want 3", vs[0].Line)
	}
}

func TestStepNarrationNotFlaggedInPython(t *testing.T) {
	source := `def run():
    # Step 1: load the data
    data = load()
    # Step 2: transform
    return transform(data)
`
	vs := checkPython(t, source)

	if countCheck(vs, violation.CheckStepNarration) != 0 {
		t.Errorf("step narration flagged in Python: %v", vs)
	}
}

func TestStepNarrationFlaggedInMarkdown(t *testing.T) {
	d := &Detector{}
	source := "Intro.\n\n# Step 1: install the tool\n\nMore prose.\n"
	vs := d.CheckMarkdown("README.md", []byte(source))

	if countCheck(vs, violation.CheckStepNarration) != 1 {
		t.Fatalf("got %v, want one step_narration finding", vs)
	}
	if vs[0].Line != 3 {
		t.Errorf("line = %d, want 3", vs[0].Line)
	}
}

func TestStepNarrationSuppressedInMarkdown(t *testing.T) {
	d := &Detector{}
	source := "# Step 1: install the tool <!-- slop-ok -->\n"
	vs := d.CheckMarkdown("README.md", []byte(source))

	if len(vs) != 0 {
		t.Errorf("suppressed markdown line still flagged: %v", vs)
	}
}

func TestCustomSuppressionMarker(t *testing.T) {
	source := `# noqa-slop
def helper():
    """Great! This computes the total."""
    return 0
`
	d := &Detector{Marker: "noqa-slop"}
	vs := d.CheckFile(context.Background(), "test.py", []byte(source))
	if countCheck(vs, violation.CheckSycophancy) != 0 {
		t.Errorf("custom marker not honored: %v", vs)
	}

	// The default marker no longer suppresses anything.
	suppressedWithDefault := `# slop-ok
def helper():
    """Great! This computes the total."""
    return 0
`
	vs = d.CheckFile(context.Background(), "test.py", []byte(suppressedWithDefault))
	if countCheck(vs, violation.CheckSycophancy) != 1 {
		t.Errorf("default marker still suppressing under custom marker: %v", vs)
	}
}

func TestSyntaxErrorSingleFinding(t *testing.T) {
	vs := checkPython(t, "def broken(:\n    pass\n")

	if len(vs) != 1 {
		t.Fatalf("got %d findings, want 1: %v", len(vs), vs)
	}
	if vs[0].Category != violation.CheckSyntaxError || vs[0].Severity != violation.SeverityError {
		t.Errorf("finding = %v, want ERROR syntax_error", vs[0])
	}
}

func TestObviousCommentReportModeOnly(t *testing.T) {
	source := `def run():
    # return result
    return result
`
	plain := (&Detector{}).CheckFile(context.Background(), "test.py", []byte(source))
	if countCheck(plain, violation.CheckObviousComment) != 0 {
		t.Errorf("obvious_comment reported outside report mode: %v", plain)
	}

	reported := (&Detector{Report: true}).CheckFile(context.Background(), "test.py", []byte(source))
	if got := countCheck(reported, violation.CheckObviousComment); got != 1 {
		t.Fatalf("got %d obvious_comment in report mode, want 1: %v", got, reported)
	}
	for _, v := range reported {
		if v.Category == violation.CheckObviousComment && v.Severity != violation.SeverityInfo {
			t.Errorf("severity = %q, want INFO", v.Severity)
		}
	}
}

func TestObviousCommentNotFlaggedWhenInformative(t *testing.T) {
	source := `def run():
    # retry once on transient failures
    return fetch()
`
	vs := (&Detector{Report: true}).CheckFile(context.Background(), "test.py", []byte(source))

	if countCheck(vs, violation.CheckObviousComment) != 0 {
		t.Errorf("informative comment flagged: %v", vs)
	}
}

func TestCleanFileNoFindings(t *testing.T) {
	source := `"""Order schema models."""

class ModelOrder:
    """Single customer order."""
`
	if vs := checkPython(t, source); len(vs) != 0 {
		t.Errorf("clean file produced findings: %v", vs)
	}
}

func TestFindingsSortedByLine(t *testing.T) {
	source := `"""
==========
"""

def f():
    """Great! Helper."""
`
	vs := checkPython(t, source)

	for i := 1; i < len(vs); i++ {
		if vs[i-1].Line > vs[i].Line {
			t.Fatalf("findings not sorted by line: %v", vs)
		}
	}
}
