package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/schemaguard/schemaguard/internal/violation"
)

func sampleViolations() []violation.Violation {
	return []violation.Violation{
		{
			File:     "src/models/model_order.py",
			Line:     3,
			Category: violation.CategoryForbiddenImport,
			Message:  "Forbidden import: 'os' (violates purity)",
		},
		{
			File:       "src/models/model_order.py",
			Line:       9,
			Category:   violation.CategoryNamingClass,
			Severity:   violation.SeverityError,
			Message:    "Class 'Order' should start with 'Model'",
			SourceLine: "class Order:",
		},
	}
}

func TestTextReportGroupsByCategory(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTextReporter()
	tr.NoColor = true

	if err := tr.Report(&buf, sampleViolations()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"forbidden_import (1)",
		"naming_class (1)",
		"src/models/model_order.py:3: [forbidden_import] Forbidden import: 'os' (violates purity)",
		"❌ Found 2 violation(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("NoColor output contains ANSI escapes")
	}
}

func TestTextReportVerboseIncludesSourceLine(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTextReporter()
	tr.NoColor = true
	tr.Verbose = true

	if err := tr.Report(&buf, sampleViolations()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(buf.String(), "class Order:") {
		t.Errorf("verbose output missing source line:\n%s", buf.String())
	}
}

func TestTextReportClean(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTextReporter()
	tr.NoColor = true

	if err := tr.Report(&buf, nil); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No violations found") {
		t.Errorf("clean output = %q", buf.String())
	}
}

func TestTextReportWarningSummary(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTextReporter()
	tr.NoColor = true

	warnings := []violation.Violation{{
		File:     "doc.py",
		Line:     2,
		Category: violation.CheckBoilerplate,
		Severity: violation.SeverityWarning,
		Message:  "Boilerplate docstring opener",
	}}
	if err := tr.Report(&buf, warnings); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Found 1 warning(s)") {
		t.Errorf("warning-only summary wrong:\n%s", buf.String())
	}
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter().Report(&buf, sampleViolations()); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(decoded))
	}
	if decoded[0]["check"] != "forbidden_import" {
		t.Errorf("first entry = %v", decoded[0])
	}
	if decoded[0]["filename"] != "src/models/model_order.py" {
		t.Errorf("first entry filename = %v", decoded[0]["filename"])
	}
}

func TestJSONReportEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter().Report(&buf, nil); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty report = %q, want []", got)
	}
}
