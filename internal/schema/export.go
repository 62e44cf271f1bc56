// Package schema exports deterministic JSON Schemas for the contract models
// and validates artifacts against them.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Version stamps for exported artifacts. SchemaVersion must match the
// schema_version carried by the models; ExporterVersion is recorded in the
// manifest and in each schema's $comment for traceability.
const (
	SchemaVersion   = "1.0.0"
	ExporterVersion = "1.0.0"
)

// Export output is deterministic: encoding/json sorts map keys, indentation
// is two spaces, and every file ends with a newline, so re-exporting an
// unchanged model is byte-identical and hash-stable.

type schemaObject = map[string]any

func obj(description string, properties schemaObject, required ...string) schemaObject {
	s := schemaObject{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if description != "" {
		s["description"] = description
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func str(description string, maxLength int) schemaObject {
	s := schemaObject{"type": "string"}
	if description != "" {
		s["description"] = description
	}
	if maxLength > 0 {
		s["maxLength"] = maxLength
	}
	return s
}

func enum(description string, values ...string) schemaObject {
	return schemaObject{
		"type":        "string",
		"description": description,
		"enum":        values,
	}
}

func arr(description string, items schemaObject) schemaObject {
	return schemaObject{
		"type":        "array",
		"description": description,
		"items":       items,
		"maxItems":    1000,
	}
}

func ref(name string) schemaObject {
	return schemaObject{"$ref": "#/$defs/" + name}
}

var semverSchema = schemaObject{
	"type":        "string",
	"description": "Schema version (SemVer format, e.g., '1.0.0')",
	"pattern":     `^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`,
	"maxLength":   20,
}

// DayCloseSchema builds the JSON Schema for the day-close report model.
func DayCloseSchema() schemaObject {
	invariant := enum("Invariant check status", "pass", "fail", "unknown")
	return schemaObject{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"$comment": fmt.Sprintf("Exported by schemaguard export v%s", ExporterVersion),
		"title":    "DayClose",
		"$defs": schemaObject{
			"process_change": obj("Process change entry", schemaObject{
				"change":    str("What changed in the process today", 10000),
				"rationale": str("Why we changed it", 10000),
				"replaces":  str("What it replaces / previous behavior", 10000),
			}, "change", "rationale", "replaces"),
			"plan_item": obj("Planned requirement", schemaObject{
				"requirement_id": str("Requirement identifier", 10000),
				"summary":        str("Summary of the requirement", 10000),
			}, "requirement_id", "summary"),
			"pull_request": obj("Pull request entry", schemaObject{
				"pr":    schemaObject{"type": "integer", "minimum": 1, "description": "PR number"},
				"title": str("PR title", 10000),
				"state": enum("PR state", "merged", "open"),
				"notes": str("Why it matters / what it unblocks", 10000),
			}, "pr", "title", "state", "notes"),
			"repo_actual": obj("Actual work by repository", schemaObject{
				"repo": str("Repository name", 10000),
				"prs":  arr("List of PRs", ref("pull_request")),
			}, "repo"),
			"drift": obj("Drift detected entry", schemaObject{
				"drift_id": str("Unique drift identifier", 10000),
				"category": enum("Drift category",
					"scope", "architecture", "interfaces", "dependencies", "infra", "process"),
				"evidence":                str("What changed / where (PRs, commits, files)", 10000),
				"impact":                  str("Why it matters", 10000),
				"correction_for_tomorrow": str("Specific fix / decision / ticket", 10000),
			}, "drift_id", "category", "evidence", "impact", "correction_for_tomorrow"),
			"invariants_checked": obj("Invariants checked status", schemaObject{
				"reducers_pure":                invariant,
				"orchestrators_no_io":          invariant,
				"effects_do_io_only":           invariant,
				"real_infra_proof_progressing": invariant,
			}, "reducers_pure", "orchestrators_no_io", "effects_do_io_only", "real_infra_proof_progressing"),
			"risk": obj("Risk entry", schemaObject{
				"risk":       str("Short risk description", 10000),
				"mitigation": str("Short mitigation description", 10000),
			}, "risk", "mitigation"),
		},
		"type": "object",
		"properties": schemaObject{
			"schema_version": semverSchema,
			"date": schemaObject{
				"type":        "string",
				"description": "ISO date (YYYY-MM-DD)",
				"pattern":     `^\d{4}-\d{2}-\d{2}$`,
			},
			"process_changes_today":    arr("Process changes made today", ref("process_change")),
			"plan":                     arr("Planned requirements", ref("plan_item")),
			"actual_by_repo":           arr("Actual work by repository", ref("repo_actual")),
			"drift_detected":           arr("Drift detected entries", ref("drift")),
			"invariants_checked":       ref("invariants_checked"),
			"corrections_for_tomorrow": arr("Actionable corrections for tomorrow", str("", 10000)),
			"risks":                    arr("Risk entries", ref("risk")),
		},
		"required":             []string{"schema_version", "date", "invariants_checked"},
		"additionalProperties": false,
	}
}

// TicketContractSchema builds the JSON Schema for the ticket contract model.
func TicketContractSchema() schemaObject {
	return schemaObject{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"$comment": fmt.Sprintf("Exported by schemaguard export v%s", ExporterVersion),
		"title":    "TicketContract",
		"$defs": schemaObject{
			"evidence_requirement": obj("Evidence requirement", schemaObject{
				"kind":        enum("Type of evidence", "tests", "docs", "ci", "benchmark", "manual"),
				"description": str("What evidence must exist", 10000),
				"command":     str("How to reproduce, if applicable", 10000),
			}, "kind", "description"),
			"emergency_bypass": obj("Emergency bypass configuration", schemaObject{
				"enabled":             schemaObject{"type": "boolean", "description": "Whether bypass is enabled"},
				"justification":       str("Justification for bypass (required if enabled)", 10000),
				"follow_up_ticket_id": str("Follow-up ticket ID (required if enabled)", 50),
			}, "enabled"),
		},
		"type": "object",
		"properties": schemaObject{
			"schema_version":   semverSchema,
			"ticket_id":        str("Ticket identifier", 50),
			"summary":          str("One-line summary", 10000),
			"is_seam_ticket":   schemaObject{"type": "boolean", "description": "Whether this ticket touches cross-repo interfaces"},
			"interface_change": schemaObject{"type": "boolean", "description": "Whether this ticket changes interface surfaces"},
			"interfaces_touched": arr("Interface surfaces touched by this ticket",
				enum("Interface surface", "events", "topics", "protocols", "envelopes", "public_api")),
			"evidence_requirements": arr("Evidence requirements", ref("evidence_requirement")),
			"emergency_bypass":      ref("emergency_bypass"),
		},
		"required": []string{
			"schema_version", "ticket_id", "summary",
			"is_seam_ticket", "interface_change", "emergency_bypass",
		},
		"additionalProperties": false,
	}
}

// ExportedSchemas maps schema file base names to their builders, in the
// order they are exported.
var ExportedSchemas = []struct {
	Name  string
	Build func() schemaObject
}{
	{"day_close", DayCloseSchema},
	{"ticket_contract", TicketContractSchema},
}

// WriteSchema writes one schema with deterministic formatting and returns
// the file path.
func WriteSchema(outDir, name string, s schemaObject) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(outDir, name+".schema.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write schema %s: %w", name, err)
	}
	return path, nil
}

// ExportAll writes every schema into outDir/<SchemaVersion>/ and returns the
// written file paths in export order.
func ExportAll(outDir string) ([]string, error) {
	dir := filepath.Join(outDir, SchemaVersion)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create schema dir: %w", err)
	}

	paths := make([]string, 0, len(ExportedSchemas))
	for _, s := range ExportedSchemas {
		path, err := WriteSchema(dir, s.Name, s.Build())
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
