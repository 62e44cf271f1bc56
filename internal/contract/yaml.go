package contract

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaType identifies which contract model a YAML artifact should be
// validated against.
type SchemaType string

const (
	SchemaDayClose       SchemaType = "day_close"
	SchemaTicketContract SchemaType = "ticket_contract"
)

// DetectSchemaType decides which model an artifact belongs to. Path-based
// detection wins ("day_close" or "contract" in the path), then content-based
// detection (date + plan_summary keys mean a day-close, a ticket_id key
// means a ticket contract). Anything else is an error.
func DetectSchemaType(path string, data map[string]any) (SchemaType, error) {
	lower := strings.ToLower(path)
	if strings.Contains(lower, "day_close") {
		return SchemaDayClose, nil
	}
	if strings.Contains(lower, "contract") {
		return SchemaTicketContract, nil
	}

	if data != nil {
		_, hasDate := data["date"]
		_, hasPlanSummary := data["plan_summary"]
		if hasDate && hasPlanSummary {
			return SchemaDayClose, nil
		}
		if _, ok := data["ticket_id"]; ok {
			return SchemaTicketContract, nil
		}
	}

	return "", fmt.Errorf(
		"cannot determine schema type for '%s': path should contain 'day_close' or 'contract', "+
			"or content should match an expected schema structure", path)
}

// LoadYAML reads a YAML artifact into a generic tree for schema detection
// and JSON Schema validation.
func LoadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML %s: %w", path, err)
	}
	return doc, nil
}

// ValidateYAMLFile validates one YAML artifact against its detected contract
// model and returns the detected type.
func ValidateYAMLFile(path string) (SchemaType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("parse YAML %s: %w", path, err)
	}
	schemaType, err := DetectSchemaType(path, doc)
	if err != nil {
		return "", err
	}

	switch schemaType {
	case SchemaDayClose:
		var m DayClose
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return schemaType, fmt.Errorf("decode %s: %w", path, err)
		}
		return schemaType, m.Validate()
	case SchemaTicketContract:
		var m TicketContract
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return schemaType, fmt.Errorf("decode %s: %w", path, err)
		}
		return schemaType, m.Validate()
	}
	return schemaType, nil
}
