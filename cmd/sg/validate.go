package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemaguard/schemaguard/internal/contract"
	"github.com/schemaguard/schemaguard/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.yaml>...",
	Short: "Validate YAML contract artifacts",
	Long: `Validate day-close reports and ticket contracts written as YAML.
The artifact type is detected from the file name, falling back to its
fields. Each artifact is checked structurally against its JSON Schema,
then against the model's field and cross-field constraints.

Exits 0 when all artifacts are valid, 1 when any fails validation,
2 on usage errors (no files given, unreadable file, unknown type).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false
		for _, path := range args {
			schemaType, err := validateArtifact(path)
			if err != nil {
				if schemaType == "" {
					// Could not read or classify the artifact.
					fmt.Fprintf(os.Stderr, "❌ %s: %v\n", path, err)
					return exitWithCode(2)
				}
				fmt.Fprintf(os.Stderr, "❌ %s (%s): %v\n", path, schemaType, err)
				failed = true
				continue
			}
			fmt.Printf("✅ %s (%s)\n", path, schemaType)
		}
		if failed {
			return exitWithCode(1)
		}
		return nil
	},
}

// validateArtifact runs the structural JSON Schema check, then the model's
// own validators, and returns the detected type with the first failure.
func validateArtifact(path string) (contract.SchemaType, error) {
	doc, err := contract.LoadYAML(path)
	if err != nil {
		return "", err
	}
	schemaType, err := contract.DetectSchemaType(path, doc)
	if err != nil {
		return "", err
	}

	var jsonSchema map[string]any
	switch schemaType {
	case contract.SchemaDayClose:
		jsonSchema = schema.DayCloseSchema()
	case contract.SchemaTicketContract:
		jsonSchema = schema.TicketContractSchema()
	}
	if jsonSchema != nil {
		if err := schema.ValidateAgainst(jsonSchema, doc); err != nil {
			return schemaType, err
		}
	}

	return contract.ValidateYAMLFile(path)
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
