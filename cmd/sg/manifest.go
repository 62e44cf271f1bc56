package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/schemaguard/schemaguard/internal/manifest"
	"github.com/schemaguard/schemaguard/internal/schema"
)

var manifestDir string

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Work with the exported schema manifest",
}

var manifestVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify manifest hashes and traceability",
	Long: `Check that manifest.json exists, records the expected schema
version and a non-empty exporter version, and that every listed schema
file exists with a matching sha256.

Exits 0 when consistent, 1 on validation failures, 2 when the manifest
is missing or unreadable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := filepath.Join(cfg.Schemas.OutDir, schema.SchemaVersion)
		if manifestDir != "" {
			dir = manifestDir
		}

		m, err := manifest.Load(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			if errors.Is(err, manifest.ErrNotFound) {
				fmt.Fprintln(os.Stderr, "[INFO] Run 'sg export' to generate it")
			}
			return exitWithCode(2)
		}

		problems := m.Verify(dir, schema.SchemaVersion)
		if len(problems) > 0 {
			fmt.Fprintf(os.Stderr, "❌ Manifest validation failed with %d error(s):\n", len(problems))
			for _, p := range problems {
				fmt.Fprintf(os.Stderr, "  - %s\n", p)
			}
			return exitWithCode(1)
		}

		fmt.Println("✅ Manifest validation passed")
		fmt.Println()
		fmt.Printf("  Schema version: %s\n", m.SchemaVersion)
		fmt.Printf("  Exporter version: %s\n", m.ExportScriptVersion)
		fmt.Printf("  Schema files: %d\n", len(m.Schemas))
		for _, entry := range m.Schemas {
			digest := entry.SHA256
			if len(digest) > 16 {
				digest = digest[:16]
			}
			fmt.Printf("    - %s (%s...)\n", entry.File, digest)
		}
		return nil
	},
}

func init() {
	manifestVerifyCmd.Flags().StringVar(&manifestDir, "dir", "", "Schema directory (default: <schemas-out>/<schema-version>)")
	manifestCmd.AddCommand(manifestVerifyCmd)
	rootCmd.AddCommand(manifestCmd)
}
