package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/schemaguard/schemaguard/internal/manifest"
	"github.com/schemaguard/schemaguard/internal/schema"
)

var exportOutDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export JSON Schemas for contract models",
	Long: `Write the day-close and ticket-contract JSON Schemas to
<out>/<schema-version>/ with deterministic formatting, then generate a
manifest.json recording the sha256 of each schema file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		outDir := cfg.Schemas.OutDir
		if exportOutDir != "" {
			outDir = exportOutDir
		}

		paths, err := schema.ExportAll(outDir)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Printf("✓ Exported %s\n", path)
		}

		dir := filepath.Join(outDir, schema.SchemaVersion)
		manifestPath, err := manifest.Generate(dir, schema.SchemaVersion, schema.ExporterVersion, paths)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", manifestPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutDir, "out", "", "Output directory (default: schemas)")
	rootCmd.AddCommand(exportCmd)
}
