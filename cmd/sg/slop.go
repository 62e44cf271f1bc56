package main

import (
	"github.com/spf13/cobra"

	"github.com/schemaguard/schemaguard/internal/slop"
)

var (
	slopStrict bool
	slopReport bool
)

var slopCmd = &cobra.Command{
	Use:   "slop [paths...]",
	Short: "Detect low-value docstrings and comments",
	Long: `Scan Python sources for generated-sounding filler: sycophantic
docstring openers, reST field boilerplate, "This module provides..."
docstrings and markdown separator lines. Suppress a finding by placing
"slop-ok" on the def line, the docstring opener or the line above.

With --report, Markdown files are scanned too and informational
findings (obvious comments) are included.

Exits 1 on errors, 2 with --strict when only warnings were found,
0 when clean.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		paths := cfg.Slop.Paths
		if len(args) > 0 {
			paths = args
		}

		detector := &slop.Detector{Report: slopReport, Marker: cfg.Slop.SuppressionMarker}
		files := detector.CollectFiles(paths)
		violations := detector.Scan(cmd.Context(), files, cfg.Concurrency)

		if err := printViolations(cfg, violations); err != nil {
			return err
		}
		return exitWithCode(slop.ExitCode(violations, slopStrict))
	},
}

func init() {
	slopCmd.Flags().BoolVar(&slopStrict, "strict", false, "Exit 2 when warnings are found")
	slopCmd.Flags().BoolVar(&slopReport, "report", false, "Include Markdown files and informational findings")
	rootCmd.AddCommand(slopCmd)
}
