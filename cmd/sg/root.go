package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemaguard/schemaguard/internal/config"
	"github.com/schemaguard/schemaguard/internal/report"
	"github.com/schemaguard/schemaguard/internal/violation"
)

var (
	// Global flags
	verbose bool
	output  string
	noColor bool
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sg",
	Short: "Schema repository governance CLI",
	Long: `sg keeps Python schema repositories honest.

Core Commands:
  purity    Check schema modules for impure imports, calls and env access
  slop      Detect low-value docstrings and comments
  export    Export JSON Schemas for contract models
  manifest  Verify the exported schema manifest
  validate  Validate YAML contract artifacts
  version   Show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code through cobra's error path.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func exitWithCode(code int) error {
	if code == 0 {
		return nil
	}
	return &exitError{code: code}
}

// Execute runs the root command and maps errors to process exit codes.
// Usage errors exit 2, findings exit with their command's code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Include offending source lines in reports")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.schemaguard/config.yaml)")
}

// loadConfig resolves configuration with flag overrides applied on top of
// the layered config files and environment.
func loadConfig() (*config.Config, error) {
	overrides := &config.Config{
		Output:  output,
		Verbose: verbose,
		NoColor: noColor,
	}
	if cfgFile != "" {
		cfg, err := config.LoadFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", cfgFile, err)
		}
		return mergeOverrides(cfg, overrides), nil
	}
	return config.Load(overrides)
}

func mergeOverrides(cfg, overrides *config.Config) *config.Config {
	if overrides.Output != "" {
		cfg.Output = overrides.Output
	}
	if overrides.Verbose {
		cfg.Verbose = true
	}
	if overrides.NoColor {
		cfg.NoColor = true
	}
	return cfg
}

// printViolations renders findings in the configured output format. The
// human-readable report goes to stderr so stdout carries only JSON.
func printViolations(cfg *config.Config, violations []violation.Violation) error {
	if cfg.Output == "json" {
		return report.NewJSONReporter().Report(os.Stdout, violations)
	}
	return printText(cfg, os.Stderr, violations)
}

// printPurityViolations is printViolations with the purity JSON wire shape
// and the human-readable report on stdout.
func printPurityViolations(cfg *config.Config, violations []violation.Violation) error {
	if cfg.Output == "json" {
		return report.NewJSONReporter().ReportPurity(os.Stdout, violations)
	}
	return printText(cfg, os.Stdout, violations)
}

func printText(cfg *config.Config, w io.Writer, violations []violation.Violation) error {
	tr := report.NewTextReporter()
	tr.NoColor = cfg.NoColor
	tr.Verbose = cfg.Verbose
	return tr.Report(w, violations)
}
