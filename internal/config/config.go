// Package config provides configuration management for schemaguard.
// Configuration is loaded from (highest to lowest priority):
// 1. Command-line flags
// 2. Environment variables (SCHEMAGUARD_*)
// 3. Project config (.schemaguard/config.yaml in cwd)
// 4. Home config (~/.schemaguard/config.yaml)
// 5. Defaults
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all schemaguard configuration.
type Config struct {
	// Output controls the default output format (text, json).
	Output string `yaml:"output" json:"output"`

	// Verbose includes offending source lines in reports.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// NoColor disables ANSI colors in text output.
	NoColor bool `yaml:"no_color" json:"no_color"`

	// Concurrency caps parallel file checks (0 = number of CPUs).
	Concurrency int `yaml:"concurrency" json:"concurrency"`

	// Purity settings
	Purity PurityConfig `yaml:"purity" json:"purity"`

	// Slop settings
	Slop SlopConfig `yaml:"slop" json:"slop"`

	// Schemas settings
	Schemas SchemasConfig `yaml:"schemas" json:"schemas"`
}

// PurityConfig holds purity checker settings.
type PurityConfig struct {
	// Roots are the schema directories to scan.
	// Default: src/models, src/enums.
	Roots []string `yaml:"roots" json:"roots"`

	// ExtraForbiddenImports extends the built-in import deny-list.
	ExtraForbiddenImports []string `yaml:"extra_forbidden_imports" json:"extra_forbidden_imports"`

	// ExtraForbiddenCalls extends the built-in call deny-list.
	ExtraForbiddenCalls []string `yaml:"extra_forbidden_calls" json:"extra_forbidden_calls"`
}

// SlopConfig holds slop detector settings.
type SlopConfig struct {
	// Paths are the files or directories to scan.
	// Default: src.
	Paths []string `yaml:"paths" json:"paths"`

	// SuppressionMarker overrides the token that opts a line or definition
	// out of slop checks. Default: slop-ok.
	SuppressionMarker string `yaml:"suppression_marker" json:"suppression_marker"`
}

// SchemasConfig holds schema export settings.
type SchemasConfig struct {
	// OutDir is where exported schemas and the manifest are written.
	// Default: schemas.
	OutDir string `yaml:"out_dir" json:"out_dir"`
}

// Default config values (used in resolution and validation).
const (
	defaultOutput        = "text"
	defaultSchemasOutDir = "schemas"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: defaultOutput,
		Purity: PurityConfig{
			Roots: []string{
				filepath.Join("src", "models"),
				filepath.Join("src", "enums"),
			},
		},
		Slop: SlopConfig{
			Paths: []string{"src"},
		},
		Schemas: SchemasConfig{
			OutDir: defaultSchemasOutDir,
		},
	}
}

// Load loads configuration with proper precedence.
// Priority: flags > env > project > home > defaults
func Load(flagOverrides *Config) (*Config, error) {
	cfg := Default()

	homeConfig, _ := loadFromPath(homeConfigPath())
	if homeConfig != nil {
		cfg = merge(cfg, homeConfig)
	}

	projectConfig, _ := loadFromPath(projectConfigPath())
	if projectConfig != nil {
		cfg = merge(cfg, projectConfig)
	}

	cfg = applyEnv(cfg)

	if flagOverrides != nil {
		cfg = merge(cfg, flagOverrides)
	}

	return cfg, nil
}

// LoadFile loads configuration from an explicit path, bypassing the layered
// search. Used for the --config flag.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	fileConfig, err := loadFromPath(path)
	if err != nil {
		return nil, err
	}
	return merge(cfg, fileConfig), nil
}

// homeConfigPath returns the home config path.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".schemaguard", "config.yaml")
}

// projectConfigPath returns the project config path.
func projectConfigPath() string {
	if override := strings.TrimSpace(os.Getenv("SCHEMAGUARD_CONFIG")); override != "" {
		return override
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".schemaguard", "config.yaml")
}

// loadFromPath loads config from a YAML file.
func loadFromPath(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv applies environment variable overrides. List-valued variables
// are comma-separated.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("SCHEMAGUARD_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("SCHEMAGUARD_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("SCHEMAGUARD_NO_COLOR"); v == "true" || v == "1" {
		cfg.NoColor = true
	}
	// NO_COLOR is the informal cross-tool convention; any value counts.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if v := os.Getenv("SCHEMAGUARD_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("SCHEMAGUARD_PURITY_ROOTS"); v != "" {
		cfg.Purity.Roots = splitList(v)
	}
	if v := os.Getenv("SCHEMAGUARD_FORBIDDEN_IMPORTS"); v != "" {
		cfg.Purity.ExtraForbiddenImports = splitList(v)
	}
	if v := os.Getenv("SCHEMAGUARD_FORBIDDEN_CALLS"); v != "" {
		cfg.Purity.ExtraForbiddenCalls = splitList(v)
	}
	if v := os.Getenv("SCHEMAGUARD_SLOP_PATHS"); v != "" {
		cfg.Slop.Paths = splitList(v)
	}
	if v := os.Getenv("SCHEMAGUARD_SLOP_MARKER"); v != "" {
		cfg.Slop.SuppressionMarker = v
	}
	if v := os.Getenv("SCHEMAGUARD_SCHEMAS_OUT_DIR"); v != "" {
		cfg.Schemas.OutDir = v
	}
	return cfg
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// mergeStr overwrites dst with src when src is non-empty.
func mergeStr(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// mergeList overwrites dst with src when src is non-empty.
func mergeList(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

// merge merges src into dst, with src values taking precedence.
func merge(dst, src *Config) *Config {
	mergeStr(&dst.Output, src.Output)
	if src.Verbose {
		dst.Verbose = true
	}
	if src.NoColor {
		dst.NoColor = true
	}
	if src.Concurrency > 0 {
		dst.Concurrency = src.Concurrency
	}

	mergeList(&dst.Purity.Roots, src.Purity.Roots)
	mergeList(&dst.Purity.ExtraForbiddenImports, src.Purity.ExtraForbiddenImports)
	mergeList(&dst.Purity.ExtraForbiddenCalls, src.Purity.ExtraForbiddenCalls)
	mergeList(&dst.Slop.Paths, src.Slop.Paths)
	mergeStr(&dst.Slop.SuppressionMarker, src.Slop.SuppressionMarker)
	mergeStr(&dst.Schemas.OutDir, src.Schemas.OutDir)

	return dst
}
