package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every SCHEMAGUARD_* override for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SCHEMAGUARD_CONFIG", "SCHEMAGUARD_OUTPUT", "SCHEMAGUARD_VERBOSE",
		"SCHEMAGUARD_NO_COLOR", "SCHEMAGUARD_CONCURRENCY",
		"SCHEMAGUARD_PURITY_ROOTS", "SCHEMAGUARD_FORBIDDEN_IMPORTS",
		"SCHEMAGUARD_FORBIDDEN_CALLS", "SCHEMAGUARD_SLOP_PATHS",
		"SCHEMAGUARD_SLOP_MARKER", "SCHEMAGUARD_SCHEMAS_OUT_DIR", "NO_COLOR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Output != "text" {
		t.Errorf("Output = %q, want text", cfg.Output)
	}
	if len(cfg.Purity.Roots) != 2 {
		t.Errorf("Purity.Roots = %v", cfg.Purity.Roots)
	}
	if cfg.Schemas.OutDir != "schemas" {
		t.Errorf("Schemas.OutDir = %q", cfg.Schemas.OutDir)
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCHEMAGUARD_OUTPUT", "json")
	t.Setenv("SCHEMAGUARD_PURITY_ROOTS", "schemas/models, schemas/enums")
	t.Setenv("SCHEMAGUARD_CONCURRENCY", "4")
	t.Setenv("SCHEMAGUARD_SLOP_MARKER", "noqa-slop")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if len(cfg.Purity.Roots) != 2 || cfg.Purity.Roots[0] != "schemas/models" {
		t.Errorf("Purity.Roots = %v", cfg.Purity.Roots)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Concurrency)
	}
	if cfg.Slop.SuppressionMarker != "noqa-slop" {
		t.Errorf("Slop.SuppressionMarker = %q, want noqa-slop", cfg.Slop.SuppressionMarker)
	}
}

func TestLoadProjectConfigOverridesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `output: json
purity:
  roots:
    - custom/models
  extra_forbidden_imports:
    - pandas
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SCHEMAGUARD_CONFIG", path)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if len(cfg.Purity.Roots) != 1 || cfg.Purity.Roots[0] != "custom/models" {
		t.Errorf("Purity.Roots = %v", cfg.Purity.Roots)
	}
	if len(cfg.Purity.ExtraForbiddenImports) != 1 || cfg.Purity.ExtraForbiddenImports[0] != "pandas" {
		t.Errorf("ExtraForbiddenImports = %v", cfg.Purity.ExtraForbiddenImports)
	}
	// Unset sections keep their defaults.
	if len(cfg.Slop.Paths) != 1 || cfg.Slop.Paths[0] != "src" {
		t.Errorf("Slop.Paths = %v", cfg.Slop.Paths)
	}
}

func TestFlagOverridesBeatEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCHEMAGUARD_OUTPUT", "json")

	cfg, err := Load(&Config{Output: "text", Verbose: true})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "text" {
		t.Errorf("Output = %q, want flag value text", cfg.Output)
	}
	if !cfg.Verbose {
		t.Error("Verbose flag not applied")
	}
}

func TestNoColorConvention(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.NoColor {
		t.Error("NO_COLOR env var not honored")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "explicit.yaml")
	if err := os.WriteFile(path, []byte("no_color: true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !cfg.NoColor {
		t.Error("no_color from explicit file not applied")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "gone.yaml")); err == nil {
		t.Error("LoadFile on a missing file did not fail")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, b ,,c ")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("splitList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
