// Package manifest records and verifies sha256 hashes of exported schema
// files so downstream consumers can detect drift between the schemas on disk
// and the versions that were exported.
package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

const FileName = "manifest.json"

// Manifest is the on-disk manifest format. Entries are sorted by file name
// so regeneration is deterministic.
type Manifest struct {
	ExportScriptVersion string  `json:"export_script_version"`
	SchemaVersion       string  `json:"schema_version"`
	Schemas             []Entry `json:"schemas"`
}

// Entry pins one schema file to its content hash.
type Entry struct {
	File   string `json:"file"`
	SHA256 string `json:"sha256"`
}

// ErrNotFound indicates the manifest file does not exist. Callers treat this
// as a usage error rather than a validation failure.
var ErrNotFound = errors.New("manifest not found")

// HashFile returns the hex-encoded sha256 of the file's contents.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Generate builds a manifest for the given schema files and writes it as
// manifest.json next to them in dir. Returns the manifest path.
func Generate(dir, schemaVersion, exporterVersion string, schemaFiles []string) (string, error) {
	m := Manifest{
		ExportScriptVersion: exporterVersion,
		SchemaVersion:       schemaVersion,
	}

	sorted := make([]string, len(schemaFiles))
	copy(sorted, schemaFiles)
	sort.Strings(sorted)

	for _, path := range sorted {
		hash, err := HashFile(path)
		if err != nil {
			return "", err
		}
		m.Schemas = append(m.Schemas, Entry{File: filepath.Base(path), SHA256: hash})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// Load reads and parses the manifest in dir. A missing file returns
// ErrNotFound; malformed JSON returns a decode error. Both are usage errors.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid JSON in manifest: %w", err)
	}
	return &m, nil
}

// Verify checks the loaded manifest against the schema files in dir and
// returns a list of human-readable problems. An empty list means the
// manifest is consistent.
func (m *Manifest) Verify(dir, expectSchemaVersion string) []string {
	var problems []string

	if m.SchemaVersion == "" {
		problems = append(problems, "missing required field: 'schema_version'")
	}
	if m.ExportScriptVersion == "" {
		problems = append(problems, "export_script_version is empty (traceability violation)")
	}
	if len(problems) > 0 {
		return problems
	}

	if m.SchemaVersion != expectSchemaVersion {
		problems = append(problems, fmt.Sprintf(
			"schema version mismatch: manifest has '%s', expected '%s'",
			m.SchemaVersion, expectSchemaVersion))
	}

	if len(m.Schemas) == 0 {
		problems = append(problems, "'schemas' list is empty")
		return problems
	}

	for _, entry := range m.Schemas {
		if entry.File == "" {
			problems = append(problems, "schema entry missing 'file' field")
			continue
		}
		if entry.SHA256 == "" {
			problems = append(problems, fmt.Sprintf("schema '%s' missing 'sha256' hash", entry.File))
			continue
		}

		path := filepath.Join(dir, entry.File)
		if _, err := os.Stat(path); err != nil {
			problems = append(problems, fmt.Sprintf("schema file not found: '%s'", entry.File))
			continue
		}

		actual, err := HashFile(path)
		if err != nil {
			problems = append(problems, fmt.Sprintf("cannot hash '%s': %v", entry.File, err))
			continue
		}
		if actual != entry.SHA256 {
			problems = append(problems, fmt.Sprintf(
				"hash mismatch for '%s': expected %s..., got %s...",
				entry.File, truncate(entry.SHA256, 16), truncate(actual, 16)))
		}
	}

	return problems
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
