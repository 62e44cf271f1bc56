package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchemaFiles(t *testing.T, dir string) []string {
	t.Helper()
	paths := []string{
		filepath.Join(dir, "day_close.schema.json"),
		filepath.Join(dir, "ticket_contract.schema.json"),
	}
	for _, path := range paths {
		require.NoError(t, os.WriteFile(path, []byte(`{"type": "object"}`+"\n"), 0o644))
	}
	return paths
}

func TestGenerateAndVerifyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	files := writeSchemaFiles(t, dir)

	path, err := Generate(dir, "1.0.0", "1.0.0", files)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", m.SchemaVersion)
	assert.Len(t, m.Schemas, 2)
	// Entries are sorted by file name.
	assert.Equal(t, "day_close.schema.json", m.Schemas[0].File)

	assert.Empty(t, m.Verify(dir, "1.0.0"))
}

func TestVerifyDetectsMutation(t *testing.T) {
	dir := t.TempDir()
	files := writeSchemaFiles(t, dir)
	_, err := Generate(dir, "1.0.0", "1.0.0", files)
	require.NoError(t, err)

	// Flip one byte in one schema file.
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	data[0] = ' '
	require.NoError(t, os.WriteFile(files[0], data, 0o644))

	m, err := Load(dir)
	require.NoError(t, err)

	problems := m.Verify(dir, "1.0.0")
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "hash mismatch")
	assert.Contains(t, problems[0], "day_close.schema.json")
}

func TestVerifyMissingSchemaFile(t *testing.T) {
	dir := t.TempDir()
	files := writeSchemaFiles(t, dir)
	_, err := Generate(dir, "1.0.0", "1.0.0", files)
	require.NoError(t, err)
	require.NoError(t, os.Remove(files[1]))

	m, err := Load(dir)
	require.NoError(t, err)

	problems := m.Verify(dir, "1.0.0")
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "not found")
	assert.Contains(t, problems[0], "ticket_contract.schema.json")
}

func TestVerifyVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	files := writeSchemaFiles(t, dir)
	_, err := Generate(dir, "1.0.0", "1.0.0", files)
	require.NoError(t, err)

	m, err := Load(dir)
	require.NoError(t, err)

	problems := m.Verify(dir, "2.0.0")
	require.NotEmpty(t, problems)
	assert.Contains(t, problems[0], "version mismatch")
}

func TestVerifyEmptySchemaList(t *testing.T) {
	m := &Manifest{SchemaVersion: "1.0.0", ExportScriptVersion: "1.0.0"}

	problems := m.Verify(t.TempDir(), "1.0.0")
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "empty")
}

func TestVerifyMissingTraceability(t *testing.T) {
	m := &Manifest{SchemaVersion: "1.0.0"}

	problems := m.Verify(t.TempDir(), "1.0.0")
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "traceability")
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{nope"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestHashFileDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.json")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	h1, err := HashFile(path)
	require.NoError(t, err)
	h2, err := HashFile(path)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.Equal(t, strings.ToLower(h1), h1)
}
