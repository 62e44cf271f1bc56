package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportAllWritesVersionedDir(t *testing.T) {
	out := t.TempDir()

	paths, err := ExportAll(out)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(out, SchemaVersion, "day_close.schema.json"), paths[0])
	assert.Equal(t, filepath.Join(out, SchemaVersion, "ticket_contract.schema.json"), paths[1])
	for _, path := range paths {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}

func TestExportDeterministic(t *testing.T) {
	out := t.TempDir()

	paths, err := ExportAll(out)
	require.NoError(t, err)
	first, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	// Re-export over the same directory and compare bytes.
	paths, err = ExportAll(out)
	require.NoError(t, err)
	second, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExportedSchemaShape(t *testing.T) {
	out := t.TempDir()
	paths, err := ExportAll(out)
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"), "schema file must end with a newline")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", doc["$schema"])
	assert.Equal(t, "DayClose", doc["title"])
	assert.Contains(t, doc["$comment"], ExporterVersion)
	assert.Equal(t, false, doc["additionalProperties"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"schema_version", "date", "invariants_checked", "drift_detected"} {
		assert.Contains(t, props, key)
	}
}

func TestTicketContractSchemaRequired(t *testing.T) {
	doc := TicketContractSchema()

	required, ok := doc["required"].([]string)
	require.True(t, ok)
	assert.Contains(t, required, "ticket_id")
	assert.Contains(t, required, "emergency_bypass")
	assert.NotContains(t, required, "interfaces_touched")
}
