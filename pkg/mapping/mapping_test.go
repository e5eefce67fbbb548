package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMapping(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses the per-type field tables", func(t *testing.T) {
		m, err := Load(writeMapping(t, `{
			"Items": {"name": "name", "description": "system.description.value"},
			"Actors": {"name": "name"}
		}`))
		require.NoError(t, err)

		fields, err := m.Fields("Items")
		require.NoError(t, err)
		assert.Equal(t, "system.description.value", fields["description"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read mapping file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := Load(writeMapping(t, `{broken`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse mapping file")
	})
}

func TestTypes(t *testing.T) {
	m := Mapping{"Items": nil, "Actors": nil, "RollTables": nil}
	assert.Equal(t, []string{"Actors", "Items", "RollTables"}, m.Types())

	assert.Empty(t, Mapping{}.Types())
}

func TestFields(t *testing.T) {
	m := Mapping{"Items": {"name": "name"}}

	_, err := m.Fields("Actors")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMapping)
	assert.Contains(t, err.Error(), "Actors")
}
