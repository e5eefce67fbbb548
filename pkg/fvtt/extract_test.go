package fvtt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key        string
		collection string
		topLevel   bool
	}{
		{"!items!abc123", "items", true},
		{"!actors!XyZ", "actors", true},
		{"!actors.items!parent.child", "", false},
		{"!!abc", "", false},
		{"items!abc", "", false},
		{"!items!", "", false},
		{"garbage", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			collection, topLevel := parseKey(tt.key)
			assert.Equal(t, tt.topLevel, topLevel)
			assert.Equal(t, tt.collection, collection)
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sword of Sharpness", "sword-of-sharpness"},
		{"Déjà Vu", "d-j-vu"},
		{"  spaced  ", "spaced"},
		{"+1 Shield!", "1-shield"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}

func TestDetectFlavor(t *testing.T) {
	t.Run("leveldb", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "CURRENT"), []byte("MANIFEST-000001\n"), 0644))

		flavor, err := DetectFlavor(dir)
		require.NoError(t, err)
		assert.Equal(t, FlavorLevelDB, flavor)
	})

	t.Run("nedb", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "equipment.db"), []byte("{}\n"), 0644))

		flavor, err := DetectFlavor(dir)
		require.NoError(t, err)
		assert.Equal(t, FlavorNeDB, flavor)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := DetectFlavor(t.TempDir())
		assert.ErrorIs(t, err, ErrUnknownFlavor)
	})
}

func TestExtractNeDB(t *testing.T) {
	dir := t.TempDir()
	lines := `{"_id":"abc","name":"Sword"}` + "\n" +
		"\n" +
		`{"_id":"def","name":"Shield"}` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "equipment.db"), []byte(lines), 0644))

	out, err := NewExtractor(dir, ExtractOptions{}).Extract()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "records"), out)

	paths, err := filepath.Glob(filepath.Join(out, "*.json"))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	data, err := os.ReadFile(filepath.Join(out, "sword_abc.json"))
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "Sword", rec["name"])
}

func TestExtractLevelDB(t *testing.T) {
	dir := t.TempDir()

	db, err := leveldb.OpenFile(dir, nil)
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("!items!abc"), []byte(`{"_id":"abc","name":"Sword"}`), nil))
	require.NoError(t, db.Put([]byte("!items!def"), []byte(`{"_id":"def","name":"Shield"}`), nil))
	require.NoError(t, db.Put([]byte("!actors.items!p.c"), []byte(`{"_id":"c","name":"Embedded"}`), nil))
	require.NoError(t, db.Close())

	out, err := NewExtractor(dir, ExtractOptions{}).Extract()
	require.NoError(t, err)

	paths, err := filepath.Glob(filepath.Join(out, "*.json"))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	_, err = os.Stat(filepath.Join(out, "embedded_c.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractClearsStaleScratch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "equipment.db"), []byte(`{"_id":"abc","name":"Sword"}`+"\n"), 0644))

	scratch := filepath.Join(dir, "records")
	require.NoError(t, os.MkdirAll(scratch, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(scratch, "stale.json"), []byte("{}"), 0644))

	_, err := NewExtractor(dir, ExtractOptions{}).Extract()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(scratch, "stale.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(scratch, "sword_abc.json"))
	assert.NoError(t, err)
}

func TestExtractMalformedRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "equipment.db"), []byte("{not json\n"), 0644))

	_, err := NewExtractor(dir, ExtractOptions{}).Extract()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse pack record")
}
