package babele

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Transformer applies one compendium type's field table to a directory of
// extracted record files and aggregates the reduced entries into a Document.
type Transformer struct {
	fields     map[string]string
	sortByName bool
	keyByID    bool
	coll       *collate.Collator
}

// NewTransformer creates a transformer for the given field table.
// When sortByName is set, entries are ordered by case-insensitive collation
// of the record name; otherwise discovery order is kept. When keyByID is
// set, entries are keyed by the record's _id instead of its name.
func NewTransformer(fields map[string]string, sortByName, keyByID bool) *Transformer {
	return &Transformer{
		fields:     fields,
		sortByName: sortByName,
		keyByID:    keyByID,
		coll:       collate.New(language.Und, collate.IgnoreCase),
	}
}

// Transform reads every record file in dir and builds the translation
// document. A record that fails to parse aborts the whole transform.
func (t *Transformer) Transform(dir, label string) (*Document, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate record files: %w", err)
	}

	// Discovery order follows the glob enumeration; it is not guaranteed
	// stable across platforms unless sorting is enabled.
	records := make([]map[string]any, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read record %s: %w", filepath.Base(p), err)
		}
		var rec map[string]any
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse record %s: %w", filepath.Base(p), err)
		}
		records = append(records, rec)
	}

	if t.sortByName {
		sort.SliceStable(records, func(i, j int) bool {
			return t.coll.CompareString(stringOr(records[i]["name"]), stringOr(records[j]["name"])) < 0
		})
	}

	entries := NewOrderedMap()
	for _, rec := range records {
		key, data := t.reduce(rec)
		// Duplicate keys: the last-processed record wins silently.
		entries.Set(key, data)
	}

	return &Document{Label: label, Mapping: t.fields, Entries: entries}, nil
}

// reduce maps one record to its entry key and reduced data. Fields that
// resolve to nil or the empty string are omitted; 0 and false are kept.
func (t *Transformer) reduce(rec map[string]any) (string, map[string]any) {
	data := make(map[string]any, len(t.fields))
	for field, path := range t.fields {
		v, ok := Resolve(rec, path)
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		data[field] = v
	}

	if results, ok := rec["results"].([]any); ok {
		data["results"] = RangeResults(results)
	}

	key := stringOr(rec["name"])
	if t.keyByID {
		key = stringOr(rec["_id"])
	}
	return key, data
}
