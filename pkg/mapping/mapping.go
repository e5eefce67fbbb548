// Package mapping loads the user-authored field mapping configuration.
package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Mapping maps a compendium type name to its field table: output field name
// to dotted source path (e.g. "system.description.value"). Loaded once per
// run and never modified afterwards.
type Mapping map[string]map[string]string

// Load reads and parses a mapping file.
func Load(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}
	return m, nil
}

// Types returns the selectable compendium type names in sorted order.
func (m Mapping) Types() []string {
	types := make([]string, 0, len(m))
	for name := range m {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// Fields returns the field table for the given compendium type.
// Returns ErrNoMapping when the type is not declared in the file.
func (m Mapping) Fields(typ string) (map[string]string, error) {
	fields, ok := m[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMapping, typ)
	}
	return fields, nil
}
