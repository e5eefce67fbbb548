// Package fvtt extracts Foundry VTT compendium packs into loose per-record
// JSON files.
package fvtt

import (
	"os"
	"path/filepath"
	"strings"
)

// Flavor identifies a pack's on-disk database format.
type Flavor int

const (
	FlavorLevelDB Flavor = iota + 1 // v11+ ClassicLevel directory
	FlavorNeDB                      // v10 newline-delimited JSON .db files
)

// String returns the flavor name.
func (f Flavor) String() string {
	switch f {
	case FlavorLevelDB:
		return "leveldb"
	case FlavorNeDB:
		return "nedb"
	default:
		return "unknown"
	}
}

// DetectFlavor inspects a pack folder and reports its database format.
// A LevelDB directory is recognized by its CURRENT file; otherwise any
// *.db file marks the folder as a NeDB pack.
func DetectFlavor(dir string) (Flavor, error) {
	if _, err := os.Stat(filepath.Join(dir, "CURRENT")); err == nil {
		return FlavorLevelDB, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.db"))
	if err != nil {
		return 0, err
	}
	if len(matches) > 0 {
		return FlavorNeDB, nil
	}
	return 0, ErrUnknownFlavor
}

// parseKey splits a ClassicLevel record key of the form "!collection!id".
// Embedded documents live under dotted collections ("!actors.items!…") and
// are reported as not top-level.
func parseKey(key string) (collection string, topLevel bool) {
	parts := strings.Split(key, "!")
	if len(parts) != 3 || parts[0] != "" || parts[1] == "" || parts[2] == "" {
		return "", false
	}
	if strings.Contains(parts[1], ".") {
		return "", false
	}
	return parts[1], true
}

// slugify lowercases a record name and replaces every run of
// non-alphanumeric characters with a single hyphen.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // trim leading hyphens
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
