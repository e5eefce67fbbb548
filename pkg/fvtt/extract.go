package fvtt

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// ExtractOptions configures the extraction process.
type ExtractOptions struct {
	OutputDir string // scratch directory for record files (default: <pack>/records)
	Verbose   bool   // print each written record file
}

// Extractor unpacks one compendium pack into one JSON file per record.
type Extractor struct {
	packDir string
	opts    ExtractOptions
}

// NewExtractor creates an extractor for the given pack folder.
func NewExtractor(packDir string, opts ExtractOptions) *Extractor {
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Join(packDir, "records")
	}
	return &Extractor{packDir: packDir, opts: opts}
}

// Extract clears the scratch directory, detects the pack flavor, and writes
// every top-level record as a pretty-printed JSON file. Returns the scratch
// directory path.
func (e *Extractor) Extract() (string, error) {
	if err := os.RemoveAll(e.opts.OutputDir); err != nil {
		return "", fmt.Errorf("failed to clear scratch directory: %w", err)
	}
	if err := os.MkdirAll(e.opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	flavor, err := DetectFlavor(e.packDir)
	if err != nil {
		return "", err
	}

	switch flavor {
	case FlavorLevelDB:
		err = e.extractLevelDB()
	case FlavorNeDB:
		err = e.extractNeDB()
	}
	if err != nil {
		return "", err
	}
	return e.opts.OutputDir, nil
}

// extractLevelDB walks a ClassicLevel database. Keys with dotted collections
// hold embedded documents and are skipped; only top-level records become
// files.
func (e *Extractor) extractLevelDB() error {
	db, err := leveldb.OpenFile(e.packDir, &opt.Options{ReadOnly: true, ErrorIfMissing: true})
	if err != nil {
		return fmt.Errorf("failed to open pack database: %w", err)
	}
	defer db.Close()

	iter := db.NewIterator(nil, nil)
	defer iter.Release()

	for iter.Next() {
		if _, topLevel := parseKey(string(iter.Key())); !topLevel {
			continue
		}
		if err := e.writeRecord(iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

// extractNeDB reads every *.db file in the pack folder as newline-delimited
// JSON, one record per line.
func (e *Extractor) extractNeDB() error {
	paths, err := filepath.Glob(filepath.Join(e.packDir, "*.db"))
	if err != nil {
		return fmt.Errorf("failed to enumerate .db files: %w", err)
	}

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", filepath.Base(p), err)
		}

		scanner := bufio.NewScanner(f)
		// Records with long HTML descriptions exceed the default line limit.
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := e.writeRecord([]byte(line)); err != nil {
				f.Close()
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			f.Close()
			return fmt.Errorf("failed to read %s: %w", filepath.Base(p), err)
		}
		f.Close()
	}
	return nil
}

// writeRecord parses one raw record and writes it as
// <slug(name)>_<id>.json (falling back to <id>.json for unnamed records).
func (e *Extractor) writeRecord(raw []byte) error {
	var rec map[string]any
	if err := json.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("failed to parse pack record: %w", err)
	}

	id, _ := rec["_id"].(string)
	name, _ := rec["name"].(string)

	filename := id + ".json"
	if slug := slugify(name); slug != "" {
		filename = slug + "_" + id + ".json"
	}
	outPath := filepath.Join(e.opts.OutputDir, filename)

	pretty, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize record %s: %w", id, err)
	}

	if e.opts.Verbose {
		fmt.Printf("\t%s\n", outPath)
	}
	if err := os.WriteFile(outPath, append(pretty, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
