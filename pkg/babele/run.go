package babele

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phenomen/babelizer/pkg/fvtt"
	"github.com/phenomen/babelizer/pkg/mapping"
)

// RunOptions configures one end-to-end extract-and-transform run.
type RunOptions struct {
	SourceDir   string // compendium pack folder
	MappingPath string // mapping file (default: "mapping.json")
	Type        string // compendium type, must be declared in the mapping file
	SortByName  bool
	KeyByID     bool
	OutputDir   string // default: "output"
}

// Run extracts the pack at SourceDir into a scratch directory, transforms
// the records with the selected type's field table, and writes the
// translation document. Returns the output file path.
//
// The mapping is validated before any record is extracted or read: a type
// without a mapping entry aborts the run up front.
func Run(opts RunOptions) (string, error) {
	if opts.MappingPath == "" {
		opts.MappingPath = "mapping.json"
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}

	info, err := os.Stat(opts.SourceDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("source folder not found: %s", opts.SourceDir)
	}

	m, err := mapping.Load(opts.MappingPath)
	if err != nil {
		return "", err
	}
	fields, err := m.Fields(opts.Type)
	if err != nil {
		return "", err
	}

	recordsDir, err := fvtt.NewExtractor(opts.SourceDir, fvtt.ExtractOptions{}).Extract()
	if err != nil {
		return "", err
	}

	source := filepath.Clean(opts.SourceDir)
	doc, err := NewTransformer(fields, opts.SortByName, opts.KeyByID).Transform(recordsDir, filepath.Base(source))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}

	outPath := filepath.Join(opts.OutputDir, outputName(source))
	if err := os.WriteFile(outPath, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}

// outputName derives the output filename from the last two path segments of
// the source folder, joined with a dot (e.g. packs/equipment ->
// "packs.equipment.json"). A single-segment path uses just its base name.
func outputName(dir string) string {
	base := filepath.Base(dir)
	parent := filepath.Base(filepath.Dir(dir))
	if parent == "." || parent == string(filepath.Separator) {
		return base + ".json"
	}
	return parent + "." + base + ".json"
}
