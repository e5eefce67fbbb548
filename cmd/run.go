package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phenomen/babelizer/pkg/babele"
	"github.com/phenomen/babelizer/pkg/mapping"
)

var (
	runMapping string
	runType    string
	runSort    bool
	runIDKey   bool
	runOutput  string
)

var runCmd = &cobra.Command{
	Use:   "run <pack folder>",
	Short: "Extract and transform one compendium pack without the form",
	Long: `Extract a compendium pack and write its Babele translation file in one
shot, taking every input from flags instead of the interactive form.

The pack folder holds either a v11+ LevelDB database or v10 NeDB .db
files; the extracted records land in a scratch 'records' subdirectory,
which is cleared first.

Examples:
  # Transform the Items compendium, keyed by record name
  babelizer run packs/equipment -t Items

  # Sort entries and key them by _id
  babelizer run packs/equipment -t Items --sort --id-key

  # Use a non-default mapping file
  babelizer run packs/equipment -t Actors -m pf2e-mapping.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runMapping, "mapping", "m", "mapping.json",
		"mapping file declaring the per-type field tables")
	runCmd.Flags().StringVarP(&runType, "type", "t", "",
		"compendium type (one of the mapping file's keys)")
	runCmd.Flags().BoolVar(&runSort, "sort", false,
		"sort entries alphabetically by record name")
	runCmd.Flags().BoolVar(&runIDKey, "id-key", false,
		"key entries by the record _id instead of its name")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "output",
		"output directory for the translation file")
}

func runRun(cmd *cobra.Command, args []string) error {
	sourceDir := args[0]

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if info, err := os.Stat(absSource); err != nil || !info.IsDir() {
		return fmt.Errorf("source folder not found: %s", sourceDir)
	}

	m, err := mapping.Load(runMapping)
	if err != nil {
		return err
	}
	types := m.Types()
	if len(types) == 0 {
		return mapping.ErrNoTypes
	}
	if runType == "" {
		return fmt.Errorf("--type is required; mapping file declares: %v", types)
	}

	fmt.Printf("Source: %s\n", sourceDir)
	fmt.Printf("Mapping: %s\n", runMapping)
	fmt.Printf("Type: %s\n", runType)
	fmt.Println()

	outPath, err := babele.Run(babele.RunOptions{
		SourceDir:   absSource,
		MappingPath: runMapping,
		Type:        runType,
		SortByName:  runSort,
		KeyByID:     runIDKey,
		OutputDir:   runOutput,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", outPath)
	return nil
}
