package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/phenomen/babelizer/pkg/tui"
)

var rootCmd = &cobra.Command{
	Use:   "babelizer",
	Short: "Extract Foundry VTT compendium packs into Babele translation files",
	Long: `babelizer turns a Foundry VTT compendium pack into a flattened,
human-editable Babele translation file using a user-supplied field mapping.

Running babelizer without a subcommand opens the interactive form:
source folder, mapping file, compendium type, and the sort and ID-key
toggles are collected there. Use 'babelizer run' for the same pipeline
without the form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(tui.New()).Run()
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
