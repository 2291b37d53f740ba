// Ui command for the tally CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive task view",
	Long: `Open a full-screen interactive session for browsing, adding,
editing, completing, and deleting tasks. Every change is saved
immediately.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	adapter, err := openAdapter()
	if err != nil {
		return err
	}
	defer adapter.Close()

	return ui.Run(adapter)
}
