// Init command for the tally CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config and data directories",
	Long: `Create the configuration directory with a default config.yaml and
an empty task store in the data directory. Running init on an existing
installation is harmless.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// PersistentPreRunE already created the config dir and default
	// config.yaml; opening and saving the store creates the data file.
	adapter, err := openAdapter()
	if err != nil {
		return err
	}
	defer adapter.Close()

	store, err := adapter.Load()
	if err != nil {
		return err
	}
	if err := adapter.Save(store); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config directory: %s\n", configDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Data directory: %s\n", dataDir)
	return nil
}
