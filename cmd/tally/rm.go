// Rm command for the tally CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Short:   "Delete a task",
	Long:    `Delete a task by id. Deleted ids are never reused.`,
	Example: `  tally rm 3`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	adapter, err := openAdapter()
	if err != nil {
		return err
	}
	defer adapter.Close()

	store, err := adapter.Load()
	if err != nil {
		return err
	}

	task, err := store.Delete(id)
	if err != nil {
		return err
	}

	if err := adapter.Save(store); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n", task.ID, task.Description)
	return nil
}
