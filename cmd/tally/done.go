// Done command for the tally CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Short:   "Mark a task as completed",
	Example: `  tally done 3`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
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

	task, err := store.Complete(id)
	if err != nil {
		return err
	}

	if err := adapter.Save(store); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", task.ID, task.Description)
	return nil
}
