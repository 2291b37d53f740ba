// Add command for the tally CLI.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	addDue  string
	addTags string
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Long:  `Add a new task with an optional due date and comma-separated tags.`,
	Example: `  tally add "Buy milk"
  tally add "Pay rent" --due 2026-09-01 --tags home,finance`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addTags, "tags", "", "comma-separated tags")
}

func runAdd(cmd *cobra.Command, args []string) error {
	due, err := parseDueFlag(addDue)
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

	task := store.Create(strings.Join(args, " "), types.ParseTags(addTags), due)

	if err := adapter.Save(store); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(newTaskView(task, types.Today()), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s\n", task.ID, task.Description)
	return nil
}
