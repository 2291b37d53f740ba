// List command for the tally CLI.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/internal/ui"
	"github.com/mesh-intelligence/tally/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List every task in insertion order. Each line shows the task id,
description, due date, and tags, color coded by status.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	return listTasks(cmd, "")
}

// listTasks prints the tasks matching filter, or all tasks when filter is
// empty. Shared by the list and find commands.
func listTasks(cmd *cobra.Command, filter string) error {
	adapter, err := openAdapter()
	if err != nil {
		return err
	}
	defer adapter.Close()

	store, err := adapter.Load()
	if err != nil {
		return err
	}

	today := types.Today()

	if flagJSON {
		views := make([]taskView, 0, store.Len())
		for task := range store.Query(filter) {
			views = append(views, newTaskView(task, today))
		}
		out, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	count := 0
	for task := range store.Query(filter) {
		fmt.Fprintln(cmd.OutOrStdout(), ui.TaskLine(task, today))
		count++
	}
	if count == 0 {
		if filter == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No matching tasks.")
		}
	}
	return nil
}
