// Edit command for the tally CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	editDesc string
	editDue  string
	editTags string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit a task's description, due date, or tags. Flags that are not
given keep the current value. Pass --due "" to clear the due date and
--tags "" to clear the tags. Completion state is never changed by edit.`,
	Example: `  tally edit 3 --desc "Buy oat milk"
  tally edit 3 --due 2026-09-01
  tally edit 3 --due ""`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editDesc, "desc", "", "new description")
	editCmd.Flags().StringVar(&editDue, "due", "", "new due date (YYYY-MM-DD, empty to clear)")
	editCmd.Flags().StringVar(&editTags, "tags", "", "new comma-separated tags (empty to clear)")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	task, err := store.Get(id)
	if err != nil {
		return err
	}

	description := task.Description
	if cmd.Flags().Changed("desc") {
		description = editDesc
	}

	tags := task.Tags
	if cmd.Flags().Changed("tags") {
		tags = types.ParseTags(editTags)
	}

	due := task.DueDate
	if cmd.Flags().Changed("due") {
		due, err = parseDueFlag(editDue)
		if err != nil {
			return err
		}
	}

	if _, err := store.Edit(id, description, tags, due); err != nil {
		return err
	}

	if err := adapter.Save(store); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", id)
	return nil
}
