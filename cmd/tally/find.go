// Find command for the tally CLI.
package main

import (
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search tasks by tag or description",
	Long: `Search tasks. A task matches when the query equals one of its tags
exactly (case-insensitive) or appears as a substring of its description
(case-insensitive). Matches are printed in insertion order.`,
	Example: `  tally find home
  tally find "milk"`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	return listTasks(cmd, args[0])
}
