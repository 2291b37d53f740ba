// Shared helpers for the tally subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/tally/internal/jsonfile"
	"github.com/mesh-intelligence/tally/internal/sqlite"
	"github.com/mesh-intelligence/tally/pkg/types"
)

// openAdapter resolves the data directory and opens the configured
// persistence backend. The caller must Close the returned adapter.
func openAdapter() (types.Adapter, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.Open(cfg.DataDir)
	default:
		return jsonfile.New(cfg.DataDir)
	}
}

// parseTaskID parses a positional task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// parseDueFlag parses a --due flag value. An empty string means no due
// date; anything else must be a valid YYYY-MM-DD date.
func parseDueFlag(value string) (*types.Date, error) {
	if value == "" {
		return nil, nil
	}
	date, err := types.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// taskView is the JSON output shape for a task, extended with the display
// status derived against today's date.
type taskView struct {
	ID          int      `json:"id"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Tags        []string `json:"tags"`
	DueDate     string   `json:"due_date,omitempty"`
	Status      string   `json:"status"`
}

func newTaskView(task *types.Task, today types.Date) taskView {
	view := taskView{
		ID:          task.ID,
		Description: task.Description,
		Completed:   task.Completed,
		Tags:        task.Tags,
		Status:      string(task.StatusOn(today)),
	}
	if task.DueDate != nil {
		view.DueDate = task.DueDate.String()
	}
	return view
}
