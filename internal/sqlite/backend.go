// Package sqlite implements the SQLite persistence backend for tally.
// It stores the same whole-store state as the JSON file backend: a tasks
// table plus a store_meta row carrying the next-id counter. Save replaces
// everything in one transaction, so the two backends obey the same
// round-trip contract.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tally/pkg/types"
)

const (
	dbFileName = "tasks.db"

	dirPerm = 0o755

	metaKeyNextID = "next_id"
)

// Backend persists a TaskStore in a SQLite database under the data
// directory. It satisfies types.Adapter.
type Backend struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the database, and
// applies the schema.
func Open(dataDir string) (*Backend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Backend{db: db}, nil
}

// Load reads the persisted store. An empty database is first-run bootstrap
// and yields a fresh store; tasks without a next_id row are corrupt.
func (b *Backend) Load() (*types.TaskStore, error) {
	rows, err := b.db.Query(`SELECT id, description, completed, tags, due_date FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	// Ids are assigned in insertion order and never reused, so id order
	// is store order.
	tasks := []*types.Task{}
	for rows.Next() {
		var (
			task     types.Task
			tagsJSON string
			due      sql.NullString
		)
		if err := rows.Scan(&task.ID, &task.Description, &task.Completed, &tagsJSON, &due); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &task.Tags); err != nil {
			return nil, fmt.Errorf("task %d tags: %w: %v", task.ID, types.ErrStoreCorrupt, err)
		}
		if task.Tags == nil {
			task.Tags = []string{}
		}
		if due.Valid {
			parsed, err := types.ParseDate(due.String)
			if err != nil {
				return nil, fmt.Errorf("task %d due date: %w: %v", task.ID, types.ErrStoreCorrupt, err)
			}
			task.DueDate = &parsed
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	var nextID int
	err = b.db.QueryRow(`SELECT value FROM store_meta WHERE key = ?`, metaKeyNextID).Scan(&nextID)
	switch {
	case err == sql.ErrNoRows:
		if len(tasks) > 0 {
			return nil, fmt.Errorf("%w: tasks present but next_id missing", types.ErrStoreCorrupt)
		}
		return types.NewTaskStore(), nil
	case err != nil:
		return nil, fmt.Errorf("read next_id: %w", err)
	}

	store := &types.TaskStore{Tasks: tasks, NextID: nextID}
	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}
	return store, nil
}

// Save replaces the persisted state with the given store in a single
// transaction.
func (b *Backend) Save(store *types.TaskStore) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	insert, err := tx.Prepare(`INSERT INTO tasks (id, description, completed, tags, due_date) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for _, task := range store.Tasks {
		tagsJSON, err := json.Marshal(task.Tags)
		if err != nil {
			return fmt.Errorf("marshal task %d tags: %w", task.ID, err)
		}
		var due any
		if task.DueDate != nil {
			due = task.DueDate.String()
		}
		if _, err := insert.Exec(task.ID, task.Description, task.Completed, string(tagsJSON), due); err != nil {
			return fmt.Errorf("insert task %d: %w", task.ID, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO store_meta (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		metaKeyNextID, store.NextID,
	); err != nil {
		return fmt.Errorf("save next_id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Close releases the database connection. Idempotent.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
