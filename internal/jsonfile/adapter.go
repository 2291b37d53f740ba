// Package jsonfile implements the default persistence backend: the whole
// task store as one pretty-printed JSON document, written atomically and
// guarded by a file lock.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/mesh-intelligence/tally/pkg/types"
)

const (
	taskFileName = "tasks.json"
	lockFileName = "tasks.json.lock"

	dirPerm = 0o755
)

// Adapter persists a TaskStore to a single JSON file under the data
// directory. It satisfies types.Adapter.
type Adapter struct {
	path string
	flk  *flock.Flock
}

// New creates the data directory if needed and returns an adapter for the
// task file inside it.
func New(dataDir string) (*Adapter, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	return &Adapter{
		path: filepath.Join(dataDir, taskFileName),
		flk:  flock.New(filepath.Join(dataDir, lockFileName)),
	}, nil
}

// Path returns the location of the task file.
func (a *Adapter) Path() string {
	return a.path
}

// Load reads and parses the task file. A missing file is first-run
// bootstrap and yields a fresh empty store. Malformed JSON or a store that
// fails validation is an error wrapping types.ErrStoreCorrupt.
func (a *Adapter) Load() (*types.TaskStore, error) {
	if err := a.flk.Lock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", a.path, err)
	}
	defer func() { _ = a.flk.Unlock() }()

	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.NewTaskStore(), nil
		}
		return nil, fmt.Errorf("read %s: %w", a.path, err)
	}

	var store types.TaskStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", a.path, types.ErrStoreCorrupt, err)
	}
	if store.Tasks == nil {
		store.Tasks = []*types.Task{}
	}
	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", a.path, err)
	}
	return &store, nil
}

// Save serializes the store and replaces the task file using the
// temp-file, fsync, rename pattern.
func (a *Adapter) Save(store *types.TaskStore) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	data = append(data, '\n')

	if err := a.flk.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", a.path, err)
	}
	defer func() { _ = a.flk.Unlock() }()

	return writeAtomic(a.path, data)
}

// Close releases backend resources. The file lock is scoped to each
// operation, so there is nothing to release here.
func (a *Adapter) Close() error {
	return nil
}

// writeAtomic writes data to path via a temp file in the same directory,
// syncing before the rename so a crash never leaves a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
