package types

// Adapter converts a TaskStore to and from durable storage. Save overwrites
// the entire persisted state; Load reconstructs the store, returning a fresh
// empty store when nothing has been persisted yet. Implementations are the
// JSON file backend (the default) and the SQLite backend.
type Adapter interface {
	// Load reads the persisted store. A missing data file is first-run
	// bootstrap, not an error: it yields an empty store with the id
	// counter at 1. Unreadable or corrupt state is an error (the latter
	// wraps ErrStoreCorrupt).
	Load() (*TaskStore, error)

	// Save persists the whole store, replacing any prior contents.
	Save(store *TaskStore) error

	// Close releases backend resources. Idempotent.
	Close() error
}
