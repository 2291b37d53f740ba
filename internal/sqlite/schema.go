package sqlite

// Schema DDL. Applied on every Open; IF NOT EXISTS keeps existing data.
const (
	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY,
    description TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL DEFAULT '[]',
    due_date TEXT
);`

	createStoreMeta = `CREATE TABLE IF NOT EXISTS store_meta (
    key TEXT PRIMARY KEY,
    value INTEGER NOT NULL
);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createTasks,
	createStoreMeta,
}
