package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
// Timestamps are stored as UTC unix nanoseconds so due_date orders numerically.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS todo_lists (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL UNIQUE CHECK(length(trim(title)) > 0),
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS todo_items (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	id           TEXT NOT NULL UNIQUE,
	todo_list_id TEXT NOT NULL REFERENCES todo_lists(id) ON DELETE CASCADE,
	title        TEXT NOT NULL CHECK(length(trim(title)) > 0),
	description  TEXT NOT NULL DEFAULT '',
	due_date     INTEGER NOT NULL,
	created_at   INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_todo_items_list_due
	ON todo_items(todo_list_id, due_date, seq);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
