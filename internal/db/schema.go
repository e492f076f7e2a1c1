package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Every collection (entries, users,
// notes, contacts) is persisted as one serialized array under its own slot
// key; scalar settings each get their own key. There is no schema
// versioning: a format change requires a manual reset.
const schema = `
CREATE TABLE IF NOT EXISTS slots (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates the slot table if it doesn't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
