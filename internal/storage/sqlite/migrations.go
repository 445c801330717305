package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure the table exists. The whole store is one
// table: each row is a named collection serialized as a JSON document.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
