package state

import (
	"database/sql"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS resume_state (
			presentation TEXT PRIMARY KEY,
			slide_index INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	return err
}
