package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id         INTEGER PRIMARY KEY,
		sort_mode       TEXT NOT NULL DEFAULT 'padrao'
		                CHECK(sort_mode IN ('padrao','alfabetica')),
		pending         TEXT NOT NULL DEFAULT '',
		list_message_id INTEGER NOT NULL DEFAULT 0,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id           TEXT PRIMARY KEY,
		user_id      INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		display_name TEXT NOT NULL,
		phone        TEXT NOT NULL CHECK(length(phone) IN (10, 11)),
		UNIQUE(user_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_user ON contacts(user_id, position)`,

	// Help pages became editable in place after the first schema.
	`ALTER TABLE users ADD COLUMN help_message_id INTEGER NOT NULL DEFAULT 0`,
}
