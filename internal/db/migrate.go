package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS responses (
		id             TEXT PRIMARY KEY,
		owner_id       TEXT NOT NULL,
		kind           TEXT NOT NULL
		               CHECK(kind IN ('onboarding','morning_checkin','evening_checkin')),
		schema_version TEXT NOT NULL DEFAULT 'v1',
		payload        TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_responses_owner_kind_created
		ON responses(owner_id, kind, created_at)`,
}
