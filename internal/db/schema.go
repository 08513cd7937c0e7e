package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh snapshot databases.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it
// via GetSchemaSQL() so repository code and tests cannot drift apart.
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Contacts (address book)
CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	lookup_key TEXT NOT NULL UNIQUE,
	display_name TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Contact identifiers (phone numbers as entered, one contact has many)
CREATE TABLE IF NOT EXISTS contact_identifiers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	contact_id TEXT NOT NULL,
	value TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_contact_identifiers_contact ON contact_identifiers(contact_id);

-- Call history; number and date are nullable like the platform store
CREATE TABLE IF NOT EXISTS call_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	number TEXT,
	date INTEGER
);

-- Message history
CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	address TEXT,
	date INTEGER
);

-- Deletion audit log (one row per attempted deletion)
CREATE TABLE IF NOT EXISTS deletion_log (
	id TEXT PRIMARY KEY,
	batch_id TEXT NOT NULL,
	contact_id TEXT NOT NULL,
	lookup_key TEXT NOT NULL,
	display_name TEXT NOT NULL DEFAULT '',
	outcome TEXT NOT NULL CHECK(outcome IN ('deleted', 'failed')),
	reason TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_deletion_log_batch ON deletion_log(batch_id);
CREATE INDEX IF NOT EXISTS idx_deletion_log_created ON deletion_log(created_at);
`

// InitSchema creates the schema on a fresh database or migrates an existing one.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	if tableCount > 0 {
		return RunMigrations(database)
	}

	// Fresh install - create modern schema directly and mark every
	// migration as applied.
	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := ensureVersionTable(database); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := database.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
