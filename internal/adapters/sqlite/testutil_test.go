// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All setup uses db.GetSchemaSQL() so tests run against the authoritative
// schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/dormant/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// A single connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedContact inserts a contact with identifiers.
func seedContact(t *testing.T, database *sql.DB, id, lookupKey, name string, identifiers ...string) {
	t.Helper()
	if _, err := database.Exec(
		"INSERT INTO contacts (id, lookup_key, display_name) VALUES (?, ?, ?)", id, lookupKey, name,
	); err != nil {
		t.Fatalf("failed to seed contact: %v", err)
	}
	for pos, v := range identifiers {
		if _, err := database.Exec(
			"INSERT INTO contact_identifiers (contact_id, value, position) VALUES (?, ?, ?)", id, v, pos,
		); err != nil {
			t.Fatalf("failed to seed identifier: %v", err)
		}
	}
}

// seedCall inserts a call row; nil values become NULL.
func seedCall(t *testing.T, database *sql.DB, number, date any) {
	t.Helper()
	if _, err := database.Exec("INSERT INTO call_log (number, date) VALUES (?, ?)", number, date); err != nil {
		t.Fatalf("failed to seed call: %v", err)
	}
}

// seedMessage inserts a message row; nil values become NULL.
func seedMessage(t *testing.T, database *sql.DB, address, date any) {
	t.Helper()
	if _, err := database.Exec("INSERT INTO messages (address, date) VALUES (?, ?)", address, date); err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := database.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
