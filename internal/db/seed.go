package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures replaces the snapshot with development fixtures. Timestamps are
// relative to now so the stale/active split is stable whenever it runs.
func SeedFixtures(database *sql.DB, now time.Time) error {
	daysAgo := func(d int) int64 {
		return now.AddDate(0, 0, -d).UnixMilli()
	}

	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("seed: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"contact_identifiers", "contacts", "call_log", "messages"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("seed: failed to clear %s: %w", table, err)
		}
	}

	contacts := []struct {
		id, lookupKey, name string
		numbers             []string
	}{
		{"1", "0r1-ALICE", "Alice Archer", []string{"+1 (555) 010-0001"}},
		{"2", "0r2-BOB", "Bob Baker", []string{"555-010-0002", "+1 555 010 0022"}},
		{"3", "0r3-CAROL", "Carol Chen", []string{"5550100003"}},
		{"4", "0r4-DAN", "Dan Dorsey", nil},
		{"5", "0r5-MOM", "Mom", []string{"555.010.0005"}},
		{"6", "0r6-ERIN", "Erin Ellis", []string{"(555) 010-0006"}},
	}
	for _, c := range contacts {
		if _, err := tx.Exec(
			"INSERT INTO contacts (id, lookup_key, display_name) VALUES (?, ?, ?)",
			c.id, c.lookupKey, c.name,
		); err != nil {
			return fmt.Errorf("seed contacts: %w", err)
		}
		for pos, n := range c.numbers {
			if _, err := tx.Exec(
				"INSERT INTO contact_identifiers (contact_id, value, position) VALUES (?, ?, ?)",
				c.id, n, pos,
			); err != nil {
				return fmt.Errorf("seed identifiers: %w", err)
			}
		}
	}

	calls := []struct {
		number any
		date   any
	}{
		{"5550100001", daysAgo(200)},
		{"+15550100022", daysAgo(5)},
		{"555-010-0002", daysAgo(300)},
		{"5550100005", daysAgo(120)},
		{nil, daysAgo(1)},
		{"Unknown", daysAgo(2)},
		{"5550100006", nil},
	}
	for _, c := range calls {
		if _, err := tx.Exec("INSERT INTO call_log (number, date) VALUES (?, ?)", c.number, c.date); err != nil {
			return fmt.Errorf("seed call_log: %w", err)
		}
	}

	messages := []struct {
		address any
		date    any
	}{
		{"5550100003", daysAgo(30)},
		{"+1 555 010 0001", daysAgo(150)},
		{"SHORTCODE", daysAgo(1)},
	}
	for _, m := range messages {
		if _, err := tx.Exec("INSERT INTO messages (address, date) VALUES (?, ?)", m.address, m.date); err != nil {
			return fmt.Errorf("seed messages: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: failed to commit: %w", err)
	}
	return nil
}
