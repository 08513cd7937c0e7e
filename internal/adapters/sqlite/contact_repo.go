// Package sqlite contains SQLite implementations of the secondary ports.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dormant/internal/core/roster"
	"github.com/example/dormant/internal/ports/secondary"
)

// ContactRepository implements secondary.ContactRoster and secondary.ContactSink with SQLite.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new SQLite contact repository.
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// ReadAll retrieves every contact with its identifiers, ordered by display name.
func (r *ContactRepository) ReadAll(ctx context.Context) ([]roster.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, lookup_key, display_name FROM contacts ORDER BY display_name COLLATE NOCASE ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []roster.Contact
	byID := make(map[string]int)
	for rows.Next() {
		var c roster.Contact
		if err := rows.Scan(&c.ID, &c.LookupKey, &c.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		byID[c.ID] = len(contacts)
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	if err := r.attachIdentifiers(ctx, contacts, byID); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) attachIdentifiers(ctx context.Context, contacts []roster.Contact, byID map[string]int) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT contact_id, value FROM contact_identifiers ORDER BY contact_id, position, id",
	)
	if err != nil {
		return fmt.Errorf("failed to list identifiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var contactID, value string
		if err := rows.Scan(&contactID, &value); err != nil {
			return fmt.Errorf("failed to scan identifier: %w", err)
		}
		i, ok := byID[contactID]
		if !ok {
			continue
		}
		contacts[i].Identifiers = append(contacts[i].Identifiers, value)
	}
	return rows.Err()
}

// Delete removes a contact and its identifiers. The contact is matched on
// both id and lookup key so a stale id cannot remove a different contact.
func (r *ContactRepository) Delete(ctx context.Context, contact roster.Contact) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contacts WHERE id = ? AND lookup_key = ?",
		contact.ID, contact.LookupKey,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to look up contact: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("contact %s not found", contact.LookupKey)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM contact_identifiers WHERE contact_id = ?", contact.ID); err != nil {
		return fmt.Errorf("failed to delete identifiers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts WHERE id = ? AND lookup_key = ?", contact.ID, contact.LookupKey); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// Ensure ContactRepository implements the interfaces.
var (
	_ secondary.ContactRoster = (*ContactRepository)(nil)
	_ secondary.ContactSink   = (*ContactRepository)(nil)
)
