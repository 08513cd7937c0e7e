package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dormant/internal/core/interaction"
	"github.com/example/dormant/internal/ports/secondary"
)

// SnapshotRepository implements secondary.SnapshotWriter with SQLite.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SQLite snapshot writer.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// ReplaceAll clears the contact, identifier, call and message tables and
// writes the snapshot in a single transaction. The deletion log is kept.
func (r *SnapshotRepository) ReplaceAll(ctx context.Context, snapshot *secondary.SnapshotRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"contact_identifiers", "contacts", "call_log", "messages"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, c := range snapshot.Contacts {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO contacts (id, lookup_key, display_name) VALUES (?, ?, ?)",
			c.ID, c.LookupKey, c.DisplayName,
		); err != nil {
			return fmt.Errorf("failed to insert contact %s: %w", c.ID, err)
		}
		for pos, value := range c.Identifiers {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO contact_identifiers (contact_id, value, position) VALUES (?, ?, ?)",
				c.ID, value, pos,
			); err != nil {
				return fmt.Errorf("failed to insert identifier for contact %s: %w", c.ID, err)
			}
		}
	}

	if err := insertInteractions(ctx, tx, "INSERT INTO call_log (number, date) VALUES (?, ?)", snapshot.Calls); err != nil {
		return fmt.Errorf("failed to insert calls: %w", err)
	}
	if err := insertInteractions(ctx, tx, "INSERT INTO messages (address, date) VALUES (?, ?)", snapshot.Messages); err != nil {
		return fmt.Errorf("failed to insert messages: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

func insertInteractions(ctx context.Context, tx *sql.Tx, query string, records []interaction.Record) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		ident := sql.NullString{String: rec.Identifier, Valid: rec.Identifier != ""}
		date := sql.NullInt64{Int64: rec.Timestamp, Valid: !rec.Missing}
		if _, err := stmt.ExecContext(ctx, ident, date); err != nil {
			return err
		}
	}
	return nil
}

// Ensure SnapshotRepository implements the interface.
var _ secondary.SnapshotWriter = (*SnapshotRepository)(nil)
