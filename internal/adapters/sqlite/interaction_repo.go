package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dormant/internal/core/interaction"
	"github.com/example/dormant/internal/ports/secondary"
)

// CallLogRepository implements secondary.CallLogSource with SQLite.
type CallLogRepository struct {
	db *sql.DB
}

// NewCallLogRepository creates a new SQLite call log source.
func NewCallLogRepository(db *sql.DB) *CallLogRepository {
	return &CallLogRepository{db: db}
}

// ReadAll returns every call as an interaction record.
func (r *CallLogRepository) ReadAll(ctx context.Context) ([]interaction.Record, error) {
	return readInteractions(ctx, r.db, "call log", "SELECT number, date FROM call_log")
}

// MessageLogRepository implements secondary.MessageLogSource with SQLite.
type MessageLogRepository struct {
	db *sql.DB
}

// NewMessageLogRepository creates a new SQLite message log source.
func NewMessageLogRepository(db *sql.DB) *MessageLogRepository {
	return &MessageLogRepository{db: db}
}

// ReadAll returns every message as an interaction record.
func (r *MessageLogRepository) ReadAll(ctx context.Context) ([]interaction.Record, error) {
	return readInteractions(ctx, r.db, "messages", "SELECT address, date FROM messages")
}

// readInteractions scans (identifier, date) rows. A NULL identifier becomes
// "" and is dropped by normalization; a NULL date marks the record Missing.
func readInteractions(ctx context.Context, db *sql.DB, what, query string) ([]interaction.Record, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", what, err)
	}
	defer rows.Close()

	var records []interaction.Record
	for rows.Next() {
		var (
			ident sql.NullString
			date  sql.NullInt64
		)
		if err := rows.Scan(&ident, &date); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", what, err)
		}
		records = append(records, interaction.Record{
			Identifier: ident.String,
			Timestamp:  date.Int64,
			Missing:    !date.Valid,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", what, err)
	}
	return records, nil
}

// Ensure the repositories implement the interfaces.
var (
	_ secondary.CallLogSource    = (*CallLogRepository)(nil)
	_ secondary.MessageLogSource = (*MessageLogRepository)(nil)
)
