package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/dormant/internal/ports/secondary"
)

// timestampLayout is fixed-width so lexical order equals time order.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DeletionLogRepository implements secondary.DeletionLogRepository with SQLite.
type DeletionLogRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewDeletionLogRepository creates a new SQLite deletion log.
func NewDeletionLogRepository(db *sql.DB) *DeletionLogRepository {
	return &DeletionLogRepository{db: db, now: time.Now}
}

// Record appends one attempted deletion. ID and CreatedAt are filled in when empty.
func (r *DeletionLogRepository) Record(ctx context.Context, entry *secondary.DeletionLogRecord) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = r.now().UTC().Format(timestampLayout)
	}

	var reason sql.NullString
	if entry.Reason != "" {
		reason = sql.NullString{String: entry.Reason, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO deletion_log (id, batch_id, contact_id, lookup_key, display_name, outcome, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.BatchID, entry.ContactID, entry.LookupKey, entry.DisplayName, entry.Outcome, reason, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record deletion: %w", err)
	}
	return nil
}

// ListBatches returns batch summaries, newest first. limit <= 0 means all.
func (r *DeletionLogRepository) ListBatches(ctx context.Context, limit int) ([]*secondary.DeletionBatchRecord, error) {
	query := `
		SELECT batch_id,
		       SUM(CASE WHEN outcome = 'deleted' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN outcome = 'failed' THEN 1 ELSE 0 END),
		       MIN(created_at) AS started
		FROM deletion_log
		GROUP BY batch_id
		ORDER BY started DESC, batch_id ASC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deletion batches: %w", err)
	}
	defer rows.Close()

	var batches []*secondary.DeletionBatchRecord
	for rows.Next() {
		b := &secondary.DeletionBatchRecord{}
		if err := rows.Scan(&b.BatchID, &b.Deleted, &b.Failed, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deletion batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// GetBatch returns the entries of one batch in the order they were recorded.
func (r *DeletionLogRepository) GetBatch(ctx context.Context, batchID string) ([]*secondary.DeletionLogRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, batch_id, contact_id, lookup_key, display_name, outcome, reason, created_at
		 FROM deletion_log WHERE batch_id = ? ORDER BY created_at ASC, rowid ASC`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get deletion batch: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.DeletionLogRecord
	for rows.Next() {
		var reason sql.NullString
		e := &secondary.DeletionLogRecord{}
		if err := rows.Scan(&e.ID, &e.BatchID, &e.ContactID, &e.LookupKey, &e.DisplayName, &e.Outcome, &reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deletion entry: %w", err)
		}
		e.Reason = reason.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get deletion batch: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("deletion batch %s not found", batchID)
	}
	return entries, nil
}

// Ensure DeletionLogRepository implements the interface.
var _ secondary.DeletionLogRepository = (*DeletionLogRepository)(nil)
