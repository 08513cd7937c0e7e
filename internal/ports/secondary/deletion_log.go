package secondary

import "context"

// DeletionLogRepository defines the secondary port for the deletion audit log.
type DeletionLogRepository interface {
	// Record appends one attempted deletion.
	Record(ctx context.Context, entry *DeletionLogRecord) error

	// ListBatches returns batch summaries, newest first. limit <= 0 means all.
	ListBatches(ctx context.Context, limit int) ([]*DeletionBatchRecord, error)

	// GetBatch returns the entries of one batch.
	GetBatch(ctx context.Context, batchID string) ([]*DeletionLogRecord, error)
}

// DeletionLogRecord represents one deletion attempt as stored in persistence.
type DeletionLogRecord struct {
	ID          string
	BatchID     string
	ContactID   string
	LookupKey   string
	DisplayName string
	Outcome     string
	Reason      string
	CreatedAt   string
}

// DeletionBatchRecord aggregates the entries of one batch.
type DeletionBatchRecord struct {
	BatchID   string
	Deleted   int
	Failed    int
	CreatedAt string
}
