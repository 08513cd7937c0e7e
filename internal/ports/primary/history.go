package primary

import "context"

// DeletionHistoryService defines the primary port for reading past deletion batches.
type DeletionHistoryService interface {
	// ListBatches returns the most recent batches, newest first.
	ListBatches(ctx context.Context, limit int) ([]*DeletionBatch, error)

	// GetBatch returns every entry of one batch.
	GetBatch(ctx context.Context, batchID string) ([]*DeletionEntry, error)
}

// DeletionBatch summarizes one batch.
type DeletionBatch struct {
	BatchID   string
	Deleted   int
	Failed    int
	CreatedAt string
}

// DeletionEntry is one attempted deletion.
type DeletionEntry struct {
	ID          string
	BatchID     string
	ContactID   string
	LookupKey   string
	DisplayName string
	Outcome     string
	Reason      string
	CreatedAt   string
}
