package app

import (
	"context"

	"github.com/example/dormant/internal/ports/primary"
	"github.com/example/dormant/internal/ports/secondary"
)

// DeletionHistoryServiceImpl implements the DeletionHistoryService interface.
type DeletionHistoryServiceImpl struct {
	repo secondary.DeletionLogRepository
}

// NewDeletionHistoryService creates a new DeletionHistoryService.
func NewDeletionHistoryService(repo secondary.DeletionLogRepository) *DeletionHistoryServiceImpl {
	return &DeletionHistoryServiceImpl{repo: repo}
}

// ListBatches returns the most recent batches, newest first.
func (s *DeletionHistoryServiceImpl) ListBatches(ctx context.Context, limit int) ([]*primary.DeletionBatch, error) {
	records, err := s.repo.ListBatches(ctx, limit)
	if err != nil {
		return nil, err
	}

	batches := make([]*primary.DeletionBatch, len(records))
	for i, r := range records {
		batches[i] = &primary.DeletionBatch{
			BatchID:   r.BatchID,
			Deleted:   r.Deleted,
			Failed:    r.Failed,
			CreatedAt: r.CreatedAt,
		}
	}
	return batches, nil
}

// GetBatch returns every entry of one batch.
func (s *DeletionHistoryServiceImpl) GetBatch(ctx context.Context, batchID string) ([]*primary.DeletionEntry, error) {
	records, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	entries := make([]*primary.DeletionEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.DeletionEntry{
			ID:          r.ID,
			BatchID:     r.BatchID,
			ContactID:   r.ContactID,
			LookupKey:   r.LookupKey,
			DisplayName: r.DisplayName,
			Outcome:     r.Outcome,
			Reason:      r.Reason,
			CreatedAt:   r.CreatedAt,
		}
	}
	return entries, nil
}

// Ensure DeletionHistoryServiceImpl implements the interface.
var _ primary.DeletionHistoryService = (*DeletionHistoryServiceImpl)(nil)
