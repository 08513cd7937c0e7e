package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/example/dormant/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

// mockReviewSession implements primary.ReviewSession for testing
type mockReviewSession struct {
	refreshFn   func(ctx context.Context) ([]*primary.ClassifiedContact, error)
	contacts    []*primary.ClassifiedContact
	coordinator primary.DeletionCoordinator
}

func (m *mockReviewSession) Refresh(ctx context.Context) ([]*primary.ClassifiedContact, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx)
	}
	return m.contacts, nil
}

func (m *mockReviewSession) Contacts() []*primary.ClassifiedContact {
	return m.contacts
}

func (m *mockReviewSession) Coordinator() primary.DeletionCoordinator {
	return m.coordinator
}

// mockCoordinator implements primary.DeletionCoordinator for testing
type mockCoordinator struct {
	toggleFn  func(ctx context.Context, lookupKey string) (bool, error)
	confirmFn func(ctx context.Context) (*primary.DeletionSummary, error)
	state     primary.DeletionState
	selected  []*primary.ClassifiedContact
	toggled   []string
	cancelled bool
}

func (m *mockCoordinator) Load(contacts []*primary.ClassifiedContact) {}

func (m *mockCoordinator) ToggleSelection(ctx context.Context, lookupKey string) (bool, error) {
	m.toggled = append(m.toggled, lookupKey)
	if m.toggleFn != nil {
		return m.toggleFn(ctx, lookupKey)
	}
	return true, nil
}

func (m *mockCoordinator) RequestDelete(ctx context.Context) primary.DeletionState {
	if len(m.selected) > 0 {
		m.state = primary.DeletionStateConfirming
	}
	return m.state
}

func (m *mockCoordinator) Confirm(ctx context.Context) (*primary.DeletionSummary, error) {
	if m.confirmFn != nil {
		return m.confirmFn(ctx)
	}
	return nil, nil
}

func (m *mockCoordinator) Cancel(ctx context.Context) primary.DeletionState {
	m.cancelled = true
	m.state = primary.DeletionStateIdle
	return m.state
}

func (m *mockCoordinator) State() primary.DeletionState {
	return m.state
}

func (m *mockCoordinator) Selected() []*primary.ClassifiedContact {
	return m.selected
}

// mockHistoryService implements primary.DeletionHistoryService for testing
type mockHistoryService struct {
	listBatchesFn func(ctx context.Context, limit int) ([]*primary.DeletionBatch, error)
	getBatchFn    func(ctx context.Context, batchID string) ([]*primary.DeletionEntry, error)
}

func (m *mockHistoryService) ListBatches(ctx context.Context, limit int) ([]*primary.DeletionBatch, error) {
	if m.listBatchesFn != nil {
		return m.listBatchesFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockHistoryService) GetBatch(ctx context.Context, batchID string) ([]*primary.DeletionEntry, error) {
	if m.getBatchFn != nil {
		return m.getBatchFn(ctx, batchID)
	}
	return nil, nil
}

// mockImportService implements primary.ImportService for testing
type mockImportService struct {
	importFn func(ctx context.Context, path string) (*primary.ImportResult, error)
}

func (m *mockImportService) Import(ctx context.Context, path string) (*primary.ImportResult, error) {
	if m.importFn != nil {
		return m.importFn(ctx, path)
	}
	return &primary.ImportResult{}, nil
}
