package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/dormant/internal/core/interaction"
	"github.com/example/dormant/internal/core/roster"
	"github.com/example/dormant/internal/ports/primary"
	"github.com/example/dormant/internal/ports/secondary"
)

// testNow is the fixed clock used across app tests.
var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// daysAgo returns epoch millis n days before testNow.
func daysAgo(n int) int64 {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour).UnixMilli()
}

// ============================================================================
// Sources
// ============================================================================

// Ensure mockRecordSource implements the interfaces
var (
	_ secondary.CallLogSource    = (*mockRecordSource)(nil)
	_ secondary.MessageLogSource = (*mockRecordSource)(nil)
)

// mockRecordSource implements the call and message sources for testing.
type mockRecordSource struct {
	records []interaction.Record
	err     error
	readFn  func(ctx context.Context) ([]interaction.Record, error)
}

func (m *mockRecordSource) ReadAll(ctx context.Context) ([]interaction.Record, error) {
	if m.readFn != nil {
		return m.readFn(ctx)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

var _ secondary.ContactRoster = (*mockRoster)(nil)

// mockRoster implements secondary.ContactRoster and secondary.ContactSink
// over an in-memory list, so deletions are visible to the next read.
type mockRoster struct {
	mu       sync.Mutex
	contacts []roster.Contact
	err      error
	reads    int
	deleteFn func(contact roster.Contact) error
	deleted  []string
}

func newMockRoster(contacts ...roster.Contact) *mockRoster {
	return &mockRoster{contacts: contacts}
}

func (m *mockRoster) ReadAll(ctx context.Context) ([]roster.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]roster.Contact, len(m.contacts))
	copy(out, m.contacts)
	return out, nil
}

func (m *mockRoster) Delete(ctx context.Context, contact roster.Contact) error {
	if m.deleteFn != nil {
		if err := m.deleteFn(contact); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.contacts {
		if c.ID == contact.ID && c.LookupKey == contact.LookupKey {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			m.deleted = append(m.deleted, contact.LookupKey)
			return nil
		}
	}
	return fmt.Errorf("contact %s not found", contact.LookupKey)
}

func (m *mockRoster) readCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

func (m *mockRoster) deletedKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

// ============================================================================
// Deletion log
// ============================================================================

var _ secondary.DeletionLogRepository = (*mockDeletionLog)(nil)

// mockDeletionLog implements secondary.DeletionLogRepository for testing.
type mockDeletionLog struct {
	mu        sync.Mutex
	records   []*secondary.DeletionLogRecord
	batches   []*secondary.DeletionBatchRecord
	recordErr error
	getErr    error
}

func (m *mockDeletionLog) Record(ctx context.Context, entry *secondary.DeletionLogRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, entry)
	return nil
}

func (m *mockDeletionLog) ListBatches(ctx context.Context, limit int) ([]*secondary.DeletionBatchRecord, error) {
	return m.batches, nil
}

func (m *mockDeletionLog) GetBatch(ctx context.Context, batchID string) ([]*secondary.DeletionLogRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var out []*secondary.DeletionLogRecord
	for _, r := range m.records {
		if r.BatchID == batchID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ============================================================================
// Import
// ============================================================================

var (
	_ secondary.ExportReader   = (*mockExportReader)(nil)
	_ secondary.SnapshotWriter = (*mockSnapshotWriter)(nil)
)

type mockExportReader struct {
	snapshot *secondary.SnapshotRecord
	err      error
}

func (m *mockExportReader) Read(ctx context.Context, path string) (*secondary.SnapshotRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

type mockSnapshotWriter struct {
	written *secondary.SnapshotRecord
	err     error
}

func (m *mockSnapshotWriter) ReplaceAll(ctx context.Context, snapshot *secondary.SnapshotRecord) error {
	if m.err != nil {
		return m.err
	}
	m.written = snapshot
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func classifiedKeys(contacts []*primary.ClassifiedContact) []string {
	keys := make([]string, len(contacts))
	for i, c := range contacts {
		keys[i] = c.LookupKey
	}
	return keys
}
