package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/dormant/internal/core/interaction"
	"github.com/example/dormant/internal/core/roster"
	"github.com/example/dormant/internal/logging"
	"github.com/example/dormant/internal/ports/primary"
)

func newTestSession(contacts *mockRoster, calls *mockRecordSource) (*ReviewSessionImpl, *mockDeletionLog) {
	pipeline := newTestPipeline(calls, &mockRecordSource{}, contacts)
	log := &mockDeletionLog{}
	coord := NewDeletionCoordinator(NewEffectExecutor(contacts, log, logging.Discard()), DeletionCoordinatorConfig{Concurrency: 2}, logging.Discard())
	return NewReviewSession(pipeline, coord, logging.Discard()), log
}

func TestReviewSession_Refresh(t *testing.T) {
	contacts := newMockRoster(
		roster.Contact{ID: "1", LookupKey: "a", Identifiers: []string{"1"}},
		roster.Contact{ID: "2", LookupKey: "b"},
	)
	session, _ := newTestSession(contacts, &mockRecordSource{records: []interaction.Record{
		{Identifier: "1", Timestamp: daysAgo(1)},
	}})

	result, err := session.Refresh(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 2 || len(session.Contacts()) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(result))
	}

	// Refresh loads the coordinator, so contacts from the list can be selected.
	if _, err := session.Coordinator().ToggleSelection(context.Background(), "b"); err != nil {
		t.Errorf("expected loaded contact to be selectable: %v", err)
	}
}

func TestReviewSession_RecomputesAfterDeletion(t *testing.T) {
	contacts := newMockRoster(
		roster.Contact{ID: "1", LookupKey: "a"},
		roster.Contact{ID: "2", LookupKey: "b"},
		roster.Contact{ID: "3", LookupKey: "c"},
	)
	session, _ := newTestSession(contacts, &mockRecordSource{})
	ctx := context.Background()

	if _, err := session.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	readsBefore := contacts.readCount()

	coord := session.Coordinator()
	coord.ToggleSelection(ctx, "a")
	coord.ToggleSelection(ctx, "b")
	if coord.RequestDelete(ctx) != primary.DeletionStateConfirming {
		t.Fatal("expected confirming")
	}
	if _, err := coord.Confirm(ctx); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	if got := contacts.readCount() - readsBefore; got != 1 {
		t.Errorf("roster re-read %d times, want 1", got)
	}
	if got := classifiedKeys(session.Contacts()); !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("contacts after recompute = %v, want [c]", got)
	}
}

func TestReviewSession_RefreshError(t *testing.T) {
	session, _ := newTestSession(newMockRoster(), &mockRecordSource{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := session.Refresh(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if session.Contacts() != nil {
		t.Error("failed refresh must not publish contacts")
	}
}
