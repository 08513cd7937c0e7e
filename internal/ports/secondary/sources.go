// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/dormant/internal/core/interaction"
	"github.com/example/dormant/internal/core/roster"
)

// CallLogSource reads the call history.
// Identifier is the counterpart number, Timestamp the call time.
type CallLogSource interface {
	ReadAll(ctx context.Context) ([]interaction.Record, error)
}

// MessageLogSource reads the message history.
// Identifier is the counterpart address, Timestamp the message time.
type MessageLogSource interface {
	ReadAll(ctx context.Context) ([]interaction.Record, error)
}

// ContactRoster reads the contact list.
type ContactRoster interface {
	ReadAll(ctx context.Context) ([]roster.Contact, error)
}

// ContactSink removes contacts from the contact store.
// A non-nil error is a failure whose message is the reason.
type ContactSink interface {
	Delete(ctx context.Context, contact roster.Contact) error
}

// SnapshotWriter replaces the whole snapshot in one step.
type SnapshotWriter interface {
	ReplaceAll(ctx context.Context, snapshot *SnapshotRecord) error
}

// SnapshotRecord is a point-in-time copy of all three data sets.
type SnapshotRecord struct {
	Contacts []roster.Contact
	Calls    []interaction.Record
	Messages []interaction.Record
}

// ExportReader loads a device export into a snapshot record.
type ExportReader interface {
	Read(ctx context.Context, path string) (*SnapshotRecord, error)
}
