package primary

import "context"

// DeletionState is the coordinator state at the port boundary.
type DeletionState string

const (
	DeletionStateIdle       DeletionState = "idle"
	DeletionStateConfirming DeletionState = "confirming"
	DeletionStateDeleting   DeletionState = "deleting"
)

// DeletionCoordinator defines the primary port for selection and batch deletion.
// Calls made in the wrong state are no-ops.
type DeletionCoordinator interface {
	// Load installs a freshly computed result list and clears the selection.
	Load(contacts []*ClassifiedContact)

	// ToggleSelection flips selection of the contact with the given lookup key.
	ToggleSelection(ctx context.Context, lookupKey string) (selected bool, err error)

	// RequestDelete moves Idle -> Confirming when the selection is non-empty.
	RequestDelete(ctx context.Context) DeletionState

	// Confirm deletes every selected contact and returns a summary.
	// Returns (nil, nil) when no deletion is pending.
	Confirm(ctx context.Context) (*DeletionSummary, error)

	// Cancel moves Confirming -> Idle, keeping the selection.
	Cancel(ctx context.Context) DeletionState

	// State returns the current state.
	State() DeletionState

	// Selected returns the selected contacts in list order.
	Selected() []*ClassifiedContact
}

// DeletionSummary reports a finished batch.
type DeletionSummary struct {
	BatchID   string
	Succeeded int
	Failed    []DeletionFailure
}

// DeletionFailure is one contact the sink could not delete.
type DeletionFailure struct {
	Contact *ClassifiedContact
	Reason  string
}
