package primary

import "context"

// ReviewSession defines the primary port for the host loop: it runs the
// pipeline, feeds the coordinator and reruns on recompute requests.
type ReviewSession interface {
	// Refresh recomputes the result list and loads it into the coordinator.
	Refresh(ctx context.Context) ([]*ClassifiedContact, error)

	// Contacts returns the most recently loaded result list.
	Contacts() []*ClassifiedContact

	// Coordinator returns the session's deletion coordinator.
	Coordinator() DeletionCoordinator
}
