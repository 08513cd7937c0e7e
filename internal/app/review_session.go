package app

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/example/dormant/internal/ports/primary"
)

// ReviewSessionImpl implements the ReviewSession interface. It is the
// consumer of the coordinator's recompute requests.
type ReviewSessionImpl struct {
	pipeline    primary.PipelineService
	coordinator *DeletionCoordinatorImpl
	logger      *logrus.Logger

	mu       sync.Mutex
	contacts []*primary.ClassifiedContact
}

// NewReviewSession creates a session and subscribes it to recompute requests.
func NewReviewSession(pipeline primary.PipelineService, coordinator *DeletionCoordinatorImpl, logger *logrus.Logger) *ReviewSessionImpl {
	s := &ReviewSessionImpl{
		pipeline:    pipeline,
		coordinator: coordinator,
		logger:      logger,
	}
	coordinator.OnRecomputeRequested(func(ctx context.Context) {
		if _, err := s.Refresh(ctx); err != nil {
			logger.WithError(err).Warn("failed to recompute after deletion")
		}
	})
	return s
}

// Refresh recomputes the result list and loads it into the coordinator.
func (s *ReviewSessionImpl) Refresh(ctx context.Context) ([]*primary.ClassifiedContact, error) {
	contacts, err := s.pipeline.RunPipeline(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.contacts = contacts
	s.mu.Unlock()

	s.coordinator.Load(contacts)
	return contacts, nil
}

// Contacts returns the most recently loaded result list.
func (s *ReviewSessionImpl) Contacts() []*primary.ClassifiedContact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contacts
}

// Coordinator returns the session's deletion coordinator.
func (s *ReviewSessionImpl) Coordinator() primary.DeletionCoordinator {
	return s.coordinator
}

// Ensure ReviewSessionImpl implements the interface.
var _ primary.ReviewSession = (*ReviewSessionImpl)(nil)
