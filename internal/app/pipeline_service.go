package app

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/example/dormant/internal/core/interaction"
	"github.com/example/dormant/internal/core/roster"
	"github.com/example/dormant/internal/core/staleness"
	"github.com/example/dormant/internal/ports/primary"
	"github.com/example/dormant/internal/ports/secondary"
)

// PipelineServiceImpl implements the PipelineService interface.
type PipelineServiceImpl struct {
	calls    secondary.CallLogSource
	messages secondary.MessageLogSource
	contacts secondary.ContactRoster
	window   staleness.Window
	now      func() time.Time
	logger   *logrus.Logger

	mu sync.Mutex // serializes runs
}

// NewPipelineService creates a new PipelineService with injected sources.
func NewPipelineService(
	calls secondary.CallLogSource,
	messages secondary.MessageLogSource,
	contacts secondary.ContactRoster,
	window staleness.Window,
	logger *logrus.Logger,
) *PipelineServiceImpl {
	return &PipelineServiceImpl{
		calls:    calls,
		messages: messages,
		contacts: contacts,
		window:   window,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock replaces the wall clock. Used by tests.
func (s *PipelineServiceImpl) WithClock(now func() time.Time) *PipelineServiceImpl {
	s.now = now
	return s
}

// RunPipeline reads all sources, merges, joins and classifies.
func (s *PipelineServiceImpl) RunPipeline(ctx context.Context) ([]*primary.ClassifiedContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()

	var (
		calls    []interaction.Record
		messages []interaction.Record
		contacts []roster.Contact
	)

	// Sources never fail the run: an unreadable source counts as empty.
	var g errgroup.Group
	g.Go(func() error {
		calls = s.readSource(ctx, "calls", s.calls.ReadAll)
		return nil
	})
	g.Go(func() error {
		messages = s.readSource(ctx, "messages", s.messages.ReadAll)
		return nil
	})
	g.Go(func() error {
		var err error
		contacts, err = s.contacts.ReadAll(ctx)
		if err != nil {
			s.logger.WithError(err).WithField("source", "contacts").Warn("source unreadable, treating as empty")
			contacts = nil
		}
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, stats := interaction.MergeWithStats(calls, messages)
	joined := roster.Join(contacts, idx)

	now := s.now()
	classified := staleness.Classify(joined, s.window.Cutoff(now), now.UnixMilli())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := staleness.Summarize(classified)
	s.logger.WithFields(logrus.Fields{
		"calls":       len(calls),
		"messages":    len(messages),
		"skipped":     stats.Skipped,
		"identifiers": stats.Identifiers,
		"contacts":    summary.Total,
		"stale":       summary.Stale,
		"window":      s.window.String(),
		"duration":    time.Since(started),
	}).Debug("pipeline finished")

	return toClassifiedContacts(classified), nil
}

// RunInBackground runs the pipeline on its own goroutine.
func (s *PipelineServiceImpl) RunInBackground(ctx context.Context) <-chan primary.PipelineResult {
	out := make(chan primary.PipelineResult, 1)
	go func() {
		defer close(out)
		contacts, err := s.RunPipeline(ctx)
		out <- primary.PipelineResult{Contacts: contacts, Err: err}
	}()
	return out
}

func (s *PipelineServiceImpl) readSource(
	ctx context.Context,
	name string,
	read func(context.Context) ([]interaction.Record, error),
) []interaction.Record {
	records, err := read(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("source", name).Warn("source unreadable, treating as empty")
		return nil
	}
	return records
}

func toClassifiedContacts(classified []staleness.Classified) []*primary.ClassifiedContact {
	out := make([]*primary.ClassifiedContact, len(classified))
	for i, c := range classified {
		out[i] = &primary.ClassifiedContact{
			ID:              c.Contact.ID,
			LookupKey:       c.Contact.LookupKey,
			DisplayName:     c.Contact.DisplayName,
			Identifiers:     c.Contact.Identifiers,
			LastInteraction: c.LastInteraction,
			HasInteraction:  c.HasInteraction,
			IsStale:         c.IsStale,
			IdleDays:        c.IdleDays,
		}
	}
	return out
}

// Ensure PipelineServiceImpl implements the interface.
var _ primary.PipelineService = (*PipelineServiceImpl)(nil)
