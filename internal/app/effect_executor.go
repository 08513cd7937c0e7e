// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/example/dormant/internal/core/deletion"
	"github.com/example/dormant/internal/core/effects"
	"github.com/example/dormant/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	// Execute runs effects in sequence and stops at the first error.
	Execute(ctx context.Context, effs []effects.Effect) error

	// ExecuteDeletions runs delete effects with at most concurrency in flight.
	// Every effect yields an outcome at the same index; nothing aborts the batch.
	ExecuteDeletions(ctx context.Context, effs []effects.DeleteContactEffect, concurrency int) []deletion.Outcome
}

// DefaultEffectExecutor implements EffectExecutor with real I/O.
type DefaultEffectExecutor struct {
	sink        secondary.ContactSink
	deletionLog secondary.DeletionLogRepository
	logger      *logrus.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor with injected adapters.
func NewEffectExecutor(sink secondary.ContactSink, deletionLog secondary.DeletionLogRepository, logger *logrus.Logger) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		sink:        sink,
		deletionLog: deletionLog,
		logger:      logger,
	}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.DeleteContactEffect:
		return e.sink.Delete(ctx, typed.Contact)
	case effects.RecordDeletionEffect:
		return e.executeRecord(ctx, typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.executeLog(typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeRecord(ctx context.Context, eff effects.RecordDeletionEffect) error {
	return e.deletionLog.Record(ctx, &secondary.DeletionLogRecord{
		BatchID:     eff.BatchID,
		ContactID:   eff.Contact.ID,
		LookupKey:   eff.Contact.LookupKey,
		DisplayName: eff.Contact.DisplayName,
		Outcome:     eff.Outcome,
		Reason:      eff.Reason,
	})
}

func (e *DefaultEffectExecutor) executeLog(eff effects.LogEffect) {
	level, err := logrus.ParseLevel(eff.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	e.logger.WithFields(logrus.Fields(eff.Fields)).Log(level, eff.Message)
}

// ExecuteDeletions calls the sink once per effect. A panicking sink is
// recorded as a failure for that contact.
func (e *DefaultEffectExecutor) ExecuteDeletions(ctx context.Context, effs []effects.DeleteContactEffect, concurrency int) []deletion.Outcome {
	outcomes := make([]deletion.Outcome, len(effs))
	if concurrency < 1 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, eff := range effs {
		g.Go(func() error {
			outcomes[i] = e.deleteOne(ctx, eff)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (e *DefaultEffectExecutor) deleteOne(ctx context.Context, eff effects.DeleteContactEffect) (out deletion.Outcome) {
	out.Contact = eff.Contact
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("sink panicked: %v", r)
		}
	}()

	out.Err = e.sink.Delete(ctx, eff.Contact)
	if out.Err != nil {
		e.logger.WithFields(logrus.Fields{
			"batch_id":   eff.BatchID,
			"lookup_key": eff.Contact.LookupKey,
			"reason":     out.Err.Error(),
		}).Warn("contact deletion failed")
	}
	return out
}
