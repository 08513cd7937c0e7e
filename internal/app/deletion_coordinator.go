package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	coredeletion "github.com/example/dormant/internal/core/deletion"
	"github.com/example/dormant/internal/ctxutil"
	"github.com/example/dormant/internal/core/roster"
	"github.com/example/dormant/internal/ports/primary"
)

// DeletionCoordinatorConfig holds the coordinator's tunables.
type DeletionCoordinatorConfig struct {
	Protect     []string // doublestar globs over display name and lookup key
	Concurrency int      // max deletions in flight
}

// DeletionCoordinatorImpl implements the DeletionCoordinator interface.
type DeletionCoordinatorImpl struct {
	executor EffectExecutor
	cfg      DeletionCoordinatorConfig
	logger   *logrus.Logger
	newID    func() string

	mu        sync.Mutex
	state     coredeletion.State
	contacts  []*primary.ClassifiedContact
	selected  map[string]bool
	recompute func(ctx context.Context)
}

// NewDeletionCoordinator creates a new coordinator in the idle state.
func NewDeletionCoordinator(executor EffectExecutor, cfg DeletionCoordinatorConfig, logger *logrus.Logger) *DeletionCoordinatorImpl {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &DeletionCoordinatorImpl{
		executor: executor,
		cfg:      cfg,
		logger:   logger,
		newID:    uuid.NewString,
		state:    coredeletion.StateIdle,
		selected: make(map[string]bool),
	}
}

// OnRecomputeRequested registers the hook fired once after every finished batch.
func (c *DeletionCoordinatorImpl) OnRecomputeRequested(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recompute = fn
}

// Load installs a freshly computed result list and clears the selection.
func (c *DeletionCoordinatorImpl) Load(contacts []*primary.ClassifiedContact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == coredeletion.StateDeleting {
		return
	}
	c.contacts = contacts
	c.selected = make(map[string]bool)
}

// ToggleSelection flips selection of the contact with the given lookup key.
func (c *DeletionCoordinatorImpl) ToggleSelection(ctx context.Context, lookupKey string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != coredeletion.StateIdle {
		return c.selected[lookupKey], nil
	}

	contact := c.findLocked(lookupKey)
	guardCtx := coredeletion.ToggleContext{
		State:     c.state,
		LookupKey: lookupKey,
		Known:     contact != nil,
	}
	if contact != nil {
		guardCtx.Protected = coredeletion.IsProtected(c.cfg.Protect, contact.DisplayName, contact.LookupKey)
	}
	if result := coredeletion.CanToggle(guardCtx); !result.Allowed {
		return false, result.Error()
	}

	if c.selected[lookupKey] {
		delete(c.selected, lookupKey)
		return false, nil
	}
	c.selected[lookupKey] = true
	return true, nil
}

// RequestDelete moves Idle -> Confirming when the selection is non-empty.
func (c *DeletionCoordinatorImpl) RequestDelete(ctx context.Context) primary.DeletionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := coredeletion.CanRequestDelete(coredeletion.RequestDeleteContext{
		State:         c.state,
		SelectedCount: len(c.selected),
	})
	if result.Allowed {
		c.state = coredeletion.StateConfirming
	}
	return primary.DeletionState(c.state)
}

// Cancel moves Confirming -> Idle. The selection is kept.
func (c *DeletionCoordinatorImpl) Cancel(ctx context.Context) primary.DeletionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if coredeletion.CanCancel(coredeletion.TransitionContext{State: c.state}).Allowed {
		c.state = coredeletion.StateIdle
	}
	return primary.DeletionState(c.state)
}

// Confirm deletes every selected contact. Returns (nil, nil) when no
// deletion is pending.
func (c *DeletionCoordinatorImpl) Confirm(ctx context.Context) (*primary.DeletionSummary, error) {
	c.mu.Lock()
	if !coredeletion.CanConfirm(coredeletion.TransitionContext{State: c.state}).Allowed {
		c.mu.Unlock()
		return nil, nil
	}
	c.state = coredeletion.StateDeleting
	batch := c.selectedLocked()
	c.mu.Unlock()

	batchID := c.newID()
	ctx = ctxutil.WithBatchID(ctx, batchID)
	contacts := make([]roster.Contact, len(batch))
	for i, cc := range batch {
		contacts[i] = toRosterContact(cc)
	}

	c.logger.WithFields(logrus.Fields{
		"batch_id": batchID,
		"count":    len(contacts),
	}).Info("deleting contacts")

	outcomes := c.executor.ExecuteDeletions(ctx, coredeletion.PlanBatch(batchID, contacts), c.cfg.Concurrency)

	summary := &primary.DeletionSummary{BatchID: batchID}
	for i, o := range outcomes {
		if o.Err == nil {
			summary.Succeeded++
			continue
		}
		summary.Failed = append(summary.Failed, primary.DeletionFailure{
			Contact: batch[i],
			Reason:  o.Reason(),
		})
	}

	c.mu.Lock()
	c.selected = make(map[string]bool)
	c.state = coredeletion.StateIdle
	hook := c.recompute
	c.mu.Unlock()

	// The audit trail is best effort; the contacts are already gone.
	if err := c.executor.Execute(ctx, coredeletion.PlanAudit(batchID, outcomes)); err != nil {
		c.logger.WithError(err).WithField("batch_id", batchID).Error("failed to record deletion batch")
	}

	if hook != nil {
		hook(ctx)
	}
	return summary, nil
}

// State returns the current state.
func (c *DeletionCoordinatorImpl) State() primary.DeletionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return primary.DeletionState(c.state)
}

// Selected returns the selected contacts in list order.
func (c *DeletionCoordinatorImpl) Selected() []*primary.ClassifiedContact {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedLocked()
}

func (c *DeletionCoordinatorImpl) selectedLocked() []*primary.ClassifiedContact {
	var out []*primary.ClassifiedContact
	for _, cc := range c.contacts {
		if c.selected[cc.LookupKey] {
			out = append(out, cc)
		}
	}
	return out
}

func (c *DeletionCoordinatorImpl) findLocked(lookupKey string) *primary.ClassifiedContact {
	for _, cc := range c.contacts {
		if cc.LookupKey == lookupKey {
			return cc
		}
	}
	return nil
}

func toRosterContact(cc *primary.ClassifiedContact) roster.Contact {
	return roster.Contact{
		ID:          cc.ID,
		LookupKey:   cc.LookupKey,
		DisplayName: cc.DisplayName,
		Identifiers: cc.Identifiers,
	}
}

// Ensure DeletionCoordinatorImpl implements the interface.
var _ primary.DeletionCoordinator = (*DeletionCoordinatorImpl)(nil)
