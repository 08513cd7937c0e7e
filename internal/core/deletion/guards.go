// Package deletion contains the pure business logic for the selection and
// batch-deletion state machine. Guards are pure functions that evaluate
// preconditions without side effects.
package deletion

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// State is the coordinator state.
type State string

const (
	StateIdle       State = "idle"
	StateConfirming State = "confirming"
	StateDeleting   State = "deleting"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// ToggleContext provides context for selection toggles.
type ToggleContext struct {
	State     State
	LookupKey string
	Known     bool // contact is in the currently loaded list
	Protected bool // contact matches a protect pattern
}

// RequestDeleteContext provides context for opening a confirmation.
type RequestDeleteContext struct {
	State         State
	SelectedCount int
}

// TransitionContext provides context for confirm/cancel.
type TransitionContext struct {
	State State
}

// CanToggle evaluates whether a contact's selection can be flipped.
// Rules:
// - Coordinator must be idle
// - Contact must be in the current result list
// - Contact must not be protected
func CanToggle(ctx ToggleContext) GuardResult {
	if ctx.State != StateIdle {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("selection is locked while %s", ctx.State),
		}
	}

	if !ctx.Known {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("contact %s is not in the current list", ctx.LookupKey),
		}
	}

	if ctx.Protected {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("contact %s is protected and cannot be selected", ctx.LookupKey),
		}
	}

	return GuardResult{Allowed: true}
}

// CanRequestDelete evaluates whether Idle -> Confirming is allowed.
// Rules:
// - Coordinator must be idle
// - At least one contact must be selected
func CanRequestDelete(ctx RequestDeleteContext) GuardResult {
	if ctx.State != StateIdle {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only request deletion when idle (current state: %s)", ctx.State),
		}
	}

	if ctx.SelectedCount == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "no contacts selected",
		}
	}

	return GuardResult{Allowed: true}
}

// CanConfirm evaluates whether Confirming -> Deleting is allowed.
func CanConfirm(ctx TransitionContext) GuardResult {
	if ctx.State != StateConfirming {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only confirm a pending deletion (current state: %s)", ctx.State),
		}
	}

	return GuardResult{Allowed: true}
}

// CanCancel evaluates whether Confirming -> Idle is allowed.
func CanCancel(ctx TransitionContext) GuardResult {
	if ctx.State != StateConfirming {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only cancel a pending deletion (current state: %s)", ctx.State),
		}
	}

	return GuardResult{Allowed: true}
}

// IsProtected reports whether a contact's display name or lookup key matches
// any protect pattern. Invalid patterns never match.
func IsProtected(patterns []string, displayName, lookupKey string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if ok, err := doublestar.Match(p, displayName); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(p, lookupKey); err == nil && ok {
			return true
		}
	}
	return false
}
