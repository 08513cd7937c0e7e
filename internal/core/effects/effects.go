// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

import "github.com/example/dormant/internal/core/roster"

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// DeleteContactEffect removes one contact from the contact store.
type DeleteContactEffect struct {
	BatchID string
	Contact roster.Contact
}

func (e DeleteContactEffect) EffectType() string { return "delete_contact" }

// RecordDeletionEffect appends one attempted deletion to the deletion log.
type RecordDeletionEffect struct {
	BatchID string
	Contact roster.Contact
	Outcome string // "deleted" or "failed"
	Reason  string
}

func (e RecordDeletionEffect) EffectType() string { return "record_deletion" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
