// Package roster joins a contact roster against an interaction index.
package roster

import (
	"github.com/example/dormant/internal/core/identifier"
	"github.com/example/dormant/internal/core/interaction"
)

// Contact is a roster entry. One contact may own several identifiers.
type Contact struct {
	ID          string // opaque, stable within a run
	LookupKey   string // stable across runs
	DisplayName string
	Identifiers []string
}

// Joined is a contact paired with its most recent interaction, if any.
type Joined struct {
	Contact         Contact
	LastInteraction int64
	HasInteraction  bool
}

// Join resolves each contact's last interaction as the maximum timestamp over
// all of its identifiers. Output order equals roster order.
func Join(contacts []Contact, idx interaction.Index) []Joined {
	out := make([]Joined, 0, len(contacts))
	for _, c := range contacts {
		j := Joined{Contact: c}
		for _, key := range identifier.NormalizeAll(c.Identifiers) {
			ts, ok := idx.Lookup(key)
			if !ok {
				continue
			}
			if !j.HasInteraction || ts > j.LastInteraction {
				j.LastInteraction = ts
				j.HasInteraction = true
			}
		}
		out = append(out, j)
	}
	return out
}
