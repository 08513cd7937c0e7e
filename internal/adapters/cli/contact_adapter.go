// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/dormant/internal/ports/primary"
)

// ContactAdapter renders pipeline results for the scan and prune commands.
type ContactAdapter struct {
	session primary.ReviewSession
	out     io.Writer
	loc     *time.Location
}

// NewContactAdapter creates a new ContactAdapter with the given session.
func NewContactAdapter(session primary.ReviewSession, out io.Writer) *ContactAdapter {
	return &ContactAdapter{
		session: session,
		out:     out,
		loc:     time.Local,
	}
}

// Scan recomputes the result list and prints it. Only stale contacts are
// shown unless all is set.
func (a *ContactAdapter) Scan(ctx context.Context, all, asJSON bool) error {
	contacts, err := a.session.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan contacts: %w", err)
	}

	if asJSON {
		return a.PrintJSON(filterContacts(contacts, all))
	}
	a.PrintContacts(contacts, all)
	return nil
}

// PrintContacts writes the contact table followed by a summary line.
func (a *ContactAdapter) PrintContacts(contacts []*primary.ClassifiedContact, all bool) {
	shown := filterContacts(contacts, all)
	if len(shown) == 0 {
		if all {
			fmt.Fprintln(a.out, "No contacts found")
		} else {
			fmt.Fprintln(a.out, "No stale contacts found")
		}
		a.printSummary(contacts)
		return
	}

	fmt.Fprintf(a.out, "\n%-7s %-24s %-20s %-12s %s\n", "STATUS", "NAME", "LOOKUP KEY", "LAST SEEN", "IDLE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────")
	for _, c := range shown {
		fmt.Fprintf(a.out, "%s %-24s %-20s %-12s %s\n",
			statusMarker(c), truncate(displayName(c), 24), truncate(c.LookupKey, 20), a.lastSeen(c), idle(c))
	}
	fmt.Fprintln(a.out)
	a.printSummary(contacts)
}

// PrintJSON writes contacts as an indented JSON array.
func (a *ContactAdapter) PrintJSON(contacts []*primary.ClassifiedContact) error {
	type row struct {
		ID              string   `json:"id"`
		LookupKey       string   `json:"lookupKey"`
		DisplayName     string   `json:"displayName"`
		Identifiers     []string `json:"identifiers"`
		LastInteraction *int64   `json:"lastInteraction"`
		IdleDays        int      `json:"idleDays"`
		Stale           bool     `json:"stale"`
	}

	rows := make([]row, len(contacts))
	for i, c := range contacts {
		rows[i] = row{
			ID:          c.ID,
			LookupKey:   c.LookupKey,
			DisplayName: c.DisplayName,
			Identifiers: c.Identifiers,
			IdleDays:    c.IdleDays,
			Stale:       c.IsStale,
		}
		if c.HasInteraction {
			last := c.LastInteraction
			rows[i].LastInteraction = &last
		}
		if rows[i].Identifiers == nil {
			rows[i].Identifiers = []string{}
		}
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	return nil
}

func (a *ContactAdapter) printSummary(contacts []*primary.ClassifiedContact) {
	var stale, never int
	for _, c := range contacts {
		if c.IsStale {
			stale++
		}
		if !c.HasInteraction {
			never++
		}
	}
	fmt.Fprintf(a.out, "%d contacts: %d stale (%d never contacted), %d active\n",
		len(contacts), stale, never, len(contacts)-stale)
}

func (a *ContactAdapter) lastSeen(c *primary.ClassifiedContact) string {
	if !c.HasInteraction {
		return "never"
	}
	return time.UnixMilli(c.LastInteraction).In(a.loc).Format("2006-01-02")
}

func filterContacts(contacts []*primary.ClassifiedContact, all bool) []*primary.ClassifiedContact {
	if all {
		return contacts
	}
	var stale []*primary.ClassifiedContact
	for _, c := range contacts {
		if c.IsStale {
			stale = append(stale, c)
		}
	}
	return stale
}

func statusMarker(c *primary.ClassifiedContact) string {
	if c.IsStale {
		return color.New(color.FgYellow).Sprint("STALE  ")
	}
	return color.New(color.FgGreen).Sprint("ACTIVE ")
}

func displayName(c *primary.ClassifiedContact) string {
	if c.DisplayName == "" {
		return "(no name)"
	}
	return c.DisplayName
}

func idle(c *primary.ClassifiedContact) string {
	if !c.HasInteraction {
		return "Never contacted"
	}
	if c.IdleDays == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", c.IdleDays)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
