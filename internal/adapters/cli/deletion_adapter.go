package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/dormant/internal/ports/primary"
)

// DeletionAdapter drives the deletion coordinator from CLI arguments.
type DeletionAdapter struct {
	coordinator primary.DeletionCoordinator
	out         io.Writer
}

// NewDeletionAdapter creates a new DeletionAdapter with the given coordinator.
func NewDeletionAdapter(coordinator primary.DeletionCoordinator, out io.Writer) *DeletionAdapter {
	return &DeletionAdapter{
		coordinator: coordinator,
		out:         out,
	}
}

// Select marks each lookup key for deletion. Keys already selected stay selected.
func (a *DeletionAdapter) Select(ctx context.Context, lookupKeys []string) error {
	for _, key := range lookupKeys {
		selected, err := a.coordinator.ToggleSelection(ctx, key)
		if err != nil {
			return err
		}
		if !selected {
			// Listed twice: toggle back on.
			if _, err := a.coordinator.ToggleSelection(ctx, key); err != nil {
				return err
			}
		}
	}
	return nil
}

// RequestDelete opens the confirmation step and lists what will be deleted.
// Returns the number of contacts awaiting confirmation, or 0 if nothing is pending.
func (a *DeletionAdapter) RequestDelete(ctx context.Context) int {
	if a.coordinator.RequestDelete(ctx) != primary.DeletionStateConfirming {
		fmt.Fprintln(a.out, "No contacts selected")
		return 0
	}

	selected := a.coordinator.Selected()
	fmt.Fprintf(a.out, "\nAbout to delete %d contact(s):\n", len(selected))
	for _, c := range selected {
		fmt.Fprintf(a.out, "  - %s (%s)\n", displayName(c), c.LookupKey)
	}
	fmt.Fprintln(a.out)
	return len(selected)
}

// Confirm runs the pending deletion and prints the summary.
func (a *DeletionAdapter) Confirm(ctx context.Context) (*primary.DeletionSummary, error) {
	summary, err := a.coordinator.Confirm(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete contacts: %w", err)
	}
	if summary == nil {
		fmt.Fprintln(a.out, "No deletion pending")
		return nil, nil
	}
	a.PrintSummary(summary)
	return summary, nil
}

// Cancel abandons the pending deletion. The selection is kept.
func (a *DeletionAdapter) Cancel(ctx context.Context) {
	a.coordinator.Cancel(ctx)
	fmt.Fprintln(a.out, "Aborted.")
}

// PrintSummary writes the outcome of a batch.
func (a *DeletionAdapter) PrintSummary(summary *primary.DeletionSummary) {
	fmt.Fprintf(a.out, "✓ Deleted %d contact(s) (batch %s)\n", summary.Succeeded, summary.BatchID)
	if len(summary.Failed) == 0 {
		return
	}

	fmt.Fprintf(a.out, "%s %d contact(s) could not be deleted:\n",
		color.New(color.FgRed).Sprint("✗"), len(summary.Failed))
	for _, f := range summary.Failed {
		fmt.Fprintf(a.out, "  - %s (%s): %s\n", displayName(f.Contact), f.Contact.LookupKey, f.Reason)
	}
}
