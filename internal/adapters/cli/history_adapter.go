package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/dormant/internal/ports/primary"
)

// HistoryAdapter renders the deletion log.
type HistoryAdapter struct {
	service primary.DeletionHistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.DeletionHistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List prints recent batches.
func (a *HistoryAdapter) List(ctx context.Context, limit int) error {
	batches, err := a.service.ListBatches(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list deletion history: %w", err)
	}

	if len(batches) == 0 {
		fmt.Fprintln(a.out, "No deletions recorded")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-36s %-24s %-8s %s\n", "BATCH", "STARTED", "DELETED", "FAILED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────")
	for _, b := range batches {
		fmt.Fprintf(a.out, "%-36s %-24s %-8d %d\n", b.BatchID, b.CreatedAt, b.Deleted, b.Failed)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show prints every entry of one batch.
func (a *HistoryAdapter) Show(ctx context.Context, batchID string) error {
	entries, err := a.service.GetBatch(ctx, batchID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nBatch: %s\n", batchID)
	fmt.Fprintf(a.out, "Started: %s\n\n", entries[0].CreatedAt)
	for _, e := range entries {
		mark := color.New(color.FgGreen).Sprint("✓")
		if e.Outcome != "deleted" {
			mark = color.New(color.FgRed).Sprint("✗")
		}
		name := e.DisplayName
		if name == "" {
			name = "(no name)"
		}
		fmt.Fprintf(a.out, "%s %s (%s)", mark, name, e.LookupKey)
		if e.Reason != "" {
			fmt.Fprintf(a.out, ": %s", e.Reason)
		}
		fmt.Fprintln(a.out)
	}
	fmt.Fprintln(a.out)
	return nil
}
