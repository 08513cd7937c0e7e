// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces the CLI and other hosts call into.
package primary

import "context"

// PipelineService defines the primary port for the staleness pipeline.
type PipelineService interface {
	// RunPipeline reads all sources, merges, joins and classifies.
	// A cancelled context yields (nil, ctx.Err()) and nothing is published.
	RunPipeline(ctx context.Context) ([]*ClassifiedContact, error)

	// RunInBackground runs the pipeline on its own goroutine and delivers
	// exactly one result before closing the channel.
	RunInBackground(ctx context.Context) <-chan PipelineResult
}

// PipelineResult is the outcome of a background run: either Contacts or Err.
type PipelineResult struct {
	Contacts []*ClassifiedContact
	Err      error
}

// ClassifiedContact represents a classified contact at the port boundary.
type ClassifiedContact struct {
	ID              string
	LookupKey       string
	DisplayName     string
	Identifiers     []string
	LastInteraction int64 // epoch millis, meaningful only if HasInteraction
	HasInteraction  bool
	IsStale         bool
	IdleDays        int
}
