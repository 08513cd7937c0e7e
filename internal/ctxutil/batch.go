// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// BatchKey is the context key for the deletion batch ID.
type BatchKey struct{}

// WithBatchID returns a context carrying the deletion batch ID.
func WithBatchID(ctx context.Context, batchID string) context.Context {
	return context.WithValue(ctx, BatchKey{}, batchID)
}

// BatchIDFromContext returns the deletion batch ID from context, or empty string if not set.
func BatchIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(BatchKey{}).(string); ok {
		return v
	}
	return ""
}
