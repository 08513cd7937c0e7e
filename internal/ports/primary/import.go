package primary

import "context"

// ImportService defines the primary port for loading export files into the snapshot.
type ImportService interface {
	// Import replaces the snapshot contents with the given JSONC export file.
	Import(ctx context.Context, path string) (*ImportResult, error)
}

// ImportResult counts what an import wrote.
type ImportResult struct {
	Contacts    int
	Identifiers int
	Calls       int
	Messages    int
}
