package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/dormant/internal/ports/primary"
)

// ImportAdapter runs imports and reports counts.
type ImportAdapter struct {
	service primary.ImportService
	out     io.Writer
}

// NewImportAdapter creates a new ImportAdapter with the given service.
func NewImportAdapter(service primary.ImportService, out io.Writer) *ImportAdapter {
	return &ImportAdapter{
		service: service,
		out:     out,
	}
}

// Import loads the export at path into the snapshot.
func (a *ImportAdapter) Import(ctx context.Context, path string) error {
	result, err := a.service.Import(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Imported %d contacts (%d identifiers), %d calls, %d messages\n",
		result.Contacts, result.Identifiers, result.Calls, result.Messages)
	return nil
}
