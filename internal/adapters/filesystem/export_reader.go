// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	jsonc "github.com/muhammadmuzzammil1998/jsonc"

	"github.com/example/dormant/internal/core/interaction"
	"github.com/example/dormant/internal/core/roster"
	"github.com/example/dormant/internal/ports/secondary"
	"github.com/example/dormant/internal/schemas"
)

// ExportReader implements secondary.ExportReader for JSONC export files.
type ExportReader struct{}

// NewExportReader creates a new filesystem export reader.
func NewExportReader() *ExportReader {
	return &ExportReader{}
}

type exportFile struct {
	ExportedAt string          `json:"exportedAt"`
	Contacts   []exportContact `json:"contacts"`
	Calls      []exportCall    `json:"calls"`
	Messages   []exportMessage `json:"messages"`
}

type exportContact struct {
	ID          string   `json:"id"`
	LookupKey   string   `json:"lookupKey"`
	DisplayName string   `json:"displayName"`
	Identifiers []string `json:"identifiers"`
}

type exportCall struct {
	Number *string `json:"number"`
	Date   *int64  `json:"date"`
}

type exportMessage struct {
	Address *string `json:"address"`
	Date    *int64  `json:"date"`
}

// Read parses and validates the export at path. Comments are allowed.
func (r *ExportReader) Read(ctx context.Context, path string) (*secondary.SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	data := jsonc.ToJSON(raw)
	if err := schemas.Validate(schemas.Export, data); err != nil {
		return nil, fmt.Errorf("invalid export %s: %w", path, err)
	}

	var file exportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}

	snapshot := &secondary.SnapshotRecord{
		Contacts: make([]roster.Contact, 0, len(file.Contacts)),
		Calls:    make([]interaction.Record, 0, len(file.Calls)),
		Messages: make([]interaction.Record, 0, len(file.Messages)),
	}
	for _, c := range file.Contacts {
		snapshot.Contacts = append(snapshot.Contacts, roster.Contact{
			ID:          c.ID,
			LookupKey:   c.LookupKey,
			DisplayName: c.DisplayName,
			Identifiers: c.Identifiers,
		})
	}
	for _, c := range file.Calls {
		snapshot.Calls = append(snapshot.Calls, toRecord(c.Number, c.Date))
	}
	for _, m := range file.Messages {
		snapshot.Messages = append(snapshot.Messages, toRecord(m.Address, m.Date))
	}
	return snapshot, nil
}

func toRecord(ident *string, date *int64) interaction.Record {
	rec := interaction.Record{Missing: date == nil}
	if ident != nil {
		rec.Identifier = *ident
	}
	if date != nil {
		rec.Timestamp = *date
	}
	return rec
}

// Ensure ExportReader implements the interface.
var _ secondary.ExportReader = (*ExportReader)(nil)
