package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.jsonc")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	return path
}

func TestExportReader_Read(t *testing.T) {
	path := writeExport(t, `{
  // exported from the phone
  "exportedAt": "2026-10-01T00:00:00Z",
  "contacts": [
    {"id": "1", "lookupKey": "lk-1", "displayName": "Alice", "identifiers": ["555-0001"]},
    {"id": "2", "lookupKey": "lk-2"}
  ],
  "calls": [
    {"number": "555-0001", "date": 1000},
    {"number": null, "date": 2000},
    {"number": "555-0001", "date": null}
  ],
  "messages": [
    {"address": "+1 555 0001", "date": 3000}
  ]
}`)

	snapshot, err := NewExportReader().Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(snapshot.Contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(snapshot.Contacts))
	}
	if snapshot.Contacts[0].DisplayName != "Alice" || len(snapshot.Contacts[0].Identifiers) != 1 {
		t.Errorf("unexpected contact %+v", snapshot.Contacts[0])
	}
	if snapshot.Contacts[1].Identifiers != nil {
		t.Errorf("expected no identifiers, got %v", snapshot.Contacts[1].Identifiers)
	}

	if len(snapshot.Calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(snapshot.Calls))
	}
	if c := snapshot.Calls[1]; c.Identifier != "" || c.Timestamp != 2000 || c.Missing {
		t.Errorf("null number should map to empty identifier, got %+v", c)
	}
	if c := snapshot.Calls[2]; !c.Missing {
		t.Errorf("null date should be Missing, got %+v", c)
	}

	if len(snapshot.Messages) != 1 || snapshot.Messages[0].Timestamp != 3000 {
		t.Errorf("unexpected messages %+v", snapshot.Messages)
	}
}

func TestExportReader_Read_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing contacts", `{"calls": []}`},
		{"contact without lookup key", `{"contacts": [{"id": "1"}]}`},
		{"string date", `{"contacts": [], "calls": [{"number": "1", "date": "yesterday"}]}`},
		{"not json", `contacts: []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeExport(t, tt.content)
			if _, err := NewExportReader().Read(context.Background(), path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestExportReader_Read_MissingFile(t *testing.T) {
	_, err := NewExportReader().Read(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
