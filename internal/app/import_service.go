package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/dormant/internal/ports/primary"
	"github.com/example/dormant/internal/ports/secondary"
)

// ImportServiceImpl implements the ImportService interface.
type ImportServiceImpl struct {
	reader secondary.ExportReader
	writer secondary.SnapshotWriter
	logger *logrus.Logger
}

// NewImportService creates a new ImportService with injected dependencies.
func NewImportService(reader secondary.ExportReader, writer secondary.SnapshotWriter, logger *logrus.Logger) *ImportServiceImpl {
	return &ImportServiceImpl{
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

// Import replaces the snapshot with the contents of the export at path.
func (s *ImportServiceImpl) Import(ctx context.Context, path string) (*primary.ImportResult, error) {
	snapshot, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := s.writer.ReplaceAll(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to import snapshot: %w", err)
	}

	result := &primary.ImportResult{
		Contacts: len(snapshot.Contacts),
		Calls:    len(snapshot.Calls),
		Messages: len(snapshot.Messages),
	}
	for _, c := range snapshot.Contacts {
		result.Identifiers += len(c.Identifiers)
	}

	s.logger.WithFields(logrus.Fields{
		"path":        path,
		"contacts":    result.Contacts,
		"identifiers": result.Identifiers,
		"calls":       result.Calls,
		"messages":    result.Messages,
	}).Info("snapshot imported")

	return result, nil
}

// Ensure ImportServiceImpl implements the interface.
var _ primary.ImportService = (*ImportServiceImpl)(nil)
