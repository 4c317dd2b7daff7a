package service

import (
	"context"

	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/repo"
)

const DefaultMaxSchemaVersions = 10

type SchemaService struct {
	schema repo.SchemaRepository
}

func NewSchemaService(schema repo.SchemaRepository) *SchemaService {
	return &SchemaService{schema: schema}
}

// Versions lists applied migrations, newest first. A missing history table
// means nothing has been applied yet.
func (s *SchemaService) Versions(ctx context.Context, maxCount int) ([]model.SchemaVersion, error) {
	if maxCount < 1 {
		return nil, NewValidationError("maxCount must be greater than or equal to 1.", "maxCount")
	}

	exists, err := s.schema.HistoryTableExists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []model.SchemaVersion{}, nil
	}
	return s.schema.ListVersions(ctx, maxCount)
}
