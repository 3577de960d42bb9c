package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"registration-api/internal/models"
	"registration-api/internal/repositories"
)

// recordService implements the RecordService interface over one collection
type recordService struct {
	repo   repositories.RecordRepository
	logger *logrus.Logger
}

// NewRecordService creates a new record service instance
func NewRecordService(repo repositories.RecordRepository, logger *logrus.Logger) RecordService {
	if logger == nil {
		logger = logrus.New()
	}
	return &recordService{
		repo:   repo,
		logger: logger,
	}
}

// RecordFromAttributes builds and stores a record. Shared by the create-order
// and post-confirmation triggers, which differ only in the collection they
// write to.
func (s *recordService) RecordFromAttributes(ctx context.Context, name, email string) (*models.Record, error) {
	record := models.NewRecord(name, email)
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid record: %w", err)
	}

	if err := s.repo.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store record: %w", err)
	}

	return record, nil
}

// Get retrieves a record by email
func (s *recordService) Get(ctx context.Context, email string) (*models.Record, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	record, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return record, nil
}

// List retrieves every record in the collection
func (s *recordService) List(ctx context.Context) ([]*models.Record, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}
