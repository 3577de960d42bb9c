package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"registration-api/internal/models"
	"registration-api/internal/repositories"
)

// mockRecordRepository is an in-memory RecordRepository for testing
type mockRecordRepository struct {
	mu      sync.Mutex
	records map[string]*models.Record
	err     error
}

func newMockRecordRepository() *mockRecordRepository {
	return &mockRecordRepository{records: make(map[string]*models.Record)}
}

func (m *mockRecordRepository) Put(ctx context.Context, record *models.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	copied := *record
	m.records[record.Email] = &copied
	return nil
}

func (m *mockRecordRepository) GetByEmail(ctx context.Context, email string) (*models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[email]
	if !ok {
		return nil, repositories.NotFoundError("records", email)
	}
	return record, nil
}

func (m *mockRecordRepository) GetAll(ctx context.Context) ([]*models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	all := make([]*models.Record, 0, len(m.records))
	for _, record := range m.records {
		all = append(all, record)
	}
	return all, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestRecordFromAttributes(t *testing.T) {
	repo := newMockRecordRepository()
	service := NewRecordService(repo, testLogger())

	start := time.Now().UTC().Truncate(time.Second)
	record, err := service.RecordFromAttributes(context.Background(), "John Doe", "john@example.com")
	end := time.Now().UTC()

	if err != nil {
		t.Fatalf("RecordFromAttributes() failed: %v", err)
	}

	created, err := record.CreatedAt()
	if err != nil {
		t.Fatalf("Record date is not RFC 3339: %v", err)
	}
	if created.Before(start) || created.After(end) {
		t.Errorf("Record date %v outside call window [%v, %v]", created, start, end)
	}

	stored, err := service.Get(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("Get() after store failed: %v", err)
	}
	if stored.Name != "John Doe" || stored.Date != record.Date {
		t.Errorf("Stored record mismatch: %+v vs %+v", stored, record)
	}
}

func TestRecordFromAttributes_StoreFault(t *testing.T) {
	repo := newMockRecordRepository()
	repo.err = errors.New("throttled")
	service := NewRecordService(repo, testLogger())

	if _, err := service.RecordFromAttributes(context.Background(), "John", "john@example.com"); err == nil {
		t.Error("Expected store fault to surface")
	}
}

func TestGet_NotFound(t *testing.T) {
	service := NewRecordService(newMockRecordRepository(), testLogger())

	_, err := service.Get(context.Background(), "nonexistent@example.com")
	if !repositories.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestList(t *testing.T) {
	repo := newMockRecordRepository()
	service := NewRecordService(repo, testLogger())
	ctx := context.Background()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		if _, err := service.RecordFromAttributes(ctx, "User", email); err != nil {
			t.Fatalf("RecordFromAttributes(%s) failed: %v", email, err)
		}
	}
	// Overwrite one key; List must not return duplicates.
	if _, err := service.RecordFromAttributes(ctx, "User Again", "a@example.com"); err != nil {
		t.Fatalf("Overwriting RecordFromAttributes() failed: %v", err)
	}

	records, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(records) != len(emails) {
		t.Errorf("Expected %d records, got %d", len(emails), len(records))
	}
}
