package models

import (
	"testing"
	"time"
)

// TestNewRecord tests record construction and the creation timestamp
func TestNewRecord(t *testing.T) {
	start := time.Now().UTC().Truncate(time.Second)
	record := NewRecord("John Doe", "john@example.com")
	end := time.Now().UTC()

	if record.Name != "John Doe" {
		t.Errorf("Expected name 'John Doe', got '%s'", record.Name)
	}
	if record.Email != "john@example.com" {
		t.Errorf("Expected email 'john@example.com', got '%s'", record.Email)
	}

	created, err := record.CreatedAt()
	if err != nil {
		t.Fatalf("Record date is not RFC 3339: %v", err)
	}
	if created.Before(start) || created.After(end) {
		t.Errorf("Record date %v outside call window [%v, %v]", created, start, end)
	}

	if err := record.Validate(); err != nil {
		t.Errorf("Record validation failed: %v", err)
	}
}

// TestRecordValidation tests validation of malformed records
func TestRecordValidation(t *testing.T) {
	record := &Record{Name: "Jane", Email: ""}
	if err := record.Validate(); err == nil {
		t.Error("Expected validation error for missing email")
	}

	record = &Record{Name: "Jane", Email: "jane@example.com", Date: "not-a-date"}
	if err := record.Validate(); err == nil {
		t.Error("Expected validation error for malformed date")
	}

	record = &Record{Email: "jane@example.com", Date: "2024-01-15T10:30:00Z"}
	if err := record.Validate(); err != nil {
		t.Errorf("Record with valid date failed validation: %v", err)
	}
}
