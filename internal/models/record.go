package models

import (
	"fmt"
	"strings"
	"time"
)

// Record represents a registered user or order entry. Email is the store key;
// a second Put with the same email overwrites the previous record.
type Record struct {
	Name  string `json:"name" db:"name" dynamodbav:"name" validate:"required"`
	Email string `json:"email" db:"email" dynamodbav:"email" validate:"required,email"`
	Date  string `json:"date" db:"date" dynamodbav:"date"`
}

// NewRecord builds a record from identity attributes and stamps the creation time.
func NewRecord(name, email string) *Record {
	return &Record{
		Name:  name,
		Email: email,
		Date:  time.Now().UTC().Format(time.RFC3339),
	}
}

// Validate validates the record data
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("record email is required")
	}

	if r.Date != "" {
		if _, err := time.Parse(time.RFC3339, r.Date); err != nil {
			return fmt.Errorf("invalid record date %q: %w", r.Date, err)
		}
	}

	return nil
}

// CreatedAt parses the record's date stamp.
func (r *Record) CreatedAt() (time.Time, error) {
	return time.Parse(time.RFC3339, r.Date)
}
