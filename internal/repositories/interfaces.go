package repositories

import (
	"context"

	"registration-api/internal/models"
)

// RecordRepository defines persistence operations for one record collection.
// A collection is keyed by email; Put overwrites any existing record with the
// same email.
type RecordRepository interface {
	// Put writes or overwrites a record keyed by its email
	Put(ctx context.Context, record *models.Record) error

	// GetByEmail retrieves a record by its email key. Returns a not-found
	// repository error when no record has that key.
	GetByEmail(ctx context.Context, email string) (*models.Record, error)

	// GetAll retrieves every record in the collection, order unspecified
	GetAll(ctx context.Context) ([]*models.Record, error)
}

// Manager bundles the two logical collections. Orders and users used to share
// one table in the original deployment; they are kept separate here.
type Manager interface {
	// Orders returns the repository for order records
	Orders() RecordRepository

	// Users returns the repository for user records
	Users() RecordRepository

	// Close releases underlying connections
	Close() error
}
