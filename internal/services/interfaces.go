package services

import (
	"context"

	"registration-api/internal/models"
)

// SignUpRequest represents a request to register a new account
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// RegistrationService defines sign-up operations against the identity provider
type RegistrationService interface {
	// SignUp creates a directory account and sets its permanent password.
	// The two steps are sequential and not transactional: if the password
	// step fails the account is left without a usable credential.
	SignUp(ctx context.Context, req *SignUpRequest) error
}

// RecordService defines operations over one record collection
type RecordService interface {
	// RecordFromAttributes builds a record from identity attributes, stamps
	// the creation time and stores it
	RecordFromAttributes(ctx context.Context, name, email string) (*models.Record, error)

	// Get retrieves a record by email
	Get(ctx context.Context, email string) (*models.Record, error)

	// List retrieves every record in the collection
	List(ctx context.Context) ([]*models.Record, error)
}
