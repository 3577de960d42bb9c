package identity

import (
	"context"
	"time"
)

// CreatedUser describes a directory account returned by the identity provider
type CreatedUser struct {
	Username   string    `json:"username"`
	Status     string    `json:"status"`
	Enabled    bool      `json:"enabled"`
	CreateDate time.Time `json:"create_date"`
}

// Provider wraps the external identity service. CreateUser registers an account
// with the given attributes; SetPermanentPassword assigns a non-temporary
// credential and is only called after a successful CreateUser.
type Provider interface {
	CreateUser(ctx context.Context, username string, attributes map[string]string) (*CreatedUser, error)
	SetPermanentPassword(ctx context.Context, username, password string) error
}
