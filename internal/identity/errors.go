package identity

import (
	"errors"

	"github.com/aws/smithy-go"
)

// Error wraps a fault from the identity service. Error() returns the provider's
// own message text so callers can surface it to the client unchanged.
type Error struct {
	Op      string
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an identity error, extracting the service's message when the
// underlying error is an API fault
func NewError(op string, err error) *Error {
	message := ""
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		message = apiErr.ErrorMessage()
	}
	return &Error{
		Op:      op,
		Message: message,
		Err:     err,
	}
}
