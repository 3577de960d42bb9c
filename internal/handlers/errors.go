package handlers

// MessageResponse is the envelope used for both success and error messages.
// Failure bodies deliberately carry the downstream fault's message text.
type MessageResponse struct {
	Message string `json:"message"`
}

// signUpSuccessMessage is the exact body returned on successful registration
const signUpSuccessMessage = "User registration successful"

// fallbackErrorMessage is used when a fault carries no message of its own
const fallbackErrorMessage = "Internal server error"

// errorMessage extracts a client-facing message from a fault
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return fallbackErrorMessage
	}
	return err.Error()
}
