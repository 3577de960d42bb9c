package services

import (
	"context"
	"errors"
	"testing"

	"registration-api/internal/identity"
)

func TestSignUp_Success(t *testing.T) {
	provider := identity.NewMockProvider()
	service := NewRegistrationService(provider, testLogger())

	err := service.SignUp(context.Background(), &SignUpRequest{
		Email:    "john@example.com",
		Password: "s3cret-password",
		Name:     "John Doe",
	})
	if err != nil {
		t.Fatalf("SignUp() failed: %v", err)
	}

	if !provider.HasUser("john@example.com") {
		t.Error("Expected identity account to exist")
	}
	if !provider.HasPermanentPassword("john@example.com") {
		t.Error("Expected a permanent password to be set")
	}
}

func TestSignUp_DuplicateUser(t *testing.T) {
	provider := identity.NewMockProvider()
	service := NewRegistrationService(provider, testLogger())
	ctx := context.Background()

	req := &SignUpRequest{Email: "john@example.com", Password: "s3cret-password", Name: "John"}
	if err := service.SignUp(ctx, req); err != nil {
		t.Fatalf("First SignUp() failed: %v", err)
	}

	err := service.SignUp(ctx, req)
	if err == nil {
		t.Fatal("Expected duplicate sign up to fail")
	}
	if err.Error() != "User already exists" {
		t.Errorf("Expected the provider's message verbatim, got %q", err.Error())
	}
}

func TestSignUp_PasswordStepFails(t *testing.T) {
	provider := identity.NewMockProvider()
	provider.SetPasswordErr = errors.New("password does not conform to policy")
	service := NewRegistrationService(provider, testLogger())

	err := service.SignUp(context.Background(), &SignUpRequest{
		Email:    "john@example.com",
		Password: "weak",
		Name:     "John",
	})
	if err == nil {
		t.Fatal("Expected SignUp() to fail when the password step fails")
	}

	// The account is left behind without a usable credential; no rollback.
	if !provider.HasUser("john@example.com") {
		t.Error("Expected the created account to remain")
	}
	if provider.HasPermanentPassword("john@example.com") {
		t.Error("Expected no usable password on the account")
	}
}

func TestSignUp_Validation(t *testing.T) {
	provider := identity.NewMockProvider()
	service := NewRegistrationService(provider, testLogger())
	ctx := context.Background()

	cases := []struct {
		name string
		req  *SignUpRequest
	}{
		{"nil request", nil},
		{"missing email", &SignUpRequest{Password: "pw", Name: "John"}},
		{"malformed email", &SignUpRequest{Email: "not-an-email", Password: "pw", Name: "John"}},
		{"missing password", &SignUpRequest{Email: "a@example.com", Name: "John"}},
		{"missing name", &SignUpRequest{Email: "a@example.com", Password: "pw"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := service.SignUp(ctx, tc.req); err == nil {
				t.Error("Expected validation error")
			}
		})
	}

	if provider.HasUser("a@example.com") {
		t.Error("Expected no account to be created for invalid requests")
	}
}
