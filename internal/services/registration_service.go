package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"registration-api/internal/identity"
)

// registrationService implements the RegistrationService interface
type registrationService struct {
	provider  identity.Provider
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(provider identity.Provider, logger *logrus.Logger) RegistrationService {
	if logger == nil {
		logger = logrus.New()
	}
	return &registrationService{
		provider:  provider,
		validator: validator.New(),
		logger:    logger,
	}
}

// SignUp creates the identity account, then sets its permanent password.
// Identity faults are returned unwrapped so their message text reaches the
// client unchanged.
func (s *registrationService) SignUp(ctx context.Context, req *SignUpRequest) error {
	if req == nil {
		return fmt.Errorf("sign up request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	created, err := s.provider.CreateUser(ctx, req.Email, map[string]string{
		"email": req.Email,
		"name":  req.Name,
	})
	if err != nil {
		s.logger.WithError(err).WithField("email", req.Email).Warn("Account creation failed")
		return err
	}

	if created != nil {
		if err := s.provider.SetPermanentPassword(ctx, req.Email, req.Password); err != nil {
			// The account now exists without a usable password. No
			// compensating delete is issued; remediation is manual.
			s.logger.WithError(err).WithField("email", req.Email).
				Error("Password assignment failed after account creation")
			return err
		}
	}

	s.logger.WithField("email", req.Email).Info("User registration successful")
	return nil
}
