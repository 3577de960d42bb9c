package identity

import (
	"context"
	"sync"
	"time"
)

// MockProvider is an in-memory implementation of Provider for testing
type MockProvider struct {
	mu    sync.Mutex
	users map[string]*mockUser

	// CreateUserErr and SetPasswordErr, when set, are returned by the
	// corresponding operation
	CreateUserErr  error
	SetPasswordErr error
}

type mockUser struct {
	attributes map[string]string
	password   string
	permanent  bool
	created    time.Time
}

// NewMockProvider creates a new MockProvider instance
func NewMockProvider() *MockProvider {
	return &MockProvider{users: make(map[string]*mockUser)}
}

// CreateUser implements Provider.CreateUser
func (m *MockProvider) CreateUser(ctx context.Context, username string, attributes map[string]string) (*CreatedUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateUserErr != nil {
		return nil, m.CreateUserErr
	}
	if _, exists := m.users[username]; exists {
		return nil, &Error{Op: "create_user", Message: "User already exists"}
	}

	attrs := make(map[string]string, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}
	m.users[username] = &mockUser{attributes: attrs, created: time.Now()}

	return &CreatedUser{
		Username:   username,
		Status:     "FORCE_CHANGE_PASSWORD",
		Enabled:    true,
		CreateDate: m.users[username].created,
	}, nil
}

// SetPermanentPassword implements Provider.SetPermanentPassword
func (m *MockProvider) SetPermanentPassword(ctx context.Context, username, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetPasswordErr != nil {
		return m.SetPasswordErr
	}
	user, exists := m.users[username]
	if !exists {
		return &Error{Op: "set_password", Message: "User does not exist"}
	}

	user.password = password
	user.permanent = true
	return nil
}

// HasUser reports whether an account exists for the username
func (m *MockProvider) HasUser(username string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.users[username]
	return exists
}

// HasPermanentPassword reports whether the account has a usable credential
func (m *MockProvider) HasPermanentPassword(username string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, exists := m.users[username]
	return exists && user.permanent && user.password != ""
}
