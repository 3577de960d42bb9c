package dynamodb

import (
	"registration-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Manager implements repositories.Manager over two DynamoDB tables sharing one
// client
type Manager struct {
	orders repositories.RecordRepository
	users  repositories.RecordRepository
}

// NewManager creates a repository manager for the given tables
func NewManager(client Client, ordersTable, usersTable string, logger *logrus.Logger) repositories.Manager {
	return &Manager{
		orders: NewRecordRepository(client, ordersTable, logger),
		users:  NewRecordRepository(client, usersTable, logger),
	}
}

// Orders returns the repository for order records
func (m *Manager) Orders() repositories.RecordRepository {
	return m.orders
}

// Users returns the repository for user records
func (m *Manager) Users() repositories.RecordRepository {
	return m.users
}

// Close is a no-op; the DynamoDB client holds no pooled connections to release
func (m *Manager) Close() error {
	return nil
}
