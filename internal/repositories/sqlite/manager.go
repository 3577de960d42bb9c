package sqlite

import (
	"database/sql"

	"registration-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Manager implements repositories.Manager over one SQLite database holding both
// collections as separate tables
type Manager struct {
	db     *sql.DB
	orders repositories.RecordRepository
	users  repositories.RecordRepository
}

// NewManager creates a repository manager backed by the given database
func NewManager(db *sql.DB, ordersTable, usersTable string, logger *logrus.Logger) repositories.Manager {
	return &Manager{
		db:     db,
		orders: NewRecordRepository(db, ordersTable, logger),
		users:  NewRecordRepository(db, usersTable, logger),
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

// Close closes the underlying database connection
func (m *Manager) Close() error {
	return m.db.Close()
}
