package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"registration-api/internal/models"
	"registration-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// RecordRepository implements repositories.RecordRepository on a SQLite table.
// Used in local development; the deployed functions use the DynamoDB backend.
type RecordRepository struct {
	db     *sql.DB
	table  string
	logger *logrus.Logger
}

// NewRecordRepository creates a new SQLite record repository for the given table
func NewRecordRepository(db *sql.DB, table string, logger *logrus.Logger) repositories.RecordRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &RecordRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// Put writes or overwrites a record keyed by its email
func (r *RecordRepository) Put(ctx context.Context, record *models.Record) error {
	if record == nil || record.Email == "" {
		return repositories.NewRepositoryError("put", r.table, "", repositories.ErrInvalidKey)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (email, name, date) VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET name = excluded.name, date = excluded.date`,
		r.table)

	_, err := r.executeExec(ctx, "put", query, record.Email, record.Name, record.Date)
	if err != nil {
		return repositories.NewRepositoryError("put", r.table, record.Email, err)
	}

	return nil
}

// GetByEmail retrieves a record by its email key
func (r *RecordRepository) GetByEmail(ctx context.Context, email string) (*models.Record, error) {
	if email == "" {
		return nil, repositories.NewRepositoryError("get", r.table, "", repositories.ErrInvalidKey)
	}

	query := fmt.Sprintf("SELECT email, name, date FROM %s WHERE email = ?", r.table)
	row := r.executeQueryRow(ctx, "get_by_email", query, email)

	record := &models.Record{}
	err := row.Scan(&record.Email, &record.Name, &record.Date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.NotFoundError(r.table, email)
		}
		return nil, repositories.NewRepositoryError("get_by_email", r.table, email, err)
	}

	return record, nil
}

// GetAll retrieves every record in the table
func (r *RecordRepository) GetAll(ctx context.Context) ([]*models.Record, error) {
	query := fmt.Sprintf("SELECT email, name, date FROM %s", r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, repositories.NewRepositoryError("get_all", r.table, "", err)
	}
	defer rows.Close()

	records := []*models.Record{}
	for rows.Next() {
		record := &models.Record{}
		if err := rows.Scan(&record.Email, &record.Name, &record.Date); err != nil {
			return nil, repositories.NewRepositoryError("get_all", r.table, "", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("get_all", r.table, "", err)
	}

	return records, nil
}

// executeExec executes a statement with operation logging
func (r *RecordRepository) executeExec(ctx context.Context, op, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, args...)

	r.logger.WithFields(logrus.Fields{
		"table":       r.table,
		"operation":   op,
		"duration_ms": time.Since(start).Milliseconds(),
		"error":       err != nil,
	}).Debug("Executed statement")

	return result, err
}

// executeQueryRow executes a single-row query with operation logging
func (r *RecordRepository) executeQueryRow(ctx context.Context, op, query string, args ...interface{}) *sql.Row {
	r.logger.WithFields(logrus.Fields{
		"table":     r.table,
		"operation": op,
	}).Debug("Executing query")

	return r.db.QueryRowContext(ctx, query, args...)
}
