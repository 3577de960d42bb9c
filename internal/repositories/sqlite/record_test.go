package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"registration-api/internal/models"
	"registration-api/internal/repositories"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	tempDir, err := os.MkdirTemp("", "sqlite_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	for _, table := range []string{"orders", "users"} {
		_, err = db.Exec(`
			CREATE TABLE ` + table + ` (
				email TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				date TEXT NOT NULL
			)
		`)
		if err != nil {
			t.Fatalf("Failed to create %s table: %v", table, err)
		}
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tempDir)
	}

	return db, cleanup
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestRecordRepository_PutAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRecordRepository(db, "orders", testLogger())
	ctx := context.Background()

	record := models.NewRecord("John Doe", "john.doe@example.com")
	if err := repo.Put(ctx, record); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "john.doe@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	if got.Name != record.Name || got.Date != record.Date {
		t.Errorf("Round-trip mismatch: put %+v, got %+v", record, got)
	}
}

func TestRecordRepository_LastWriteWins(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRecordRepository(db, "orders", testLogger())
	ctx := context.Background()

	if err := repo.Put(ctx, models.NewRecord("First", "dup@example.com")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := repo.Put(ctx, models.NewRecord("Second", "dup@example.com")); err != nil {
		t.Fatalf("Overwriting Put() failed: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 record after overwrite, got %d", len(all))
	}
	if all[0].Name != "Second" {
		t.Errorf("Expected last write to win, got name %q", all[0].Name)
	}
}

func TestRecordRepository_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRecordRepository(db, "orders", testLogger())

	_, err := repo.GetByEmail(context.Background(), "nonexistent@example.com")
	if !repositories.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestManager_SeparateCollections(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	manager := NewManager(db, "orders", "users", testLogger())
	ctx := context.Background()

	if err := manager.Orders().Put(ctx, models.NewRecord("Order Person", "o@example.com")); err != nil {
		t.Fatalf("Orders Put() failed: %v", err)
	}
	if err := manager.Users().Put(ctx, models.NewRecord("User Person", "u@example.com")); err != nil {
		t.Fatalf("Users Put() failed: %v", err)
	}

	orders, err := manager.Orders().GetAll(ctx)
	if err != nil {
		t.Fatalf("Orders GetAll() failed: %v", err)
	}
	users, err := manager.Users().GetAll(ctx)
	if err != nil {
		t.Fatalf("Users GetAll() failed: %v", err)
	}

	if len(orders) != 1 || orders[0].Email != "o@example.com" {
		t.Errorf("Orders collection polluted: %+v", orders)
	}
	if len(users) != 1 || users[0].Email != "u@example.com" {
		t.Errorf("Users collection polluted: %+v", users)
	}
}
