package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.ActivationToken{},
		&domain.Board{},
		&domain.Note{},
		&domain.Link{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}
