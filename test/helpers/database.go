package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/greenhouse-go/internal/adapters/persistence"
	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory store that closes with the test
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewMemoryConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// NewTestRunRepository is a run repository over NewTestDB
func NewTestRunRepository(t *testing.T) *persistence.GormRunRepository {
	t.Helper()
	return persistence.NewGormRunRepository(NewTestDB(t))
}
