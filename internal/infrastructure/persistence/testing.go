//go:build integration
// +build integration

package persistence

import (
	"testing"

	"textbook_rsa_service/internal/infrastructure/persistence/models"
	"textbook_rsa_service/internal/pkg/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupTestDB opens an in-memory SQLite database with the schema migrated,
// closed automatically on test cleanup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType})
	require.NoError(t, err, "Failed to open test database")

	err = db.AutoMigrate(&models.KeypairModel{})
	require.NoError(t, err, "Failed to migrate schema")

	t.Cleanup(func() {
		if err := CloseDB(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return db
}
