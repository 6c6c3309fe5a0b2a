package repository

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"branchline/internal/infrastructure/persistence/models"
	"branchline/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.OrganizationModel{},
		&models.BrandModel{},
		&models.BusinessModel{},
		&models.FranchiseModel{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// The repositories query `sid` and `is_active` by name; the models must map
// their fields onto exactly those columns.
func TestMigratedSchema_ColumnNames(t *testing.T) {
	db := setupTestDB(t)

	for _, model := range []interface{}{
		&models.OrganizationModel{},
		&models.BrandModel{},
		&models.BusinessModel{},
		&models.FranchiseModel{},
	} {
		require.True(t, db.Migrator().HasColumn(model, "sid"), "%T must have a sid column", model)
		require.True(t, db.Migrator().HasColumn(model, "is_active"), "%T must have an is_active column", model)
	}
}
