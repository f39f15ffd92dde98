package database

import (
	"os"
	"path/filepath"
	"testing"

	"renthub-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestInitializeSQLiteCreatesSchema(t *testing.T) {
	db, err := Initialize(":memory:", &Options{Driver: DriverSQLite, LogLevel: logger.Silent})
	require.NoError(t, err)

	m := db.Migrator()
	for _, table := range []string{
		"groups", "users", "user_groups",
		"property_types", "features", "listings",
		"listing_property_types", "listing_features",
		"collections", "collection_listings", "images",
	} {
		assert.True(t, m.HasTable(table), "missing table %s", table)
	}
}

func TestInitializeRejectsUnknownDriver(t *testing.T) {
	_, err := Initialize("whatever", &Options{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestSeedRoleGroupsIsIdempotent(t *testing.T) {
	db, err := Initialize(":memory:", &Options{Driver: DriverSQLite, LogLevel: logger.Silent})
	require.NoError(t, err)

	require.NoError(t, SeedRoleGroups(db))
	require.NoError(t, SeedRoleGroups(db))

	var groups []models.Group
	require.NoError(t, db.Order("name").Find(&groups).Error)
	require.Len(t, groups, 2)
	assert.Equal(t, models.GroupOwner, groups[0].Name)
	assert.Equal(t, models.GroupTenant, groups[1].Name)
}

func TestEnsureGroupCreatesOnce(t *testing.T) {
	db, err := Initialize(":memory:", &Options{Driver: DriverSQLite, LogLevel: logger.Silent})
	require.NoError(t, err)

	first, created, err := EnsureGroup(db, "Landlord")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := EnsureGroup(db, "Landlord")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestInitializeClosesPoolWhenMigrationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readonly.db")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	db, err := Initialize("file:"+path+"?mode=ro", &Options{Driver: DriverSQLite, LogLevel: logger.Silent})

	require.Error(t, err)
	assert.Nil(t, db)
}

func TestCloseReleasesPool(t *testing.T) {
	db, err := Initialize(":memory:", &Options{Driver: DriverSQLite, LogLevel: logger.Silent})
	require.NoError(t, err)

	Close(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}
