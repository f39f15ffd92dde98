package database

import (
	"errors"
	"fmt"

	"renthub-backend/internal/database/models"

	"gorm.io/gorm"
)

// SeedRoleGroups makes sure the Owner and Tenant groups exist. It is safe to
// call on every startup, also from processes starting at the same time.
func SeedRoleGroups(db *gorm.DB) error {
	for _, name := range models.RoleGroups {
		if _, _, err := EnsureGroup(db, name); err != nil {
			return fmt.Errorf("seed group %s: %w", name, err)
		}
	}
	return nil
}

// EnsureGroup returns the named group, creating it when missing. The bool
// reports whether this call created the row.
func EnsureGroup(db *gorm.DB, name string) (*models.Group, bool, error) {
	var group models.Group
	err := db.First(&group, "name = ?", name).Error
	if err == nil {
		return &group, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	group = models.Group{Name: name}
	if err := db.Create(&group).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, err
		}
		// lost a race with a concurrent seed
		if err := db.First(&group, "name = ?", name).Error; err != nil {
			return nil, false, err
		}
		return &group, false, nil
	}
	return &group, true, nil
}
