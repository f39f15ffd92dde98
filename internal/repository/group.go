package repository

import (
	"renthub-backend/internal/database"
	"renthub-backend/internal/database/models"

	"gorm.io/gorm"
)

// GroupRepository handles database operations for role groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// GetOrCreate returns the named group, creating it when missing. The bool
// reports whether a row was created.
func (r *GroupRepository) GetOrCreate(name string) (*models.Group, bool, error) {
	return database.EnsureGroup(r.db, name)
}

// GetByName retrieves a group by name
func (r *GroupRepository) GetByName(name string) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves all groups ordered by name
func (r *GroupRepository) GetAll() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Order("name").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
