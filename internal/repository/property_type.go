package repository

import (
	"renthub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyTypeRepository handles database operations for property types
type PropertyTypeRepository struct {
	db *gorm.DB
}

// NewPropertyTypeRepository creates a new property type repository
func NewPropertyTypeRepository(db *gorm.DB) *PropertyTypeRepository {
	return &PropertyTypeRepository{db: db}
}

// Create creates a new property type
func (r *PropertyTypeRepository) Create(propertyType *models.PropertyType) error {
	return r.db.Create(propertyType).Error
}

// GetByID retrieves a property type by ID
func (r *PropertyTypeRepository) GetByID(id uuid.UUID) (*models.PropertyType, error) {
	var propertyType models.PropertyType
	if err := r.db.First(&propertyType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &propertyType, nil
}

// GetByName retrieves a property type by name
func (r *PropertyTypeRepository) GetByName(name string) (*models.PropertyType, error) {
	var propertyType models.PropertyType
	if err := r.db.First(&propertyType, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &propertyType, nil
}

// GetByIDs retrieves the property types with the given IDs; unknown IDs are skipped
func (r *PropertyTypeRepository) GetByIDs(ids []uuid.UUID) ([]models.PropertyType, error) {
	var propertyTypes []models.PropertyType
	if len(ids) == 0 {
		return propertyTypes, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("name").Find(&propertyTypes).Error; err != nil {
		return nil, err
	}
	return propertyTypes, nil
}

// GetAll retrieves all property types with pagination
func (r *PropertyTypeRepository) GetAll(limit, offset int) ([]models.PropertyType, int64, error) {
	var propertyTypes []models.PropertyType
	var total int64

	if err := r.db.Model(&models.PropertyType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("name").Limit(limit).Offset(offset).Find(&propertyTypes).Error; err != nil {
		return nil, 0, err
	}

	return propertyTypes, total, nil
}

// Update updates a property type
func (r *PropertyTypeRepository) Update(propertyType *models.PropertyType) error {
	return r.db.Save(propertyType).Error
}

// Delete deletes a property type and detaches it from every listing
func (r *PropertyTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM listing_property_types WHERE property_type_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PropertyType{}, "id = ?", id).Error
	})
}
