package repository

import (
	"renthub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeatureRepository handles database operations for features
type FeatureRepository struct {
	db *gorm.DB
}

// NewFeatureRepository creates a new feature repository
func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{db: db}
}

// Create creates a new feature
func (r *FeatureRepository) Create(feature *models.Feature) error {
	return r.db.Create(feature).Error
}

// GetByID retrieves a feature by ID
func (r *FeatureRepository) GetByID(id uuid.UUID) (*models.Feature, error) {
	var feature models.Feature
	if err := r.db.First(&feature, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

// GetByName retrieves a feature by name
func (r *FeatureRepository) GetByName(name string) (*models.Feature, error) {
	var feature models.Feature
	if err := r.db.First(&feature, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

// GetByIDs retrieves the features with the given IDs; unknown IDs are skipped
func (r *FeatureRepository) GetByIDs(ids []uuid.UUID) ([]models.Feature, error) {
	var features []models.Feature
	if len(ids) == 0 {
		return features, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("name").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// GetAll retrieves all features with pagination
func (r *FeatureRepository) GetAll(limit, offset int) ([]models.Feature, int64, error) {
	var features []models.Feature
	var total int64

	if err := r.db.Model(&models.Feature{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("name").Limit(limit).Offset(offset).Find(&features).Error; err != nil {
		return nil, 0, err
	}

	return features, total, nil
}

// Update updates a feature
func (r *FeatureRepository) Update(feature *models.Feature) error {
	return r.db.Save(feature).Error
}

// Delete deletes a feature; listings that carried it simply lose the tag
func (r *FeatureRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM listing_features WHERE feature_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Feature{}, "id = ?", id).Error
	})
}
