package repository

import (
	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingRepository handles database operations for listings and their tags
type ListingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create creates a listing. Tags already present on the struct are linked,
// never created; images on the struct are inserted with it.
func (r *ListingRepository) Create(listing *models.Listing) error {
	return r.db.Omit("Owner", "PropertyTypes.*", "Features.*").Create(listing).Error
}

// GetByID retrieves a listing with owner, tags and images
func (r *ListingRepository) GetByID(id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.
		Preload("Owner").
		Preload("PropertyTypes", func(db *gorm.DB) *gorm.DB { return db.Order("property_types.name") }).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("features.name") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.created_at") }).
		First(&listing, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetAll retrieves all listings with pagination, newest first
func (r *ListingRepository) GetAll(limit, offset int) ([]models.Listing, int64, error) {
	var listings []models.Listing
	var total int64

	if err := r.db.Model(&models.Listing{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("PropertyTypes").
		Preload("Features").
		Order("date_listed DESC, id").
		Limit(limit).Offset(offset).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// GetByOwnerID retrieves an owner's listings with pagination, newest first
func (r *ListingRepository) GetByOwnerID(ownerID uuid.UUID, limit, offset int) ([]models.Listing, int64, error) {
	var listings []models.Listing
	var total int64

	if err := r.db.Model(&models.Listing{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("PropertyTypes").
		Preload("Features").
		Where("owner_id = ?", ownerID).
		Order("date_listed DESC, id").
		Limit(limit).Offset(offset).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// Update updates a listing's own columns. DateListed is create-only and tags
// change through the Add/Remove methods.
func (r *ListingRepository) Update(listing *models.Listing) error {
	return r.db.Omit(clause.Associations).Save(listing).Error
}

// Delete deletes a listing with its images and association rows
func (r *ListingRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteListings(tx, []uuid.UUID{id})
	})
}

// AddPropertyTypes tags a listing. Tags already present are left as they are.
func (r *ListingRepository) AddPropertyTypes(listingID uuid.UUID, propertyTypes []models.PropertyType) error {
	if len(propertyTypes) == 0 {
		return nil
	}
	listing := models.Listing{BaseModel: models.BaseModel{ID: listingID}}
	return r.db.Omit("PropertyTypes.*").Model(&listing).Association("PropertyTypes").Append(propertyTypes)
}

// RemovePropertyType untags a listing
func (r *ListingRepository) RemovePropertyType(listingID, propertyTypeID uuid.UUID) error {
	res := r.db.Exec("DELETE FROM listing_property_types WHERE listing_id = ? AND property_type_id = ?", listingID, propertyTypeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPropertyTypeNotOnListing
	}
	return nil
}

// GetPropertyTypes lists a listing's property types
func (r *ListingRepository) GetPropertyTypes(listingID uuid.UUID) ([]models.PropertyType, error) {
	var propertyTypes []models.PropertyType
	listing := models.Listing{BaseModel: models.BaseModel{ID: listingID}}
	if err := r.db.Model(&listing).Order("property_types.name").Association("PropertyTypes").Find(&propertyTypes); err != nil {
		return nil, err
	}
	return propertyTypes, nil
}

// AddFeatures tags a listing with features. Features already present are left as they are.
func (r *ListingRepository) AddFeatures(listingID uuid.UUID, features []models.Feature) error {
	if len(features) == 0 {
		return nil
	}
	listing := models.Listing{BaseModel: models.BaseModel{ID: listingID}}
	return r.db.Omit("Features.*").Model(&listing).Association("Features").Append(features)
}

// RemoveFeature removes a feature from a listing
func (r *ListingRepository) RemoveFeature(listingID, featureID uuid.UUID) error {
	res := r.db.Exec("DELETE FROM listing_features WHERE listing_id = ? AND feature_id = ?", listingID, featureID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrFeatureNotOnListing
	}
	return nil
}

// GetFeatures lists a listing's features
func (r *ListingRepository) GetFeatures(listingID uuid.UUID) ([]models.Feature, error) {
	var features []models.Feature
	listing := models.Listing{BaseModel: models.BaseModel{ID: listingID}}
	if err := r.db.Model(&listing).Order("features.name").Association("Features").Find(&features); err != nil {
		return nil, err
	}
	return features, nil
}
