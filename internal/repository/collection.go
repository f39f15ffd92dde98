package repository

import (
	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRepository handles database operations for tenant collections
type CollectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// Create creates a collection, linking any listings already on the struct
func (r *CollectionRepository) Create(collection *models.Collection) error {
	return r.db.Omit("Tenant", "Listings.*").Create(collection).Error
}

// GetByID retrieves a collection with its listings
func (r *CollectionRepository) GetByID(id uuid.UUID) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.
		Preload("Tenant").
		Preload("Listings", func(db *gorm.DB) *gorm.DB { return db.Order("listings.date_listed DESC") }).
		First(&collection, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

// GetByTenantID retrieves all collections of a tenant
func (r *CollectionRepository) GetByTenantID(tenantID uuid.UUID) ([]models.Collection, error) {
	var collections []models.Collection
	err := r.db.
		Preload("Listings").
		Where("tenant_id = ?", tenantID).
		Order("name").
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// Update updates a collection's own columns
func (r *CollectionRepository) Update(collection *models.Collection) error {
	return r.db.Omit(clause.Associations).Save(collection).Error
}

// Delete deletes a collection. The listings it referenced are kept.
func (r *CollectionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteCollections(tx, []uuid.UUID{id})
	})
}

// AddListings adds listings to a collection with set semantics: a listing
// that is already saved is not added twice.
func (r *CollectionRepository) AddListings(collectionID uuid.UUID, listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	collection := models.Collection{BaseModel: models.BaseModel{ID: collectionID}}
	return r.db.Omit("Listings.*").Model(&collection).Association("Listings").Append(listings)
}

// RemoveListing removes a listing from a collection
func (r *CollectionRepository) RemoveListing(collectionID, listingID uuid.UUID) error {
	res := r.db.Exec("DELETE FROM collection_listings WHERE collection_id = ? AND listing_id = ?", collectionID, listingID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrListingNotInCollection
	}
	return nil
}

// GetListings lists the listings saved in a collection
func (r *CollectionRepository) GetListings(collectionID uuid.UUID) ([]models.Listing, error) {
	var listings []models.Listing
	collection := models.Collection{BaseModel: models.BaseModel{ID: collectionID}}
	if err := r.db.Model(&collection).Order("listings.date_listed DESC").Association("Listings").Find(&listings); err != nil {
		return nil, err
	}
	return listings, nil
}
