package repository

import (
	"renthub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateInGroup(user *models.User, groupName string) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByGroup(groupName string, limit, offset int) ([]models.User, int64, error)
	GetByIDInGroup(id uuid.UUID, groupName string) (*models.User, error)
	HasGroup(id uuid.UUID, groupName string) (bool, error)
	GetGroupNames(id uuid.UUID) ([]string, error)
	AddToGroup(id uuid.UUID, groupName string) error
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	GetOrCreate(name string) (*models.Group, bool, error)
	GetByName(name string) (*models.Group, error)
	GetAll() ([]models.Group, error)
}

// PropertyTypeRepositoryInterface defines the interface for property type repository operations
type PropertyTypeRepositoryInterface interface {
	Create(propertyType *models.PropertyType) error
	GetByID(id uuid.UUID) (*models.PropertyType, error)
	GetByName(name string) (*models.PropertyType, error)
	GetByIDs(ids []uuid.UUID) ([]models.PropertyType, error)
	GetAll(limit, offset int) ([]models.PropertyType, int64, error)
	Update(propertyType *models.PropertyType) error
	Delete(id uuid.UUID) error
}

// FeatureRepositoryInterface defines the interface for feature repository operations
type FeatureRepositoryInterface interface {
	Create(feature *models.Feature) error
	GetByID(id uuid.UUID) (*models.Feature, error)
	GetByName(name string) (*models.Feature, error)
	GetByIDs(ids []uuid.UUID) ([]models.Feature, error)
	GetAll(limit, offset int) ([]models.Feature, int64, error)
	Update(feature *models.Feature) error
	Delete(id uuid.UUID) error
}

// ListingRepositoryInterface defines the interface for listing repository operations
type ListingRepositoryInterface interface {
	Create(listing *models.Listing) error
	GetByID(id uuid.UUID) (*models.Listing, error)
	GetAll(limit, offset int) ([]models.Listing, int64, error)
	GetByOwnerID(ownerID uuid.UUID, limit, offset int) ([]models.Listing, int64, error)
	Update(listing *models.Listing) error
	Delete(id uuid.UUID) error
	AddPropertyTypes(listingID uuid.UUID, propertyTypes []models.PropertyType) error
	RemovePropertyType(listingID, propertyTypeID uuid.UUID) error
	GetPropertyTypes(listingID uuid.UUID) ([]models.PropertyType, error)
	AddFeatures(listingID uuid.UUID, features []models.Feature) error
	RemoveFeature(listingID, featureID uuid.UUID) error
	GetFeatures(listingID uuid.UUID) ([]models.Feature, error)
}

// CollectionRepositoryInterface defines the interface for collection repository operations
type CollectionRepositoryInterface interface {
	Create(collection *models.Collection) error
	GetByID(id uuid.UUID) (*models.Collection, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.Collection, error)
	Update(collection *models.Collection) error
	Delete(id uuid.UUID) error
	AddListings(collectionID uuid.UUID, listings []models.Listing) error
	RemoveListing(collectionID, listingID uuid.UUID) error
	GetListings(collectionID uuid.UUID) ([]models.Listing, error)
}

// ImageRepositoryInterface defines the interface for image repository operations
type ImageRepositoryInterface interface {
	Create(image *models.Image) error
	GetByID(id uuid.UUID) (*models.Image, error)
	GetByListingID(listingID uuid.UUID) ([]models.Image, error)
	Delete(id uuid.UUID) error
}
