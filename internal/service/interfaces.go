package service

import (
	"renthub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccountManagerInterface defines the interface for account creation
type AccountManagerInterface interface {
	CreateUser(username, email, password string, fields UserFields) (*models.User, error)
	CreateSuperuser(email, password string, fields UserFields) (*models.User, error)
}

// RoleManagerInterface defines the interface for the owner and tenant managers
type RoleManagerInterface interface {
	Role() models.Role
	CreateUser(username, email, password string, fields UserFields) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
	Get(id uuid.UUID) (*models.User, error)
	Contains(id uuid.UUID) (bool, error)
	Assign(id uuid.UUID) error
}

// PropertyTypeServiceInterface defines the interface for the property type catalog
type PropertyTypeServiceInterface interface {
	Create(req *CatalogEntryRequest) (*models.PropertyType, error)
	Get(id uuid.UUID) (*models.PropertyType, error)
	GetByName(name string) (*models.PropertyType, error)
	List(limit, offset int) ([]models.PropertyType, int64, error)
	Rename(id uuid.UUID, req *CatalogEntryRequest) (*models.PropertyType, error)
	Delete(id uuid.UUID) error
}

// FeatureServiceInterface defines the interface for the feature catalog
type FeatureServiceInterface interface {
	Create(req *CatalogEntryRequest) (*models.Feature, error)
	Get(id uuid.UUID) (*models.Feature, error)
	GetByName(name string) (*models.Feature, error)
	List(limit, offset int) ([]models.Feature, int64, error)
	Rename(id uuid.UUID, req *CatalogEntryRequest) (*models.Feature, error)
	Delete(id uuid.UUID) error
}

// ListingServiceInterface defines the interface for listing service
type ListingServiceInterface interface {
	CreateListing(req *CreateListingRequest) (*models.Listing, error)
	GetListing(id uuid.UUID) (*models.Listing, error)
	ListListings(limit, offset int) ([]models.Listing, int64, error)
	ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.Listing, int64, error)
	UpdateListing(id uuid.UUID, req *UpdateListingRequest) (*models.Listing, error)
	DeleteListing(id uuid.UUID) error
	AddPropertyTypes(listingID uuid.UUID, propertyTypeIDs []uuid.UUID) error
	RemovePropertyType(listingID, propertyTypeID uuid.UUID) error
	AddFeatures(listingID uuid.UUID, featureIDs []uuid.UUID) error
	RemoveFeature(listingID, featureID uuid.UUID) error
}

// CollectionServiceInterface defines the interface for collection service
type CollectionServiceInterface interface {
	CreateCollection(req *CreateCollectionRequest) (*models.Collection, error)
	GetCollection(id uuid.UUID) (*models.Collection, error)
	ListByTenant(tenantID uuid.UUID) ([]models.Collection, error)
	RenameCollection(id uuid.UUID, name string) (*models.Collection, error)
	DeleteCollection(id uuid.UUID) error
	AddListing(collectionID, listingID uuid.UUID) error
	RemoveListing(collectionID, listingID uuid.UUID) error
	GetListings(collectionID uuid.UUID) ([]models.Listing, error)
}

// ImageServiceInterface defines the interface for image service
type ImageServiceInterface interface {
	AddImage(listingID uuid.UUID, path string) (*models.Image, error)
	ListImages(listingID uuid.UUID) ([]models.Image, error)
	DeleteImage(id uuid.UUID) error
}
