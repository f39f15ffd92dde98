package testutils

import (
	"time"

	"renthub-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Username and email are
// unique per call.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:    "user_" + suffix,
		Email:       "user_" + suffix + "@example.com",
		Password:    "!unusable",
		FirstName:   "Test",
		LastName:    "User",
		PhoneNumber: "+12345678900",
		About:       "A test user for testing purposes",
		IsActive:    true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// PropertyTypeFactory provides methods to create test PropertyType data
type PropertyTypeFactory struct{}

// NewPropertyTypeFactory creates a new PropertyTypeFactory
func NewPropertyTypeFactory() *PropertyTypeFactory {
	return &PropertyTypeFactory{}
}

// Create creates a test PropertyType named "farm"
func (f *PropertyTypeFactory) Create() *models.PropertyType {
	return f.WithName("farm")
}

// WithName creates a test PropertyType with a custom name
func (f *PropertyTypeFactory) WithName(name string) *models.PropertyType {
	return &models.PropertyType{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
	}
}

// FeatureFactory provides methods to create test Feature data
type FeatureFactory struct{}

// NewFeatureFactory creates a new FeatureFactory
func NewFeatureFactory() *FeatureFactory {
	return &FeatureFactory{}
}

// Create creates a test Feature named "wifi"
func (f *FeatureFactory) Create() *models.Feature {
	return f.WithName("wifi")
}

// WithName creates a test Feature with a custom name
func (f *FeatureFactory) WithName(name string) *models.Feature {
	return &models.Feature{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
	}
}

// ListingFactory provides methods to create test Listing data
type ListingFactory struct{}

// NewListingFactory creates a new ListingFactory
func NewListingFactory() *ListingFactory {
	return &ListingFactory{}
}

// Create creates the "Cow Farm" test listing for a random owner
func (f *ListingFactory) Create() *models.Listing {
	return &models.Listing{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Title:         "Cow Farm",
		Description:   "test test",
		Location:      "country test",
		Area:          decimal.NewFromInt(787),
		PricePerMonth: decimal.NewFromInt(455),
		Bedrooms:      5,
		Bathroom:      2,
		OwnerID:       uuid.New(),
	}
}

// WithOwner sets the owner of the listing
func (f *ListingFactory) WithOwner(ownerID uuid.UUID) *models.Listing {
	listing := f.Create()
	listing.OwnerID = ownerID
	return listing
}

// WithTitle sets the title of the listing for the given owner
func (f *ListingFactory) WithTitle(ownerID uuid.UUID, title string) *models.Listing {
	listing := f.WithOwner(ownerID)
	listing.Title = title
	return listing
}

// CollectionFactory provides methods to create test Collection data
type CollectionFactory struct{}

// NewCollectionFactory creates a new CollectionFactory
func NewCollectionFactory() *CollectionFactory {
	return &CollectionFactory{}
}

// Create creates the "likes" test collection for a random tenant
func (f *CollectionFactory) Create() *models.Collection {
	return &models.Collection{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "likes",
		TenantID:  uuid.New(),
	}
}

// WithTenant sets the tenant of the collection
func (f *CollectionFactory) WithTenant(tenantID uuid.UUID) *models.Collection {
	collection := f.Create()
	collection.TenantID = tenantID
	return collection
}

// ImageFactory provides methods to create test Image data
type ImageFactory struct{}

// NewImageFactory creates a new ImageFactory
func NewImageFactory() *ImageFactory {
	return &ImageFactory{}
}

// WithListing creates a test Image attached to a listing
func (f *ImageFactory) WithListing(listingID uuid.UUID) *models.Image {
	return &models.Image{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ListingID: listingID,
		Path:      "listings/" + listingID.String() + "/" + uuid.NewString() + ".jpg",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	PropertyType *PropertyTypeFactory
	Feature      *FeatureFactory
	Listing      *ListingFactory
	Collection   *CollectionFactory
	Image        *ImageFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		PropertyType: NewPropertyTypeFactory(),
		Feature:      NewFeatureFactory(),
		Listing:      NewListingFactory(),
		Collection:   NewCollectionFactory(),
		Image:        NewImageFactory(),
	}
}
