package repository

import (
	"testing"
	"time"

	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"
	"renthub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ListingRepositoryTestSuite tests the ListingRepository
type ListingRepositoryTestSuite struct {
	suite.Suite
	db               *gorm.DB
	repo             *ListingRepository
	userRepo         *UserRepository
	propertyTypeRepo *PropertyTypeRepository
	featureRepo      *FeatureRepository
	factories        *testutils.FactorySet
	owner            *models.User
}

// SetupTest gives every test a fresh database with one owner
func (suite *ListingRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewListingRepository(suite.db)
	suite.userRepo = NewUserRepository(suite.db)
	suite.propertyTypeRepo = NewPropertyTypeRepository(suite.db)
	suite.featureRepo = NewFeatureRepository(suite.db)
	suite.factories = testutils.NewFactorySet()

	suite.owner = suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.CreateInGroup(suite.owner, models.GroupOwner))
}

// TestCreate tests creating the reference listing
func (suite *ListingRepositoryTestSuite) TestCreate() {
	listing := suite.factories.Listing.WithOwner(suite.owner.ID)

	err := suite.repo.Create(listing)

	suite.NoError(err)
	suite.NotZero(listing.DateListed)

	retrieved, err := suite.repo.GetByID(listing.ID)
	suite.NoError(err)
	suite.Equal("Cow Farm", retrieved.Title)
	suite.Equal("Cow Farm", retrieved.String())
	suite.Equal(suite.owner.ID, retrieved.Owner.ID)
	suite.True(decimal.NewFromInt(787).Equal(retrieved.Area))
	suite.True(decimal.NewFromInt(455).Equal(retrieved.PricePerMonth))
	suite.Equal(5, retrieved.Bedrooms)
	suite.Equal(2, retrieved.Bathroom)
	suite.Empty(retrieved.PropertyTypes)
	suite.Empty(retrieved.Features)
}

// TestCreateWithTags tests that tags on the struct are linked, not duplicated
func (suite *ListingRepositoryTestSuite) TestCreateWithTags() {
	farm := suite.factories.PropertyType.Create()
	wifi := suite.factories.Feature.Create()
	suite.Require().NoError(suite.propertyTypeRepo.Create(farm))
	suite.Require().NoError(suite.featureRepo.Create(wifi))

	listing := suite.factories.Listing.WithOwner(suite.owner.ID)
	listing.PropertyTypes = []models.PropertyType{*farm}
	listing.Features = []models.Feature{*wifi}
	suite.Require().NoError(suite.repo.Create(listing))

	retrieved, err := suite.repo.GetByID(listing.ID)
	suite.NoError(err)
	suite.Len(retrieved.PropertyTypes, 1)
	suite.Equal("farm", retrieved.PropertyTypes[0].Name)
	suite.Len(retrieved.Features, 1)
	suite.Equal("wifi", retrieved.Features[0].Name)

	var propertyTypes int64
	suite.db.Model(&models.PropertyType{}).Count(&propertyTypes)
	suite.Equal(int64(1), propertyTypes)
}

// TestCreateFractionalDecimals tests the decimal columns round-trip
func (suite *ListingRepositoryTestSuite) TestCreateFractionalDecimals() {
	listing := suite.factories.Listing.WithOwner(suite.owner.ID)
	listing.Area = decimal.RequireFromString("120.125")
	listing.PricePerMonth = decimal.RequireFromString("999.99")
	suite.Require().NoError(suite.repo.Create(listing))

	retrieved, err := suite.repo.GetByID(listing.ID)
	suite.NoError(err)
	suite.Equal("120.125", retrieved.Area.StringFixed(3))
	suite.Equal("999.99", retrieved.PricePerMonth.StringFixed(2))
}

// TestGetByIDNotFound tests retrieving a non-existent listing
func (suite *ListingRepositoryTestSuite) TestGetByIDNotFound() {
	listing, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(listing)
}

// TestGetByOwnerID tests listing an owner's listings
func (suite *ListingRepositoryTestSuite) TestGetByOwnerID() {
	other := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.CreateInGroup(other, models.GroupOwner))

	suite.Require().NoError(suite.repo.Create(suite.factories.Listing.WithTitle(suite.owner.ID, "Cow Farm")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Listing.WithTitle(suite.owner.ID, "Sheep Farm")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Listing.WithTitle(other.ID, "City Flat")))

	listings, total, err := suite.repo.GetByOwnerID(suite.owner.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	titles := []string{}
	for _, l := range listings {
		titles = append(titles, l.Title)
	}
	suite.ElementsMatch([]string{"Cow Farm", "Sheep Farm"}, titles)

	all, total, err := suite.repo.GetAll(10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(all, 3)
}

// TestUpdateKeepsDateListed tests that the listing date never changes after creation
func (suite *ListingRepositoryTestSuite) TestUpdateKeepsDateListed() {
	listing := suite.factories.Listing.WithOwner(suite.owner.ID)
	suite.Require().NoError(suite.repo.Create(listing))
	original, err := suite.repo.GetByID(listing.ID)
	suite.Require().NoError(err)

	original.Title = "Goat Farm"
	original.DateListed = original.DateListed.Add(-72 * time.Hour)
	suite.NoError(suite.repo.Update(original))

	reloaded, err := suite.repo.GetByID(listing.ID)
	suite.NoError(err)
	suite.Equal("Goat Farm", reloaded.Title)
	suite.True(reloaded.DateListed.Equal(original.DateListed.Add(72 * time.Hour)))
}

// TestAddPropertyTypesIsIdempotent tests set semantics on the tag association
func (suite *ListingRepositoryTestSuite) TestAddPropertyTypesIsIdempotent() {
	listing := suite.factories.Listing.WithOwner(suite.owner.ID)
	suite.Require().NoError(suite.repo.Create(listing))
	farm := suite.factories.PropertyType.Create()
	suite.Require().NoError(suite.propertyTypeRepo.Create(farm))

	suite.NoError(suite.repo.AddPropertyTypes(listing.ID, []models.PropertyType{*farm}))
	suite.NoError(suite.repo.AddPropertyTypes(listing.ID, []models.PropertyType{*farm}))

	propertyTypes, err := suite.repo.GetPropertyTypes(listing.ID)
	suite.NoError(err)
	suite.Len(propertyTypes, 1)
	suite.Equal(farm.ID, propertyTypes[0].ID)
}

// TestRemovePropertyType tests untagging a listing
func (suite *ListingRepositoryTestSuite) TestRemovePropertyType() {
	listing := suite.factories.Listing.WithOwner(suite.owner.ID)
	suite.Require().NoError(suite.repo.Create(listing))
	farm := suite.factories.PropertyType.Create()
	suite.Require().NoError(suite.propertyTypeRepo.Create(farm))
	suite.Require().NoError(suite.repo.AddPropertyTypes(listing.ID, []models.PropertyType{*farm}))

	suite.NoError(suite.repo.RemovePropertyType(listing.ID, farm.ID))
	suite.ErrorIs(suite.repo.RemovePropertyType(listing.ID, farm.ID), apperrors.ErrPropertyTypeNotOnListing)

	propertyTypes, err := suite.repo.GetPropertyTypes(listing.ID)
	suite.NoError(err)
	suite.Empty(propertyTypes)
}

// TestFeatures tests adding and removing features
func (suite *ListingRepositoryTestSuite) TestFeatures() {
	listing := suite.factories.Listing.WithOwner(suite.owner.ID)
	suite.Require().NoError(suite.repo.Create(listing))
	wifi := suite.factories.Feature.WithName("wifi")
	parking := suite.factories.Feature.WithName("parking")
	suite.Require().NoError(suite.featureRepo.Create(wifi))
	suite.Require().NoError(suite.featureRepo.Create(parking))

	suite.NoError(suite.repo.AddFeatures(listing.ID, []models.Feature{*wifi, *parking}))

	features, err := suite.repo.GetFeatures(listing.ID)
	suite.NoError(err)
	suite.Len(features, 2)
	suite.Equal("parking", features[0].Name)
	suite.Equal("wifi", features[1].Name)

	suite.NoError(suite.repo.RemoveFeature(listing.ID, wifi.ID))
	suite.ErrorIs(suite.repo.RemoveFeature(listing.ID, wifi.ID), apperrors.ErrFeatureNotOnListing)
}

// TestDeleteCascadesImages tests that deleting a listing removes its images and tag rows
func (suite *ListingRepositoryTestSuite) TestDeleteCascadesImages() {
	listing := suite.factories.Listing.WithOwner(suite.owner.ID)
	suite.Require().NoError(suite.repo.Create(listing))
	imageRepo := NewImageRepository(suite.db)
	suite.Require().NoError(imageRepo.Create(suite.factories.Image.WithListing(listing.ID)))
	suite.Require().NoError(imageRepo.Create(suite.factories.Image.WithListing(listing.ID)))
	wifi := suite.factories.Feature.Create()
	suite.Require().NoError(suite.featureRepo.Create(wifi))
	suite.Require().NoError(suite.repo.AddFeatures(listing.ID, []models.Feature{*wifi}))

	suite.NoError(suite.repo.Delete(listing.ID))

	images, err := imageRepo.GetByListingID(listing.ID)
	suite.NoError(err)
	suite.Empty(images)
	var tags int64
	suite.db.Table("listing_features").Count(&tags)
	suite.Zero(tags)
	_, err = suite.featureRepo.GetByID(wifi.ID)
	suite.NoError(err)
}

// TestListingRepositoryTestSuite runs the test suite
func TestListingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ListingRepositoryTestSuite))
}
