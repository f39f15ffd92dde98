package repository

import (
	"testing"

	"renthub-backend/internal/database/models"
	"renthub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CatalogRepositoryTestSuite tests the PropertyTypeRepository and FeatureRepository
type CatalogRepositoryTestSuite struct {
	suite.Suite
	db               *gorm.DB
	propertyTypeRepo *PropertyTypeRepository
	featureRepo      *FeatureRepository
	factories        *testutils.FactorySet
}

// SetupTest gives every test a fresh in-memory database
func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.propertyTypeRepo = NewPropertyTypeRepository(suite.db)
	suite.featureRepo = NewFeatureRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
}

// TestPropertyTypeCRUD tests the property type lifecycle
func (suite *CatalogRepositoryTestSuite) TestPropertyTypeCRUD() {
	farm := suite.factories.PropertyType.Create()
	suite.NoError(suite.propertyTypeRepo.Create(farm))

	byName, err := suite.propertyTypeRepo.GetByName("farm")
	suite.NoError(err)
	suite.Equal(farm.ID, byName.ID)
	suite.Equal("farm", byName.String())

	byName.Name = "ranch"
	suite.NoError(suite.propertyTypeRepo.Update(byName))
	renamed, err := suite.propertyTypeRepo.GetByID(farm.ID)
	suite.NoError(err)
	suite.Equal("ranch", renamed.Name)

	suite.NoError(suite.propertyTypeRepo.Delete(farm.ID))
	_, err = suite.propertyTypeRepo.GetByID(farm.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestPropertyTypeGetByIDs tests the bulk lookup used when tagging listings
func (suite *CatalogRepositoryTestSuite) TestPropertyTypeGetByIDs() {
	farm := suite.factories.PropertyType.WithName("farm")
	flat := suite.factories.PropertyType.WithName("flat")
	suite.Require().NoError(suite.propertyTypeRepo.Create(farm))
	suite.Require().NoError(suite.propertyTypeRepo.Create(flat))

	found, err := suite.propertyTypeRepo.GetByIDs([]uuid.UUID{flat.ID, farm.ID, uuid.New()})
	suite.NoError(err)
	suite.Len(found, 2)
	suite.Equal("farm", found[0].Name)
	suite.Equal("flat", found[1].Name)

	none, err := suite.propertyTypeRepo.GetByIDs(nil)
	suite.NoError(err)
	suite.Empty(none)
}

// TestPropertyTypeDeleteDetachesListings tests that deleting a tag keeps the listings
func (suite *CatalogRepositoryTestSuite) TestPropertyTypeDeleteDetachesListings() {
	owner := suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(suite.db).CreateInGroup(owner, models.GroupOwner))
	farm := suite.factories.PropertyType.Create()
	suite.Require().NoError(suite.propertyTypeRepo.Create(farm))
	listingRepo := NewListingRepository(suite.db)
	listing := suite.factories.Listing.WithOwner(owner.ID)
	listing.PropertyTypes = []models.PropertyType{*farm}
	suite.Require().NoError(listingRepo.Create(listing))

	suite.NoError(suite.propertyTypeRepo.Delete(farm.ID))

	retrieved, err := listingRepo.GetByID(listing.ID)
	suite.NoError(err)
	suite.Empty(retrieved.PropertyTypes)
}

// TestFeatureCRUD tests the feature lifecycle and pagination
func (suite *CatalogRepositoryTestSuite) TestFeatureCRUD() {
	for _, name := range []string{"wifi", "parking", "balcony"} {
		suite.Require().NoError(suite.featureRepo.Create(suite.factories.Feature.WithName(name)))
	}

	features, total, err := suite.featureRepo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(features, 2)
	suite.Equal("balcony", features[0].Name)
	suite.Equal("parking", features[1].Name)

	wifi, err := suite.featureRepo.GetByName("wifi")
	suite.NoError(err)
	suite.Equal("wifi", wifi.String())
	suite.NoError(suite.featureRepo.Delete(wifi.ID))
	_, err = suite.featureRepo.GetByName("wifi")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCatalogRepositoryTestSuite runs the test suite
func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
