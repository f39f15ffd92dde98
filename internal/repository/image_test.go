package repository

import (
	"testing"

	"renthub-backend/internal/database/models"
	"renthub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ImageRepositoryTestSuite tests the ImageRepository
type ImageRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *ImageRepository
	factories *testutils.FactorySet
	listing   *models.Listing
}

// SetupTest creates an owner with one listing
func (suite *ImageRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewImageRepository(suite.db)
	suite.factories = testutils.NewFactorySet()

	owner := suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(suite.db).CreateInGroup(owner, models.GroupOwner))
	suite.listing = suite.factories.Listing.WithOwner(owner.ID)
	suite.Require().NoError(NewListingRepository(suite.db).Create(suite.listing))
}

// TestCreateAndGet tests attaching images to a listing
func (suite *ImageRepositoryTestSuite) TestCreateAndGet() {
	first := suite.factories.Image.WithListing(suite.listing.ID)
	second := suite.factories.Image.WithListing(suite.listing.ID)
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	retrieved, err := suite.repo.GetByID(first.ID)
	suite.NoError(err)
	suite.Equal(first.Path, retrieved.Path)
	suite.Equal(suite.listing.ID, retrieved.ListingID)

	images, err := suite.repo.GetByListingID(suite.listing.ID)
	suite.NoError(err)
	suite.Len(images, 2)
}

// TestDelete tests deleting a single image
func (suite *ImageRepositoryTestSuite) TestDelete() {
	image := suite.factories.Image.WithListing(suite.listing.ID)
	suite.Require().NoError(suite.repo.Create(image))

	suite.NoError(suite.repo.Delete(image.ID))

	_, err := suite.repo.GetByID(image.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestImageRepositoryTestSuite runs the test suite
func TestImageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ImageRepositoryTestSuite))
}
