package service_test

import (
	"testing"

	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"
	"renthub-backend/internal/mocks"
	"renthub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CollectionServiceTestSuite defines the test suite for CollectionService
type CollectionServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockCollectionRepo *mocks.MockCollectionRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockListingRepo    *mocks.MockListingRepositoryInterface
	collectionService  *service.CollectionService
	tenant             *models.User
}

// SetupTest sets up the test suite
func (suite *CollectionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCollectionRepo = mocks.NewMockCollectionRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockListingRepo = mocks.NewMockListingRepositoryInterface(suite.ctrl)
	suite.collectionService = service.NewCollectionService(
		suite.mockCollectionRepo,
		suite.mockUserRepo,
		suite.mockListingRepo,
		validator.New(),
	)
	suite.tenant = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "bob",
		Groups:    []models.Group{{Name: models.GroupTenant}},
	}
}

// TearDownTest cleans up after each test
func (suite *CollectionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCollection tests creating a tenant collection
func (suite *CollectionServiceTestSuite) TestCreateCollection() {
	suite.mockUserRepo.EXPECT().GetByID(suite.tenant.ID).Return(suite.tenant, nil).Times(1)
	suite.mockCollectionRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	collection, err := suite.collectionService.CreateCollection(&service.CreateCollectionRequest{
		Name:     " likes ",
		TenantID: suite.tenant.ID,
	})

	suite.Require().NoError(err)
	suite.Equal("likes", collection.Name)
	suite.Equal(suite.tenant.ID, collection.TenantID)
}

// TestCreateCollectionRequiresTenant tests that owners cannot keep collections
func (suite *CollectionServiceTestSuite) TestCreateCollectionRequiresTenant() {
	suite.tenant.Groups = []models.Group{{Name: models.GroupOwner}}
	suite.mockUserRepo.EXPECT().GetByID(suite.tenant.ID).Return(suite.tenant, nil).Times(1)

	_, err := suite.collectionService.CreateCollection(&service.CreateCollectionRequest{
		Name:     "likes",
		TenantID: suite.tenant.ID,
	})

	suite.ErrorIs(err, apperrors.ErrCollectionUserNotTenant)
}

// TestCreateCollectionUnknownTenant tests that the tenant must exist
func (suite *CollectionServiceTestSuite) TestCreateCollectionUnknownTenant() {
	suite.mockUserRepo.EXPECT().GetByID(suite.tenant.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.collectionService.CreateCollection(&service.CreateCollectionRequest{
		Name:     "likes",
		TenantID: suite.tenant.ID,
	})

	suite.ErrorIs(err, apperrors.ErrTenantNotFound)
}

// TestCreateCollectionNameTooLong tests the name limit
func (suite *CollectionServiceTestSuite) TestCreateCollectionNameTooLong() {
	_, err := suite.collectionService.CreateCollection(&service.CreateCollectionRequest{
		Name:     "a-name-that-is-definitely-longer-than-fifty-characters",
		TenantID: suite.tenant.ID,
	})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestAddListingUnknownListing tests adding a listing that does not exist
func (suite *CollectionServiceTestSuite) TestAddListingUnknownListing() {
	collectionID, listingID := uuid.New(), uuid.New()
	suite.mockCollectionRepo.EXPECT().GetByID(collectionID).Return(&models.Collection{}, nil)
	suite.mockListingRepo.EXPECT().GetByID(listingID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockCollectionRepo.EXPECT().AddListings(gomock.Any(), gomock.Any()).Times(0)

	err := suite.collectionService.AddListing(collectionID, listingID)

	suite.ErrorIs(err, apperrors.ErrListingNotFound)
}

// TestRemoveListingNotSaved tests removing a listing that is not in the collection
func (suite *CollectionServiceTestSuite) TestRemoveListingNotSaved() {
	collectionID, listingID := uuid.New(), uuid.New()
	suite.mockCollectionRepo.EXPECT().GetByID(collectionID).Return(&models.Collection{}, nil)
	suite.mockCollectionRepo.EXPECT().RemoveListing(collectionID, listingID).Return(apperrors.ErrListingNotInCollection)

	err := suite.collectionService.RemoveListing(collectionID, listingID)

	suite.ErrorIs(err, apperrors.ErrListingNotInCollection)
}

// TestRenameCollection tests renaming and its validation
func (suite *CollectionServiceTestSuite) TestRenameCollection() {
	existing := &models.Collection{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "likes"}
	suite.mockCollectionRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)
	suite.mockCollectionRepo.EXPECT().Update(existing).Return(nil)

	renamed, err := suite.collectionService.RenameCollection(existing.ID, "favourites")
	suite.NoError(err)
	suite.Equal("favourites", renamed.Name)

	_, err = suite.collectionService.RenameCollection(existing.ID, " ")
	suite.True(apperrors.IsValidation(err))
}

// TestGetCollectionNotFound tests retrieving a missing collection
func (suite *CollectionServiceTestSuite) TestGetCollectionNotFound() {
	id := uuid.New()
	suite.mockCollectionRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.collectionService.GetCollection(id)

	suite.ErrorIs(err, apperrors.ErrCollectionNotFound)
}

// TestCollectionServiceTestSuite runs the test suite
func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}
