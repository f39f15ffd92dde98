package seed_test

import (
	"errors"
	"testing"

	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"
	"renthub-backend/internal/mocks"
	"renthub-backend/internal/seed"
	"renthub-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SeederMockTestSuite tests the seeder's failure handling with mocked dependencies
type SeederMockTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	propertyTypes *mocks.MockPropertyTypeRepositoryInterface
	features      *mocks.MockFeatureRepositoryInterface
	users         *mocks.MockUserRepositoryInterface
	owners        *mocks.MockRoleManagerInterface
	seeder        *seed.Seeder
}

func (suite *SeederMockTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.propertyTypes = mocks.NewMockPropertyTypeRepositoryInterface(suite.ctrl)
	suite.features = mocks.NewMockFeatureRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.owners = mocks.NewMockRoleManagerInterface(suite.ctrl)
	suite.owners.EXPECT().Role().Return(models.RoleOwner).AnyTimes()

	suite.seeder = seed.NewSeeder(suite.propertyTypes, suite.features, suite.users, suite.owners)
}

func (suite *SeederMockTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestApplyStopsOnLookupError tests that a failing catalog query aborts the run
func (suite *SeederMockTestSuite) TestApplyStopsOnLookupError() {
	suite.propertyTypes.EXPECT().GetByName("farm").Return(nil, errors.New("connection reset"))

	result, err := suite.seeder.Apply(&seed.DataFile{
		PropertyTypes: []seed.PropertyTypeData{{Name: "farm"}},
		Features:      []seed.FeatureData{{Name: "wifi"}},
	})

	suite.Error(err)
	suite.Contains(err.Error(), "farm")
	suite.Nil(result)
}

// TestApplyCreatesMissingFeature tests the create path for a feature not yet stored
func (suite *SeederMockTestSuite) TestApplyCreatesMissingFeature() {
	suite.features.EXPECT().GetByName("wifi").Return(nil, gorm.ErrRecordNotFound)
	suite.features.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *models.Feature) error {
		suite.Equal("wifi", f.Name)
		return nil
	})
	suite.features.EXPECT().GetByName("parking").Return(&models.Feature{Name: "parking"}, nil)

	result, err := suite.seeder.Apply(&seed.DataFile{
		Features: []seed.FeatureData{{Name: "wifi"}, {Name: "parking"}},
	})

	suite.NoError(err)
	suite.Equal(seed.Counts{Created: 1, Total: 2}, result.Features)
}

// TestApplySkipsRejectedAccount tests that a rejected account does not stop the run
func (suite *SeederMockTestSuite) TestApplySkipsRejectedAccount() {
	suite.users.EXPECT().GetByEmail("alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.owners.EXPECT().
		CreateUser("alice", "alice@example.com", "", service.UserFields{}).
		Return(nil, apperrors.ErrPhoneNumberRequired)
	suite.users.EXPECT().GetByEmail("dave@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.owners.EXPECT().
		CreateUser("dave", "dave@example.com", "pw", service.UserFields{PhoneNumber: "+12345678900"}).
		Return(&models.User{Username: "dave"}, nil)

	result, err := suite.seeder.Apply(&seed.DataFile{
		Accounts: []seed.AccountData{
			{Role: "owner", Username: "alice", Email: "alice@example.com"},
			{Role: "owner", Username: "dave", Email: "dave@example.com", Password: "pw", PhoneNumber: "+12345678900"},
		},
	})

	suite.NoError(err)
	suite.Equal(seed.Counts{Created: 1, Total: 1}, result.Accounts)
}

// TestApplyIgnoresRoleWithoutManager tests an account whose role has no manager registered
func (suite *SeederMockTestSuite) TestApplyIgnoresRoleWithoutManager() {
	result, err := suite.seeder.Apply(&seed.DataFile{
		Accounts: []seed.AccountData{{Role: "tenant", Username: "bob", Email: "bob@example.com"}},
	})

	suite.NoError(err)
	suite.Equal(seed.Counts{}, result.Accounts)
}

func TestSeederMockTestSuite(t *testing.T) {
	suite.Run(t, new(SeederMockTestSuite))
}
