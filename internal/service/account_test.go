package service_test

import (
	"errors"
	"strings"
	"testing"

	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"
	"renthub-backend/internal/mocks"
	"renthub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func boolPtr(b bool) *bool {
	return &b
}

// AccountManagerTestSuite defines the test suite for AccountManager
type AccountManagerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	accounts     *service.AccountManager
}

// SetupTest sets up the test suite
func (suite *AccountManagerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.accounts = service.NewAccountManager(suite.mockUserRepo, validator.New(), service.AccountOptions{
		BcryptCost: bcrypt.MinCost,
	})
}

// TearDownTest cleans up after each test
func (suite *AccountManagerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountManagerTestSuite) expectUnique(email, username string) {
	suite.mockUserRepo.EXPECT().GetByEmail(email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().GetByUsername(username).Return(nil, gorm.ErrRecordNotFound).Times(1)
}

// TestCreateUser tests that a valid account is normalized and persisted
func (suite *AccountManagerTestSuite) TestCreateUser() {
	suite.expectUnique("Alice@example.com", "alice")

	var saved *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			saved = u
			return nil
		}).
		Times(1)

	user, err := suite.accounts.CreateUser("  alice ", "  Alice@EXAMPLE.COM ", "s3cret", service.UserFields{
		FirstName:   "Alice",
		PhoneNumber: "+12345678900",
		About:       "Owns a farm",
	})

	suite.Require().NoError(err)
	suite.Same(saved, user)
	assert.Equal(suite.T(), "alice", user.Username)
	assert.Equal(suite.T(), "Alice@example.com", user.Email)
	assert.Equal(suite.T(), "+12345678900", user.PhoneNumber)
	assert.Equal(suite.T(), "Owns a farm", user.About)
	assert.NotEqual(suite.T(), "s3cret", user.Password)
	assert.True(suite.T(), user.CheckPassword("s3cret"))
	assert.True(suite.T(), user.IsActive)
	assert.False(suite.T(), user.IsStaff)
	assert.False(suite.T(), user.IsSuperuser)
	assert.Empty(suite.T(), user.Groups)
}

// TestCreateUserEmptyEmail tests that a missing email fails before any storage access
func (suite *AccountManagerTestSuite) TestCreateUserEmptyEmail() {
	for _, email := range []string{"", "   "} {
		user, err := suite.accounts.CreateUser("alice", email, "s3cret", service.UserFields{
			PhoneNumber: "+12345678900",
			IsStaff:     boolPtr(true),
		})

		suite.ErrorIs(err, apperrors.ErrEmailRequired)
		suite.True(apperrors.IsValidation(err))
		suite.Nil(user)
	}
}

// TestCreateUserInvalidEmail tests that a malformed address is rejected
func (suite *AccountManagerTestSuite) TestCreateUserInvalidEmail() {
	_, err := suite.accounts.CreateUser("alice", "not-an-email", "s3cret", service.UserFields{PhoneNumber: "+12345678900"})

	suite.ErrorIs(err, apperrors.ErrEmailInvalid)
}

// TestCreateUserInvalidUsername tests the username character set
func (suite *AccountManagerTestSuite) TestCreateUserInvalidUsername() {
	for _, username := range []string{"", "bob smith", "bob!", strings.Repeat("a", 151)} {
		_, err := suite.accounts.CreateUser(username, "bob@x.com", "s3cret", service.UserFields{PhoneNumber: "+12345678900"})

		suite.ErrorIs(err, apperrors.ErrInvalidUsername, username)
	}
}

// TestCreateUserPhoneNumberRequired tests that the phone number is mandatory
func (suite *AccountManagerTestSuite) TestCreateUserPhoneNumberRequired() {
	_, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{})

	suite.ErrorIs(err, apperrors.ErrPhoneNumberRequired)
}

// TestCreateUserPhoneNumberInvalid tests that numbers which do not parse as valid are rejected
func (suite *AccountManagerTestSuite) TestCreateUserPhoneNumberInvalid() {
	for _, phone := range []string{"12", "not a number", "+1000"} {
		_, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{PhoneNumber: phone})

		suite.ErrorIs(err, apperrors.ErrPhoneNumberInvalid, phone)
	}
}

// TestCreateUserNationalPhoneNumber tests that national numbers use the default region
func (suite *AccountManagerTestSuite) TestCreateUserNationalPhoneNumber() {
	suite.expectUnique("a@x.com", "alice")
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{PhoneNumber: "(234) 567-8900"})

	suite.Require().NoError(err)
	suite.Equal("+12345678900", user.PhoneNumber)
}

// TestCreateUserAboutTooLong tests the about text limit
func (suite *AccountManagerTestSuite) TestCreateUserAboutTooLong() {
	_, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{
		PhoneNumber: "+12345678900",
		About:       strings.Repeat("x", 501),
	})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestCreateUserEmptyPassword tests that an empty password yields an unusable password
func (suite *AccountManagerTestSuite) TestCreateUserEmptyPassword() {
	suite.expectUnique("a@x.com", "alice")
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := suite.accounts.CreateUser("alice", "a@x.com", "", service.UserFields{PhoneNumber: "+12345678900"})

	suite.Require().NoError(err)
	suite.False(user.HasUsablePassword())
	suite.False(user.CheckPassword(""))
}

// TestCreateUserExistingEmail tests the email pre-check
func (suite *AccountManagerTestSuite) TestCreateUserExistingEmail() {
	suite.mockUserRepo.EXPECT().GetByEmail("a@x.com").Return(&models.User{Email: "a@x.com"}, nil).Times(1)

	_, err := suite.accounts.CreateUser("alice", "a@X.com", "s3cret", service.UserFields{PhoneNumber: "+12345678900"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestCreateUserExistingUsername tests the username pre-check
func (suite *AccountManagerTestSuite) TestCreateUserExistingUsername() {
	suite.mockUserRepo.EXPECT().GetByEmail("a@x.com").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().GetByUsername("alice").Return(&models.User{Username: "alice"}, nil).Times(1)

	_, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{PhoneNumber: "+12345678900"})

	suite.ErrorIs(err, apperrors.ErrUsernameExists)
}

// TestCreateUserConcurrentDuplicate tests that a constraint violation at storage is surfaced as AlreadyExists
func (suite *AccountManagerTestSuite) TestCreateUserConcurrentDuplicate() {
	suite.expectUnique("a@x.com", "alice")
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrUserExists).Times(1)

	_, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{PhoneNumber: "+12345678900"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestCreateUserExplicitFlags tests that the flags in UserFields are persisted verbatim
func (suite *AccountManagerTestSuite) TestCreateUserExplicitFlags() {
	suite.expectUnique("a@x.com", "alice")
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{
		PhoneNumber: "+12345678900",
		IsStaff:     boolPtr(true),
		IsActive:    boolPtr(false),
	})

	suite.Require().NoError(err)
	suite.True(user.IsStaff)
	suite.False(user.IsSuperuser)
	suite.False(user.IsActive)
}

// TestCreateSuperuser tests the superuser defaults
func (suite *AccountManagerTestSuite) TestCreateSuperuser() {
	suite.expectUnique("admin@x.com", "admin@x.com")
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := suite.accounts.CreateSuperuser("admin@X.COM", "s3cret", service.UserFields{PhoneNumber: "+12345678900"})

	suite.Require().NoError(err)
	suite.True(user.IsStaff)
	suite.True(user.IsSuperuser)
	suite.Equal("admin@x.com", user.Email)
	suite.Equal("admin@x.com", user.Username)
}

// TestCreateSuperuserAcceptsAnyValidEmail tests that the username derived from the
// email is held to the email rules only
func (suite *AccountManagerTestSuite) TestCreateSuperuserAcceptsAnyValidEmail() {
	long := strings.Repeat("a", 60) + "@" + strings.Repeat("b", 40) + "." + strings.Repeat("c", 40) + ".example.com"
	for _, email := range []string{"o'brien@example.com", "a#b@example.com", long} {
		suite.Run(email, func() {
			suite.expectUnique(email, email)
			suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

			user, err := suite.accounts.CreateSuperuser(email, "pw", service.UserFields{PhoneNumber: "+12345678900"})

			suite.Require().NoError(err)
			suite.Equal(email, user.Username)
			suite.Equal(email, user.Email)
		})
	}
}

// TestCreateUserEmailLookupFailure tests that a storage error in the email pre-check is returned
func (suite *AccountManagerTestSuite) TestCreateUserEmailLookupFailure() {
	suite.mockUserRepo.EXPECT().GetByEmail("a@x.com").Return(nil, errors.New("connection refused")).Times(1)

	_, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{PhoneNumber: "+12345678900"})

	suite.Error(err)
	suite.False(apperrors.IsAlreadyExists(err))
	suite.Contains(err.Error(), "connection refused")
}

// TestCreateUserUsernameLookupFailure tests that a storage error in the username pre-check is returned
func (suite *AccountManagerTestSuite) TestCreateUserUsernameLookupFailure() {
	suite.mockUserRepo.EXPECT().GetByEmail("a@x.com").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().GetByUsername("alice").Return(nil, errors.New("connection refused")).Times(1)

	_, err := suite.accounts.CreateUser("alice", "a@x.com", "s3cret", service.UserFields{PhoneNumber: "+12345678900"})

	suite.Error(err)
	suite.Contains(err.Error(), "failed to check username")
}

// TestCreateSuperuserNotStaff tests that is_staff=false is rejected
func (suite *AccountManagerTestSuite) TestCreateSuperuserNotStaff() {
	_, err := suite.accounts.CreateSuperuser("admin@x.com", "s3cret", service.UserFields{
		PhoneNumber: "+12345678900",
		IsStaff:     boolPtr(false),
	})

	suite.ErrorIs(err, apperrors.ErrSuperuserMustBeStaff)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateSuperuserNotSuperuser tests that is_superuser=false is rejected
func (suite *AccountManagerTestSuite) TestCreateSuperuserNotSuperuser() {
	_, err := suite.accounts.CreateSuperuser("admin@x.com", "s3cret", service.UserFields{
		PhoneNumber: "+12345678900",
		IsStaff:     boolPtr(true),
		IsSuperuser: boolPtr(false),
	})

	suite.ErrorIs(err, apperrors.ErrSuperuserMustBeSuper)
}

// TestAccountManagerTestSuite runs the test suite
func TestAccountManagerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountManagerTestSuite))
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a@x.com", "a@x.com"},
		{"  Alice@EXAMPLE.COM  ", "Alice@example.com"},
		{"first.Last@Sub.Example.ORG", "first.Last@sub.example.org"},
		{"odd@local@Domain.COM", "odd@local@domain.com"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, service.NormalizeEmail(tt.in))
		})
	}
}
