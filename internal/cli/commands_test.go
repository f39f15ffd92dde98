package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"renthub-backend/internal/cli"
	"renthub-backend/internal/config"
	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"
	"renthub-backend/internal/repository"
	"renthub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CommandsTestSuite runs the CLI against an in-memory database
type CommandsTestSuite struct {
	suite.Suite
	db    *gorm.DB
	cfg   *config.Config
	users *repository.UserRepository
}

// SetupTest gives every test a fresh database and config
func (suite *CommandsTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.cfg = &config.Config{
		DatabaseDriver:     "sqlite",
		Environment:        "test",
		BcryptCost:         bcrypt.MinCost,
		PhoneDefaultRegion: "US",
		SeedDataDir:        suite.T().TempDir(),
	}
	suite.users = repository.NewUserRepository(suite.db)
}

func (suite *CommandsTestSuite) run(args ...string) (string, error) {
	root := cli.NewRootCmd(func() (*cli.Env, error) {
		return cli.NewEnv(suite.cfg, suite.db), nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// TestMigrate tests that migrate is safe to repeat
func (suite *CommandsTestSuite) TestMigrate() {
	out, err := suite.run("migrate")
	suite.NoError(err)
	suite.Contains(out, "Schema is up to date.")

	_, err = suite.run("migrate")
	suite.NoError(err)

	var groups int64
	suite.db.Model(&models.Group{}).Count(&groups)
	suite.Equal(int64(2), groups)
}

// TestCreateSuperuser tests creating a superuser from flags
func (suite *CommandsTestSuite) TestCreateSuperuser() {
	out, err := suite.run("createsuperuser", "--email", "admin@EXAMPLE.com", "--password", "s3cret", "--phone", "+12345678900")

	suite.NoError(err)
	suite.Contains(out, "Superuser admin@example.com created")

	user, err := suite.users.GetByEmail("admin@example.com")
	suite.Require().NoError(err)
	suite.Equal("admin@example.com", user.Username)
	suite.True(user.IsStaff)
	suite.True(user.IsSuperuser)
	suite.True(user.CheckPassword("s3cret"))
	suite.Empty(user.Groups)
}

// TestCreateSuperuserWithoutPhone tests that the phone number is required
func (suite *CommandsTestSuite) TestCreateSuperuserWithoutPhone() {
	_, err := suite.run("createsuperuser", "--email", "admin@example.com")

	suite.ErrorIs(err, apperrors.ErrPhoneNumberRequired)
}

// TestCreateUser tests that createuser puts the user in the role's group
func (suite *CommandsTestSuite) TestCreateUser() {
	out, err := suite.run("createuser", "--role", "Owner", "--username", "alice",
		"--email", "alice@example.com", "--password", "pw", "--phone", "(234) 567-8900")

	suite.NoError(err)
	suite.Contains(out, "owner alice created")

	user, err := suite.users.GetByUsername("alice")
	suite.Require().NoError(err)
	suite.Equal("+12345678900", user.PhoneNumber)
	suite.True(user.HasGroup(models.GroupOwner))
	suite.False(user.HasGroup(models.GroupTenant))
}

// TestCreateUserUnknownRole tests rejecting a role other than owner or tenant
func (suite *CommandsTestSuite) TestCreateUserUnknownRole() {
	_, err := suite.run("createuser", "--role", "landlord", "--username", "carol",
		"--email", "carol@example.com", "--phone", "+12345678900")

	suite.True(errors.Is(err, apperrors.ErrInvalidRole))
	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	suite.Zero(count)
}

// TestCreateUserMissingFlag tests that required flags are enforced
func (suite *CommandsTestSuite) TestCreateUserMissingFlag() {
	_, err := suite.run("createuser", "--role", "tenant", "--username", "bob")

	suite.Error(err)
	suite.Contains(err.Error(), "email")
}

// TestListUsers tests printing the members of one role
func (suite *CommandsTestSuite) TestListUsers() {
	_, err := suite.run("createuser", "--role", "tenant", "--username", "bob",
		"--email", "bob@example.com", "--phone", "+12345678900", "--first-name", "Bob", "--last-name", "Stone")
	suite.Require().NoError(err)
	_, err = suite.run("createuser", "--role", "owner", "--username", "alice",
		"--email", "alice@example.com", "--phone", "+12345678900")
	suite.Require().NoError(err)

	out, err := suite.run("listusers", "--role", "tenant")

	suite.NoError(err)
	suite.Contains(out, "bob@example.com")
	suite.Contains(out, "Bob Stone")
	suite.NotContains(out, "alice@example.com")
	suite.Contains(out, "1 of 1 tenants")
}

// TestSeedUsesConfiguredDataDir tests seeding from SEED_DATA_DIR when no flag is given
func (suite *CommandsTestSuite) TestSeedUsesConfiguredDataDir() {
	data := "property_types:\n  - name: farm\nfeatures:\n  - name: wifi\n  - name: parking\n"
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.cfg.SeedDataDir, "catalog.yaml"), []byte(data), 0o644))

	out, err := suite.run("seed")

	suite.NoError(err)
	suite.Contains(out, "Property types: 1 created, 1 total")
	suite.Contains(out, "Features: 2 created, 2 total")
	suite.Contains(out, "Accounts: 0 created, 0 total")
}

// TestSeedDataDirFlag tests that --data-dir overrides the configured directory
func (suite *CommandsTestSuite) TestSeedDataDirFlag() {
	dir := suite.T().TempDir()
	suite.Require().NoError(os.WriteFile(filepath.Join(dir, "features.yml"), []byte("features:\n  - name: balcony\n"), 0o644))

	out, err := suite.run("seed", "--data-dir", dir)

	suite.NoError(err)
	suite.Contains(out, "Features: 1 created, 1 total")
}

// TestCommandsTestSuite runs the test suite
func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}
