package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPhoneRegion is used to parse phone numbers written without a country code
const DefaultPhoneRegion = "US"

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// UserFields carries the optional attributes of a new account. Nil flags take
// their defaults: not staff, not superuser, active.
type UserFields struct {
	FirstName   string `json:"first_name" validate:"max=150"`
	LastName    string `json:"last_name" validate:"max=150"`
	PhoneNumber string `json:"phone_number"`
	About       string `json:"about" validate:"max=500"`
	IsStaff     *bool  `json:"is_staff"`
	IsSuperuser *bool  `json:"is_superuser"`
	IsActive    *bool  `json:"is_active"`
}

// AccountOptions tunes password hashing and phone parsing
type AccountOptions struct {
	BcryptCost  int
	PhoneRegion string
}

// AccountManager creates user accounts. Accounts it creates belong to no group;
// use a RoleManager for owners and tenants.
type AccountManager struct {
	repo        repository.UserRepositoryInterface
	validator   *validator.Validate
	bcryptCost  int
	phoneRegion string
	log         *logger.Logger
}

// Ensure AccountManager implements AccountManagerInterface
var _ AccountManagerInterface = (*AccountManager)(nil)

// NewAccountManager creates a new AccountManager
func NewAccountManager(repo repository.UserRepositoryInterface, validator *validator.Validate, opts AccountOptions) *AccountManager {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	region := strings.ToUpper(strings.TrimSpace(opts.PhoneRegion))
	if region == "" {
		region = DefaultPhoneRegion
	}
	return &AccountManager{
		repo:        repo,
		validator:   validator,
		bcryptCost:  cost,
		phoneRegion: region,
		log:         logger.For("accounts"),
	}
}

// NormalizeEmail trims the address and lowercases its domain part. The local
// part is kept as written.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// CreateUser validates and persists a new account without any group membership
func (m *AccountManager) CreateUser(username, email, password string, fields UserFields) (*models.User, error) {
	user, err := m.prepare(username, email, password, fields, false)
	if err != nil {
		return nil, err
	}
	return m.create(user)
}

func (m *AccountManager) create(user *models.User) (*models.User, error) {
	if err := m.repo.Create(user); err != nil {
		m.log.WithError(err).WithField("email", user.Email).Error("failed to create user")
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	m.log.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user created")
	return user, nil
}

// CreateSuperuser creates a staff superuser identified by its email, which also
// becomes the username. Passing IsStaff or IsSuperuser explicitly false is rejected.
func (m *AccountManager) CreateSuperuser(email, password string, fields UserFields) (*models.User, error) {
	yes := true
	if fields.IsStaff == nil {
		fields.IsStaff = &yes
	}
	if fields.IsSuperuser == nil {
		fields.IsSuperuser = &yes
	}
	if !*fields.IsStaff {
		return nil, apperrors.ErrSuperuserMustBeStaff
	}
	if !*fields.IsSuperuser {
		return nil, apperrors.ErrSuperuserMustBeSuper
	}

	user, err := m.prepare("", email, password, fields, true)
	if err != nil {
		return nil, err
	}
	return m.create(user)
}

// prepare runs every check that precedes a write and returns the user to persist.
// With emailAsUsername the username is the normalized email and only the email
// rules apply to it.
func (m *AccountManager) prepare(username, email, password string, fields UserFields, emailAsUsername bool) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if err := m.validator.Var(email, "email,max=254"); err != nil {
		return nil, apperrors.ErrEmailInvalid
	}

	if emailAsUsername {
		username = email
	} else {
		username = strings.TrimSpace(username)
		if len(username) > 150 || !usernamePattern.MatchString(username) {
			return nil, apperrors.ErrInvalidUsername
		}
	}

	if err := m.validator.Struct(fields); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	phone, err := m.normalizePhone(fields.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if _, err := m.repo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := m.repo.GetByUsername(username); err == nil {
		return nil, apperrors.ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := &models.User{
		Username:    username,
		Email:       email,
		FirstName:   strings.TrimSpace(fields.FirstName),
		LastName:    strings.TrimSpace(fields.LastName),
		PhoneNumber: phone,
		About:       fields.About,
		IsActive:    true,
	}
	if fields.IsStaff != nil {
		user.IsStaff = *fields.IsStaff
	}
	if fields.IsSuperuser != nil {
		user.IsSuperuser = *fields.IsSuperuser
	}
	if fields.IsActive != nil {
		user.IsActive = *fields.IsActive
	}

	if err := user.SetPassword(password, m.bcryptCost); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return user, nil
}

// normalizePhone parses raw and returns it in E.164 form
func (m *AccountManager) normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperrors.ErrPhoneNumberRequired
	}
	num, err := phonenumbers.Parse(raw, m.phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", apperrors.ErrPhoneNumberInvalid
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
