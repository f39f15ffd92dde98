package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrOwnerNotFound        = &NotFoundError{Entity: "owner"}
	ErrTenantNotFound       = &NotFoundError{Entity: "tenant"}
	ErrGroupNotFound        = &NotFoundError{Entity: "group"}
	ErrPropertyTypeNotFound = &NotFoundError{Entity: "property type"}
	ErrFeatureNotFound      = &NotFoundError{Entity: "feature"}
	ErrListingNotFound      = &NotFoundError{Entity: "listing"}
	ErrCollectionNotFound   = &NotFoundError{Entity: "collection"}
	ErrImageNotFound        = &NotFoundError{Entity: "image"}
)

// Already Exists Errors
var (
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrUsernameExists     = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrPropertyTypeExists = &AlreadyExistsError{Entity: "property type", Context: "with this name"}
	ErrFeatureExists      = &AlreadyExistsError{Entity: "feature", Context: "with this name"}
)

// Account Validation Errors
var (
	ErrEmailRequired          = &ValidationError{Field: "email", Message: "the email field must be filled"}
	ErrEmailInvalid           = &ValidationError{Field: "email", Message: "enter a valid email address"}
	ErrPhoneNumberRequired    = &ValidationError{Field: "phone_number", Message: "the phone number field must be filled"}
	ErrPhoneNumberInvalid     = &ValidationError{Field: "phone_number", Message: "enter a valid phone number"}
	ErrSuperuserMustBeStaff   = &ValidationError{Field: "is_staff", Message: "superuser must have is_staff=true"}
	ErrSuperuserMustBeSuper   = &ValidationError{Field: "is_superuser", Message: "superuser must have is_superuser=true"}
	ErrInvalidUsername        = &ValidationError{Field: "username", Message: "enter a valid username: letters, digits and @/./+/-/_ only"}
	ErrInvalidRole            = &ValidationError{Field: "role", Message: "role must be owner or tenant"}
	ErrInvalidPaginationParam = &ValidationError{Field: "limit", Message: "invalid pagination parameters"}
)

// Association Errors
var (
	ErrListingOwnerNotOwner     = &ValidationError{Field: "owner_id", Message: "listing owner must belong to the Owner group"}
	ErrCollectionUserNotTenant  = &ValidationError{Field: "user_id", Message: "collection user must belong to the Tenant group"}
	ErrListingNotInCollection   = errors.New("listing is not in this collection")
	ErrPropertyTypeNotOnListing = errors.New("property type is not associated with this listing")
	ErrFeatureNotOnListing      = errors.New("feature is not associated with this listing")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
