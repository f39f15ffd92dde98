package service

import (
	"errors"
	"fmt"

	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleManager is the role-scoped view over the user table. Every query is
// restricted to members of the role's group, and CreateUser writes the user
// and its membership in one transaction.
type RoleManager struct {
	accounts *AccountManager
	repo     repository.UserRepositoryInterface
	role     models.Role
	notFound error
	log      *logger.Logger
}

// Ensure RoleManager implements RoleManagerInterface
var _ RoleManagerInterface = (*RoleManager)(nil)

// NewOwnerManager creates the manager for owners
func NewOwnerManager(accounts *AccountManager) *RoleManager {
	return newRoleManager(accounts, models.RoleOwner, apperrors.ErrOwnerNotFound)
}

// NewTenantManager creates the manager for tenants
func NewTenantManager(accounts *AccountManager) *RoleManager {
	return newRoleManager(accounts, models.RoleTenant, apperrors.ErrTenantNotFound)
}

// NewRoleManager creates the manager for role, as given on the command line
func NewRoleManager(accounts *AccountManager, role models.Role) (*RoleManager, error) {
	switch role {
	case models.RoleOwner:
		return NewOwnerManager(accounts), nil
	case models.RoleTenant:
		return NewTenantManager(accounts), nil
	}
	return nil, apperrors.ErrInvalidRole
}

func newRoleManager(accounts *AccountManager, role models.Role, notFound error) *RoleManager {
	return &RoleManager{
		accounts: accounts,
		repo:     accounts.repo,
		role:     role,
		notFound: notFound,
		log:      logger.For("accounts").WithField("role", string(role)),
	}
}

// Role returns the role this manager scopes to
func (m *RoleManager) Role() models.Role {
	return m.role
}

// CreateUser validates like AccountManager.CreateUser, then persists the user
// together with its role group membership. Either both rows are written or neither.
func (m *RoleManager) CreateUser(username, email, password string, fields UserFields) (*models.User, error) {
	user, err := m.accounts.prepare(username, email, password, fields, false)
	if err != nil {
		return nil, err
	}

	if err := m.repo.CreateInGroup(user, m.role.GroupName()); err != nil {
		m.log.WithError(err).WithField("email", user.Email).Error("failed to create user")
		if apperrors.IsAlreadyExists(err) || errors.Is(err, apperrors.ErrGroupNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create %s: %w", m.role, err)
	}

	m.log.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user created")
	return user, nil
}

// List returns the members of the role group with pagination
func (m *RoleManager) List(limit, offset int) ([]models.User, int64, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	users, total, err := m.repo.GetByGroup(m.role.GroupName(), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %ss: %w", m.role, err)
	}
	return users, total, nil
}

// Get returns the user with id if it belongs to the role group
func (m *RoleManager) Get(id uuid.UUID) (*models.User, error) {
	user, err := m.repo.GetByIDInGroup(id, m.role.GroupName())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, m.notFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", m.role, err)
	}
	return user, nil
}

// Contains reports whether the user with id belongs to the role group
func (m *RoleManager) Contains(id uuid.UUID) (bool, error) {
	ok, err := m.repo.HasGroup(id, m.role.GroupName())
	if err != nil {
		return false, fmt.Errorf("failed to check %s membership: %w", m.role, err)
	}
	return ok, nil
}

// Assign adds an existing user to the role group. Assigning twice is a no-op.
func (m *RoleManager) Assign(id uuid.UUID) error {
	if err := m.repo.AddToGroup(id, m.role.GroupName()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			return err
		}
		return fmt.Errorf("failed to assign %s: %w", m.role, err)
	}
	m.log.WithField("user_id", id).Info("user assigned to role")
	return nil
}
