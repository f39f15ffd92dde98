package repository

import (
	"errors"

	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users and their group membership
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// inGroup restricts a users query to members of the named group
func inGroup(groupName string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN user_groups ON user_groups.user_id = users.id").
			Joins("JOIN groups ON groups.id = user_groups.group_id").
			Where("groups.name = ?", groupName)
	}
}

// Create creates a new user without any group membership
func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Omit("Groups").Create(user).Error; err != nil {
		return r.duplicateError(err, user)
	}
	return nil
}

// CreateInGroup creates the user and its membership in groupName in one transaction
func (r *UserRepository) CreateInGroup(user *models.User, groupName string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		group, err := findGroup(tx, groupName)
		if err != nil {
			return err
		}
		if err := tx.Omit("Groups").Create(user).Error; err != nil {
			return err
		}
		return tx.Model(user).Association("Groups").Append(group)
	})
	return r.duplicateError(err, user)
}

// GetByID retrieves a user by ID with its groups
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Groups").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Groups").First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Groups").First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	// Get total count
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Preload("Groups").Order("date_joined, id").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByGroup retrieves the members of a group with pagination
func (r *UserRepository) GetByGroup(groupName string, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Scopes(inGroup(groupName)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.User{}).
		Scopes(inGroup(groupName)).
		Preload("Groups").
		Order("users.date_joined, users.id").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByIDInGroup retrieves a user by ID only if it belongs to the group
func (r *UserRepository) GetByIDInGroup(id uuid.UUID, groupName string) (*models.User, error) {
	var user models.User
	err := r.db.Model(&models.User{}).
		Scopes(inGroup(groupName)).
		Preload("Groups").
		Where("users.id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// HasGroup reports whether the user belongs to the group
func (r *UserRepository) HasGroup(id uuid.UUID, groupName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Scopes(inGroup(groupName)).
		Where("users.id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetGroupNames lists the names of the groups the user belongs to
func (r *UserRepository) GetGroupNames(id uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Group{}).
		Joins("JOIN user_groups ON user_groups.group_id = groups.id").
		Where("user_groups.user_id = ?", id).
		Order("groups.name").
		Pluck("groups.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// AddToGroup adds an existing user to a group. Adding twice is a no-op.
func (r *UserRepository) AddToGroup(id uuid.UUID, groupName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		group, err := findGroup(tx, groupName)
		if err != nil {
			return err
		}
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&user).Association("Groups").Append(group)
	})
}

// Update updates a user's own columns; group membership is left untouched
func (r *UserRepository) Update(user *models.User) error {
	if err := r.db.Omit("Groups").Save(user).Error; err != nil {
		return r.duplicateError(err, user)
	}
	return nil
}

// Delete deletes a user together with everything that references it: the
// listings it owns (and their images and tags), its collections and its
// group membership.
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listingIDs []uuid.UUID
		if err := tx.Model(&models.Listing{}).Where("owner_id = ?", id).Pluck("id", &listingIDs).Error; err != nil {
			return err
		}
		if err := deleteListings(tx, listingIDs); err != nil {
			return err
		}

		var collectionIDs []uuid.UUID
		if err := tx.Model(&models.Collection{}).Where("tenant_id = ?", id).Pluck("id", &collectionIDs).Error; err != nil {
			return err
		}
		if err := deleteCollections(tx, collectionIDs); err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM user_groups WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

func findGroup(tx *gorm.DB, name string) (*models.Group, error) {
	var group models.Group
	if err := tx.First(&group, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// duplicateError maps a unique violation on a write of user to the column it
// collided on: ErrUserExists for the email, ErrUsernameExists otherwise.
func (r *UserRepository) duplicateError(err error, user *models.User) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	var count int64
	if lookupErr := r.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", user.Email, user.ID).
		Count(&count).Error; lookupErr == nil && count == 0 {
		return apperrors.ErrUsernameExists
	}
	return apperrors.ErrUserExists
}
