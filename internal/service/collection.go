package service

import (
	"errors"
	"fmt"
	"strings"

	"renthub-backend/internal/database/models"
	apperrors "renthub-backend/internal/errors"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollectionService manages the listings tenants save into named collections
type CollectionService struct {
	repo        repository.CollectionRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	listingRepo repository.ListingRepositoryInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// Ensure CollectionService implements CollectionServiceInterface
var _ CollectionServiceInterface = (*CollectionService)(nil)

// NewCollectionService creates a new CollectionService
func NewCollectionService(
	repo repository.CollectionRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	listingRepo repository.ListingRepositoryInterface,
	validator *validator.Validate,
) *CollectionService {
	return &CollectionService{
		repo:        repo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
		validator:   validator,
		log:         logger.For("collections"),
	}
}

// CreateCollectionRequest represents the data needed to create a collection
type CreateCollectionRequest struct {
	Name       string      `json:"name" validate:"required,max=50"`
	TenantID   uuid.UUID   `json:"user_id" validate:"required"`
	ListingIDs []uuid.UUID `json:"listing_ids"`
}

// CreateCollection creates a collection for a Tenant, optionally pre-filled with listings
func (s *CollectionService) CreateCollection(req *CreateCollectionRequest) (*models.Collection, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	tenant, err := s.requireTenant(req.TenantID)
	if err != nil {
		return nil, err
	}
	var listings []models.Listing
	for _, id := range uniqueIDs(req.ListingIDs) {
		listing, err := s.getListing(id)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *listing)
	}

	collection := &models.Collection{
		Name:     req.Name,
		TenantID: tenant.ID,
		Listings: listings,
	}
	if err := s.repo.Create(collection); err != nil {
		s.log.WithError(err).WithField("user_id", tenant.ID).Error("failed to create collection")
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	collection.Tenant = *tenant

	s.log.WithFields(map[string]interface{}{
		"collection_id": collection.ID,
		"user_id":       tenant.ID,
	}).Info("collection created")
	return collection, nil
}

// GetCollection retrieves a collection with its listings
func (s *CollectionService) GetCollection(id uuid.UUID) (*models.Collection, error) {
	collection, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return collection, nil
}

// ListByTenant returns a tenant's collections ordered by name
func (s *CollectionService) ListByTenant(tenantID uuid.UUID) ([]models.Collection, error) {
	if _, err := s.requireTenant(tenantID); err != nil {
		return nil, err
	}
	collections, err := s.repo.GetByTenantID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// RenameCollection changes the name of a collection
func (s *CollectionService) RenameCollection(id uuid.UUID, name string) (*models.Collection, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.Var(name, "required,max=50"); err != nil {
		return nil, apperrors.NewValidationError("name", "name is required and must be at most 50 characters")
	}
	collection, err := s.GetCollection(id)
	if err != nil {
		return nil, err
	}
	collection.Name = name
	if err := s.repo.Update(collection); err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}
	return collection, nil
}

// DeleteCollection deletes a collection; its listings are kept
func (s *CollectionService) DeleteCollection(id uuid.UUID) error {
	if _, err := s.GetCollection(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	s.log.WithField("collection_id", id).Info("collection deleted")
	return nil
}

// AddListing saves a listing into a collection. Saving it again is a no-op.
func (s *CollectionService) AddListing(collectionID, listingID uuid.UUID) error {
	if _, err := s.GetCollection(collectionID); err != nil {
		return err
	}
	listing, err := s.getListing(listingID)
	if err != nil {
		return err
	}
	if err := s.repo.AddListings(collectionID, []models.Listing{*listing}); err != nil {
		return fmt.Errorf("failed to add listing to collection: %w", err)
	}
	return nil
}

// RemoveListing removes a listing from a collection
func (s *CollectionService) RemoveListing(collectionID, listingID uuid.UUID) error {
	if _, err := s.GetCollection(collectionID); err != nil {
		return err
	}
	if err := s.repo.RemoveListing(collectionID, listingID); err != nil {
		if errors.Is(err, apperrors.ErrListingNotInCollection) {
			return err
		}
		return fmt.Errorf("failed to remove listing from collection: %w", err)
	}
	return nil
}

// GetListings returns the listings saved in a collection
func (s *CollectionService) GetListings(collectionID uuid.UUID) ([]models.Listing, error) {
	if _, err := s.GetCollection(collectionID); err != nil {
		return nil, err
	}
	listings, err := s.repo.GetListings(collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection listings: %w", err)
	}
	return listings, nil
}

// requireTenant loads the user and checks it belongs to the Tenant group
func (s *CollectionService) requireTenant(id uuid.UUID) (*models.User, error) {
	tenant, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if !tenant.HasGroup(models.GroupTenant) {
		return nil, apperrors.ErrCollectionUserNotTenant
	}
	return tenant, nil
}

func (s *CollectionService) getListing(id uuid.UUID) (*models.Listing, error) {
	listing, err := s.listingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}
