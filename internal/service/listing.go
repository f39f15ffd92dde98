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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListingService provides listing business logic
type ListingService struct {
	repo             repository.ListingRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	propertyTypeRepo repository.PropertyTypeRepositoryInterface
	featureRepo      repository.FeatureRepositoryInterface
	validator        *validator.Validate
	log              *logger.Logger
}

// Ensure ListingService implements ListingServiceInterface
var _ ListingServiceInterface = (*ListingService)(nil)

// NewListingService creates a new ListingService
func NewListingService(
	repo repository.ListingRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	propertyTypeRepo repository.PropertyTypeRepositoryInterface,
	featureRepo repository.FeatureRepositoryInterface,
	validator *validator.Validate,
) *ListingService {
	return &ListingService{
		repo:             repo,
		userRepo:         userRepo,
		propertyTypeRepo: propertyTypeRepo,
		featureRepo:      featureRepo,
		validator:        validator,
		log:              logger.For("listings"),
	}
}

// CreateListingRequest represents the data needed to create a listing
type CreateListingRequest struct {
	Title           string          `json:"title" validate:"required,max=250"`
	Description     string          `json:"description" validate:"max=500"`
	Location        string          `json:"location" validate:"required,max=250"`
	Area            decimal.Decimal `json:"area"`
	PricePerMonth   decimal.Decimal `json:"price_per_month"`
	Bedrooms        int             `json:"bedrooms" validate:"gte=0"`
	Bathroom        int             `json:"bathroom" validate:"gte=0"`
	OwnerID         uuid.UUID       `json:"owner_id" validate:"required"`
	PropertyTypeIDs []uuid.UUID     `json:"property_type_ids"`
	FeatureIDs      []uuid.UUID     `json:"feature_ids"`
}

// UpdateListingRequest represents the listing fields that can change. The
// listing date is fixed at creation.
type UpdateListingRequest struct {
	Title         *string          `json:"title" validate:"omitempty,min=1,max=250"`
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	Location      *string          `json:"location" validate:"omitempty,min=1,max=250"`
	Area          *decimal.Decimal `json:"area"`
	PricePerMonth *decimal.Decimal `json:"price_per_month"`
	Bedrooms      *int             `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathroom      *int             `json:"bathroom" validate:"omitempty,gte=0"`
	OwnerID       *uuid.UUID       `json:"owner_id"`
}

// CreateListing creates a listing owned by an Owner and tagged with existing
// property types and features
func (s *ListingService) CreateListing(req *CreateListingRequest) (*models.Listing, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Location = strings.TrimSpace(req.Location)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateMeasures(req.Area, req.PricePerMonth); err != nil {
		return nil, err
	}
	owner, err := s.requireOwner(req.OwnerID)
	if err != nil {
		return nil, err
	}
	propertyTypes, err := s.resolvePropertyTypes(req.PropertyTypeIDs)
	if err != nil {
		return nil, err
	}
	features, err := s.resolveFeatures(req.FeatureIDs)
	if err != nil {
		return nil, err
	}

	listing := &models.Listing{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Area:          req.Area,
		PricePerMonth: req.PricePerMonth,
		Bedrooms:      req.Bedrooms,
		Bathroom:      req.Bathroom,
		OwnerID:       owner.ID,
		PropertyTypes: propertyTypes,
		Features:      features,
	}
	if err := s.repo.Create(listing); err != nil {
		s.log.WithError(err).WithField("owner_id", owner.ID).Error("failed to create listing")
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	listing.Owner = *owner

	s.log.WithFields(map[string]interface{}{
		"listing_id": listing.ID,
		"owner_id":   owner.ID,
	}).Info("listing created")
	return listing, nil
}

// GetListing retrieves a listing with its owner, tags and images
func (s *ListingService) GetListing(id uuid.UUID) (*models.Listing, error) {
	listing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

// ListListings returns all listings, newest first
func (s *ListingService) ListListings(limit, offset int) ([]models.Listing, int64, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	listings, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, total, nil
}

// ListByOwner returns the listings of one owner, newest first
func (s *ListingService) ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.Listing, int64, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.requireOwner(ownerID); err != nil {
		return nil, 0, err
	}
	listings, total, err := s.repo.GetByOwnerID(ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, total, nil
}

// UpdateListing applies the non-nil fields of req
func (s *ListingService) UpdateListing(id uuid.UUID, req *UpdateListingRequest) (*models.Listing, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	listing, err := s.GetListing(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		listing.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Location != nil {
		listing.Location = strings.TrimSpace(*req.Location)
	}
	if req.Area != nil {
		listing.Area = *req.Area
	}
	if req.PricePerMonth != nil {
		listing.PricePerMonth = *req.PricePerMonth
	}
	if req.Bedrooms != nil {
		listing.Bedrooms = *req.Bedrooms
	}
	if req.Bathroom != nil {
		listing.Bathroom = *req.Bathroom
	}
	if req.OwnerID != nil && *req.OwnerID != listing.OwnerID {
		owner, err := s.requireOwner(*req.OwnerID)
		if err != nil {
			return nil, err
		}
		listing.OwnerID = owner.ID
		listing.Owner = *owner
	}
	if listing.Title == "" || listing.Location == "" {
		return nil, apperrors.NewValidationError("title", "title and location must not be blank")
	}
	if err := validateMeasures(listing.Area, listing.PricePerMonth); err != nil {
		return nil, err
	}

	if err := s.repo.Update(listing); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return listing, nil
}

// DeleteListing deletes a listing along with its images
func (s *ListingService) DeleteListing(id uuid.UUID) error {
	if _, err := s.GetListing(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.log.WithError(err).WithField("listing_id", id).Error("failed to delete listing")
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	s.log.WithField("listing_id", id).Info("listing deleted")
	return nil
}

// AddPropertyTypes tags a listing with existing property types
func (s *ListingService) AddPropertyTypes(listingID uuid.UUID, propertyTypeIDs []uuid.UUID) error {
	if _, err := s.GetListing(listingID); err != nil {
		return err
	}
	propertyTypes, err := s.resolvePropertyTypes(propertyTypeIDs)
	if err != nil {
		return err
	}
	if err := s.repo.AddPropertyTypes(listingID, propertyTypes); err != nil {
		return fmt.Errorf("failed to add property types: %w", err)
	}
	return nil
}

// RemovePropertyType untags a listing
func (s *ListingService) RemovePropertyType(listingID, propertyTypeID uuid.UUID) error {
	if _, err := s.GetListing(listingID); err != nil {
		return err
	}
	if err := s.repo.RemovePropertyType(listingID, propertyTypeID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyTypeNotOnListing) {
			return err
		}
		return fmt.Errorf("failed to remove property type: %w", err)
	}
	return nil
}

// AddFeatures tags a listing with existing features
func (s *ListingService) AddFeatures(listingID uuid.UUID, featureIDs []uuid.UUID) error {
	if _, err := s.GetListing(listingID); err != nil {
		return err
	}
	features, err := s.resolveFeatures(featureIDs)
	if err != nil {
		return err
	}
	if err := s.repo.AddFeatures(listingID, features); err != nil {
		return fmt.Errorf("failed to add features: %w", err)
	}
	return nil
}

// RemoveFeature removes a feature from a listing
func (s *ListingService) RemoveFeature(listingID, featureID uuid.UUID) error {
	if _, err := s.GetListing(listingID); err != nil {
		return err
	}
	if err := s.repo.RemoveFeature(listingID, featureID); err != nil {
		if errors.Is(err, apperrors.ErrFeatureNotOnListing) {
			return err
		}
		return fmt.Errorf("failed to remove feature: %w", err)
	}
	return nil
}

// requireOwner loads the user and checks it belongs to the Owner group
func (s *ListingService) requireOwner(id uuid.UUID) (*models.User, error) {
	owner, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if !owner.HasGroup(models.GroupOwner) {
		return nil, apperrors.ErrListingOwnerNotOwner
	}
	return owner, nil
}

func (s *ListingService) resolvePropertyTypes(ids []uuid.UUID) ([]models.PropertyType, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	propertyTypes, err := s.propertyTypeRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get property types: %w", err)
	}
	if len(propertyTypes) != len(ids) {
		return nil, apperrors.ErrPropertyTypeNotFound
	}
	return propertyTypes, nil
}

func (s *ListingService) resolveFeatures(ids []uuid.UUID) ([]models.Feature, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	features, err := s.featureRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get features: %w", err)
	}
	if len(features) != len(ids) {
		return nil, apperrors.ErrFeatureNotFound
	}
	return features, nil
}

// validateMeasures checks area and price against their column precision
func validateMeasures(area, price decimal.Decimal) error {
	if err := checkDecimal("area", area, models.AreaMaxDigits, models.AreaDecimalPlaces); err != nil {
		return err
	}
	return checkDecimal("price_per_month", price, models.PriceMaxDigits, models.PriceDecimalPlaces)
}

// checkDecimal rejects negative values and values that do not fit in
// maxDigits digits with places of them after the decimal point
func checkDecimal(field string, d decimal.Decimal, maxDigits, places int) error {
	if d.IsNegative() {
		return apperrors.NewValidationError(field, "must not be negative")
	}
	if !d.Equal(d.Truncate(int32(places))) {
		return apperrors.NewValidationError(field, fmt.Sprintf("ensure that there are no more than %d decimal places", places))
	}
	if d.GreaterThanOrEqual(decimal.New(1, int32(maxDigits-places))) {
		return apperrors.NewValidationError(field, fmt.Sprintf("ensure that there are no more than %d digits before the decimal point", maxDigits-places))
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
