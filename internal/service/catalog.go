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

// CatalogEntryRequest names a property type or a feature
type CatalogEntryRequest struct {
	Name string `json:"name" validate:"required,max=250"`
}

// PropertyTypeService provides property type catalog operations
type PropertyTypeService struct {
	repo      repository.PropertyTypeRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure PropertyTypeService implements PropertyTypeServiceInterface
var _ PropertyTypeServiceInterface = (*PropertyTypeService)(nil)

// NewPropertyTypeService creates a new PropertyTypeService
func NewPropertyTypeService(repo repository.PropertyTypeRepositoryInterface, validator *validator.Validate) *PropertyTypeService {
	return &PropertyTypeService{
		repo:      repo,
		validator: validator,
		log:       logger.For("catalog").WithField("catalog", "property_type"),
	}
}

// Create adds a property type. Names are unique within the catalog.
func (s *PropertyTypeService) Create(req *CatalogEntryRequest) (*models.PropertyType, error) {
	name, err := validateCatalogName(s.validator, req)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByName(name); err == nil {
		return nil, apperrors.ErrPropertyTypeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check property type name: %w", err)
	}

	propertyType := &models.PropertyType{Name: name}
	if err := s.repo.Create(propertyType); err != nil {
		return nil, fmt.Errorf("failed to create property type: %w", err)
	}
	s.log.WithField("name", name).Info("property type created")
	return propertyType, nil
}

// Get retrieves a property type by ID
func (s *PropertyTypeService) Get(id uuid.UUID) (*models.PropertyType, error) {
	propertyType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyTypeNotFound
		}
		return nil, fmt.Errorf("failed to get property type: %w", err)
	}
	return propertyType, nil
}

// GetByName retrieves a property type by name
func (s *PropertyTypeService) GetByName(name string) (*models.PropertyType, error) {
	propertyType, err := s.repo.GetByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyTypeNotFound
		}
		return nil, fmt.Errorf("failed to get property type: %w", err)
	}
	return propertyType, nil
}

// List returns property types ordered by name
func (s *PropertyTypeService) List(limit, offset int) ([]models.PropertyType, int64, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	propertyTypes, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list property types: %w", err)
	}
	return propertyTypes, total, nil
}

// Rename changes the name of a property type
func (s *PropertyTypeService) Rename(id uuid.UUID, req *CatalogEntryRequest) (*models.PropertyType, error) {
	name, err := validateCatalogName(s.validator, req)
	if err != nil {
		return nil, err
	}
	propertyType, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.repo.GetByName(name); err == nil {
		if existing.ID != id {
			return nil, apperrors.ErrPropertyTypeExists
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check property type name: %w", err)
	}

	propertyType.Name = name
	if err := s.repo.Update(propertyType); err != nil {
		return nil, fmt.Errorf("failed to update property type: %w", err)
	}
	return propertyType, nil
}

// Delete removes a property type and untags every listing that had it
func (s *PropertyTypeService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete property type: %w", err)
	}
	s.log.WithField("id", id).Info("property type deleted")
	return nil
}

// FeatureService provides feature catalog operations
type FeatureService struct {
	repo      repository.FeatureRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure FeatureService implements FeatureServiceInterface
var _ FeatureServiceInterface = (*FeatureService)(nil)

// NewFeatureService creates a new FeatureService
func NewFeatureService(repo repository.FeatureRepositoryInterface, validator *validator.Validate) *FeatureService {
	return &FeatureService{
		repo:      repo,
		validator: validator,
		log:       logger.For("catalog").WithField("catalog", "feature"),
	}
}

// Create adds a feature. Names are unique within the catalog.
func (s *FeatureService) Create(req *CatalogEntryRequest) (*models.Feature, error) {
	name, err := validateCatalogName(s.validator, req)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByName(name); err == nil {
		return nil, apperrors.ErrFeatureExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check feature name: %w", err)
	}

	feature := &models.Feature{Name: name}
	if err := s.repo.Create(feature); err != nil {
		return nil, fmt.Errorf("failed to create feature: %w", err)
	}
	s.log.WithField("name", name).Info("feature created")
	return feature, nil
}

// Get retrieves a feature by ID
func (s *FeatureService) Get(id uuid.UUID) (*models.Feature, error) {
	feature, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeatureNotFound
		}
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	return feature, nil
}

// GetByName retrieves a feature by name
func (s *FeatureService) GetByName(name string) (*models.Feature, error) {
	feature, err := s.repo.GetByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeatureNotFound
		}
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	return feature, nil
}

// List returns features ordered by name
func (s *FeatureService) List(limit, offset int) ([]models.Feature, int64, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	features, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list features: %w", err)
	}
	return features, total, nil
}

// Rename changes the name of a feature
func (s *FeatureService) Rename(id uuid.UUID, req *CatalogEntryRequest) (*models.Feature, error) {
	name, err := validateCatalogName(s.validator, req)
	if err != nil {
		return nil, err
	}
	feature, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.repo.GetByName(name); err == nil {
		if existing.ID != id {
			return nil, apperrors.ErrFeatureExists
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check feature name: %w", err)
	}

	feature.Name = name
	if err := s.repo.Update(feature); err != nil {
		return nil, fmt.Errorf("failed to update feature: %w", err)
	}
	return feature, nil
}

// Delete removes a feature and detaches it from every listing
func (s *FeatureService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete feature: %w", err)
	}
	s.log.WithField("id", id).Info("feature deleted")
	return nil
}

func validateCatalogName(v *validator.Validate, req *CatalogEntryRequest) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := v.Struct(req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}
	return req.Name, nil
}
