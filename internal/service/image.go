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

// ImageService records the images attached to listings. Only the stored path
// is kept; the file itself lives in whatever storage the caller uses.
type ImageService struct {
	repo        repository.ImageRepositoryInterface
	listingRepo repository.ListingRepositoryInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// NewImageService creates a new ImageService
func NewImageService(repo repository.ImageRepositoryInterface, listingRepo repository.ListingRepositoryInterface, validator *validator.Validate) *ImageService {
	return &ImageService{
		repo:        repo,
		listingRepo: listingRepo,
		validator:   validator,
		log:         logger.For("images"),
	}
}

// AddImage attaches the image stored at path to a listing
func (s *ImageService) AddImage(listingID uuid.UUID, path string) (*models.Image, error) {
	path = strings.TrimSpace(path)
	if err := s.validator.Var(path, "required,max=255"); err != nil {
		return nil, apperrors.NewValidationError("path", "path is required and must be at most 255 characters")
	}
	if err := s.requireListing(listingID); err != nil {
		return nil, err
	}

	image := &models.Image{ListingID: listingID, Path: path}
	if err := s.repo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	s.log.WithFields(map[string]interface{}{
		"image_id":   image.ID,
		"listing_id": listingID,
	}).Info("image added")
	return image, nil
}

// ListImages returns the images of a listing in upload order
func (s *ImageService) ListImages(listingID uuid.UUID) ([]models.Image, error) {
	if err := s.requireListing(listingID); err != nil {
		return nil, err
	}
	images, err := s.repo.GetByListingID(listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

// DeleteImage removes a single image record
func (s *ImageService) DeleteImage(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrImageNotFound
		}
		return fmt.Errorf("failed to get image: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (s *ImageService) requireListing(listingID uuid.UUID) error {
	if _, err := s.listingRepo.GetByID(listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrListingNotFound
		}
		return fmt.Errorf("failed to get listing: %w", err)
	}
	return nil
}
