package repository

import (
	"renthub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageRepository handles database operations for listing images
type ImageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create creates a new image
func (r *ImageRepository) Create(image *models.Image) error {
	return r.db.Create(image).Error
}

// GetByID retrieves an image by ID
func (r *ImageRepository) GetByID(id uuid.UUID) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// GetByListingID retrieves the images of a listing in upload order
func (r *ImageRepository) GetByListingID(listingID uuid.UUID) ([]models.Image, error) {
	var images []models.Image
	if err := r.db.Where("listing_id = ?", listingID).Order("created_at, id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Delete deletes an image
func (r *ImageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Image{}, "id = ?", id).Error
}
