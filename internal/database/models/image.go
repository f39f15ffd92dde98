package models

import "github.com/google/uuid"

// Image references a picture of a listing. Path is whatever the storage
// backend hands back; the bytes never pass through this layer.
type Image struct {
	BaseModel
	ListingID uuid.UUID `json:"listing_id" gorm:"type:uuid;not null;index" validate:"required"`
	Path      string    `json:"path" gorm:"not null;size:255" validate:"required,max=255"`
}

// TableName returns the table name for Image
func (Image) TableName() string {
	return "images"
}
