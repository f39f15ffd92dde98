package models

import "github.com/google/uuid"

// Collection is a named set of listings saved by a tenant
type Collection struct {
	BaseModel
	Name     string    `json:"name" gorm:"not null;size:50" validate:"required,max=50"`
	TenantID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Tenant   User      `json:"user,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Listings []Listing `json:"listings,omitempty" gorm:"many2many:collection_listings;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Collection
func (Collection) TableName() string {
	return "collections"
}
