package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing is a rental unit published by an owner
type Listing struct {
	BaseModel
	Title         string          `json:"title" gorm:"not null;size:250" validate:"required,max=250"`
	Description   string          `json:"description" gorm:"type:text;not null" validate:"max=500"`
	Location      string          `json:"location" gorm:"not null;size:250" validate:"required,max=250"`
	Area          decimal.Decimal `json:"area" gorm:"type:decimal(10,3);not null"`
	DateListed    time.Time       `json:"date_listed" gorm:"not null;autoCreateTime;<-:create"`
	PricePerMonth decimal.Decimal `json:"price_per_month" gorm:"type:decimal(10,2);not null"`
	Bedrooms      int             `json:"bedrooms" gorm:"not null" validate:"gte=0"`
	Bathroom      int             `json:"bathroom" gorm:"not null" validate:"gte=0"`
	OwnerID       uuid.UUID       `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Owner         User           `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	PropertyTypes []PropertyType `json:"property_types,omitempty" gorm:"many2many:listing_property_types;constraint:OnDelete:CASCADE"`
	Features      []Feature      `json:"features,omitempty" gorm:"many2many:listing_features;constraint:OnDelete:CASCADE"`
	Images        []Image        `json:"images,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Listing
func (Listing) TableName() string {
	return "listings"
}

func (l Listing) String() string {
	return l.Title
}

// Decimal precision of the listing's numeric columns
const (
	AreaMaxDigits      = 10
	AreaDecimalPlaces  = 3
	PriceMaxDigits     = 10
	PriceDecimalPlaces = 2
)
