package models

// PropertyType tags a listing with the kind of property (farm, flat, villa...)
type PropertyType struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:250" validate:"required,max=250"`
}

// TableName returns the table name for PropertyType
func (PropertyType) TableName() string {
	return "property_types"
}

func (p PropertyType) String() string {
	return p.Name
}

// Feature tags a listing with an amenity (wifi, parking...)
type Feature struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:250" validate:"required,max=250"`
}

// TableName returns the table name for Feature
func (Feature) TableName() string {
	return "features"
}

func (f Feature) String() string {
	return f.Name
}
