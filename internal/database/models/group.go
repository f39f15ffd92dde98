package models

// Group is a named role tag. Membership in the Owner or Tenant group is what
// makes a user an owner or a tenant.
type Group struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:150" validate:"required,max=150"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// Role group names
const (
	GroupOwner  = "Owner"
	GroupTenant = "Tenant"
)

// RoleGroups lists the groups seeded at startup
var RoleGroups = []string{GroupOwner, GroupTenant}

// Role identifies which role-scoped view a user is created through
type Role string

const (
	RoleOwner  Role = "owner"
	RoleTenant Role = "tenant"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleTenant:
		return true
	}
	return false
}

// GroupName returns the group that carries the role
func (r Role) GroupName() string {
	switch r {
	case RoleOwner:
		return GroupOwner
	case RoleTenant:
		return GroupTenant
	}
	return ""
}
