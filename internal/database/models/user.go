package models

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UnusablePasswordPrefix marks a password hash that never matches any input
const UnusablePasswordPrefix = "!"

// User is the account record shared by owners and tenants. The email is the
// login identifier; roles come from group membership.
type User struct {
	BaseModel
	Username    string     `json:"username" gorm:"uniqueIndex;not null;size:254" validate:"required,max=254"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null;size:254" validate:"required,email,max=254"`
	Password    string     `json:"-" gorm:"not null;size:128"`
	FirstName   string     `json:"first_name" gorm:"size:150" validate:"max=150"`
	LastName    string     `json:"last_name" gorm:"size:150" validate:"max=150"`
	PhoneNumber string     `json:"phone_number" gorm:"not null;size:32" validate:"required"`
	About       string     `json:"about" gorm:"type:text" validate:"max=500"`
	IsStaff     bool       `json:"is_staff" gorm:"not null;default:false"`
	IsSuperuser bool       `json:"is_superuser" gorm:"not null;default:false"`
	IsActive    bool       `json:"is_active" gorm:"not null"`
	DateJoined  time.Time  `json:"date_joined" gorm:"not null;autoCreateTime"`
	LastLogin   *time.Time `json:"last_login,omitempty" gorm:"autoUpdateTime"`

	// Relationships
	Groups []Group `json:"groups,omitempty" gorm:"many2many:user_groups;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// SetPassword stores the bcrypt hash of raw. An empty raw password leaves the
// account with an unusable password.
func (u *User) SetPassword(raw string, cost int) error {
	if raw == "" {
		return u.SetUnusablePassword()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// SetUnusablePassword stores a marker that CheckPassword never accepts
func (u *User) SetUnusablePassword() error {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	u.Password = UnusablePasswordPrefix + hex.EncodeToString(buf)
	return nil
}

// HasUsablePassword reports whether the stored hash can ever match
func (u *User) HasUsablePassword() bool {
	return u.Password != "" && !strings.HasPrefix(u.Password, UnusablePasswordPrefix)
}

// CheckPassword compares raw against the stored hash
func (u *User) CheckPassword(raw string) bool {
	if !u.HasUsablePassword() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(raw)) == nil
}

// HasGroup reports whether the loaded Groups include name
func (u *User) HasGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// FullName returns the first and last name joined by a space
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) String() string {
	return u.Email
}
