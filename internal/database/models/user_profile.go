package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role recorded on a user profile
type UserRole string

const (
	UserRoleMember  UserRole = "member"
	UserRoleTeacher UserRole = "teacher"
	UserRoleAdmin   UserRole = "admin"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMember, UserRoleTeacher, UserRoleAdmin:
		return true
	}
	return false
}

// UserProfile mirrors an external identity record. The ID is the identity
// provider's key and is always caller-supplied, never generated here. One
// profile exists per identity and is usable across tenants: the same
// profile may own one tenant and back a student login in another.
type UserProfile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" validate:"required"`
	Email     *string   `json:"email,omitempty" gorm:"size:255"`
	FullName  *string   `json:"full_name,omitempty" gorm:"size:200"`
	Role      UserRole  `json:"role" gorm:"type:varchar(50);not null;default:'member'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
