package models

import (
	"github.com/google/uuid"
)

// Student represents an enrolled student within a tenant. Usernames are
// unique per tenant, not globally; two tenants may each have an "alice".
// UserID links the student to a user profile and stays nil for students
// without their own login. PasswordHash is an opaque credential blob only
// present for students with independent credentials.
type Student struct {
	BaseModel
	TenantID     uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_students_tenant_username" validate:"required"`
	UserID       *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Username     string     `json:"username" gorm:"not null;size:100;uniqueIndex:idx_students_tenant_username" validate:"required,min=1,max=100"`
	DisplayName  string     `json:"display_name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	PasswordHash *string    `json:"-" gorm:"size:255"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Worksheets []Worksheet `json:"worksheets,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}
