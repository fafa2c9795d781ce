package models

import (
	"github.com/google/uuid"
)

// Tenant represents the root entity for multi-tenancy. Every student,
// worksheet and invite link belongs to exactly one tenant; user profiles
// are the only records that live outside tenant boundaries.
type Tenant struct {
	BaseModel
	Subdomain string    `json:"subdomain" gorm:"uniqueIndex;not null;size:63" validate:"required,subdomain,max=63"`
	Name      string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Students    []Student    `json:"students,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Worksheets  []Worksheet  `json:"worksheets,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	InviteLinks []InviteLink `json:"invite_links,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
