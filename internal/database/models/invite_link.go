package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteLink is a shareable, time-boundable join code granting enrollment
// into a specific tenant. Codes are always server-generated and globally
// unique. Links are never deleted; redemption of a single-use link and
// manual revocation both flip IsActive off. ExpiresAt nil means the link
// never expires.
type InviteLink struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID  uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null;size:64"`
	IsActive  bool       `json:"is_active" gorm:"not null;default:true"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null" validate:"required"`
	CreatedAt time.Time  `json:"created_at"`
}

// BeforeCreate sets the UUID if not already set
func (link *InviteLink) BeforeCreate(tx *gorm.DB) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	return nil
}

// Expired reports whether the link's expiry has passed at the given time.
func (link *InviteLink) Expired(now time.Time) bool {
	return link.ExpiresAt != nil && link.ExpiresAt.Before(now)
}

// TableName returns the table name for InviteLink
func (InviteLink) TableName() string {
	return "invite_links"
}
