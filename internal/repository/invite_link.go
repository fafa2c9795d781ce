package repository

import (
	"errors"
	"time"

	"classroom-portal-backend/internal/database/models"
	apperrors "classroom-portal-backend/internal/errors"
	"classroom-portal-backend/internal/invitecode"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCodeAttempts bounds the regenerate-and-retry loop when a freshly
// generated code collides with an existing one. Collisions are vanishingly
// rare at the generator's keyspace, so exhausting the budget points at a
// broken random source rather than bad luck.
const DefaultCodeAttempts = 5

// InviteLinkRepository handles database operations for invite links
type InviteLinkRepository struct {
	db *gorm.DB
}

// NewInviteLinkRepository creates a new invite link repository
func NewInviteLinkRepository(db *gorm.DB) *InviteLinkRepository {
	return &InviteLinkRepository{db: db}
}

// CreateWithCode generates a code for the invite and inserts it, retrying
// generation up to maxAttempts times when the unique index on code reports
// a collision. The caller never supplies the code.
func (r *InviteLinkRepository) CreateWithCode(link *models.InviteLink, maxAttempts int) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultCodeAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := invitecode.Generate()
		if err != nil {
			return err
		}
		link.Code = code

		err = r.db.Create(link).Error
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
	}

	return apperrors.NewGenerationExhaustedError("invite code", maxAttempts)
}

// GetByID retrieves an invite link by ID
func (r *InviteLinkRepository) GetByID(id uuid.UUID) (*models.InviteLink, error) {
	var link models.InviteLink
	err := r.db.First(&link, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByCode retrieves an invite link by code
func (r *InviteLinkRepository) GetByCode(code string) (*models.InviteLink, error) {
	var link models.InviteLink
	err := r.db.First(&link, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByTenantID retrieves a tenant's invite links with pagination, newest first
func (r *InviteLinkRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.InviteLink, int64, error) {
	var links []models.InviteLink
	var total int64

	if err := r.db.Model(&models.InviteLink{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

// Deactivate flips the link's is_active flag off. Links are never
// physically removed.
func (r *InviteLinkRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.InviteLink{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Redeem runs the whole redemption protocol in one transaction: lock the
// invite row by code, reject inactive and expired links, create the student
// under the invite's tenant, and for single-use links deactivate the
// invite. The row lock makes two concurrent redemptions of a single-use
// code serialize; the loser sees is_active=false and gets
// ErrInviteLinkNotFound.
func (r *InviteLinkRepository) Redeem(code string, student *models.Student, singleUse bool, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var link models.InviteLink
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&link, "code = ? AND is_active = ?", code, true).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInviteLinkNotFound
			}
			return err
		}

		if link.Expired(now) {
			return apperrors.ErrInviteLinkExpired
		}

		student.TenantID = link.TenantID
		if err := tx.Create(student).Error; err != nil {
			if isUniqueViolation(err) {
				return apperrors.ErrStudentExists
			}
			return err
		}

		if singleUse {
			if err := tx.Model(&link).Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
