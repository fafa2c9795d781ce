package service

import (
	"errors"
	"fmt"
	"time"

	"classroom-portal-backend/internal/database/models"
	apperrors "classroom-portal-backend/internal/errors"
	"classroom-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteLinkService handles business logic for invite links
type InviteLinkService struct {
	repo      repository.InviteLinkRepositoryInterface
	tenants   repository.TenantRepositoryInterface
	profiles  repository.UserProfileRepositoryInterface
	validator *validator.Validate
}

// NewInviteLinkService creates a new invite link service
func NewInviteLinkService(repo repository.InviteLinkRepositoryInterface, tenants repository.TenantRepositoryInterface, profiles repository.UserProfileRepositoryInterface, validator *validator.Validate) *InviteLinkService {
	return &InviteLinkService{
		repo:      repo,
		tenants:   tenants,
		profiles:  profiles,
		validator: validator,
	}
}

// CreateInviteLinkRequest represents the request to create an invite link.
// The code is never part of the request; it is generated server-side.
type CreateInviteLinkRequest struct {
	TenantID  uuid.UUID  `json:"tenant_id" validate:"required"`
	CreatedBy uuid.UUID  `json:"created_by" validate:"required"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// RedeemInviteLinkRequest represents the request to redeem an invite code.
// SingleUse decides whether redemption deactivates the link; the schema has
// no use-count column, so multi-use vs single-use is the caller's policy.
type RedeemInviteLinkRequest struct {
	Code         string     `json:"code" validate:"required"`
	Username     string     `json:"username" validate:"required,min=1,max=100"`
	DisplayName  string     `json:"display_name" validate:"required,min=1,max=200"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	PasswordHash *string    `json:"-"`
	SingleUse    bool       `json:"single_use"`
}

// InviteLinkResponse represents the response for invite link operations
type InviteLinkResponse struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	Code      string     `json:"code"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

// InviteLinkListResponse represents a paginated list of invite links
type InviteLinkListResponse struct {
	InviteLinks []InviteLinkResponse `json:"invite_links"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new invite link with a freshly generated code
func (s *InviteLinkService) Create(req *CreateInviteLinkRequest) (*InviteLinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("invite link", err.Error())
	}

	if _, err := s.tenants.GetByID(req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to check tenant: %w", err)
	}

	creatorKnown, err := s.profiles.Exists(req.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to check creator profile: %w", err)
	}
	if !creatorKnown {
		return nil, apperrors.ErrUserProfileNotFound
	}

	link := &models.InviteLink{
		TenantID:  req.TenantID,
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
		CreatedBy: req.CreatedBy,
	}

	if err := s.repo.CreateWithCode(link, repository.DefaultCodeAttempts); err != nil {
		if apperrors.IsGenerationExhausted(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create invite link: %w", err)
	}

	return s.toResponse(link), nil
}

// Redeem enrolls a new student through an invite code. The invite lookup,
// expiry check, student creation and (for single-use links) deactivation
// run as one transaction in the repository, so two concurrent redemptions
// of a single-use code can never both mint a student.
func (s *InviteLinkService) Redeem(req *RedeemInviteLinkRequest) (*StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("invite redemption", err.Error())
	}

	student := &models.Student{
		UserID:       req.UserID,
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PasswordHash: req.PasswordHash,
		IsActive:     true,
	}

	if err := s.repo.Redeem(req.Code, student, req.SingleUse, time.Now()); err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsExpired(err) || apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to redeem invite link: %w", err)
	}

	return &StudentResponse{
		ID:          student.ID,
		TenantID:    student.TenantID,
		UserID:      student.UserID,
		Username:    student.Username,
		DisplayName: student.DisplayName,
		IsActive:    student.IsActive,
		CreatedAt:   student.CreatedAt,
		UpdatedAt:   student.UpdatedAt,
	}, nil
}

// GetByID retrieves an invite link by ID
func (s *InviteLinkService) GetByID(id uuid.UUID) (*InviteLinkResponse, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteLinkNotFound
		}
		return nil, fmt.Errorf("failed to get invite link: %w", err)
	}

	return s.toResponse(link), nil
}

// GetByTenant retrieves a tenant's invite links with pagination, newest first
func (s *InviteLinkService) GetByTenant(tenantID uuid.UUID, page, pageSize int) (*InviteLinkListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	links, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invite links: %w", err)
	}

	responses := make([]InviteLinkResponse, len(links))
	for i := range links {
		responses[i] = *s.toResponse(&links[i])
	}

	return &InviteLinkListResponse{
		InviteLinks: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Deactivate revokes an invite link via the is_active flag
func (s *InviteLinkService) Deactivate(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInviteLinkNotFound
		}
		return fmt.Errorf("failed to deactivate invite link: %w", err)
	}
	return nil
}

func (s *InviteLinkService) toResponse(link *models.InviteLink) *InviteLinkResponse {
	return &InviteLinkResponse{
		ID:        link.ID,
		TenantID:  link.TenantID,
		Code:      link.Code,
		IsActive:  link.IsActive,
		ExpiresAt: link.ExpiresAt,
		CreatedBy: link.CreatedBy,
		CreatedAt: link.CreatedAt,
	}
}
