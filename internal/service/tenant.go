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

// TenantService handles business logic for tenants
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	profiles  repository.UserProfileRepositoryInterface
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, profiles repository.UserProfileRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		profiles:  profiles,
		validator: validator,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Subdomain string    `json:"subdomain" validate:"required,subdomain,max=63"`
	Name      string    `json:"name" validate:"required,min=1,max=200"`
	OwnerID   uuid.UUID `json:"owner_id" validate:"required"`
}

// UpdateTenantRequest represents the request to update a tenant
type UpdateTenantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Subdomain string    `json:"subdomain"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new tenant. The subdomain must be URL-safe and globally
// unique, and OwnerID must reference a known user profile.
func (s *TenantService) Create(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Subdomain":
				return nil, apperrors.NewValidationError("subdomain", "must be a non-empty URL-safe label")
			case "Name":
				return nil, apperrors.NewValidationError("name", "must be between 1 and 200 characters")
			case "OwnerID":
				return nil, apperrors.NewValidationError("owner_id", "is required")
			}
		}
		return nil, apperrors.NewValidationError("tenant", err.Error())
	}

	ownerKnown, err := s.profiles.Exists(req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check owner profile: %w", err)
	}
	if !ownerKnown {
		return nil, apperrors.NewValidationError("owner_id", "does not reference a known identity")
	}

	tenant := &models.Tenant{
		Subdomain: req.Subdomain,
		Name:      req.Name,
		OwnerID:   req.OwnerID,
	}

	if err := s.repo.Create(tenant); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetBySubdomain retrieves a tenant by subdomain
func (s *TenantService) GetBySubdomain(subdomain string) (*TenantResponse, error) {
	tenant, err := s.repo.GetBySubdomain(subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetAll retrieves all tenants with pagination
func (s *TenantService) GetAll(page, pageSize int) (*TenantListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	tenants, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *s.toResponse(&tenants[i])
	}

	return &TenantListResponse{
		Tenants:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a tenant's name. The subdomain and owner are immutable
// after creation.
func (s *TenantService) Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "must be between 1 and 200 characters")
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	tenant.Name = req.Name
	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Subdomain: tenant.Subdomain,
		Name:      tenant.Name,
		OwnerID:   tenant.OwnerID,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}
