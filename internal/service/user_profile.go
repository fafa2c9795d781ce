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

// UserProfileService handles business logic for user profiles
type UserProfileService struct {
	repo      repository.UserProfileRepositoryInterface
	validator *validator.Validate
}

// NewUserProfileService creates a new user profile service
func NewUserProfileService(repo repository.UserProfileRepositoryInterface, validator *validator.Validate) *UserProfileService {
	return &UserProfileService{
		repo:      repo,
		validator: validator,
	}
}

// UpsertUserProfileRequest represents the request to create or update a
// profile. The ID comes from the external identity provider.
type UpsertUserProfileRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Email    *string   `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FullName *string   `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Role     *string   `json:"role,omitempty"`
}

// UserProfileResponse represents the response for user profile operations
type UserProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     *string   `json:"email,omitempty"`
	FullName  *string   `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upsert creates the profile or updates the existing one with the same id.
// Repeating the call with identical arguments is a no-op apart from
// updated_at; created_at never changes after the first insert. An omitted
// role defaults to member on the first insert only; upserting an existing
// profile without a role leaves the stored role as it is.
func (s *UserProfileService) Upsert(req *UpsertUserProfileRequest) (*UserProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("user profile", err.Error())
	}

	var role models.UserRole
	if req.Role != nil {
		role = models.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "must be one of member, teacher, admin")
		}
	}

	profile := &models.UserProfile{
		ID:       req.ID,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
	}

	if err := s.repo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to upsert user profile: %w", err)
	}

	// Re-read so the response carries the original created_at on updates.
	stored, err := s.repo.GetByID(req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	return s.toResponse(stored), nil
}

// GetByID retrieves a user profile by ID
func (s *UserProfileService) GetByID(id uuid.UUID) (*UserProfileResponse, error) {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserProfileNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return s.toResponse(profile), nil
}

func (s *UserProfileService) toResponse(profile *models.UserProfile) *UserProfileResponse {
	return &UserProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      string(profile.Role),
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
