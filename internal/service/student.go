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

// StudentService handles business logic for students
type StudentService struct {
	repo      repository.StudentRepositoryInterface
	tenants   repository.TenantRepositoryInterface
	validator *validator.Validate
}

// NewStudentService creates a new student service
func NewStudentService(repo repository.StudentRepositoryInterface, tenants repository.TenantRepositoryInterface, validator *validator.Validate) *StudentService {
	return &StudentService{
		repo:      repo,
		tenants:   tenants,
		validator: validator,
	}
}

// CreateStudentRequest represents the request to create a student
type CreateStudentRequest struct {
	TenantID     uuid.UUID  `json:"tenant_id" validate:"required"`
	Username     string     `json:"username" validate:"required,min=1,max=100"`
	DisplayName  string     `json:"display_name" validate:"required,min=1,max=200"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	PasswordHash *string    `json:"-"`
}

// UpdateStudentRequest represents the request to update a student
type UpdateStudentRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=200"`
}

// StudentResponse represents the response for student operations
type StudentResponse struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new student in the given tenant. The username only has
// to be free within that tenant; other tenants may already use it.
func (s *StudentService) Create(req *CreateStudentRequest) (*StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("student", err.Error())
	}

	if _, err := s.tenants.GetByID(req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to check tenant: %w", err)
	}

	student := &models.Student{
		TenantID:     req.TenantID,
		UserID:       req.UserID,
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PasswordHash: req.PasswordHash,
		IsActive:     true,
	}

	if err := s.repo.Create(student); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return s.toResponse(student), nil
}

// GetByID retrieves a student by ID
func (s *StudentService) GetByID(id uuid.UUID) (*StudentResponse, error) {
	student, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return s.toResponse(student), nil
}

// GetByTenant retrieves a tenant's students with pagination. With
// activeOnly set, deactivated students are filtered out.
func (s *StudentService) GetByTenant(tenantID uuid.UUID, page, pageSize int, activeOnly bool) (*StudentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize

	var students []models.Student
	var total int64
	var err error
	if activeOnly {
		students, total, err = s.repo.GetActiveByTenantID(tenantID, pageSize, offset)
	} else {
		students, total, err = s.repo.GetByTenantID(tenantID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	responses := make([]StudentResponse, len(students))
	for i := range students {
		responses[i] = *s.toResponse(&students[i])
	}

	return &StudentListResponse{
		Students: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a student's display name
func (s *StudentService) Update(id uuid.UUID, req *UpdateStudentRequest) (*StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("display_name", "must be between 1 and 200 characters")
	}

	student, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	student.DisplayName = req.DisplayName
	if err := s.repo.Update(student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	return s.toResponse(student), nil
}

// Deactivate soft-deletes a student via the is_active flag
func (s *StudentService) Deactivate(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("failed to deactivate student: %w", err)
	}
	return nil
}

func (s *StudentService) toResponse(student *models.Student) *StudentResponse {
	return &StudentResponse{
		ID:          student.ID,
		TenantID:    student.TenantID,
		UserID:      student.UserID,
		Username:    student.Username,
		DisplayName: student.DisplayName,
		IsActive:    student.IsActive,
		CreatedAt:   student.CreatedAt,
		UpdatedAt:   student.UpdatedAt,
	}
}
