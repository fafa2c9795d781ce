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

// WorksheetService handles business logic for worksheets
type WorksheetService struct {
	repo      repository.WorksheetRepositoryInterface
	validator *validator.Validate
}

// NewWorksheetService creates a new worksheet service
func NewWorksheetService(repo repository.WorksheetRepositoryInterface, validator *validator.Validate) *WorksheetService {
	return &WorksheetService{
		repo:      repo,
		validator: validator,
	}
}

// CreateWorksheetRequest represents the request to create a worksheet.
// There is deliberately no tenant field: the tenant is always resolved from
// the student record so a caller can never file a worksheet under a foreign
// tenant.
type CreateWorksheetRequest struct {
	StudentID uuid.UUID  `json:"student_id" validate:"required"`
	Date      *time.Time `json:"date,omitempty"`
	Content   *string    `json:"content,omitempty"`
}

// UpdateWorksheetContentRequest represents the request to replace a worksheet's content
type UpdateWorksheetContentRequest struct {
	Content string `json:"content"`
}

// WorksheetResponse represents the response for worksheet operations
type WorksheetResponse struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorksheetListResponse represents a paginated list of worksheets
type WorksheetListResponse struct {
	Worksheets []WorksheetResponse `json:"worksheets"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a worksheet for a student. Date defaults to the current
// day and content to empty when omitted.
func (s *WorksheetService) Create(req *CreateWorksheetRequest) (*WorksheetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("student_id", "is required")
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	// Normalize to midnight of the calendar day in the date's own zone;
	// Truncate would cut on UTC boundaries and shift the day near midnight.
	year, month, day := date.Date()
	date = time.Date(year, month, day, 0, 0, 0, 0, date.Location())

	content := ""
	if req.Content != nil {
		content = *req.Content
	}

	worksheet := &models.Worksheet{
		StudentID: req.StudentID,
		Date:      date,
		Content:   content,
	}

	if err := s.repo.CreateForStudent(worksheet); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to create worksheet: %w", err)
	}

	return s.toResponse(worksheet), nil
}

// GetByID retrieves a worksheet by ID
func (s *WorksheetService) GetByID(id uuid.UUID) (*WorksheetResponse, error) {
	worksheet, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorksheetNotFound
		}
		return nil, fmt.Errorf("failed to get worksheet: %w", err)
	}

	return s.toResponse(worksheet), nil
}

// GetByStudent retrieves a student's worksheets with pagination, newest first
func (s *WorksheetService) GetByStudent(studentID uuid.UUID, page, pageSize int) (*WorksheetListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	worksheets, total, err := s.repo.GetByStudentID(studentID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}

	responses := make([]WorksheetResponse, len(worksheets))
	for i := range worksheets {
		responses[i] = *s.toResponse(&worksheets[i])
	}

	return &WorksheetListResponse{
		Worksheets: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetByTenantAndDate retrieves all of a tenant's worksheets for one day
func (s *WorksheetService) GetByTenantAndDate(tenantID uuid.UUID, date time.Time) ([]WorksheetResponse, error) {
	worksheets, err := s.repo.GetByTenantAndDate(tenantID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}

	responses := make([]WorksheetResponse, len(worksheets))
	for i := range worksheets {
		responses[i] = *s.toResponse(&worksheets[i])
	}
	return responses, nil
}

// UpdateContent replaces a worksheet's content payload
func (s *WorksheetService) UpdateContent(id uuid.UUID, req *UpdateWorksheetContentRequest) (*WorksheetResponse, error) {
	worksheet, err := s.repo.UpdateContent(id, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorksheetNotFound
		}
		return nil, fmt.Errorf("failed to update worksheet: %w", err)
	}

	return s.toResponse(worksheet), nil
}

func (s *WorksheetService) toResponse(worksheet *models.Worksheet) *WorksheetResponse {
	return &WorksheetResponse{
		ID:        worksheet.ID,
		StudentID: worksheet.StudentID,
		TenantID:  worksheet.TenantID,
		Date:      worksheet.Date.Format("2006-01-02"),
		Content:   worksheet.Content,
		CreatedAt: worksheet.CreatedAt,
		UpdatedAt: worksheet.UpdatedAt,
	}
}
