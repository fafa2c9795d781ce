package repository

import (
	"errors"
	"time"

	"classroom-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorksheetRepository handles database operations for worksheets
type WorksheetRepository struct {
	db *gorm.DB
}

// NewWorksheetRepository creates a new worksheet repository
func NewWorksheetRepository(db *gorm.DB) *WorksheetRepository {
	return &WorksheetRepository{db: db}
}

// CreateForStudent inserts a worksheet for the given student, stamping
// TenantID from the student row inside the same transaction. Whatever
// TenantID the caller put on the worksheet is overwritten. The student row
// is locked for the duration of the insert so the stamped tenant cannot go
// stale against a concurrent student mutation.
func (r *WorksheetRepository) CreateForStudent(worksheet *models.Worksheet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&student, "id = ?", worksheet.StudentID).Error
		if err != nil {
			return err
		}

		worksheet.TenantID = student.TenantID
		return tx.Create(worksheet).Error
	})
}

// GetByID retrieves a worksheet by ID
func (r *WorksheetRepository) GetByID(id uuid.UUID) (*models.Worksheet, error) {
	var worksheet models.Worksheet
	err := r.db.First(&worksheet, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worksheet, nil
}

// GetByStudentID retrieves a student's worksheets with pagination, newest first
func (r *WorksheetRepository) GetByStudentID(studentID uuid.UUID, limit, offset int) ([]models.Worksheet, int64, error) {
	var worksheets []models.Worksheet
	var total int64

	if err := r.db.Model(&models.Worksheet{}).Where("student_id = ?", studentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("student_id = ?", studentID).
		Limit(limit).Offset(offset).
		Order("date DESC, created_at DESC").
		Find(&worksheets).Error
	if err != nil {
		return nil, 0, err
	}

	return worksheets, total, nil
}

// GetByTenantAndDate retrieves all of a tenant's worksheets for one day
func (r *WorksheetRepository) GetByTenantAndDate(tenantID uuid.UUID, date time.Time) ([]models.Worksheet, error) {
	var worksheets []models.Worksheet
	err := r.db.Where("tenant_id = ? AND date = ?", tenantID, date.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&worksheets).Error
	if err != nil {
		return nil, err
	}
	return worksheets, nil
}

// UpdateContent replaces the content payload of a worksheet
func (r *WorksheetRepository) UpdateContent(id uuid.UUID, content string) (*models.Worksheet, error) {
	var worksheet models.Worksheet
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&worksheet, "id = ?", id).Error; err != nil {
			return err
		}
		worksheet.Content = content
		return tx.Save(&worksheet).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &worksheet, nil
}
