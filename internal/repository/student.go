package repository

import (
	"classroom-portal-backend/internal/database/models"
	apperrors "classroom-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student. The composite unique index on
// (tenant_id, username) scopes usernames per tenant: the same username may
// exist in two different tenants but only once within one.
func (r *StudentRepository) Create(student *models.Student) error {
	if err := r.db.Create(student).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrStudentExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByUsername retrieves a student by tenant-scoped username
func (r *StudentRepository) GetByUsername(tenantID uuid.UUID, username string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "tenant_id = ? AND username = ?", tenantID, username).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByTenantID retrieves students belonging to a tenant with pagination
func (r *StudentRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Student, int64, error) {
	var students []models.Student
	var total int64

	if err := r.db.Model(&models.Student{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).
		Limit(limit).Offset(offset).
		Order("username ASC").
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetActiveByTenantID retrieves active students belonging to a tenant with pagination
func (r *StudentRepository) GetActiveByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Student, int64, error) {
	var students []models.Student
	var total int64

	q := r.db.Model(&models.Student{}).Where("tenant_id = ? AND is_active = ?", tenantID, true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Limit(limit).Offset(offset).
		Order("username ASC").
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update updates a student
func (r *StudentRepository) Update(student *models.Student) error {
	if err := r.db.Save(student).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrStudentExists
		}
		return err
	}
	return nil
}

// Deactivate flips the student's is_active flag off. Students are never
// physically removed.
func (r *StudentRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.Student{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
