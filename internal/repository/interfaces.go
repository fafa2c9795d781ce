package repository

import (
	"time"

	"classroom-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySubdomain(subdomain string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Update(tenant *models.Tenant) error
	GetWithStudents(id uuid.UUID) (*models.Tenant, error)
}

// StudentRepositoryInterface defines the interface for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	GetByUsername(tenantID uuid.UUID, username string) (*models.Student, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Student, int64, error)
	GetActiveByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Student, int64, error)
	Update(student *models.Student) error
	Deactivate(id uuid.UUID) error
}

// WorksheetRepositoryInterface defines the interface for worksheet repository operations
type WorksheetRepositoryInterface interface {
	CreateForStudent(worksheet *models.Worksheet) error
	GetByID(id uuid.UUID) (*models.Worksheet, error)
	GetByStudentID(studentID uuid.UUID, limit, offset int) ([]models.Worksheet, int64, error)
	GetByTenantAndDate(tenantID uuid.UUID, date time.Time) ([]models.Worksheet, error)
	UpdateContent(id uuid.UUID, content string) (*models.Worksheet, error)
}

// InviteLinkRepositoryInterface defines the interface for invite link repository operations
type InviteLinkRepositoryInterface interface {
	CreateWithCode(link *models.InviteLink, maxAttempts int) error
	GetByID(id uuid.UUID) (*models.InviteLink, error)
	GetByCode(code string) (*models.InviteLink, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.InviteLink, int64, error)
	Deactivate(id uuid.UUID) error
	Redeem(code string, student *models.Student, singleUse bool, now time.Time) error
}

// UserProfileRepositoryInterface defines the interface for user profile repository operations
type UserProfileRepositoryInterface interface {
	Upsert(profile *models.UserProfile) error
	GetByID(id uuid.UUID) (*models.UserProfile, error)
	Exists(id uuid.UUID) (bool, error)
}
