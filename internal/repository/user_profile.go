package repository

import (
	"classroom-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserProfileRepository handles database operations for user profiles
type UserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// Upsert inserts the profile or, when a row with the same id already
// exists, updates its mutable columns. created_at is written once on insert
// and never touched again; updated_at advances either way. The
// ON CONFLICT clause makes the operation a single atomic statement.
// An empty Role means the caller did not supply one: the column default
// fills it on insert and the stored role is left untouched on update.
func (r *UserProfileRepository) Upsert(profile *models.UserProfile) error {
	columns := []string{"email", "full_name", "updated_at"}
	if profile.Role != "" {
		columns = append(columns, "role")
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(profile).Error
}

// GetByID retrieves a user profile by ID
func (r *UserProfileRepository) GetByID(id uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Exists reports whether a profile with the given id is known. Tenant and
// invite-link creation use this to validate owner_id / created_by before
// writing rows that reference them.
func (r *UserProfileRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserProfile{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
