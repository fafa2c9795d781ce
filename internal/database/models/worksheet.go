package models

import (
	"time"

	"github.com/google/uuid"
)

// Worksheet is a dated content record belonging to one student. TenantID is
// denormalized for tenant-scoped queries and must always equal the owning
// student's tenant; the repository stamps it from the student row and never
// accepts it from callers. Date is not unique per student: several
// worksheets on the same day are allowed.
type Worksheet struct {
	BaseModel
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;index" validate:"required"`
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	Content   string    `json:"content" gorm:"type:text;not null;default:''"`
}

// TableName returns the table name for Worksheet
func (Worksheet) TableName() string {
	return "worksheets"
}
