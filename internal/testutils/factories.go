package testutils

import (
	"time"

	"classroom-portal-backend/internal/database/models"
	"classroom-portal-backend/internal/invitecode"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	// Derive a unique subdomain from the UUID to avoid collisions across tests
	subdomain := "school-" + id.String()[:8]

	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Subdomain: subdomain,
		Name:      "Test School",
		OwnerID:   uuid.New(),
	}
}

// WithSubdomain sets a custom subdomain for the tenant
func (f *TenantFactory) WithSubdomain(subdomain string) *models.Tenant {
	tenant := f.Create()
	tenant.Subdomain = subdomain
	return tenant
}

// WithOwner sets the owner ID for the tenant
func (f *TenantFactory) WithOwner(ownerID uuid.UUID) *models.Tenant {
	tenant := f.Create()
	tenant.OwnerID = ownerID
	return tenant
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct{}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{}
}

// Create creates a test Student with default values
func (f *StudentFactory) Create() *models.Student {
	id := uuid.New()
	username := "student-" + id.String()[:8]

	return &models.Student{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		Username:    username,
		DisplayName: "Test Student",
		IsActive:    true,
	}
}

// WithTenant sets the tenant ID for the student
func (f *StudentFactory) WithTenant(tenantID uuid.UUID) *models.Student {
	student := f.Create()
	student.TenantID = tenantID
	return student
}

// WithUsername sets a custom username for the student
func (f *StudentFactory) WithUsername(username string) *models.Student {
	student := f.Create()
	student.Username = username
	return student
}

// WithUser links the student to a user profile
func (f *StudentFactory) WithUser(userID uuid.UUID) *models.Student {
	student := f.Create()
	student.UserID = &userID
	return student
}

// WorksheetFactory provides methods to create test Worksheet data
type WorksheetFactory struct{}

// NewWorksheetFactory creates a new WorksheetFactory
func NewWorksheetFactory() *WorksheetFactory {
	return &WorksheetFactory{}
}

// Create creates a test Worksheet with default values
func (f *WorksheetFactory) Create() *models.Worksheet {
	year, month, day := time.Now().Date()
	return &models.Worksheet{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StudentID: uuid.New(),
		TenantID:  uuid.New(),
		Date:      time.Date(year, month, day, 0, 0, 0, 0, time.Local),
		Content:   "Practiced multiplication tables.",
	}
}

// WithStudent sets the student ID for the worksheet
func (f *WorksheetFactory) WithStudent(studentID uuid.UUID) *models.Worksheet {
	worksheet := f.Create()
	worksheet.StudentID = studentID
	return worksheet
}

// WithDate sets a custom date for the worksheet
func (f *WorksheetFactory) WithDate(date time.Time) *models.Worksheet {
	worksheet := f.Create()
	worksheet.Date = date
	return worksheet
}

// InviteLinkFactory provides methods to create test InviteLink data
type InviteLinkFactory struct{}

// NewInviteLinkFactory creates a new InviteLinkFactory
func NewInviteLinkFactory() *InviteLinkFactory {
	return &InviteLinkFactory{}
}

// Create creates a test InviteLink with default values
func (f *InviteLinkFactory) Create() *models.InviteLink {
	code, err := invitecode.Generate()
	if err != nil {
		// crypto/rand failure is unrecoverable in tests
		panic(err)
	}
	return &models.InviteLink{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		Code:      code,
		IsActive:  true,
		CreatedBy: uuid.New(),
		CreatedAt: time.Now(),
	}
}

// WithTenant sets the tenant ID for the invite link
func (f *InviteLinkFactory) WithTenant(tenantID uuid.UUID) *models.InviteLink {
	link := f.Create()
	link.TenantID = tenantID
	return link
}

// WithCode sets a custom code for the invite link
func (f *InviteLinkFactory) WithCode(code string) *models.InviteLink {
	link := f.Create()
	link.Code = code
	return link
}

// WithExpiry sets an expiry timestamp for the invite link
func (f *InviteLinkFactory) WithExpiry(expiresAt time.Time) *models.InviteLink {
	link := f.Create()
	link.ExpiresAt = &expiresAt
	return link
}

// Inactive returns a deactivated invite link
func (f *InviteLinkFactory) Inactive() *models.InviteLink {
	link := f.Create()
	link.IsActive = false
	return link
}

// UserProfileFactory provides methods to create test UserProfile data
type UserProfileFactory struct{}

// NewUserProfileFactory creates a new UserProfileFactory
func NewUserProfileFactory() *UserProfileFactory {
	return &UserProfileFactory{}
}

// Create creates a test UserProfile with default values
func (f *UserProfileFactory) Create() *models.UserProfile {
	id := uuid.New()
	email := "user-" + id.String()[:8] + "@test.com"
	fullName := "Jane Teacher"

	return &models.UserProfile{
		ID:        id,
		Email:     &email,
		FullName:  &fullName,
		Role:      models.UserRoleTeacher,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithRole sets a custom role for the profile
func (f *UserProfileFactory) WithRole(role models.UserRole) *models.UserProfile {
	profile := f.Create()
	profile.Role = role
	return profile
}

// WithEmail sets a custom email for the profile
func (f *UserProfileFactory) WithEmail(email string) *models.UserProfile {
	profile := f.Create()
	profile.Email = &email
	return profile
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant      *TenantFactory
	Student     *StudentFactory
	Worksheet   *WorksheetFactory
	InviteLink  *InviteLinkFactory
	UserProfile *UserProfileFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:      NewTenantFactory(),
		Student:     NewStudentFactory(),
		Worksheet:   NewWorksheetFactory(),
		InviteLink:  NewInviteLinkFactory(),
		UserProfile: NewUserProfileFactory(),
	}
}

// CreateFullTenantHierarchy creates a profile, its tenant, a student in the
// tenant and a worksheet for the student, with all foreign keys consistent.
func (fs *FactorySet) CreateFullTenantHierarchy() (*models.UserProfile, *models.Tenant, *models.Student, *models.Worksheet) {
	profile := fs.UserProfile.Create()

	tenant := fs.Tenant.WithOwner(profile.ID)

	student := fs.Student.WithTenant(tenant.ID)

	worksheet := fs.Worksheet.WithStudent(student.ID)
	worksheet.TenantID = tenant.ID

	return profile, tenant, student, worksheet
}
