package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"classroom-portal-backend/internal/config"
	"classroom-portal-backend/internal/database"
	"classroom-portal-backend/internal/database/models"
	"classroom-portal-backend/internal/invitecode"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ProfileData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type TenantData struct {
	Subdomain  string `yaml:"subdomain"`
	Name       string `yaml:"name"`
	OwnerEmail string `yaml:"owner_email"`
}

type StudentData struct {
	TenantSubdomain string `yaml:"tenant_subdomain"`
	Username        string `yaml:"username"`
	DisplayName     string `yaml:"display_name"`
}

type WorksheetData struct {
	TenantSubdomain string `yaml:"tenant_subdomain"`
	Username        string `yaml:"username"`
	Date            string `yaml:"date"`
	Content         string `yaml:"content"`
}

type InviteData struct {
	TenantSubdomain string `yaml:"tenant_subdomain"`
	CreatorEmail    string `yaml:"creator_email"`
	ExpiresInDays   int    `yaml:"expires_in_days,omitempty"`
}

// File structures
type ProfilesFile struct {
	Profiles []ProfileData `yaml:"profiles"`
}

type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type StudentsFile struct {
	Students []StudentData `yaml:"students"`
}

type WorksheetsFile struct {
	Worksheets []WorksheetData `yaml:"worksheets"`
}

type InvitesFile struct {
	Invites []InviteData `yaml:"invites"`
}

func main() {
	log.Println("Loading demo data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Demo data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	profiles, err := loadProfiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	students, err := loadStudents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load students: %w", err)
	}

	worksheets, err := loadWorksheets(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load worksheets: %w", err)
	}

	invites, err := loadInvites(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load invites: %w", err)
	}

	// Create profiles first; tenants and invites reference them by email
	profileMap := make(map[string]*models.UserProfile)
	profileCreated := 0
	for _, profileData := range profiles {
		profile, created, err := createProfile(db, profileData)
		if err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profileData.Email, err)
		}
		profileMap[profileData.Email] = profile
		if created {
			profileCreated++
		}
	}
	log.Printf("Profiles: %d created, %d total", profileCreated, len(profiles))

	// Create tenants
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData, profileMap)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Subdomain, err)
		}
		tenantMap[tenantData.Subdomain] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create students
	studentMap := make(map[string]*models.Student)
	studentCreated := 0
	for _, studentData := range students {
		student, created, err := createStudent(db, studentData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create student %s: %w", studentData.Username, err)
		}
		studentMap[studentData.TenantSubdomain+"/"+studentData.Username] = student
		if created {
			studentCreated++
		}
	}
	log.Printf("Students: %d created, %d total", studentCreated, len(students))

	// Create worksheets
	worksheetCreated := 0
	for _, worksheetData := range worksheets {
		created, err := createWorksheet(db, worksheetData, studentMap)
		if err != nil {
			log.Printf("Warning: failed to create worksheet for %s: %v", worksheetData.Username, err)
			continue
		}
		if created {
			worksheetCreated++
		}
	}
	log.Printf("Worksheets: %d created, %d total", worksheetCreated, len(worksheets))

	// Create invite links
	inviteCreated := 0
	for _, inviteData := range invites {
		created, err := createInvite(db, inviteData, tenantMap, profileMap)
		if err != nil {
			log.Printf("Warning: failed to create invite for %s: %v", inviteData.TenantSubdomain, err)
			continue
		}
		if created {
			inviteCreated++
		}
	}
	log.Printf("Invite links: %d created, %d total", inviteCreated, len(invites))

	return nil
}

func loadProfiles(dataDir string) ([]ProfileData, error) {
	var allProfiles []ProfileData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "profiles") {
			var file ProfilesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProfiles = append(allProfiles, file.Profiles...)
		}
		return nil
	})

	return allProfiles, err
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTenants = append(allTenants, file.Tenants...)
		}
		return nil
	})

	return allTenants, err
}

func loadStudents(dataDir string) ([]StudentData, error) {
	var allStudents []StudentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "students") {
			var file StudentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allStudents = append(allStudents, file.Students...)
		}
		return nil
	})

	return allStudents, err
}

func loadWorksheets(dataDir string) ([]WorksheetData, error) {
	var allWorksheets []WorksheetData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "worksheets") {
			var file WorksheetsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allWorksheets = append(allWorksheets, file.Worksheets...)
		}
		return nil
	})

	return allWorksheets, err
}

func loadInvites(dataDir string) ([]InviteData, error) {
	var allInvites []InviteData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "invites") {
			var file InvitesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allInvites = append(allInvites, file.Invites...)
		}
		return nil
	})

	return allInvites, err
}

func createProfile(db *gorm.DB, profileData ProfileData) (*models.UserProfile, bool, error) {
	var profile models.UserProfile
	if err := db.Where("email = ?", profileData.Email).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.UserRole(profileData.Role)
			if !role.IsValid() {
				role = models.UserRoleMember
			}

			email := profileData.Email
			fullName := profileData.FullName
			profile = models.UserProfile{
				ID:       uuid.New(),
				Email:    &email,
				FullName: &fullName,
				Role:     role,
			}

			if err := db.Create(&profile).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create profile: %w", err)
			}
			return &profile, true, nil
		}
		return nil, false, fmt.Errorf("failed to query profile: %w", err)
	}

	return &profile, false, nil
}

func createTenant(db *gorm.DB, tenantData TenantData, profileMap map[string]*models.UserProfile) (*models.Tenant, bool, error) {
	owner := profileMap[tenantData.OwnerEmail]
	if owner == nil {
		return nil, false, fmt.Errorf("owner profile %s not found for tenant %s", tenantData.OwnerEmail, tenantData.Subdomain)
	}

	var tenant models.Tenant
	if err := db.Where("subdomain = ?", tenantData.Subdomain).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			tenant = models.Tenant{
				Subdomain: tenantData.Subdomain,
				Name:      tenantData.Name,
				OwnerID:   owner.ID,
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil
		}
		return nil, false, fmt.Errorf("failed to query tenant: %w", err)
	}

	return &tenant, false, nil
}

func createStudent(db *gorm.DB, studentData StudentData, tenantMap map[string]*models.Tenant) (*models.Student, bool, error) {
	tenant := tenantMap[studentData.TenantSubdomain]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for student %s", studentData.TenantSubdomain, studentData.Username)
	}

	var student models.Student
	if err := db.Where("tenant_id = ? AND username = ?", tenant.ID, studentData.Username).First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			student = models.Student{
				TenantID:    tenant.ID,
				Username:    studentData.Username,
				DisplayName: studentData.DisplayName,
				IsActive:    true,
			}

			if err := db.Create(&student).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create student: %w", err)
			}
			return &student, true, nil
		}
		return nil, false, fmt.Errorf("failed to query student: %w", err)
	}

	return &student, false, nil
}

func createWorksheet(db *gorm.DB, worksheetData WorksheetData, studentMap map[string]*models.Student) (bool, error) {
	student := studentMap[worksheetData.TenantSubdomain+"/"+worksheetData.Username]
	if student == nil {
		return false, fmt.Errorf("student %s/%s not found", worksheetData.TenantSubdomain, worksheetData.Username)
	}

	date, err := time.Parse("2006-01-02", worksheetData.Date)
	if err != nil {
		return false, fmt.Errorf("bad worksheet date %q: %w", worksheetData.Date, err)
	}

	var existing models.Worksheet
	if err := db.Where("student_id = ? AND date = ?", student.ID, date.Format("2006-01-02")).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			worksheet := models.Worksheet{
				StudentID: student.ID,
				TenantID:  student.TenantID,
				Date:      date,
				Content:   worksheetData.Content,
			}

			if err := db.Create(&worksheet).Error; err != nil {
				return false, fmt.Errorf("failed to create worksheet: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query worksheet: %w", err)
	}

	return false, nil
}

func createInvite(db *gorm.DB, inviteData InviteData, tenantMap map[string]*models.Tenant, profileMap map[string]*models.UserProfile) (bool, error) {
	tenant := tenantMap[inviteData.TenantSubdomain]
	if tenant == nil {
		return false, fmt.Errorf("tenant %s not found", inviteData.TenantSubdomain)
	}
	creator := profileMap[inviteData.CreatorEmail]
	if creator == nil {
		return false, fmt.Errorf("creator profile %s not found", inviteData.CreatorEmail)
	}

	// One active link per tenant is enough for demo data
	var existing models.InviteLink
	if err := db.Where("tenant_id = ? AND is_active = ?", tenant.ID, true).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			code, err := invitecode.Generate()
			if err != nil {
				return false, fmt.Errorf("failed to generate code: %w", err)
			}

			link := models.InviteLink{
				TenantID:  tenant.ID,
				Code:      code,
				IsActive:  true,
				CreatedBy: creator.ID,
			}
			if inviteData.ExpiresInDays > 0 {
				expiry := time.Now().AddDate(0, 0, inviteData.ExpiresInDays)
				link.ExpiresAt = &expiry
			}

			if err := db.Create(&link).Error; err != nil {
				return false, fmt.Errorf("failed to create invite link: %w", err)
			}
			log.Printf("Invite for %s: %s", tenant.Subdomain, link.Code)
			return true, nil
		}
		return false, fmt.Errorf("failed to query invite link: %w", err)
	}

	return false, nil
}
