package service_test

import (
	"testing"

	"classroom-portal-backend/internal/database/models"
	apperrors "classroom-portal-backend/internal/errors"
	"classroom-portal-backend/internal/mocks"
	"classroom-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// StudentServiceTestSuite defines the test suite for StudentService
type StudentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockStudentRepo *mocks.MockStudentRepositoryInterface
	mockTenantRepo  *mocks.MockTenantRepositoryInterface
	studentService  *service.StudentService
}

// SetupTest sets up the test suite
func (suite *StudentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStudentRepo = mocks.NewMockStudentRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)

	suite.studentService = service.NewStudentService(suite.mockStudentRepo, suite.mockTenantRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *StudentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateStudent tests creating a student
func (suite *StudentServiceTestSuite) TestCreateStudent() {
	tenantID := uuid.New()
	req := &service.CreateStudentRequest{
		TenantID:    tenantID,
		Username:    "casey",
		DisplayName: "Casey Jones",
	}

	suite.mockTenantRepo.EXPECT().
		GetByID(tenantID).
		Return(&models.Tenant{BaseModel: models.BaseModel{ID: tenantID}}, nil).
		Times(1)

	suite.mockStudentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(student *models.Student) error {
			student.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.studentService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), tenantID, response.TenantID)
	assert.Equal(suite.T(), "casey", response.Username)
	assert.True(suite.T(), response.IsActive)
}

// TestCreateStudentValidationError tests creating a student with a missing username
func (suite *StudentServiceTestSuite) TestCreateStudentValidationError() {
	req := &service.CreateStudentRequest{
		TenantID:    uuid.New(),
		Username:    "",
		DisplayName: "Casey Jones",
	}

	response, err := suite.studentService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateStudentUnknownTenant tests creating a student under an unknown tenant
func (suite *StudentServiceTestSuite) TestCreateStudentUnknownTenant() {
	tenantID := uuid.New()
	req := &service.CreateStudentRequest{
		TenantID:    tenantID,
		Username:    "casey",
		DisplayName: "Casey Jones",
	}

	suite.mockTenantRepo.EXPECT().
		GetByID(tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.studentService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantNotFound)
}

// TestCreateStudentDuplicateUsername tests that a taken username surfaces
// the conflict error untouched
func (suite *StudentServiceTestSuite) TestCreateStudentDuplicateUsername() {
	tenantID := uuid.New()
	req := &service.CreateStudentRequest{
		TenantID:    tenantID,
		Username:    "casey",
		DisplayName: "Casey Jones",
	}

	suite.mockTenantRepo.EXPECT().
		GetByID(tenantID).
		Return(&models.Tenant{BaseModel: models.BaseModel{ID: tenantID}}, nil).
		Times(1)

	suite.mockStudentRepo.EXPECT().
		Create(gomock.Any()).
		Return(apperrors.ErrStudentExists).
		Times(1)

	response, err := suite.studentService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStudentExists)
}

// TestGetStudentByID tests retrieving a student by ID
func (suite *StudentServiceTestSuite) TestGetStudentByID() {
	student := &models.Student{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		TenantID:    uuid.New(),
		Username:    "casey",
		DisplayName: "Casey Jones",
		IsActive:    true,
	}

	suite.mockStudentRepo.EXPECT().
		GetByID(student.ID).
		Return(student, nil).
		Times(1)

	response, err := suite.studentService.GetByID(student.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), student.ID, response.ID)
	assert.Equal(suite.T(), "casey", response.Username)
}

// TestGetStudentByIDNotFound tests retrieving a non-existent student
func (suite *StudentServiceTestSuite) TestGetStudentByIDNotFound() {
	id := uuid.New()

	suite.mockStudentRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.studentService.GetByID(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStudentNotFound)
}

// TestGetStudentsByTenant tests listing a tenant's students
func (suite *StudentServiceTestSuite) TestGetStudentsByTenant() {
	tenantID := uuid.New()
	students := []models.Student{
		{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: tenantID, Username: "amy", IsActive: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: tenantID, Username: "ben", IsActive: false},
	}

	suite.mockStudentRepo.EXPECT().
		GetByTenantID(tenantID, 20, 0).
		Return(students, int64(2), nil).
		Times(1)

	response, err := suite.studentService.GetByTenant(tenantID, 1, 20, false)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Students, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestGetStudentsByTenantActiveOnly tests the active-only listing path
func (suite *StudentServiceTestSuite) TestGetStudentsByTenantActiveOnly() {
	tenantID := uuid.New()
	students := []models.Student{
		{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: tenantID, Username: "amy", IsActive: true},
	}

	suite.mockStudentRepo.EXPECT().
		GetActiveByTenantID(tenantID, 20, 0).
		Return(students, int64(1), nil).
		Times(1)

	response, err := suite.studentService.GetByTenant(tenantID, 1, 20, true)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Students, 1)
	assert.True(suite.T(), response.Students[0].IsActive)
}

// TestUpdateStudent tests renaming a student
func (suite *StudentServiceTestSuite) TestUpdateStudent() {
	student := &models.Student{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		TenantID:    uuid.New(),
		Username:    "casey",
		DisplayName: "Old Name",
		IsActive:    true,
	}

	suite.mockStudentRepo.EXPECT().
		GetByID(student.ID).
		Return(student, nil).
		Times(1)

	suite.mockStudentRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.studentService.Update(student.ID, &service.UpdateStudentRequest{DisplayName: "New Name"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name", response.DisplayName)
}

// TestDeactivateStudent tests deactivating a student
func (suite *StudentServiceTestSuite) TestDeactivateStudent() {
	id := uuid.New()

	suite.mockStudentRepo.EXPECT().
		Deactivate(id).
		Return(nil).
		Times(1)

	err := suite.studentService.Deactivate(id)

	assert.NoError(suite.T(), err)
}

// TestDeactivateStudentNotFound tests deactivating a non-existent student
func (suite *StudentServiceTestSuite) TestDeactivateStudentNotFound() {
	id := uuid.New()

	suite.mockStudentRepo.EXPECT().
		Deactivate(id).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	err := suite.studentService.Deactivate(id)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStudentNotFound)
}

// TestStudentServiceTestSuite runs the test suite
func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
