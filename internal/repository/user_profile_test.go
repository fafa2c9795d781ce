package repository

import (
	"testing"
	"time"

	"classroom-portal-backend/internal/database/models"
	"classroom-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserProfileRepositoryTestSuite tests the UserProfileRepository
type UserProfileRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserProfileRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserProfileRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserProfileRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserProfileRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserProfileRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserProfileRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertInsert tests the insert half of upsert
func (suite *UserProfileRepositoryTestSuite) TestUpsertInsert() {
	profile := suite.factories.UserProfile.Create()

	err := suite.repo.Upsert(profile)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(profile.ID)
	suite.NoError(err)
	suite.Equal(profile.ID, retrieved.ID)
	suite.Equal(*profile.Email, *retrieved.Email)
	suite.Equal(models.UserRoleTeacher, retrieved.Role)
}

// TestUpsertUpdate tests that a second upsert with the same id updates the
// mutable columns but keeps created_at
func (suite *UserProfileRepositoryTestSuite) TestUpsertUpdate() {
	profile := suite.factories.UserProfile.Create()
	suite.NoError(suite.repo.Upsert(profile))

	original, err := suite.repo.GetByID(profile.ID)
	suite.NoError(err)

	time.Sleep(10 * time.Millisecond)

	newEmail := "renamed@test.com"
	newName := "Renamed Teacher"
	updated := &models.UserProfile{
		ID:        profile.ID,
		Email:     &newEmail,
		FullName:  &newName,
		Role:      models.UserRoleAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	suite.NoError(suite.repo.Upsert(updated))

	retrieved, err := suite.repo.GetByID(profile.ID)
	suite.NoError(err)
	suite.Equal("renamed@test.com", *retrieved.Email)
	suite.Equal("Renamed Teacher", *retrieved.FullName)
	suite.Equal(models.UserRoleAdmin, retrieved.Role)

	// created_at is written once; updated_at advances
	suite.WithinDuration(original.CreatedAt, retrieved.CreatedAt, time.Millisecond)
	suite.True(retrieved.UpdatedAt.After(original.UpdatedAt))
}

// TestUpsertWithoutRolePreservesExistingRole tests that a role-less upsert
// of an existing profile updates the other columns without touching the
// stored role
func (suite *UserProfileRepositoryTestSuite) TestUpsertWithoutRolePreservesExistingRole() {
	profile := suite.factories.UserProfile.WithRole(models.UserRoleAdmin)
	suite.NoError(suite.repo.Upsert(profile))

	newEmail := "new-address@test.com"
	suite.NoError(suite.repo.Upsert(&models.UserProfile{
		ID:    profile.ID,
		Email: &newEmail,
	}))

	retrieved, err := suite.repo.GetByID(profile.ID)
	suite.NoError(err)
	suite.Equal("new-address@test.com", *retrieved.Email)
	suite.Equal(models.UserRoleAdmin, retrieved.Role)
}

// TestUpsertWithoutRoleDefaultsOnInsert tests that the column default fills
// the role when the first insert carries none
func (suite *UserProfileRepositoryTestSuite) TestUpsertWithoutRoleDefaultsOnInsert() {
	email := "fresh@test.com"
	profile := &models.UserProfile{
		ID:    uuid.New(),
		Email: &email,
	}
	suite.NoError(suite.repo.Upsert(profile))

	retrieved, err := suite.repo.GetByID(profile.ID)
	suite.NoError(err)
	suite.Equal(models.UserRoleMember, retrieved.Role)
}

// TestUpsertIdempotent tests that repeating the same upsert is harmless
func (suite *UserProfileRepositoryTestSuite) TestUpsertIdempotent() {
	profile := suite.factories.UserProfile.Create()

	suite.NoError(suite.repo.Upsert(profile))
	suite.NoError(suite.repo.Upsert(profile))
	suite.NoError(suite.repo.Upsert(profile))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.UserProfile{}).
		Where("id = ?", profile.ID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestGetByIDNotFound tests retrieving a non-existent profile
func (suite *UserProfileRepositoryTestSuite) TestGetByIDNotFound() {
	profile, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(profile)
}

// TestExists tests the existence probe
func (suite *UserProfileRepositoryTestSuite) TestExists() {
	profile := suite.factories.UserProfile.Create()
	suite.NoError(suite.repo.Upsert(profile))

	exists, err := suite.repo.Exists(profile.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// Run the test suite
func TestUserProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserProfileRepositoryTestSuite))
}
