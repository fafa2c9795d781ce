package repository

import (
	"testing"

	apperrors "classroom-portal-backend/internal/errors"
	"classroom-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new tenant
func (suite *TenantRepositoryTestSuite) TestCreate() {
	tenant := suite.factories.Tenant.Create()

	err := suite.repo.Create(tenant)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tenant.ID)
	suite.NotZero(tenant.CreatedAt)
	suite.NotZero(tenant.UpdatedAt)
}

// TestCreateDuplicateSubdomain tests that a second tenant with the same
// subdomain is rejected by the unique index
func (suite *TenantRepositoryTestSuite) TestCreateDuplicateSubdomain() {
	tenant1 := suite.factories.Tenant.WithSubdomain("greenwood")
	err := suite.repo.Create(tenant1)
	suite.NoError(err)

	tenant2 := suite.factories.Tenant.WithSubdomain("greenwood")
	err = suite.repo.Create(tenant2)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTenantExists)
}

// TestGetByID tests retrieving a tenant by ID
func (suite *TenantRepositoryTestSuite) TestGetByID() {
	tenant := suite.factories.Tenant.Create()
	err := suite.repo.Create(tenant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(tenant.ID, retrieved.ID)
	suite.Equal(tenant.Subdomain, retrieved.Subdomain)
	suite.Equal(tenant.Name, retrieved.Name)
	suite.Equal(tenant.OwnerID, retrieved.OwnerID)
}

// TestGetByIDNotFound tests retrieving a non-existent tenant
func (suite *TenantRepositoryTestSuite) TestGetByIDNotFound() {
	tenant, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(tenant)
}

// TestGetBySubdomain tests retrieving a tenant by subdomain
func (suite *TenantRepositoryTestSuite) TestGetBySubdomain() {
	tenant := suite.factories.Tenant.WithSubdomain("hillside")
	err := suite.repo.Create(tenant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetBySubdomain("hillside")

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(tenant.ID, retrieved.ID)
	suite.Equal("hillside", retrieved.Subdomain)
}

// TestGetBySubdomainNotFound tests retrieving a non-existent subdomain
func (suite *TenantRepositoryTestSuite) TestGetBySubdomainNotFound() {
	tenant, err := suite.repo.GetBySubdomain("no-such-school")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(tenant)
}

// TestGetAll tests listing tenants
func (suite *TenantRepositoryTestSuite) TestGetAll() {
	for _, sub := range []string{"alpha", "beta", "gamma"} {
		tenant := suite.factories.Tenant.WithSubdomain(sub)
		err := suite.repo.Create(tenant)
		suite.NoError(err)
	}

	tenants, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Len(tenants, 3)
	suite.Equal(int64(3), total)

	// Ordered by subdomain
	suite.Equal("alpha", tenants[0].Subdomain)
	suite.Equal("beta", tenants[1].Subdomain)
	suite.Equal("gamma", tenants[2].Subdomain)
}

// TestGetAllWithPagination tests listing tenants with pagination
func (suite *TenantRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 5; i++ {
		tenant := suite.factories.Tenant.Create()
		err := suite.repo.Create(tenant)
		suite.NoError(err)
	}

	tenants, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(tenants, 2)
	suite.Equal(int64(5), total)

	tenants, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(tenants, 1)
	suite.Equal(int64(5), total)
}

// TestUpdate tests updating a tenant
func (suite *TenantRepositoryTestSuite) TestUpdate() {
	tenant := suite.factories.Tenant.Create()
	err := suite.repo.Create(tenant)
	suite.NoError(err)

	tenant.Name = "Renamed School"
	err = suite.repo.Update(tenant)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal("Renamed School", updated.Name)
}

// TestUpdateDuplicateSubdomain tests that renaming onto a taken subdomain fails
func (suite *TenantRepositoryTestSuite) TestUpdateDuplicateSubdomain() {
	tenant1 := suite.factories.Tenant.WithSubdomain("first")
	suite.NoError(suite.repo.Create(tenant1))

	tenant2 := suite.factories.Tenant.WithSubdomain("second")
	suite.NoError(suite.repo.Create(tenant2))

	tenant2.Subdomain = "first"
	err := suite.repo.Update(tenant2)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTenantExists)
}

// TestGetWithStudents tests retrieving a tenant with its students preloaded
func (suite *TenantRepositoryTestSuite) TestGetWithStudents() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	studentRepo := NewStudentRepository(suite.baseTestSuite.DB)
	for _, name := range []string{"amy", "ben"} {
		student := suite.factories.Student.WithTenant(tenant.ID)
		student.Username = name
		suite.NoError(studentRepo.Create(student))
	}

	retrieved, err := suite.repo.GetWithStudents(tenant.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Len(retrieved.Students, 2)
}

// Run the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
