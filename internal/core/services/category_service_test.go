package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// MockCategoryRepository is a mock type for the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, includeDisabled bool) ([]domain.Category, error) {
	args := m.Called(ctx, includeDisabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

var _ portsrepo.CategoryRepository = (*MockCategoryRepository)(nil)

type categorySvc interface {
	CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, actor domain.Actor, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, actor domain.Actor, categoryID string) error
}

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  categorySvc
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.CreateCategory(ctx, domain.Actor{UserID: "u1", Role: domain.RoleManager}, dto.CreateCategoryRequest{Name: "Travel"})
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)

	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Travel" && c.IsEnabled && !c.IsSystem
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, domain.Actor{UserID: "a1", Role: domain.RoleAdmin}, dto.CreateCategoryRequest{Name: "Travel"})
	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_CannotDisableSystemCategory() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "a1", Role: domain.RoleAdmin}
	system := &domain.Category{CategoryID: "c1", Name: "Salaries", IsEnabled: true, IsSystem: true}

	suite.mockRepo.On("FindCategoryByID", ctx, "c1").Return(system, nil).Once()

	disabled := false
	_, err := suite.service.UpdateCategory(ctx, actor, "c1", dto.UpdateCategoryRequest{IsEnabled: &disabled})

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory")
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_RenamingSystemCategoryAllowed() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "a1", Role: domain.RoleAdmin}
	system := &domain.Category{CategoryID: "c1", Name: "Salaries", IsEnabled: true, IsSystem: true}

	suite.mockRepo.On("FindCategoryByID", ctx, "c1").Return(system, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	newName := "Payroll"
	updated, err := suite.service.UpdateCategory(ctx, actor, "c1", dto.UpdateCategoryRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("Payroll", updated.Name)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_SystemCategoryBlocked() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "a1", Role: domain.RoleAdmin}
	system := &domain.Category{CategoryID: "c1", IsSystem: true}

	suite.mockRepo.On("FindCategoryByID", ctx, "c1").Return(system, nil).Once()

	err := suite.service.DeleteCategory(ctx, actor, "c1")

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_InUseConflictSurfaces() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "a1", Role: domain.RoleAdmin}
	plain := &domain.Category{CategoryID: "c2", IsSystem: false}

	suite.mockRepo.On("FindCategoryByID", ctx, "c2").Return(plain, nil).Once()
	suite.mockRepo.On("DeleteCategory", ctx, "c2").Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteCategory(ctx, actor, "c2")

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
