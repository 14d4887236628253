package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAvailableFunds(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetOverdraftBalance(ctx context.Context) (decimal.Decimal, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

func (m *MockReportingRepository) GetSumByType(ctx context.Context, txnType domain.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, txnType, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetCategoryBreakdown(ctx context.Context, txnType domain.TransactionType, from, to time.Time, limit int) ([]domain.CategoryAmount, error) {
	args := m.Called(ctx, txnType, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryAmount), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

type dashboardSvc interface {
	GetStats(ctx context.Context, month time.Time) (*domain.DashboardStats, error)
}

type DashboardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  dashboardSvc
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewDashboardService(suite.mockRepo, decimal.NewFromInt(500000))
}

func (suite *DashboardServiceTestSuite) TestGetStats_ProfitLossAndOverdraft() {
	ctx := context.Background()
	month := time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)

	suite.mockRepo.On("GetAvailableFunds", ctx).Return(decimal.NewFromInt(120000), nil).Once()
	suite.mockRepo.On("GetSumByType", ctx, domain.TypeIncome, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(decimal.NewFromInt(90000), nil).Once()
	suite.mockRepo.On("GetSumByType", ctx, domain.TypeExpense, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(decimal.NewFromInt(65000), nil).Once()
	suite.mockRepo.On("GetOverdraftBalance", ctx).Return(decimal.NewFromInt(-40000), true, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", ctx, domain.TypeExpense, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 5).Return([]domain.CategoryAmount{
		{CategoryID: "c1", CategoryName: "Salaries", Amount: decimal.NewFromInt(50000)},
	}, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", ctx, domain.TypeIncome, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 5).Return([]domain.CategoryAmount{}, nil).Once()

	stats, err := suite.service.GetStats(ctx, month)

	suite.Require().NoError(err)
	suite.True(stats.ProfitLoss.Equal(decimal.NewFromInt(25000)), "got %s", stats.ProfitLoss)
	suite.True(stats.OverdraftUsed.Equal(decimal.NewFromInt(40000)))
	suite.True(stats.OverdraftRemaining.Equal(decimal.NewFromInt(460000)))
	suite.Len(stats.TopExpenses, 1)
	suite.Empty(stats.RevenueByCategory)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetStats_PositiveOverdraftBalanceMeansNothingUsed() {
	ctx := context.Background()
	month := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("GetAvailableFunds", ctx).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetSumByType", ctx, domain.TypeIncome, mock.Anything, mock.Anything).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetSumByType", ctx, domain.TypeExpense, mock.Anything, mock.Anything).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetOverdraftBalance", ctx).Return(decimal.NewFromInt(1500), true, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", ctx, domain.TypeExpense, mock.Anything, mock.Anything, 5).Return([]domain.CategoryAmount{}, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", ctx, domain.TypeIncome, mock.Anything, mock.Anything, 5).Return([]domain.CategoryAmount{}, nil).Once()

	stats, err := suite.service.GetStats(ctx, month)

	suite.Require().NoError(err)
	suite.True(stats.OverdraftUsed.IsZero())
	suite.True(stats.OverdraftRemaining.Equal(decimal.NewFromInt(500000)))
}

func (suite *DashboardServiceTestSuite) TestGetStats_NoOverdraftAccount() {
	ctx := context.Background()
	month := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("GetAvailableFunds", ctx).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetSumByType", ctx, domain.TypeIncome, mock.Anything, mock.Anything).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetSumByType", ctx, domain.TypeExpense, mock.Anything, mock.Anything).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetOverdraftBalance", ctx).Return(decimal.Zero, false, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", ctx, domain.TypeExpense, mock.Anything, mock.Anything, 5).Return([]domain.CategoryAmount{}, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", ctx, domain.TypeIncome, mock.Anything, mock.Anything, 5).Return([]domain.CategoryAmount{}, nil).Once()

	stats, err := suite.service.GetStats(ctx, month)

	suite.Require().NoError(err)
	suite.True(stats.OverdraftUsed.IsZero())
}

func (suite *DashboardServiceTestSuite) TestGetStats_MonthWindowPassedToQueries() {
	ctx := context.Background()
	month := time.Date(2026, 2, 20, 15, 30, 0, 0, time.UTC)
	wantFrom := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	fromMatches := mock.MatchedBy(func(from time.Time) bool { return from.Equal(wantFrom) })
	toMatches := mock.MatchedBy(func(to time.Time) bool {
		return to.After(time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)) && to.Before(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	})

	suite.mockRepo.On("GetAvailableFunds", ctx).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetSumByType", ctx, domain.TypeIncome, fromMatches, toMatches).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetSumByType", ctx, domain.TypeExpense, fromMatches, toMatches).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("GetOverdraftBalance", ctx).Return(decimal.Zero, false, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", ctx, domain.TypeExpense, fromMatches, toMatches, 5).Return([]domain.CategoryAmount{}, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", ctx, domain.TypeIncome, fromMatches, toMatches, 5).Return([]domain.CategoryAmount{}, nil).Once()

	_, err := suite.service.GetStats(ctx, month)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
