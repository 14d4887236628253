package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
)

// breakdownLimit caps the per-breakdown category count on the dashboard.
const breakdownLimit = 5

type dashboardService struct {
	BaseService
	reportingRepo  portsrepo.ReportingRepository
	overdraftLimit decimal.Decimal
}

// NewDashboardService creates the dashboard service. The overdraft limit is
// a fixed configured value, not a per-account attribute.
func NewDashboardService(reportingRepo portsrepo.ReportingRepository, overdraftLimit decimal.Decimal) *dashboardService {
	return &dashboardService{reportingRepo: reportingRepo, overdraftLimit: overdraftLimit}
}

// GetStats aggregates the dashboard for the calendar month containing the
// given time. All sums read approved transactions only; a month with no
// activity yields zero values and empty breakdowns.
func (s *dashboardService) GetStats(ctx context.Context, month time.Time) (*domain.DashboardStats, error) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	availableFunds, err := s.reportingRepo.GetAvailableFunds(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute available funds")
		return nil, err
	}

	totalIncome, err := s.reportingRepo.GetSumByType(ctx, domain.TypeIncome, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum income")
		return nil, err
	}
	totalExpense, err := s.reportingRepo.GetSumByType(ctx, domain.TypeExpense, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum expense")
		return nil, err
	}

	// A negative overdraft account balance is drawn credit. No overdraft
	// account means nothing used.
	overdraftUsed := decimal.Zero
	odBalance, odExists, err := s.reportingRepo.GetOverdraftBalance(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read overdraft balance")
		return nil, err
	}
	if odExists && odBalance.IsNegative() {
		overdraftUsed = odBalance.Neg()
	}

	topExpenses, err := s.reportingRepo.GetCategoryBreakdown(ctx, domain.TypeExpense, from, to, breakdownLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute expense breakdown")
		return nil, err
	}
	revenueByCategory, err := s.reportingRepo.GetCategoryBreakdown(ctx, domain.TypeIncome, from, to, breakdownLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute revenue breakdown")
		return nil, err
	}

	return &domain.DashboardStats{
		AvailableFunds:     availableFunds,
		ProfitLoss:         totalIncome.Sub(totalExpense),
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		OverdraftLimit:     s.overdraftLimit,
		OverdraftUsed:      overdraftUsed,
		OverdraftRemaining: s.overdraftLimit.Sub(overdraftUsed),
		TopExpenses:        topExpenses,
		RevenueByCategory:  revenueByCategory,
	}, nil
}
