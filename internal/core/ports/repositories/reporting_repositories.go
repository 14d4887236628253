package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-side aggregation queries backing the
// dashboard and goal progress. All sums consider approved transactions only.
type ReportingRepository interface {
	// GetAvailableFunds returns the sum of all active accounts' balances.
	GetAvailableFunds(ctx context.Context) (decimal.Decimal, error)
	// GetOverdraftBalance returns the balance of the overdraft/credit-line
	// account. The bool is false when no such account exists.
	GetOverdraftBalance(ctx context.Context) (decimal.Decimal, bool, error)
	// GetSumByType returns the base-currency sum of approved transactions of
	// the given type with dates in [from, to].
	GetSumByType(ctx context.Context, txnType domain.TransactionType, from, to time.Time) (decimal.Decimal, error)
	// GetCategoryBreakdown returns per-category base-currency sums of
	// approved transactions of the given type in [from, to], largest first,
	// at most limit rows, zero-sum categories excluded.
	GetCategoryBreakdown(ctx context.Context, txnType domain.TransactionType, from, to time.Time, limit int) ([]domain.CategoryAmount, error)
}
