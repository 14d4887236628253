package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetAvailableFunds(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE is_active = TRUE;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account balances: %w", err)
	}
	return total, nil
}

// GetOverdraftBalance returns the balance of the overdraft/credit-line
// account. The model assumes a single such account; if several exist the
// oldest one is used. The bool is false when none exists.
func (r *PgxReportingRepository) GetOverdraftBalance(ctx context.Context) (decimal.Decimal, bool, error) {
	var balance decimal.Decimal
	query := `
        SELECT balance FROM accounts
        WHERE account_type = $1 AND is_active = TRUE
        ORDER BY created_at ASC
        LIMIT 1;
    `
	err := r.Pool.QueryRow(ctx, query, domain.AccountOverdraft).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to read overdraft balance: %w", err)
	}
	return balance, true, nil
}

func (r *PgxReportingRepository) GetSumByType(ctx context.Context, txnType domain.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
        SELECT COALESCE(SUM(base_amount), 0)
        FROM transactions
        WHERE status = $1 AND type = $2 AND date >= $3 AND date <= $4;
    `
	if err := r.Pool.QueryRow(ctx, query, domain.StatusApproved, txnType, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s transactions: %w", txnType, err)
	}
	return total, nil
}

func (r *PgxReportingRepository) GetCategoryBreakdown(ctx context.Context, txnType domain.TransactionType, from, to time.Time, limit int) ([]domain.CategoryAmount, error) {
	if limit <= 0 {
		limit = 5
	}

	// Uncategorized transactions are excluded; so are categories whose sum
	// comes out to zero.
	query := `
        SELECT c.category_id, c.name, SUM(t.base_amount) AS total
        FROM transactions t
        JOIN categories c ON c.category_id = t.category_id
        WHERE t.status = $1 AND t.type = $2 AND t.date >= $3 AND t.date <= $4
        GROUP BY c.category_id, c.name
        HAVING SUM(t.base_amount) <> 0
        ORDER BY total DESC, c.name ASC
        LIMIT $5;
    `
	rows, err := r.Pool.Query(ctx, query, domain.StatusApproved, txnType, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s category breakdown: %w", txnType, err)
	}
	defer rows.Close()

	breakdown := make([]domain.CategoryAmount, 0, limit)
	for rows.Next() {
		var row domain.CategoryAmount
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
		}
		breakdown = append(breakdown, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating breakdown rows: %w", err)
	}
	return breakdown, nil
}
