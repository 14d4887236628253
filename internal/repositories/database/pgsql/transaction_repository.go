package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool, accountRepo *PgxAccountRepository) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, date, amount, currency_code, exchange_rate, base_amount, type, category_id, account_id, to_account_id, description, status, approved_by, approved_at, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.Date,
		&t.Amount,
		&t.CurrencyCode,
		&t.ExchangeRate,
		&t.BaseAmount,
		&t.Type,
		&t.CategoryID,
		&t.AccountID,
		&t.ToAccountID,
		&t.Description,
		&t.Status,
		&t.ApprovedBy,
		&t.ApprovedAt,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func insertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.Date,
		txn.Amount,
		txn.CurrencyCode,
		txn.ExchangeRate,
		txn.BaseAmount,
		txn.Type,
		txn.CategoryID,
		txn.AccountID,
		txn.ToAccountID,
		txn.Description,
		txn.Status,
		txn.ApprovedBy,
		txn.ApprovedAt,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	return err
}

// SaveTransaction inserts the row. When deltas is non-empty the transaction
// arrives pre-approved and the balance increments land in the same database
// transaction as the insert.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertTransactionTx(ctx, tx, txn); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := r.accountRepo.applyBalanceDeltasInTx(ctx, tx, deltas, txn.Type, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := make([]interface{}, 0, 5)

	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		query += fmt.Sprintf(" AND (account_id = $%d OR to_account_id = $%d)", len(args), len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += ` ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        UPDATE transactions
        SET date = $2, amount = $3, currency_code = $4, exchange_rate = $5, base_amount = $6,
            type = $7, category_id = $8, account_id = $9, to_account_id = $10, description = $11,
            status = $12, last_updated_at = $13, last_updated_by = $14
        WHERE transaction_id = $1;
    `
	ct, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Date,
		txn.Amount,
		txn.CurrencyCode,
		txn.ExchangeRate,
		txn.BaseAmount,
		txn.Type,
		txn.CategoryID,
		txn.AccountID,
		txn.ToAccountID,
		txn.Description,
		txn.Status,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApproveTransaction flips a submitted transaction to approved and applies
// its balance increments in one database transaction. The status flip is
// conditional on the stored status still being submitted; a lost race or a
// repeated approval affects zero rows and nothing is posted.
func (r *PgxTransactionRepository) ApproveTransaction(ctx context.Context, txn domain.Transaction, approverID string, now time.Time, deltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	flip := `
        UPDATE transactions
        SET status = $2, approved_by = $3, approved_at = $4, last_updated_at = $4, last_updated_by = $3
        WHERE transaction_id = $1 AND status = $5;
    `
	ct, err := tx.Exec(ctx, flip, txn.TransactionID, domain.StatusApproved, approverID, now, domain.StatusSubmitted)
	if err != nil {
		return fmt.Errorf("failed to approve transaction %s: %w", txn.TransactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return r.conflictOrNotFound(ctx, tx, txn.TransactionID)
	}

	if err := r.accountRepo.applyBalanceDeltasInTx(ctx, tx, deltas, txn.Type, approverID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// RejectTransaction flips a submitted transaction to rejected. No balance
// is touched.
func (r *PgxTransactionRepository) RejectTransaction(ctx context.Context, transactionID string, approverID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	flip := `
        UPDATE transactions
        SET status = $2, approved_by = $3, approved_at = $4, last_updated_at = $4, last_updated_by = $3
        WHERE transaction_id = $1 AND status = $5;
    `
	ct, err := tx.Exec(ctx, flip, transactionID, domain.StatusRejected, approverID, now, domain.StatusSubmitted)
	if err != nil {
		return fmt.Errorf("failed to reject transaction %s: %w", transactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return r.conflictOrNotFound(ctx, tx, transactionID)
	}

	return r.Commit(ctx, tx)
}

// conflictOrNotFound distinguishes a missing row from a row that was not in
// submitted state when a conditional status flip affected zero rows.
func (r *PgxTransactionRepository) conflictOrNotFound(ctx context.Context, tx pgx.Tx, transactionID string) error {
	var status domain.TransactionStatus
	err := tx.QueryRow(ctx, `SELECT status FROM transactions WHERE transaction_id = $1;`, transactionID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to read status of transaction %s: %w", transactionID, err)
	}
	return fmt.Errorf("%w: transaction is %s, only submitted transactions can be decided", apperrors.ErrConflict, status)
}

// DeleteTransaction hard-deletes the row. Balance effects of an approved
// transaction are deliberately left in place.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
