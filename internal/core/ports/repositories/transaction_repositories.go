package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsFilter narrows a transaction listing.
// From/To bound the transaction date (inclusive) when non-zero.
type ListTransactionsFilter struct {
	From       time.Time
	To         time.Time
	AccountID  string
	CategoryID string
	Status     domain.TransactionStatus
}

// TransactionRepository defines persistence operations for transactions and
// the balance maintenance that accompanies approval.
//
// Balance deltas are applied as SQL increments relative to the stored value
// (never read-modify-write in the application), and every method that takes
// deltas runs the row write and all increments inside a single database
// transaction. Deltas against missing or inactive accounts are skipped
// silently; the transaction row itself always persists.
type TransactionRepository interface {
	// SaveTransaction inserts the row. A non-empty deltas map means the
	// transaction is being created pre-approved and balances move in the
	// same database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// ApproveTransaction flips status submitted -> approved, stamps the
	// approver, and applies deltas atomically. It returns
	// apperrors.ErrConflict if the row was not in submitted state, in which
	// case no balance is touched.
	ApproveTransaction(ctx context.Context, txn domain.Transaction, approverID string, now time.Time, deltas map[string]decimal.Decimal) error
	// RejectTransaction flips status submitted -> rejected with no balance
	// effect. Returns apperrors.ErrConflict if the row was not submitted.
	RejectTransaction(ctx context.Context, transactionID string, approverID string, now time.Time) error
	// DeleteTransaction hard-deletes the row. It never reverses balance
	// effects of an already-approved transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
