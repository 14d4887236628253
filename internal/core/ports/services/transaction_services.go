package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the given filters.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction. Admin-created
	// transactions are approved immediately and posted to balances;
	// everyone else's enter the approval queue.
	CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction edits a transaction. Only admins may touch approved
	// transactions; edits there do not retroactively adjust balances.
	UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction. Approved balance effects are
	// never reversed by deletion.
	DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error
}

// TransactionApproverSvc defines the approval workflow operations
type TransactionApproverSvc interface {
	// ApproveTransaction flips a submitted transaction to approved and posts
	// its balance effects atomically. Any other starting status is a conflict.
	ApproveTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error)

	// RejectTransaction flips a submitted transaction to rejected. Balances
	// are untouched.
	RejectTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionApproverSvc
}
