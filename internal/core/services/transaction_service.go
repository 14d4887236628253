package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	baseCurrency    string
}

// NewTransactionService creates the transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository, baseCurrency string) *transactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		baseCurrency:    baseCurrency,
	}
}

// resolveCreateStatus clamps the requested status to what the actor's role
// allows. Only admins may create pre-approved rows; data_entry always lands
// in draft no matter what was asked for.
func resolveCreateStatus(actor domain.Actor, requested domain.TransactionStatus) (domain.TransactionStatus, error) {
	if requested == "" {
		requested = domain.StatusDraft
	}
	if requested == domain.StatusRejected {
		return "", fmt.Errorf("%w: cannot create a rejected transaction", apperrors.ErrValidation)
	}
	if !requested.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, requested)
	}

	if actor.Role == domain.RoleDataEntry {
		return domain.StatusDraft, nil
	}
	if requested == domain.StatusApproved && !domain.Permits(actor.Role, domain.ActionApproveTransaction) {
		return domain.StatusSubmitted, nil
	}
	return requested, nil
}

func (s *transactionService) validateReferences(ctx context.Context, req dto.CreateTransactionRequest) error {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	if req.Type == domain.TypeTransfer {
		if req.ToAccountID == nil || *req.ToAccountID == "" {
			return fmt.Errorf("%w: transfer requires toAccountID", apperrors.ErrValidation)
		}
		if *req.ToAccountID == req.AccountID {
			return fmt.Errorf("%w: transfer source and destination must differ", apperrors.ErrValidation)
		}
	} else if req.ToAccountID != nil {
		return fmt.Errorf("%w: toAccountID is only valid for transfers", apperrors.ErrValidation)
	}

	ids := []string{req.AccountID}
	if req.ToAccountID != nil {
		ids = append(ids, *req.ToAccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, id)
		}
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !domain.Permits(actor.Role, domain.ActionCreateTransaction) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.validateReferences(ctx, req); err != nil {
		return nil, err
	}

	status, err := resolveCreateStatus(actor, req.Status)
	if err != nil {
		return nil, err
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = s.baseCurrency
	}
	rate := decimal.NewFromInt(1)
	if req.ExchangeRate != nil {
		rate = *req.ExchangeRate
		if rate.IsNegative() || rate.IsZero() {
			return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.Date,
		Amount:        req.Amount,
		CurrencyCode:  currency,
		ExchangeRate:  rate,
		BaseAmount:    domain.ComputeBaseAmount(req.Amount, rate),
		Type:          req.Type,
		CategoryID:    req.CategoryID,
		AccountID:     req.AccountID,
		ToAccountID:   req.ToAccountID,
		Description:   req.Description,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	// A pre-approved create posts its balance effects in the same database
	// transaction as the insert.
	var deltas map[string]decimal.Decimal
	if status == domain.StatusApproved {
		txn.ApprovedBy = &actor.UserID
		txn.ApprovedAt = &now
		deltas = txn.BalanceDeltas()
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, deltas); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		"transaction_id", txn.TransactionID,
		"type", string(txn.Type),
		"status", string(txn.Status),
		"base_amount", txn.BaseAmount.String(),
	)
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.ListTransactionsFilter{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
	}

	if params.Status != "" {
		status := domain.TransactionStatus(params.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = status
	}

	if params.Month != "" {
		monthStart, err := time.Parse("2006-01", params.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: month must be YYYY-MM", apperrors.ErrValidation)
		}
		filter.From = monthStart
		filter.To = monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}

	return s.transactionRepo.ListTransactions(ctx, filter)
}

// UpdateTransaction edits a transaction in place. Approved rows are
// admin-only and edits to them deliberately do not touch account balances;
// the edit is a bookkeeping correction, not a re-posting.
func (s *transactionService) UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if txn.Status == domain.StatusApproved {
		if !domain.Permits(actor.Role, domain.ActionEditApprovedTransaction) {
			return nil, apperrors.ErrForbidden
		}
	} else if txn.CreatedBy != actor.UserID && actor.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
		txn.BaseAmount = domain.ComputeBaseAmount(txn.Amount, txn.ExchangeRate)
	}
	if req.CategoryID != nil {
		txn.CategoryID = req.CategoryID
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = actor.UserID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", "transaction_id", transactionID)
		return nil, err
	}

	return txn, nil
}

func (s *transactionService) ApproveTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	if !domain.Permits(actor.Role, domain.ActionApproveTransaction) {
		return nil, apperrors.ErrForbidden
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.transactionRepo.ApproveTransaction(ctx, *txn, actor.UserID, now, txn.BalanceDeltas()); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction approved",
		"transaction_id", transactionID,
		"base_amount", txn.BaseAmount.String(),
	)
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) RejectTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	if !domain.Permits(actor.Role, domain.ActionRejectTransaction) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.transactionRepo.RejectTransaction(ctx, transactionID, actor.UserID, time.Now()); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction rejected", "transaction_id", transactionID)
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// DeleteTransaction removes the row outright. Approved balance effects stay
// as posted; there is no reversal on delete.
func (s *transactionService) DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if !domain.CanDeleteTransaction(actor, txn) {
		return apperrors.ErrForbidden
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID, "status_at_delete", string(txn.Status))
	return nil
}
