package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) *accountService {
	return &accountService{accountRepo: accountRepo}
}

// CreateAccount persists a new account. The opening balance seeds the cached
// balance; everything after that flows through transaction approval.
func (s *accountService) CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !domain.Permits(actor.Role, domain.ActionAccessSettings) {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		AccountType:    req.AccountType,
		OpeningBalance: req.OpeningBalance,
		Balance:        req.OpeningBalance,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", "name", req.Name)
		return nil, err
	}

	s.LogInfo(ctx, "Account created", "account_id", account.AccountID, "type", string(account.AccountType))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, includeInactive)
}

// DeactivateAccount retires an account instead of hard-deleting it: history
// and the cached balance stay queryable, future postings skip it.
func (s *accountService) DeactivateAccount(ctx context.Context, actor domain.Actor, accountID string) error {
	if !domain.Permits(actor.Role, domain.ActionAccessSettings) {
		return apperrors.ErrForbidden
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actor.UserID, time.Now()); err != nil {
		return err
	}

	s.LogInfo(ctx, "Account deactivated", "account_id", accountID)
	return nil
}
