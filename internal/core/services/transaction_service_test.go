package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, deltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ApproveTransaction(ctx context.Context, txn domain.Transaction, approverID string, now time.Time, deltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, approverID, now, deltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) RejectTransaction(ctx context.Context, transactionID string, approverID string, now time.Time) error {
	args := m.Called(ctx, transactionID, approverID, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         transactionSvc
}

// transactionSvc keeps the suite decoupled from the unexported service type.
type transactionSvc interface {
	CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	ApproveTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error)
	RejectTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo, "INR")
}

func (suite *TransactionServiceTestSuite) knownAccounts(ids ...string) map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{AccountID: id, IsActive: true}
	}
	return accounts
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DataEntryAlwaysDraft() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleDataEntry}
	req := dto.CreateTransactionRequest{
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(100),
		Type:      domain.TypeExpense,
		AccountID: "acc-1",
		Status:    domain.StatusSubmitted, // asked for submitted, gets draft
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).Return(suite.knownAccounts("acc-1"), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, actor, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, txn.Status)
	suite.Nil(txn.ApprovedBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AdminPreApprovedPostsDeltas() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	req := dto.CreateTransactionRequest{
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(250),
		Type:      domain.TypeIncome,
		AccountID: "acc-1",
		Status:    domain.StatusApproved,
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).Return(suite.knownAccounts("acc-1"), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return len(deltas) == 1 && deltas["acc-1"].Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, actor, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, txn.Status)
	suite.Require().NotNil(txn.ApprovedBy)
	suite.Equal(actor.UserID, *txn.ApprovedBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_HRApprovedDowngradedToSubmitted() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleHR}
	req := dto.CreateTransactionRequest{
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(75),
		Type:      domain.TypeExpense,
		AccountID: "acc-1",
		Status:    domain.StatusApproved,
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).Return(suite.knownAccounts("acc-1"), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, actor, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSubmitted, txn.Status)
	suite.Nil(txn.ApprovedBy)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ManagerForbidden() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleManager}
	req := dto.CreateTransactionRequest{
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(10),
		Type:      domain.TypeExpense,
		AccountID: "acc-1",
	}

	_, err := suite.service.CreateTransaction(ctx, actor, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TransferNeedsDistinctDestination() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	sameAccount := "acc-1"
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Amount:      decimal.NewFromInt(10),
		Type:        domain.TypeTransfer,
		AccountID:   sameAccount,
		ToAccountID: &sameAccount,
	}

	_, err := suite.service.CreateTransaction(ctx, actor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MissingAccountRejected() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	req := dto.CreateTransactionRequest{
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(10),
		Type:      domain.TypeExpense,
		AccountID: "nope",
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"nope"}).Return(map[string]domain.Account{}, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, actor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ComputesBaseAmount() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	rate := decimal.RequireFromString("83.5")
	req := dto.CreateTransactionRequest{
		Date:         time.Now(),
		Amount:       decimal.NewFromInt(10),
		CurrencyCode: "USD",
		ExchangeRate: &rate,
		Type:         domain.TypeExpense,
		AccountID:    "acc-1",
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).Return(suite.knownAccounts("acc-1"), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, actor, req)

	suite.Require().NoError(err)
	suite.True(txn.BaseAmount.Equal(decimal.NewFromInt(835)), "got %s", txn.BaseAmount)
	suite.Equal("USD", txn.CurrencyCode)
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_NonAdminForbidden() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleHR}

	_, err := suite.service.ApproveTransaction(ctx, actor, "txn-1")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ApproveTransaction")
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_PassesBalanceDeltas() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	submitted := &domain.Transaction{
		TransactionID: "txn-1",
		Type:          domain.TypeExpense,
		AccountID:     "acc-1",
		BaseAmount:    decimal.NewFromInt(200),
		Status:        domain.StatusSubmitted,
	}
	approved := *submitted
	approved.Status = domain.StatusApproved

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(submitted, nil).Once()
	suite.mockTxnRepo.On("ApproveTransaction", ctx, *submitted, actor.UserID, mock.AnythingOfType("time.Time"), mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas["acc-1"].Equal(decimal.NewFromInt(-200))
	})).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(&approved, nil).Once()

	txn, err := suite.service.ApproveTransaction(ctx, actor, "txn-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_ConflictFromRepo() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	already := &domain.Transaction{
		TransactionID: "txn-1",
		Type:          domain.TypeIncome,
		AccountID:     "acc-1",
		BaseAmount:    decimal.NewFromInt(50),
		Status:        domain.StatusApproved,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(already, nil).Once()
	suite.mockTxnRepo.On("ApproveTransaction", ctx, *already, actor.UserID, mock.AnythingOfType("time.Time"), mock.Anything).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.ApproveTransaction(ctx, actor, "txn-1")

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ApprovedNeedsAdmin() {
	ctx := context.Background()
	owner := uuid.NewString()
	actor := domain.Actor{UserID: owner, Role: domain.RoleDataEntry}
	txn := &domain.Transaction{
		TransactionID: "txn-1",
		Status:        domain.StatusApproved,
	}
	txn.CreatedBy = owner

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(txn, nil).Once()

	newDesc := "corrected"
	_, err := suite.service.UpdateTransaction(ctx, actor, "txn-1", dto.UpdateTransactionRequest{Description: &newDesc})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction")
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NonCreatorForbidden() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleHR}
	txn := &domain.Transaction{
		TransactionID: "txn-1",
		Status:        domain.StatusDraft,
	}
	txn.CreatedBy = uuid.NewString() // someone else

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(txn, nil).Once()

	newDesc := "sneaky edit"
	_, err := suite.service.UpdateTransaction(ctx, actor, "txn-1", dto.UpdateTransactionRequest{Description: &newDesc})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RecomputesBaseAmount() {
	ctx := context.Background()
	owner := uuid.NewString()
	actor := domain.Actor{UserID: owner, Role: domain.RoleHR}
	txn := &domain.Transaction{
		TransactionID: "txn-1",
		Amount:        decimal.NewFromInt(10),
		ExchangeRate:  decimal.NewFromInt(2),
		BaseAmount:    decimal.NewFromInt(20),
		Status:        domain.StatusDraft,
	}
	txn.CreatedBy = owner

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(txn, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	newAmount := decimal.NewFromInt(15)
	updated, err := suite.service.UpdateTransaction(ctx, actor, "txn-1", dto.UpdateTransactionRequest{Amount: &newAmount})

	suite.Require().NoError(err)
	suite.True(updated.BaseAmount.Equal(decimal.NewFromInt(30)), "got %s", updated.BaseAmount)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_OwnerDraftAllowed() {
	ctx := context.Background()
	owner := uuid.NewString()
	actor := domain.Actor{UserID: owner, Role: domain.RoleDataEntry}
	txn := &domain.Transaction{TransactionID: "txn-1", Status: domain.StatusDraft}
	txn.CreatedBy = owner

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(txn, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, "txn-1").Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, actor, "txn-1")

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_OwnerSubmittedForbidden() {
	ctx := context.Background()
	owner := uuid.NewString()
	actor := domain.Actor{UserID: owner, Role: domain.RoleDataEntry}
	txn := &domain.Transaction{TransactionID: "txn-1", Status: domain.StatusSubmitted}
	txn.CreatedBy = owner

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(txn, nil).Once()

	err := suite.service.DeleteTransaction(ctx, actor, "txn-1")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction")
}

func (suite *TransactionServiceTestSuite) TestListTransactions_MonthWindow() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.MatchedBy(func(f portsrepo.ListTransactionsFilter) bool {
		return f.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To.After(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)) &&
			f.To.Before(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Month: "2026-03"})

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadMonth() {
	ctx := context.Background()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Month: "March 2026"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadStatus() {
	ctx := context.Background()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Status: "pending"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
