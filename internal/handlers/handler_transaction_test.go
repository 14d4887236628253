package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/fintrackhq/fintrack_backend/internal/utils"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ApproveTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) RejectTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error {
	args := m.Called(ctx, actor, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite Setup ---

type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	token, _, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "fintrack-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockTransactionService)

	api := suite.router.Group("/api", middleware.AuthMiddleware(suite.jwtSecret))
	registerTransactionRoutes(api, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{TransactionID: "t1", Amount: decimal.NewFromInt(100), Type: domain.TypeExpense, AccountID: "a1", Status: domain.StatusApproved},
		{TransactionID: "t2", Amount: decimal.NewFromInt(50), Type: domain.TypeIncome, AccountID: "a1", Status: domain.StatusDraft},
	}

	suite.mockService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Month == "2026-03" && p.AccountID == "a1"
	})).Return(txns, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleHR)
	w := suite.doRequest(http.MethodGet, "/api/transactions?month=2026-03&accountId=a1", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Transactions, 2)
	suite.Equal("t1", body.Transactions[0].TransactionID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_NoToken() {
	w := suite.doRequest(http.MethodGet, "/api/transactions", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_PassesActorFromToken() {
	userID := uuid.NewString()
	created := &domain.Transaction{TransactionID: "t1", Status: domain.StatusDraft}

	suite.mockService.On("CreateTransaction", mock.Anything, domain.Actor{UserID: userID, Role: domain.RoleDataEntry}, mock.AnythingOfType("dto.CreateTransactionRequest")).Return(created, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleDataEntry)
	reqBody := dto.CreateTransactionRequest{
		Date:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(100),
		Type:      domain.TypeExpense,
		AccountID: "a1",
	}
	w := suite.doRequest(http.MethodPost, "/api/transactions", reqBody, token)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorIs400() {
	userID := uuid.NewString()

	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("domain.Actor"), mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, fmt.Errorf("%w: transfer requires toAccountID", apperrors.ErrValidation)).Once()

	token := suite.generateTestToken(userID, domain.RoleHR)
	reqBody := dto.CreateTransactionRequest{
		Date:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(100),
		Type:      domain.TypeTransfer,
		AccountID: "a1",
	}
	w := suite.doRequest(http.MethodPost, "/api/transactions", reqBody, token)

	suite.Equal(http.StatusBadRequest, w.Code)

	var body ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Contains(body.Message, "toAccountID")
}

func (suite *TransactionHandlerTestSuite) TestApproveTransaction_ConflictIs409() {
	userID := uuid.NewString()

	suite.mockService.On("ApproveTransaction", mock.Anything, domain.Actor{UserID: userID, Role: domain.RoleAdmin}, "t1").
		Return(nil, fmt.Errorf("%w: transaction is approved, only submitted transactions can be decided", apperrors.ErrConflict)).Once()

	token := suite.generateTestToken(userID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodPost, "/api/transactions/t1/approve", nil, token)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestApproveTransaction_ForbiddenIs403() {
	userID := uuid.NewString()

	suite.mockService.On("ApproveTransaction", mock.Anything, domain.Actor{UserID: userID, Role: domain.RoleHR}, "t1").
		Return(nil, apperrors.ErrForbidden).Once()

	token := suite.generateTestToken(userID, domain.RoleHR)
	w := suite.doRequest(http.MethodPost, "/api/transactions/t1/approve", nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFoundIs404() {
	userID := uuid.NewString()

	suite.mockService.On("GetTransactionByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(userID, domain.RoleHR)
	w := suite.doRequest(http.MethodGet, "/api/transactions/missing", nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	userID := uuid.NewString()

	suite.mockService.On("DeleteTransaction", mock.Anything, domain.Actor{UserID: userID, Role: domain.RoleAdmin}, "t1").Return(nil).Once()

	token := suite.generateTestToken(userID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodDelete, "/api/transactions/t1", nil, token)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
