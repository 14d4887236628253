package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// MockInvoiceRepository is a mock type for the InvoiceRepository interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceLineItem) error {
	args := m.Called(ctx, invoice, items)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, userID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, status, userID, now)
	return args.Error(0)
}

var _ portsrepo.InvoiceRepository = (*MockInvoiceRepository)(nil)

// MockClientRepository is a mock type for the ClientRepository interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, includeInactive bool) ([]domain.Client, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

var _ portsrepo.ClientRepository = (*MockClientRepository)(nil)

type invoiceSvc interface {
	CreateInvoice(ctx context.Context, actor domain.Actor, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, status *domain.InvoiceStatus) ([]domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, actor domain.Actor, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error)
}

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockClientRepo  *MockClientRepository
	service         invoiceSvc
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockClientRepo)
}

func (suite *InvoiceServiceTestSuite) validCreateRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2026-001",
		ClientID:      "client-1",
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalAmount:   decimal.NewFromInt(1500),
		LineItems: []dto.InvoiceLineItemRequest{
			{Description: "Consulting", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(150)},
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	suite.mockClientRepo.On("FindClientByID", ctx, "client-1").Return(&domain.Client{ClientID: "client-1"}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceLineItem")).Return(nil).Once()

	inv, err := suite.service.CreateInvoice(ctx, actor, suite.validCreateRequest())

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceDraft, inv.Status)
	suite.Require().Len(inv.LineItems, 1)
	suite.True(inv.LineItems[0].Amount.Equal(decimal.NewFromInt(1500)), "line amount is quantity * unit price")
	// The header total is taken from the request as-is.
	suite.True(inv.TotalAmount.Equal(decimal.NewFromInt(1500)))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DataEntryForbidden() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "de-1", Role: domain.RoleDataEntry}

	_, err := suite.service.CreateInvoice(ctx, actor, suite.validCreateRequest())

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownClientIsValidationError() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	suite.mockClientRepo.On("FindClientByID", ctx, "client-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(ctx, actor, suite.validCreateRequest())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DueBeforeIssueRejected() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}
	req := suite.validCreateRequest()
	req.DueDate = req.IssueDate.AddDate(0, 0, -1)

	suite.mockClientRepo.On("FindClientByID", ctx, "client-1").Return(&domain.Client{ClientID: "client-1"}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, actor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ZeroQuantityRejected() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}
	req := suite.validCreateRequest()
	req.LineItems[0].Quantity = decimal.Zero

	suite.mockClientRepo.On("FindClientByID", ctx, "client-1").Return(&domain.Client{ClientID: "client-1"}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, actor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_UnknownStatusRejected() {
	ctx := context.Background()
	bad := domain.InvoiceStatus("archived")

	_, err := suite.service.ListInvoices(ctx, &bad)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_AnyTransitionAllowed() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}
	paid := &domain.Invoice{InvoiceID: "inv-1", Status: domain.InvoicePaid}

	// paid back to draft is fine; transitions are unrestricted
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, "inv-1", domain.InvoiceDraft, actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(paid, nil).Once()

	_, err := suite.service.UpdateInvoiceStatus(ctx, actor, "inv-1", domain.InvoiceDraft)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
