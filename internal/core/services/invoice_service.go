package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepository
	clientRepo  portsrepo.ClientRepository
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, clientRepo portsrepo.ClientRepository) *invoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, actor domain.Actor, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if !domain.Permits(actor.Role, domain.ActionCreateInvoice) {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s does not exist", apperrors.ErrValidation, req.ClientID)
		}
		return nil, err
	}

	if req.DueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: due date cannot precede issue date", apperrors.ErrValidation)
	}

	now := time.Now()
	invoiceID := uuid.NewString()

	items := make([]domain.InvoiceLineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		if li.Quantity.IsNegative() || li.Quantity.IsZero() || li.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: line item quantity must be positive and unit price non-negative", apperrors.ErrValidation)
		}
		items[i] = domain.InvoiceLineItem{
			LineItemID:  uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Quantity.Mul(li.UnitPrice),
		}
	}

	invoice := domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		TotalAmount:   req.TotalAmount,
		Status:        domain.InvoiceDraft,
		LineItems:     items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice, items); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", "invoice_number", req.InvoiceNumber)
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created", "invoice_id", invoiceID, "invoice_number", req.InvoiceNumber)
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, status *domain.InvoiceStatus) ([]domain.Invoice, error) {
	var filter domain.InvoiceStatus
	if status != nil {
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, *status)
		}
		filter = *status
	}
	return s.invoiceRepo.ListInvoices(ctx, filter)
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, actor domain.Actor, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !domain.Permits(actor.Role, domain.ActionUpdateInvoice) {
		return nil, apperrors.ErrForbidden
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, status)
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, status, actor.UserID, time.Now()); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice status updated", "invoice_id", invoiceID, "status", string(status))
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}
