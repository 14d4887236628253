package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice, with its line items, by identifier.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices, optionally filtered by status.
	ListInvoices(ctx context.Context, status *domain.InvoiceStatus) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new invoice with its line items. The caller
	// supplies the total; it is not re-verified against the line amounts.
	CreateInvoice(ctx context.Context, actor domain.Actor, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoiceStatus moves an invoice through its lifecycle
	// (draft, sent, paid, overdue).
	UpdateInvoiceStatus(ctx context.Context, actor domain.Actor, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
