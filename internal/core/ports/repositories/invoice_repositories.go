package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices and their
// owned line items. Line items are written in the same database transaction
// as the invoice header and cascade-delete with it.
type InvoiceRepository interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceLineItem) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, userID string, now time.Time) error
}
