package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
// There is no automatic transition into overdue; it must be set explicitly.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// IsValid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// InvoiceLineItem is a single billed line, owned by its invoice.
// Amount = Quantity * UnitPrice.
type InvoiceLineItem struct {
	LineItemID  string          `json:"lineItemID"` // Primary key (UUID)
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice represents a client invoice with its owned line items.
// TotalAmount is supplied by the client as the sum of line amounts and is
// not re-verified server-side.
type Invoice struct {
	InvoiceID     string            `json:"invoiceID"` // Primary key (UUID)
	InvoiceNumber string            `json:"invoiceNumber"`
	ClientID      string            `json:"clientID"`
	IssueDate     time.Time         `json:"issueDate"`
	DueDate       time.Time         `json:"dueDate"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	Status        InvoiceStatus     `json:"status"`
	LineItems     []InvoiceLineItem `json:"lineItems,omitempty"`
	AuditFields
}
