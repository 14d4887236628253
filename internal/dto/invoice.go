package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineItemRequest is one billed line within a create request.
type InvoiceLineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// TotalAmount is computed client-side as the sum of line amounts and is not
// re-verified here.
type CreateInvoiceRequest struct {
	InvoiceNumber string                   `json:"invoiceNumber" binding:"required"`
	ClientID      string                   `json:"clientID" binding:"required"`
	IssueDate     time.Time                `json:"issueDate" binding:"required"`
	DueDate       time.Time                `json:"dueDate" binding:"required"`
	TotalAmount   decimal.Decimal          `json:"totalAmount"`
	LineItems     []InvoiceLineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

// UpdateInvoiceStatusRequest changes an invoice's status.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=draft sent paid overdue"`
}

// InvoiceLineItemResponse defines the data returned for a line item.
type InvoiceLineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                    `json:"invoiceID"`
	InvoiceNumber string                    `json:"invoiceNumber"`
	ClientID      string                    `json:"clientID"`
	IssueDate     time.Time                 `json:"issueDate"`
	DueDate       time.Time                 `json:"dueDate"`
	TotalAmount   decimal.Decimal           `json:"totalAmount"`
	Status        domain.InvoiceStatus      `json:"status"`
	LineItems     []InvoiceLineItemResponse `json:"lineItems,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceLineItemResponse, len(inv.LineItems))
	for i, li := range inv.LineItems {
		items[i] = InvoiceLineItemResponse{
			LineItemID:  li.LineItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Amount,
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		LineItems:     items,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
