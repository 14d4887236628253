package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// Status is the client's choice of draft or submitted; admins may also create
// pre-approved rows. ExchangeRate defaults to 1 when the transaction is
// already in the base currency.
type CreateTransactionRequest struct {
	Date         time.Time                `json:"date" binding:"required"`
	Amount       decimal.Decimal          `json:"amount" binding:"required"`
	CurrencyCode string                   `json:"currencyCode"`
	ExchangeRate *decimal.Decimal         `json:"exchangeRate"`
	Type         domain.TransactionType   `json:"type" binding:"required,oneof=income expense transfer opening_balance"`
	CategoryID   *string                  `json:"categoryID"`
	AccountID    string                   `json:"accountID" binding:"required"`
	ToAccountID  *string                  `json:"toAccountID"`
	Description  string                   `json:"description"`
	Status       domain.TransactionStatus `json:"status"`
}

// UpdateTransactionRequest defines the fields allowed for updating a
// transaction. Pointers distinguish absent fields from zero values.
type UpdateTransactionRequest struct {
	Date        *time.Time       `json:"date"`
	Amount      *decimal.Decimal `json:"amount"`
	CategoryID  *string          `json:"categoryID"`
	Description *string          `json:"description"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// Month is YYYY-MM; empty means no date filter.
type ListTransactionsParams struct {
	Month      string `form:"month"`
	AccountID  string `form:"accountId"`
	CategoryID string `form:"categoryId"`
	Status     string `form:"status"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Date          time.Time                `json:"date"`
	Amount        decimal.Decimal          `json:"amount"`
	CurrencyCode  string                   `json:"currencyCode"`
	ExchangeRate  decimal.Decimal          `json:"exchangeRate"`
	BaseAmount    decimal.Decimal          `json:"baseAmount"`
	Type          domain.TransactionType   `json:"type"`
	CategoryID    *string                  `json:"categoryID,omitempty"`
	AccountID     string                   `json:"accountID"`
	ToAccountID   *string                  `json:"toAccountID,omitempty"`
	Description   string                   `json:"description"`
	Status        domain.TransactionStatus `json:"status"`
	CreatedBy     string                   `json:"createdBy"`
	ApprovedBy    *string                  `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time               `json:"approvedAt,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Amount:        t.Amount,
		CurrencyCode:  t.CurrencyCode,
		ExchangeRate:  t.ExchangeRate,
		BaseAmount:    t.BaseAmount,
		Type:          t.Type,
		CategoryID:    t.CategoryID,
		AccountID:     t.AccountID,
		ToAccountID:   t.ToAccountID,
		Description:   t.Description,
		Status:        t.Status,
		CreatedBy:     t.CreatedBy,
		ApprovedBy:    t.ApprovedBy,
		ApprovedAt:    t.ApprovedAt,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
