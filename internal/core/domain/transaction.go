package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates how a transaction affects account balances.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
	// TypeOpeningBalance seeds an account's opening and current balance.
	// Meant to be used once per account, not repeated.
	TypeOpeningBalance TransactionType = "opening_balance"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer, TypeOpeningBalance:
		return true
	}
	return false
}

// TransactionStatus is the lifecycle state of a transaction.
// draft -> submitted -> approved | rejected. approved and rejected are terminal.
type TransactionStatus string

const (
	StatusDraft     TransactionStatus = "draft"
	StatusSubmitted TransactionStatus = "submitted"
	StatusApproved  TransactionStatus = "approved"
	StatusRejected  TransactionStatus = "rejected"
)

// IsValid reports whether s is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further status transition is allowed from s.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Transaction represents a single money movement.
// ToAccountID is set if and only if Type is transfer.
// BaseAmount = Amount * ExchangeRate, rounded to 2 decimal places.
// Only approved transactions affect account balances and dashboard aggregates.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary key (UUID)
	Date          time.Time         `json:"date"`
	Amount        decimal.Decimal   `json:"amount"`       // In original currency; positive
	CurrencyCode  string            `json:"currencyCode"` // ISO 4217
	ExchangeRate  decimal.Decimal   `json:"exchangeRate"` // To base currency
	BaseAmount    decimal.Decimal   `json:"baseAmount"`   // Amount * ExchangeRate, 2dp
	Type          TransactionType   `json:"type"`
	CategoryID    *string           `json:"categoryID,omitempty"`
	AccountID     string            `json:"accountID"`
	ToAccountID   *string           `json:"toAccountID,omitempty"` // Set iff Type == transfer
	Description   string            `json:"description"`
	Status        TransactionStatus `json:"status"`
	ApprovedBy    *string           `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time        `json:"approvedAt,omitempty"`
	AuditFields
}

// BalanceDeltas returns the signed per-account balance changes this
// transaction causes when it becomes approved, keyed by account ID.
// Opening-balance deltas additionally adjust the account's opening balance;
// the repository layer handles that distinction via the transaction type.
func (t *Transaction) BalanceDeltas() map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal, 2)
	switch t.Type {
	case TypeIncome, TypeOpeningBalance:
		deltas[t.AccountID] = t.BaseAmount
	case TypeExpense:
		deltas[t.AccountID] = t.BaseAmount.Neg()
	case TypeTransfer:
		deltas[t.AccountID] = t.BaseAmount.Neg()
		if t.ToAccountID != nil {
			deltas[*t.ToAccountID] = deltas[*t.ToAccountID].Add(t.BaseAmount)
		}
	}
	return deltas
}

// ComputeBaseAmount returns amount * rate rounded to 2 decimal places.
func ComputeBaseAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}
