package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account for balance and reporting purposes.
type AccountType string

const (
	AccountCurrent   AccountType = "current"
	AccountOverdraft AccountType = "od_cc" // Overdraft / credit line; balance may go negative
	AccountCash      AccountType = "cash"
	AccountUPI       AccountType = "upi"
)

// Account represents a financial account.
// Balance is a cached derived value: opening balance plus the signed sum of
// all approved transactions touching this account. It is mutated only by
// balance maintenance on transaction approval, never recomputed on read.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary key (UUID)
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
