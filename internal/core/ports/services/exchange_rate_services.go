package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateSvcFacade fetches conversion rates into the base currency.
type ExchangeRateSvcFacade interface {
	// GetRate returns how many units of the base currency one unit of the
	// given currency is worth right now.
	GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error)

	// BaseCurrency returns the configured base currency code.
	BaseCurrency() string
}
