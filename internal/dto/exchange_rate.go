package dto

import "github.com/shopspring/decimal"

// ExchangeRateResponse carries a single currency conversion rate into the base currency.
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	BaseCurrency string          `json:"baseCurrency"`
	Rate         decimal.Decimal `json:"rate"`
}
