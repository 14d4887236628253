package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
)

// exchangeRateService proxies an external FX API for conversion rates into
// the base currency. Rates are advisory for the entry form; the stored
// exchange rate on a transaction is whatever the client submitted.
type exchangeRateService struct {
	BaseService
	apiBaseURL   string
	baseCurrency string
	httpClient   *http.Client
}

// NewExchangeRateService creates the FX proxy service.
func NewExchangeRateService(apiBaseURL string, baseCurrency string) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		apiBaseURL:   strings.TrimRight(apiBaseURL, "/"),
		baseCurrency: baseCurrency,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

type fxAPIResponse struct {
	Result string                     `json:"result"`
	Base   string                     `json:"base_code"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

func (s *exchangeRateService) BaseCurrency() string {
	return s.baseCurrency
}

// GetRate fetches the latest quote for currencyCode and returns how much of
// the base currency one unit of it is worth.
func (s *exchangeRateService) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(currencyCode) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	if currencyCode == s.baseCurrency {
		return decimal.NewFromInt(1), nil
	}

	url := fmt.Sprintf("%s/%s", s.apiBaseURL, currencyCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build FX request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.LogError(ctx, err, "FX upstream request failed", "currency", currencyCode)
		return decimal.Zero, fmt.Errorf("%w: exchange rate service unavailable", apperrors.ErrInternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.LogWarn(ctx, "FX upstream returned non-200", "status", resp.StatusCode, "currency", currencyCode)
		return decimal.Zero, fmt.Errorf("%w: exchange rate service unavailable", apperrors.ErrInternal)
	}

	var payload fxAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed exchange rate response", apperrors.ErrInternal)
	}

	rate, ok := payload.Rates[s.baseCurrency]
	if !ok || rate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: no %s rate for %s", apperrors.ErrInternal, s.baseCurrency, currencyCode)
	}
	return rate, nil
}
