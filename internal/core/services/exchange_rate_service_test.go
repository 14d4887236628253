package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
)

func TestExchangeRateService_GetRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/USD":
			fmt.Fprint(w, `{"result":"success","base_code":"USD","rates":{"INR":83.25,"EUR":0.92}}`)
		case "/XXX":
			w.WriteHeader(http.StatusNotFound)
		default:
			fmt.Fprint(w, `{"result":"success","base_code":"GBP","rates":{"EUR":1.17}}`)
		}
	}))
	defer server.Close()

	svc := services.NewExchangeRateService(server.URL, "INR")

	t.Run("returns the rate into the base currency", func(t *testing.T) {
		rate, err := svc.GetRate(context.Background(), "USD")
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("83.25")), "got %s", rate)
	})

	t.Run("base currency is always 1", func(t *testing.T) {
		rate, err := svc.GetRate(context.Background(), "inr")
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromInt(1)))
	})

	t.Run("lowercase and padded input accepted", func(t *testing.T) {
		rate, err := svc.GetRate(context.Background(), "  usd ")
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("83.25")))
	})

	t.Run("malformed code rejected", func(t *testing.T) {
		_, err := svc.GetRate(context.Background(), "DOLLARS")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("upstream error maps to internal", func(t *testing.T) {
		_, err := svc.GetRate(context.Background(), "XXX")
		assert.ErrorIs(t, err, apperrors.ErrInternal)
	})

	t.Run("missing base currency in payload maps to internal", func(t *testing.T) {
		_, err := svc.GetRate(context.Background(), "GBP")
		assert.ErrorIs(t, err, apperrors.ErrInternal)
	})
}

func TestExchangeRateService_BaseCurrency(t *testing.T) {
	svc := services.NewExchangeRateService("https://example.invalid", "INR")
	assert.Equal(t, "INR", svc.BaseCurrency())
}
