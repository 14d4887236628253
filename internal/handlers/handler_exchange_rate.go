package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// ExchangeRateHandler serves currency conversion lookups.
type ExchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// NewExchangeRateHandler creates a new ExchangeRateHandler.
func NewExchangeRateHandler(es portssvc.ExchangeRateSvcFacade) *ExchangeRateHandler {
	return &ExchangeRateHandler{exchangeRateService: es}
}

func registerExchangeRateRoutes(rg *gin.RouterGroup, es portssvc.ExchangeRateSvcFacade) {
	h := NewExchangeRateHandler(es)

	rg.GET("/exchange-rate/:currency", h.GetRate)
}

// GetRate godoc
// @Summary Get exchange rate
// @Description Returns the conversion rate from the given currency into the base currency.
// @Tags exchange-rate
// @Produce json
// @Param currency path string true "ISO 4217 currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Upstream rate service unavailable"
// @Router /exchange-rate/{currency} [get]
func (h *ExchangeRateHandler) GetRate(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("currency")))

	rate, err := h.exchangeRateService.GetRate(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		CurrencyCode: code,
		BaseCurrency: h.exchangeRateService.BaseCurrency(),
		Rate:         rate,
	})
}
