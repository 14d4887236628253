package dto

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryAmountResponse is a category with its summed amount for a period.
type CategoryAmountResponse struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

// DashboardStatsResponse is the monthly dashboard summary response.
type DashboardStatsResponse struct {
	Month              string                   `json:"month"`
	AvailableFunds     decimal.Decimal          `json:"availableFunds"`
	ProfitLoss         decimal.Decimal          `json:"profitLoss"`
	TotalIncome        decimal.Decimal          `json:"totalIncome"`
	TotalExpense       decimal.Decimal          `json:"totalExpense"`
	OverdraftLimit     decimal.Decimal          `json:"overdraftLimit"`
	OverdraftUsed      decimal.Decimal          `json:"overdraftUsed"`
	OverdraftRemaining decimal.Decimal          `json:"overdraftRemaining"`
	TopExpenses        []CategoryAmountResponse `json:"topExpenses"`
	RevenueByCategory  []CategoryAmountResponse `json:"revenueByCategory"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO.
func ToDashboardStatsResponse(stats *domain.DashboardStats, month string) DashboardStatsResponse {
	return DashboardStatsResponse{
		Month:              month,
		AvailableFunds:     stats.AvailableFunds,
		ProfitLoss:         stats.ProfitLoss,
		TotalIncome:        stats.TotalIncome,
		TotalExpense:       stats.TotalExpense,
		OverdraftLimit:     stats.OverdraftLimit,
		OverdraftUsed:      stats.OverdraftUsed,
		OverdraftRemaining: stats.OverdraftRemaining,
		TopExpenses:        toCategoryAmountResponses(stats.TopExpenses),
		RevenueByCategory:  toCategoryAmountResponses(stats.RevenueByCategory),
	}
}

func toCategoryAmountResponses(rows []domain.CategoryAmount) []CategoryAmountResponse {
	res := make([]CategoryAmountResponse, len(rows))
	for i, row := range rows {
		res[i] = CategoryAmountResponse{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Amount:       row.Amount,
		}
	}
	return res
}
