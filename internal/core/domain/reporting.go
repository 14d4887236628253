package domain

import "github.com/shopspring/decimal"

// CategoryAmount is a category with its summed base-currency amount over a period.
type CategoryAmount struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

// DashboardStats is the monthly read-only financial summary.
// All amounts are in the base currency and derive from approved transactions
// only; an empty month yields zero values and empty breakdowns.
type DashboardStats struct {
	AvailableFunds     decimal.Decimal  `json:"availableFunds"` // Month-independent
	ProfitLoss         decimal.Decimal  `json:"profitLoss"`
	TotalIncome        decimal.Decimal  `json:"totalIncome"`
	TotalExpense       decimal.Decimal  `json:"totalExpense"`
	OverdraftLimit     decimal.Decimal  `json:"overdraftLimit"`
	OverdraftUsed      decimal.Decimal  `json:"overdraftUsed"`
	OverdraftRemaining decimal.Decimal  `json:"overdraftRemaining"`
	TopExpenses        []CategoryAmount `json:"topExpenses"`       // At most 5, no zero entries
	RevenueByCategory  []CategoryAmount `json:"revenueByCategory"` // At most 5, no zero entries
}
