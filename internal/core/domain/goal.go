package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType distinguishes a revenue target from an expense cap.
type GoalType string

const (
	GoalRevenue    GoalType = "revenue"
	GoalExpenseCap GoalType = "expense_cap"
)

// IsValid reports whether t is one of the known goal types.
func (t GoalType) IsValid() bool {
	return t == GoalRevenue || t == GoalExpenseCap
}

// GoalPeriod is the cadence a goal is tracked against.
type GoalPeriod string

const (
	PeriodMonthly   GoalPeriod = "monthly"
	PeriodQuarterly GoalPeriod = "quarterly"
)

// IsValid reports whether p is one of the known goal periods.
func (p GoalPeriod) IsValid() bool {
	return p == PeriodMonthly || p == PeriodQuarterly
}

// Goal is a read-side comparison target against aggregated approved
// transaction sums. It holds no derived state.
type Goal struct {
	GoalID       string          `json:"goalID"` // Primary key (UUID)
	Type         GoalType        `json:"type"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Period       GoalPeriod      `json:"period"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	AuditFields
}

// GoalProgress is the computed position of a goal against approved sums
// within its period.
type GoalProgress struct {
	Goal          Goal            `json:"goal"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Remaining     decimal.Decimal `json:"remaining"`
	Achieved      bool            `json:"achieved"`
}
