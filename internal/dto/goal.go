package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a goal.
type CreateGoalRequest struct {
	Type         domain.GoalType   `json:"type" binding:"required,oneof=revenue expense_cap"`
	TargetAmount decimal.Decimal   `json:"targetAmount" binding:"required"`
	Period       domain.GoalPeriod `json:"period" binding:"required,oneof=monthly quarterly"`
	StartDate    time.Time         `json:"startDate" binding:"required"`
	EndDate      time.Time         `json:"endDate" binding:"required"`
}

// UpdateGoalRequest defines the fields allowed for updating a goal.
type UpdateGoalRequest struct {
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	StartDate    *time.Time       `json:"startDate"`
	EndDate      *time.Time       `json:"endDate"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID       string            `json:"goalID"`
	Type         domain.GoalType   `json:"type"`
	TargetAmount decimal.Decimal   `json:"targetAmount"`
	Period       domain.GoalPeriod `json:"period"`
	StartDate    time.Time         `json:"startDate"`
	EndDate      time.Time         `json:"endDate"`
}

// GoalProgressResponse defines the computed progress of a goal.
type GoalProgressResponse struct {
	Goal          GoalResponse    `json:"goal"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Remaining     decimal.Decimal `json:"remaining"`
	Achieved      bool            `json:"achieved"`
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain.Goal to a GoalResponse DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:       g.GoalID,
		Type:         g.Type,
		TargetAmount: g.TargetAmount,
		Period:       g.Period,
		StartDate:    g.StartDate,
		EndDate:      g.EndDate,
	}
}

// ToGoalResponses converts a slice of domain.Goal to []GoalResponse.
func ToGoalResponses(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}

// ToGoalProgressResponse converts a domain.GoalProgress to its DTO.
func ToGoalProgressResponse(p *domain.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		Goal:          ToGoalResponse(&p.Goal),
		CurrentAmount: p.CurrentAmount,
		Remaining:     p.Remaining,
		Achieved:      p.Achieved,
	}
}
