package services

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// GoalSvcFacade defines operations for financial goals and their progress.
type GoalSvcFacade interface {
	// CreateGoal persists a new goal.
	CreateGoal(ctx context.Context, actor domain.Actor, req dto.CreateGoalRequest) (*domain.Goal, error)

	// UpdateGoal edits an existing goal's name, target or period.
	UpdateGoal(ctx context.Context, actor domain.Actor, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)

	// GetGoalByID retrieves a specific goal by its unique identifier.
	GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves all goals.
	ListGoals(ctx context.Context) ([]domain.Goal, error)

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, actor domain.Actor, goalID string) error

	// GetGoalProgress computes achieved-vs-target for the goal's period
	// containing the given reference time, from approved transactions only.
	GetGoalProgress(ctx context.Context, goalID string, ref time.Time) (*domain.GoalProgress, error)
}
