package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

type goalService struct {
	BaseService
	goalRepo      portsrepo.GoalRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewGoalService creates the goal service.
func NewGoalService(goalRepo portsrepo.GoalRepository, reportingRepo portsrepo.ReportingRepository) *goalService {
	return &goalService{goalRepo: goalRepo, reportingRepo: reportingRepo}
}

func (s *goalService) CreateGoal(ctx context.Context, actor domain.Actor, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if !domain.Permits(actor.Role, domain.ActionAccessSettings) {
		return nil, apperrors.ErrForbidden
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidation)
	}
	if req.TargetAmount.IsNegative() || req.TargetAmount.IsZero() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		Type:         req.Type,
		TargetAmount: req.TargetAmount,
		Period:       req.Period,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal")
		return nil, err
	}

	s.LogInfo(ctx, "Goal created", "goal_id", goal.GoalID, "type", string(goal.Type))
	return &goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, actor domain.Actor, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	if !domain.Permits(actor.Role, domain.ActionAccessSettings) {
		return nil, apperrors.ErrForbidden
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if req.TargetAmount != nil {
		if req.TargetAmount.IsNegative() || req.TargetAmount.IsZero() {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.StartDate != nil {
		goal.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		goal.EndDate = *req.EndDate
	}
	if goal.EndDate.Before(goal.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidation)
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = actor.UserID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", "goal_id", goalID)
		return nil, err
	}

	return goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	return s.goalRepo.FindGoalByID(ctx, goalID)
}

func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx)
}

func (s *goalService) DeleteGoal(ctx context.Context, actor domain.Actor, goalID string) error {
	if !domain.Permits(actor.Role, domain.ActionAccessSettings) {
		return apperrors.ErrForbidden
	}

	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Goal deleted", "goal_id", goalID)
	return nil
}

// periodWindow returns the calendar month or quarter containing ref, clamped
// to the goal's start and end dates.
func periodWindow(goal *domain.Goal, ref time.Time) (time.Time, time.Time) {
	var from, to time.Time
	switch goal.Period {
	case domain.PeriodQuarterly:
		quarterStartMonth := time.Month((int(ref.Month())-1)/3*3 + 1)
		from = time.Date(ref.Year(), quarterStartMonth, 1, 0, 0, 0, 0, ref.Location())
		to = from.AddDate(0, 3, 0).Add(-time.Nanosecond)
	default: // monthly
		from = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}

	if from.Before(goal.StartDate) {
		from = goal.StartDate
	}
	if to.After(goal.EndDate) {
		to = goal.EndDate
	}
	return from, to
}

// GetGoalProgress compares the goal target against the approved sum for the
// period containing ref. Revenue goals count approved income; expense caps
// count approved expense. A revenue goal is achieved once the sum reaches
// the target; an expense cap is achieved while the sum stays at or under it.
func (s *goalService) GetGoalProgress(ctx context.Context, goalID string, ref time.Time) (*domain.GoalProgress, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	txnType := domain.TypeIncome
	if goal.Type == domain.GoalExpenseCap {
		txnType = domain.TypeExpense
	}

	from, to := periodWindow(goal, ref)
	current, err := s.reportingRepo.GetSumByType(ctx, txnType, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute goal progress", "goal_id", goalID)
		return nil, err
	}

	achieved := current.GreaterThanOrEqual(goal.TargetAmount)
	if goal.Type == domain.GoalExpenseCap {
		achieved = current.LessThanOrEqual(goal.TargetAmount)
	}

	return &domain.GoalProgress{
		Goal:          *goal,
		CurrentAmount: current,
		Remaining:     goal.TargetAmount.Sub(current),
		Achieved:      achieved,
	}, nil
}
