package services

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// DashboardSvcFacade defines the dashboard aggregation operations.
type DashboardSvcFacade interface {
	// GetStats aggregates the dashboard figures for the calendar month
	// containing the given time. Only approved transactions count.
	GetStats(ctx context.Context, month time.Time) (*domain.DashboardStats, error)
}
