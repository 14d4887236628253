package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// UserRepository defines persistence operations for application users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUserRole(ctx context.Context, userID string, role domain.Role, updatedBy string, now time.Time) error
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, now time.Time) error
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error
}
