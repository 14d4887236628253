package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by its unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users. Restricted to admins.
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser persists a new user with an explicit role. Restricted to admins.
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUserRole changes the role of an existing user. Restricted to admins.
	UpdateUserRole(ctx context.Context, actor domain.Actor, userID string, newRole domain.Role) (*domain.User, error)

	// DeactivateUser marks a user as inactive, revoking further logins. Restricted to admins.
	DeactivateUser(ctx context.Context, actor domain.Actor, userID string) error
}

// UserAuthSvc defines authentication operations backed by the user store.
type UserAuthSvc interface {
	// Register creates the initial account for a user. The first registered
	// user becomes an admin, everyone after that starts as data_entry.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies a username/password pair and returns the matching
	// active user, or apperrors.ErrUnauthorized on any mismatch.
	Authenticate(ctx context.Context, username string, password string) (*domain.User, error)

	// AuthenticateGoogleUser finds or provisions the user matching a verified
	// Google profile and returns it.
	AuthenticateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)

	// ChangePassword verifies the current password and replaces it.
	ChangePassword(ctx context.Context, actor domain.Actor, req dto.ChangePasswordRequest) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
