package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository) *userService {
	return &userService{userRepo: userRepo}
}

// Register creates a self-service user account. The first user registered
// becomes the admin; everyone after that starts as data_entry and an admin
// promotes them as needed.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count users during registration")
		return nil, err
	}

	role := domain.RoleDataEntry
	if count == 0 {
		role = domain.RoleAdmin
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID, // Self-registered
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", "username", req.Username)
		return nil, err
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID, "role", string(role))
	return &user, nil
}

// Authenticate verifies a username/password pair. Every failure mode maps to
// ErrUnauthorized so the response does not leak which part was wrong.
func (s *userService) Authenticate(ctx context.Context, username string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// AuthenticateGoogleUser matches a verified Google profile to a local user by
// treating the Google email as the username, provisioning one on first login.
func (s *userService) AuthenticateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	if info == nil || info.Email == "" {
		return nil, fmt.Errorf("%w: google profile has no email", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUsername(ctx, info.Email)
	if err == nil {
		if !user.IsActive {
			return nil, apperrors.ErrUnauthorized
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up google user")
		return nil, err
	}

	// First login with this Google account: provision a local user. A random
	// password hash keeps the password login path closed for them.
	randomSecret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, err
	}
	return s.Register(ctx, dto.RegisterRequest{
		Username: info.Email,
		Password: randomSecret,
		Name:     info.Name,
	})
}

func (s *userService) ChangePassword(ctx context.Context, actor domain.Actor, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, actor.UserID, hash, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update password hash")
		return err
	}

	s.LogInfo(ctx, "Password changed", "user_id", actor.UserID)
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !domain.Permits(actor.Role, domain.ActionManageUsers) {
		return nil, apperrors.ErrForbidden
	}
	return s.userRepo.ListUsers(ctx, 0, 0)
}

func (s *userService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	if !domain.Permits(actor.Role, domain.ActionManageUsers) {
		return nil, apperrors.ErrForbidden
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create user", "username", req.Username)
		return nil, err
	}

	s.LogInfo(ctx, "User created by admin", "user_id", user.UserID, "role", string(user.Role))
	return &user, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, actor domain.Actor, userID string, newRole domain.Role) (*domain.User, error) {
	if !domain.Permits(actor.Role, domain.ActionManageUsers) {
		return nil, apperrors.ErrForbidden
	}
	if !newRole.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, newRole)
	}

	if err := s.userRepo.UpdateUserRole(ctx, userID, newRole, actor.UserID, time.Now()); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User role updated", "target_user_id", userID, "new_role", string(newRole))
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) DeactivateUser(ctx context.Context, actor domain.Actor, userID string) error {
	if !domain.Permits(actor.Role, domain.ActionManageUsers) {
		return apperrors.ErrForbidden
	}
	if actor.UserID == userID {
		return fmt.Errorf("%w: cannot deactivate your own account", apperrors.ErrConflict)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, actor.UserID, time.Now()); err != nil {
		return err
	}

	s.LogInfo(ctx, "User deactivated", "target_user_id", userID)
	return nil
}
