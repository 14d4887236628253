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

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) *categoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !domain.Permits(actor.Role, domain.ActionManageCategories) {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		IsEnabled:  true,
		IsSystem:   false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", "name", req.Name)
		return nil, err
	}

	s.LogInfo(ctx, "Category created", "category_id", category.CategoryID)
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, actor domain.Actor, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if !domain.Permits(actor.Role, domain.ActionManageCategories) {
		return nil, apperrors.ErrForbidden
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if category.IsSystem && req.IsEnabled != nil && !*req.IsEnabled {
		return nil, fmt.Errorf("%w: system categories cannot be disabled", apperrors.ErrConflict)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.IsEnabled != nil {
		category.IsEnabled = *req.IsEnabled
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = actor.UserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", "category_id", categoryID)
		return nil, err
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, includeDisabled bool) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, includeDisabled)
}

func (s *categoryService) DeleteCategory(ctx context.Context, actor domain.Actor, categoryID string) error {
	if !domain.Permits(actor.Role, domain.ActionManageCategories) {
		return apperrors.ErrForbidden
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.IsSystem {
		return fmt.Errorf("%w: system categories cannot be deleted", apperrors.ErrConflict)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Category deleted", "category_id", categoryID)
	return nil
}
