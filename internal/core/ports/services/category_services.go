package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// CategorySvcFacade defines operations for transaction categories.
type CategorySvcFacade interface {
	// CreateCategory persists a new category. Restricted by category:manage.
	CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory renames or enables/disables an existing category.
	UpdateCategory(ctx context.Context, actor domain.Actor, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// ListCategories retrieves categories, optionally including disabled ones.
	ListCategories(ctx context.Context, includeDisabled bool) ([]domain.Category, error)

	// DeleteCategory removes a non-system category that has no transactions.
	DeleteCategory(ctx context.Context, actor domain.Actor, categoryID string) error
}
