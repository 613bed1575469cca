package category

import (
	"context"

	"github.com/elite-commerce/catalog-service/internal/category/dto"
	"github.com/elite-commerce/catalog-service/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error)
	GetRootCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	GetSubCategories(ctx context.Context, parentID string) ([]model.Category, error)
	CreateCategory(ctx context.Context, input *dto.UpsertCategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, input *dto.UpsertCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
