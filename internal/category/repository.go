package category

import (
	"context"

	"github.com/elite-commerce/catalog-service/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	FindAll(ctx context.Context, includeInactive bool) ([]model.Category, error)
	FindRoots(ctx context.Context) ([]model.Category, error)
	FindSubCategories(ctx context.Context, parentID string) ([]model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	HasProducts(ctx context.Context, id string) (bool, error)
}
