package brand

import (
	"context"

	"github.com/elite-commerce/catalog-service/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Brand, error)
	FindBySlug(ctx context.Context, slug string) (*model.Brand, error)
	FindAll(ctx context.Context, includeInactive bool) ([]model.Brand, error)
	Create(ctx context.Context, brand *model.Brand) error
	Update(ctx context.Context, brand *model.Brand) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	HasProducts(ctx context.Context, id string) (bool, error)
}
