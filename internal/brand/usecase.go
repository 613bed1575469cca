package brand

import (
	"context"

	"github.com/elite-commerce/catalog-service/internal/brand/dto"
	"github.com/elite-commerce/catalog-service/internal/model"
)

type UseCase interface {
	ListBrands(ctx context.Context, includeInactive bool) ([]model.Brand, error)
	GetBrand(ctx context.Context, id string) (*model.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*model.Brand, error)
	CreateBrand(ctx context.Context, input *dto.UpsertBrandInput) (*model.Brand, error)
	UpdateBrand(ctx context.Context, id string, input *dto.UpsertBrandInput) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}
