package product

import (
	"context"

	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/product/dto"
)

type Repository interface {
	// Product lookups load the full graph: category (with parent),
	// brand, images and all variants with their images, each ordered
	// by sort order.
	FindByID(ctx context.Context, id string, includeInactive bool) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string, includeInactive bool) (*model.Product, error)

	// FindAll applies the filter/sort engine and returns one page of
	// active products (category, brand, main image and active variants
	// attached) plus the total count over the unpaged result.
	FindAll(ctx context.Context, filter *dto.ProductFilterRequest) ([]model.Product, int, error)
	FindFeatured(ctx context.Context, count int) ([]model.Product, error)

	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)

	FindVariantByID(ctx context.Context, variantID string) (*model.ProductVariant, error)
	FindVariantsByProductID(ctx context.Context, productID string) ([]model.ProductVariant, error)
	CreateVariant(ctx context.Context, v *model.ProductVariant) error
	UpdateVariant(ctx context.Context, v *model.ProductVariant) error
	DeleteVariant(ctx context.Context, variantID string) error
	SKUExists(ctx context.Context, sku, excludeID string) (bool, error)

	AddImages(ctx context.Context, images []model.ProductImage) error
	DeleteImage(ctx context.Context, imageID string) (bool, error)
	ClearMainImage(ctx context.Context, productID string) error

	UpdateStock(ctx context.Context, variantID string, quantity int) (bool, error)
	// DecrementStock subtracts atomically and applies no floor; the
	// resulting quantity may go negative.
	DecrementStock(ctx context.Context, variantID string, amount int) (bool, error)
	FindLowStockVariants(ctx context.Context, threshold int) ([]model.ProductVariant, error)

	ToggleFeatured(ctx context.Context, productID string) (bool, error)
	ToggleActive(ctx context.Context, productID string) (bool, error)
}
