package product

import (
	"context"

	"github.com/elite-commerce/catalog-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.UpsertProductInput, createdBy string) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, input *dto.UpsertProductInput, updatedBy string) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProductByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	GetProductBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)

	GetProducts(ctx context.Context, filter *dto.ProductFilterRequest) (*dto.PagedResult[dto.ProductListResponse], error)
	GetFeaturedProducts(ctx context.Context, count int) ([]dto.ProductListResponse, error)

	CreateVariant(ctx context.Context, input *dto.UpsertVariantInput) (*dto.ProductVariantDTO, error)
	UpdateVariant(ctx context.Context, variantID string, input *dto.UpsertVariantInput) (*dto.ProductVariantDTO, error)
	DeleteVariant(ctx context.Context, variantID string) error
	GetVariantByID(ctx context.Context, variantID string) (*dto.ProductVariantDTO, error)
	GetVariantsByProductID(ctx context.Context, productID string) ([]dto.ProductVariantDTO, error)

	UploadProductImages(ctx context.Context, productID string, imageURLs []string) error
	DeleteProductImage(ctx context.Context, imageID string) error
	SetMainImage(ctx context.Context, productID, imageID string) error

	UpdateStock(ctx context.Context, variantID string, quantity int) error
	GetLowStockVariants(ctx context.Context) ([]dto.ProductVariantDTO, error)

	ToggleFeatured(ctx context.Context, productID string) error
	ToggleActive(ctx context.Context, productID string) error
}
