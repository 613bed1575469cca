package usecase

import (
	"context"
	"time"

	"github.com/elite-commerce/catalog-service/internal/brand"
	"github.com/elite-commerce/catalog-service/internal/category"
	"github.com/elite-commerce/catalog-service/internal/events"
	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/pkg/apperrors"
	"github.com/elite-commerce/catalog-service/internal/product"
	"github.com/elite-commerce/catalog-service/internal/product/dto"
	"github.com/elite-commerce/catalog-service/internal/slug"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultStockAlertThreshold = 2
	defaultFeaturedCount       = 8

	// Fixed threshold for the low-stock report; intentionally not the
	// per-product stock_alert_threshold used everywhere else.
	lowStockReportThreshold = 5
)

type productUseCase struct {
	repo      product.Repository
	catRepo   category.Repository
	brandRepo brand.Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewProductUseCase(
	repo product.Repository,
	catRepo category.Repository,
	brandRepo brand.Repository,
	publisher events.Publisher,
	log *zap.Logger,
) product.UseCase {
	return &productUseCase{
		repo:      repo,
		catRepo:   catRepo,
		brandRepo: brandRepo,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.UpsertProductInput, createdBy string) (*dto.ProductResponse, error) {
	if err := uc.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	uniqueSlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, s string) (bool, error) {
		return uc.repo.SlugExists(ctx, s, "")
	})
	if err != nil {
		return nil, err
	}

	threshold := defaultStockAlertThreshold
	if input.StockAlertThreshold != nil {
		threshold = *input.StockAlertThreshold
	}
	metaTitle := input.MetaTitle
	if metaTitle == nil {
		metaTitle = &input.Name
	}

	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().UTC(),
		},
		Name:                input.Name,
		Slug:                uniqueSlug,
		Description:         input.Description,
		ShortDescription:    input.ShortDescription,
		CategoryID:          input.CategoryID,
		BrandID:             input.BrandID,
		BasePrice:           input.BasePrice,
		CompareAtPrice:      input.CompareAtPrice,
		IsActive:            true,
		IsFeatured:          input.IsFeatured,
		AllowPreOrder:       input.AllowPreOrder,
		StockAlertThreshold: threshold,
		MetaTitle:           metaTitle,
		MetaDescription:     input.MetaDescription,
		MetaKeywords:        input.MetaKeywords,
		CreatedBy:           createdBy,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.String("id", p.ID), zap.String("slug", p.Slug), zap.String("created_by", createdBy))
	uc.publish(events.ProductEvent{Event: events.ProductCreated, ProductID: p.ID, Actor: createdBy})

	return uc.reloadProduct(ctx, p.ID)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, input *dto.UpsertProductInput, updatedBy string) (*dto.ProductResponse, error) {
	p, err := uc.repo.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product not found")
	}

	if err := uc.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	// Slug is regenerated only when the name actually changed.
	if p.Name != input.Name {
		uniqueSlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, s string) (bool, error) {
			return uc.repo.SlugExists(ctx, s, id)
		})
		if err != nil {
			return nil, err
		}
		p.Slug = uniqueSlug
	}

	p.Name = input.Name
	p.Description = input.Description
	p.ShortDescription = input.ShortDescription
	p.CategoryID = input.CategoryID
	p.BrandID = input.BrandID
	p.BasePrice = input.BasePrice
	p.CompareAtPrice = input.CompareAtPrice
	p.IsFeatured = input.IsFeatured
	p.AllowPreOrder = input.AllowPreOrder
	if input.StockAlertThreshold != nil {
		p.StockAlertThreshold = *input.StockAlertThreshold
	}
	if input.MetaTitle != nil {
		p.MetaTitle = input.MetaTitle
	} else {
		p.MetaTitle = &input.Name
	}
	p.MetaDescription = input.MetaDescription
	p.MetaKeywords = input.MetaKeywords
	p.UpdatedBy = &updatedBy
	now := time.Now().UTC()
	p.UpdatedAt = &now

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.publish(events.ProductEvent{Event: events.ProductUpdated, ProductID: id, Actor: updatedBy})
	return uc.reloadProduct(ctx, id)
}

func (uc *productUseCase) checkReferences(ctx context.Context, input *dto.UpsertProductInput) error {
	exists, err := uc.catRepo.Exists(ctx, input.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("Category not found")
	}

	exists, err = uc.brandRepo.Exists(ctx, input.BrandID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("Brand not found")
	}
	return nil
}

// DeleteProduct resolves the product active-only, so deactivated
// products cannot be deleted without reactivating first.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	if p == nil {
		return apperrors.NotFound("Product not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("product deleted", zap.String("id", id))
	uc.publish(events.ProductEvent{Event: events.ProductDeleted, ProductID: id})
	return nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product not found")
	}
	return mapProductResponse(p), nil
}

// reloadProduct serves the create/update response paths, which must
// see the product regardless of its active flag.
func (uc *productUseCase) reloadProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product not found")
	}
	return mapProductResponse(p), nil
}

// GetProductBySlug serves the storefront detail page and therefore
// only resolves active products.
func (uc *productUseCase) GetProductBySlug(ctx context.Context, s string) (*dto.ProductResponse, error) {
	p, err := uc.repo.FindBySlug(ctx, s, false)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product not found")
	}
	return mapProductResponse(p), nil
}

func (uc *productUseCase) GetProducts(ctx context.Context, filter *dto.ProductFilterRequest) (*dto.PagedResult[dto.ProductListResponse], error) {
	if err := filter.Normalize(); err != nil {
		return nil, err
	}

	products, total, err := uc.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductListResponse, 0, len(products))
	for i := range products {
		items = append(items, mapProductListResponse(&products[i]))
	}
	return dto.NewPagedResult(items, total, filter.PageNumber, filter.PageSize), nil
}

func (uc *productUseCase) GetFeaturedProducts(ctx context.Context, count int) ([]dto.ProductListResponse, error) {
	if count < 1 {
		count = defaultFeaturedCount
	}

	products, err := uc.repo.FindFeatured(ctx, count)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductListResponse, 0, len(products))
	for i := range products {
		items = append(items, mapProductListResponse(&products[i]))
	}
	return items, nil
}

func (uc *productUseCase) CreateVariant(ctx context.Context, input *dto.UpsertVariantInput) (*dto.ProductVariantDTO, error) {
	p, err := uc.repo.FindByID(ctx, input.ProductID, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product not found")
	}

	taken, err := uc.repo.SKUExists(ctx, input.SKU, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("SKU %q is already in use", input.SKU)
	}

	condition, err := parseCondition(input.Condition)
	if err != nil {
		return nil, err
	}

	v := &model.ProductVariant{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().UTC(),
		},
		ProductID: input.ProductID,
		SKU:       input.SKU,
		Condition: condition,
		IsActive:  true,
	}
	applyVariantInput(v, input)

	if err := uc.repo.CreateVariant(ctx, v); err != nil {
		return nil, err
	}

	uc.logger.Info("variant created",
		zap.String("id", v.ID), zap.String("product_id", v.ProductID), zap.String("sku", v.SKU))

	d := mapVariantDTO(p, v)
	return &d, nil
}

func (uc *productUseCase) UpdateVariant(ctx context.Context, variantID string, input *dto.UpsertVariantInput) (*dto.ProductVariantDTO, error) {
	v, err := uc.repo.FindVariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperrors.NotFound("Variant not found")
	}

	taken, err := uc.repo.SKUExists(ctx, input.SKU, variantID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("SKU %q is already in use", input.SKU)
	}

	condition, err := parseCondition(input.Condition)
	if err != nil {
		return nil, err
	}

	v.SKU = input.SKU
	v.Condition = condition
	applyVariantInput(v, input)
	now := time.Now().UTC()
	v.UpdatedAt = &now

	if err := uc.repo.UpdateVariant(ctx, v); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, v.ProductID, true)
	if err != nil {
		return nil, err
	}

	d := mapVariantDTO(p, v)
	return &d, nil
}

func parseCondition(raw string) (model.ProductCondition, error) {
	if raw == "" {
		return model.ConditionNew, nil
	}
	condition, ok := model.ParseProductCondition(raw)
	if !ok {
		return "", apperrors.Validation("Unknown condition %q", raw).
			WithField("condition", "must be one of New, Refurbished, Used, OpenBox")
	}
	return condition, nil
}

// applyVariantInput copies the attribute, pricing and stock fields;
// identity, condition and active flag are handled by the callers.
func applyVariantInput(v *model.ProductVariant, input *dto.UpsertVariantInput) {
	v.ProcessorBrand = input.ProcessorBrand
	v.ProcessorModel = input.ProcessorModel
	v.ProcessorGeneration = input.ProcessorGeneration
	v.ProcessorSpeed = input.ProcessorSpeed
	v.RamSizeGB = input.RamSizeGB
	v.RamType = input.RamType
	v.RamSpeed = input.RamSpeed
	v.StorageType = input.StorageType
	v.StorageCapacityGB = input.StorageCapacityGB
	v.StorageInterface = input.StorageInterface
	v.GpuType = input.GpuType
	v.GpuBrand = input.GpuBrand
	v.GpuModel = input.GpuModel
	v.GpuVramGB = input.GpuVramGB
	v.DisplaySizeInches = input.DisplaySizeInches
	v.DisplayResolution = input.DisplayResolution
	v.DisplayRefreshRate = input.DisplayRefreshRate
	v.DisplayPanelType = input.DisplayPanelType
	v.OperatingSystem = input.OperatingSystem
	v.Color = input.Color
	v.WarrantyMonths = input.WarrantyMonths
	v.ConnectionType = input.ConnectionType
	v.Compatibility = input.Compatibility
	v.AdditionalAttributes = input.AdditionalAttributes
	v.AddonPrice = input.AddonPrice
	v.CompareAtAddonPrice = input.CompareAtAddonPrice
	v.StockQuantity = input.StockQuantity
	v.IsDefault = input.IsDefault
	v.SortOrder = input.SortOrder
}

func (uc *productUseCase) DeleteVariant(ctx context.Context, variantID string) error {
	v, err := uc.repo.FindVariantByID(ctx, variantID)
	if err != nil {
		return err
	}
	if v == nil {
		return apperrors.NotFound("Variant not found")
	}
	return uc.repo.DeleteVariant(ctx, variantID)
}

func (uc *productUseCase) GetVariantByID(ctx context.Context, variantID string) (*dto.ProductVariantDTO, error) {
	v, err := uc.repo.FindVariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperrors.NotFound("Variant not found")
	}

	p, err := uc.repo.FindByID(ctx, v.ProductID, true)
	if err != nil {
		return nil, err
	}

	d := mapVariantDTO(p, v)
	return &d, nil
}

func (uc *productUseCase) GetVariantsByProductID(ctx context.Context, productID string) ([]dto.ProductVariantDTO, error) {
	p, err := uc.repo.FindByID(ctx, productID, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product not found")
	}

	variants, err := uc.repo.FindVariantsByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProductVariantDTO, 0, len(variants))
	for i := range variants {
		result = append(result, mapVariantDTO(p, &variants[i]))
	}
	return result, nil
}

// UploadProductImages appends images in the given order. The first URL
// of each batch is flagged main; earlier main flags are left untouched,
// so repeated uploads accumulate main images. Thumbnails reuse the
// original URL until a resize pipeline exists.
func (uc *productUseCase) UploadProductImages(ctx context.Context, productID string, imageURLs []string) error {
	exists, err := uc.repo.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("Product not found")
	}

	now := time.Now().UTC()
	images := make([]model.ProductImage, 0, len(imageURLs))
	for i, url := range imageURLs {
		u := url
		images = append(images, model.ProductImage{
			ID:           uuid.New().String(),
			ProductID:    productID,
			ImageURL:     u,
			ThumbnailURL: &u,
			IsMain:       i == 0,
			SortOrder:    i,
			UploadedAt:   now,
		})
	}
	return uc.repo.AddImages(ctx, images)
}

func (uc *productUseCase) DeleteProductImage(ctx context.Context, imageID string) error {
	deleted, err := uc.repo.DeleteImage(ctx, imageID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("Image not found")
	}
	return nil
}

// SetMainImage clears the current main flag; the new assignment is
// not persisted yet.
// TODO: write the is_main flag on imageID once partial image updates
// are supported.
func (uc *productUseCase) SetMainImage(ctx context.Context, productID, imageID string) error {
	exists, err := uc.repo.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("Product not found")
	}

	return uc.repo.ClearMainImage(ctx, productID)
}

func (uc *productUseCase) UpdateStock(ctx context.Context, variantID string, quantity int) error {
	if quantity < 0 {
		return apperrors.Validation("Stock quantity cannot be negative").
			WithField("quantity", "must be zero or greater")
	}

	updated, err := uc.repo.UpdateStock(ctx, variantID, quantity)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.NotFound("Variant not found")
	}

	uc.publish(events.ProductEvent{Event: events.StockUpdated, VariantID: variantID, Quantity: &quantity})
	return nil
}

func (uc *productUseCase) GetLowStockVariants(ctx context.Context) ([]dto.ProductVariantDTO, error) {
	variants, err := uc.repo.FindLowStockVariants(ctx, lowStockReportThreshold)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProductVariantDTO, 0, len(variants))
	for i := range variants {
		result = append(result, mapVariantDTO(variants[i].Product, &variants[i]))
	}
	return result, nil
}

func (uc *productUseCase) ToggleFeatured(ctx context.Context, productID string) error {
	toggled, err := uc.repo.ToggleFeatured(ctx, productID)
	if err != nil {
		return err
	}
	if !toggled {
		return apperrors.NotFound("Product not found")
	}

	uc.publish(events.ProductEvent{Event: events.FeaturedToggled, ProductID: productID})
	return nil
}

func (uc *productUseCase) ToggleActive(ctx context.Context, productID string) error {
	toggled, err := uc.repo.ToggleActive(ctx, productID)
	if err != nil {
		return err
	}
	if !toggled {
		return apperrors.NotFound("Product not found")
	}

	uc.publish(events.ProductEvent{Event: events.ActiveToggled, ProductID: productID})
	return nil
}

// publish failures never fail the request; the write already happened.
func (uc *productUseCase) publish(event events.ProductEvent) {
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warn("event publish failed",
			zap.String("event", event.Event), zap.Error(err))
	}
}
