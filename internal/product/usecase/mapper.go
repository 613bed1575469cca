package usecase

import (
	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/pricing"
	"github.com/elite-commerce/catalog-service/internal/product/dto"
)

func mapProductResponse(p *model.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Slug:                p.Slug,
		Description:         p.Description,
		ShortDescription:    p.ShortDescription,
		BasePrice:           p.BasePrice,
		CompareAtPrice:      p.CompareAtPrice,
		IsActive:            p.IsActive,
		IsFeatured:          p.IsFeatured,
		AllowPreOrder:       p.AllowPreOrder,
		StockAlertThreshold: p.StockAlertThreshold,
		Images:              mapImageDTOs(p.Images),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}

	if p.Category != nil {
		resp.Category = dto.CategorySummary{
			ID:               p.Category.ID,
			Name:             p.Category.Name,
			Slug:             p.Category.Slug,
			ParentCategoryID: p.Category.ParentCategoryID,
		}
		if p.Category.Parent != nil {
			resp.Category.ParentCategoryName = &p.Category.Parent.Name
		}
	}
	if p.Brand != nil {
		resp.Brand = dto.BrandSummary{
			ID:      p.Brand.ID,
			Name:    p.Brand.Name,
			Slug:    p.Brand.Slug,
			LogoURL: p.Brand.LogoURL,
		}
	}

	resp.Variants = make([]dto.ProductVariantDTO, 0, len(p.Variants))
	for i := range p.Variants {
		resp.Variants = append(resp.Variants, mapVariantDTO(p, &p.Variants[i]))
	}
	return resp
}

func mapProductListResponse(p *model.Product) dto.ProductListResponse {
	active := pricing.ActiveVariants(p.Variants)

	inStock := 0
	for _, v := range active {
		if v.StockQuantity > 0 {
			inStock++
		}
	}

	resp := dto.ProductListResponse{
		ID:                     p.ID,
		Name:                   p.Name,
		Slug:                   p.Slug,
		ShortDescription:       p.ShortDescription,
		StartingPrice:          pricing.StartingPrice(p, active),
		CompareAtStartingPrice: pricing.CompareAtStartingPrice(p, active),
		IsFeatured:             p.IsFeatured,
		TotalVariants:          len(active),
		InStockVariants:        inStock,
		OverallStockStatus:     pricing.OverallStockStatus(p, active),
		AvailableConditions:    pricing.AvailableConditions(active),
		CreatedAt:              p.CreatedAt,
	}

	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	if p.Brand != nil {
		resp.BrandName = p.Brand.Name
	}
	for i := range p.Images {
		if p.Images[i].IsMain {
			resp.MainImageURL = &p.Images[i].ImageURL
			break
		}
	}
	return resp
}

func mapVariantDTO(p *model.Product, v *model.ProductVariant) dto.ProductVariantDTO {
	status := pricing.VariantStockStatus(p, v)

	images := make([]dto.ProductImageDTO, 0, len(v.Images))
	for _, img := range v.Images {
		images = append(images, dto.ProductImageDTO{
			ID:           img.ID,
			ImageURL:     img.ImageURL,
			ThumbnailURL: img.ThumbnailURL,
			AltText:      img.AltText,
			SortOrder:    img.SortOrder,
		})
	}

	return dto.ProductVariantDTO{
		ID:  v.ID,
		SKU: v.SKU,

		ProcessorBrand:      v.ProcessorBrand,
		ProcessorModel:      v.ProcessorModel,
		ProcessorGeneration: v.ProcessorGeneration,
		ProcessorSpeed:      v.ProcessorSpeed,

		RamSizeGB: v.RamSizeGB,
		RamType:   v.RamType,
		RamSpeed:  v.RamSpeed,

		StorageType:       v.StorageType,
		StorageCapacityGB: v.StorageCapacityGB,
		StorageInterface:  v.StorageInterface,

		GpuType:   v.GpuType,
		GpuBrand:  v.GpuBrand,
		GpuModel:  v.GpuModel,
		GpuVramGB: v.GpuVramGB,

		DisplaySizeInches:  v.DisplaySizeInches,
		DisplayResolution:  v.DisplayResolution,
		DisplayRefreshRate: v.DisplayRefreshRate,
		DisplayPanelType:   v.DisplayPanelType,

		OperatingSystem: v.OperatingSystem,
		Color:           v.Color,
		WarrantyMonths:  v.WarrantyMonths,

		ConnectionType: v.ConnectionType,
		Compatibility:  v.Compatibility,

		AdditionalAttributes: v.AdditionalAttributes,

		FinalPrice:          pricing.FinalPrice(p, v),
		FinalCompareAtPrice: pricing.FinalCompareAtPrice(p, v),
		AddonPrice:          v.AddonPrice,

		Condition:          v.Condition,
		ConditionDisplay:   string(v.Condition),
		StockQuantity:      v.StockQuantity,
		StockStatus:        status,
		StockStatusDisplay: pricing.StockStatusMessage(p, v, status),

		IsDefault: v.IsDefault,
		IsActive:  v.IsActive,

		Images: images,
	}
}

func mapImageDTOs(images []model.ProductImage) []dto.ProductImageDTO {
	result := make([]dto.ProductImageDTO, 0, len(images))
	for _, img := range images {
		result = append(result, dto.ProductImageDTO{
			ID:           img.ID,
			ImageURL:     img.ImageURL,
			ThumbnailURL: img.ThumbnailURL,
			AltText:      img.AltText,
			IsMain:       img.IsMain,
			SortOrder:    img.SortOrder,
		})
	}
	return result
}

