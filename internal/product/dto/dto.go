package dto

import (
	"time"

	"github.com/elite-commerce/catalog-service/internal/model"
)

type CategorySummary struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Slug               string  `json:"slug"`
	ParentCategoryID   *string `json:"parent_category_id"`
	ParentCategoryName *string `json:"parent_category_name"`
}

type BrandSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	LogoURL *string `json:"logo_url"`
}

type ProductImageDTO struct {
	ID           string  `json:"id"`
	ImageURL     string  `json:"image_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	AltText      *string `json:"alt_text"`
	IsMain       bool    `json:"is_main"`
	SortOrder    int     `json:"sort_order"`
}

type ProductVariantDTO struct {
	ID  string `json:"id"`
	SKU string `json:"sku"`

	ProcessorBrand      *string  `json:"processor_brand"`
	ProcessorModel      *string  `json:"processor_model"`
	ProcessorGeneration *string  `json:"processor_generation"`
	ProcessorSpeed      *float64 `json:"processor_speed"`

	RamSizeGB *int    `json:"ram_size_gb"`
	RamType   *string `json:"ram_type"`
	RamSpeed  *int    `json:"ram_speed"`

	StorageType       *string `json:"storage_type"`
	StorageCapacityGB *int    `json:"storage_capacity_gb"`
	StorageInterface  *string `json:"storage_interface"`

	GpuType   *string `json:"gpu_type"`
	GpuBrand  *string `json:"gpu_brand"`
	GpuModel  *string `json:"gpu_model"`
	GpuVramGB *int    `json:"gpu_vram_gb"`

	DisplaySizeInches  *float64 `json:"display_size_inches"`
	DisplayResolution  *string  `json:"display_resolution"`
	DisplayRefreshRate *int     `json:"display_refresh_rate"`
	DisplayPanelType   *string  `json:"display_panel_type"`

	OperatingSystem *string `json:"operating_system"`
	Color           *string `json:"color"`
	WarrantyMonths  *int    `json:"warranty_months"`

	ConnectionType *string `json:"connection_type"`
	Compatibility  *string `json:"compatibility"`

	AdditionalAttributes model.AttributeMap `json:"additional_attributes,omitempty"`

	FinalPrice          float64  `json:"final_price"`
	FinalCompareAtPrice *float64 `json:"final_compare_at_price"`
	AddonPrice          float64  `json:"addon_price"`

	Condition          model.ProductCondition `json:"condition"`
	ConditionDisplay   string                 `json:"condition_display"`
	StockQuantity      int                    `json:"stock_quantity"`
	StockStatus        model.StockStatus      `json:"stock_status"`
	StockStatusDisplay string                 `json:"stock_status_display"`

	IsDefault bool `json:"is_default"`
	IsActive  bool `json:"is_active"`

	Images []ProductImageDTO `json:"images"`
}

type ProductResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"short_description"`

	BasePrice      float64  `json:"base_price"`
	CompareAtPrice *float64 `json:"compare_at_price"`

	IsActive            bool `json:"is_active"`
	IsFeatured          bool `json:"is_featured"`
	AllowPreOrder       bool `json:"allow_pre_order"`
	StockAlertThreshold int  `json:"stock_alert_threshold"`

	Category CategorySummary     `json:"category"`
	Brand    BrandSummary        `json:"brand"`
	Images   []ProductImageDTO   `json:"images"`
	Variants []ProductVariantDTO `json:"variants"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// ProductListResponse is the storefront listing shape: the derived
// starting price, aggregate stock status and available conditions are
// computed over the product's active variants.
type ProductListResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	ShortDescription *string `json:"short_description"`

	StartingPrice          float64  `json:"starting_price"`
	CompareAtStartingPrice *float64 `json:"compare_at_starting_price"`
	IsFeatured             bool     `json:"is_featured"`

	CategoryName string  `json:"category_name"`
	BrandName    string  `json:"brand_name"`
	MainImageURL *string `json:"main_image_url"`

	TotalVariants       int                      `json:"total_variants"`
	InStockVariants     int                      `json:"in_stock_variants"`
	OverallStockStatus  model.StockStatus        `json:"overall_stock_status"`
	AvailableConditions []model.ProductCondition `json:"available_conditions"`

	CreatedAt time.Time `json:"created_at"`
}

type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func NewPagedResult[T any](items []T, totalCount, pageNumber, pageSize int) *PagedResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return &PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
