package dto

import "github.com/elite-commerce/catalog-service/internal/model"

// UpsertProductInput is shared by create and update; slugs are derived
// server-side.
type UpsertProductInput struct {
	Name             string  `json:"name" binding:"required"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"short_description"`
	CategoryID       string  `json:"category_id" binding:"required"`
	BrandID          string  `json:"brand_id" binding:"required"`

	BasePrice      float64  `json:"base_price"`
	CompareAtPrice *float64 `json:"compare_at_price"`

	AllowPreOrder       bool `json:"allow_pre_order"`
	StockAlertThreshold *int `json:"stock_alert_threshold"` // defaults to 2 when omitted
	IsFeatured          bool `json:"is_featured"`

	MetaTitle       *string `json:"meta_title"` // defaults to the product name
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
}

type UpsertVariantInput struct {
	ProductID string `json:"product_id"` // required on create, ignored on update
	SKU       string `json:"sku" binding:"required"`

	// Laptop attributes
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

	// Accessory attributes
	ConnectionType *string `json:"connection_type"`
	Compatibility  *string `json:"compatibility"`

	// Stored and returned verbatim, never interpreted here.
	AdditionalAttributes model.AttributeMap `json:"additional_attributes"`

	AddonPrice          float64  `json:"addon_price"`
	CompareAtAddonPrice *float64 `json:"compare_at_addon_price"`

	Condition     string `json:"condition"` // defaults to New
	StockQuantity int    `json:"stock_quantity"`

	IsDefault bool `json:"is_default"`
	SortOrder int  `json:"sort_order"`
}

type UpdateStockInput struct {
	Quantity int `json:"quantity"`
}

type UploadImagesInput struct {
	ImageURLs []string `json:"image_urls" binding:"required"`
}

type SetMainImageInput struct {
	ImageID string `json:"image_id" binding:"required"`
}
