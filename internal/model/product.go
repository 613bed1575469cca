package model

import "time"

type Product struct {
	BaseModel
	Name             string  `db:"name" json:"name"`
	Slug             string  `db:"slug" json:"slug"`
	Description      *string `db:"description" json:"description"`
	ShortDescription *string `db:"short_description" json:"short_description"`

	CategoryID string `db:"category_id" json:"category_id"`
	BrandID    string `db:"brand_id" json:"brand_id"`

	// Base pricing, adjusted per variant by its addon price.
	BasePrice      float64  `db:"base_price" json:"base_price"`
	CompareAtPrice *float64 `db:"compare_at_price" json:"compare_at_price"` // "Was X, now Y" display

	IsActive            bool `db:"is_active" json:"is_active"`
	IsFeatured          bool `db:"is_featured" json:"is_featured"`
	AllowPreOrder       bool `db:"allow_pre_order" json:"allow_pre_order"`
	StockAlertThreshold int  `db:"stock_alert_threshold" json:"stock_alert_threshold"` // "Only X left" when stock <= this

	MetaTitle       *string `db:"meta_title" json:"meta_title"`
	MetaDescription *string `db:"meta_description" json:"meta_description"`
	MetaKeywords    *string `db:"meta_keywords" json:"meta_keywords"`

	CreatedBy string  `db:"created_by" json:"created_by"`
	UpdatedBy *string `db:"updated_by" json:"updated_by"`

	Category *Category        `db:"-" json:"category,omitempty"` // Joined data
	Brand    *Brand           `db:"-" json:"brand,omitempty"`
	Variants []ProductVariant `db:"-" json:"variants,omitempty"`
	Images   []ProductImage   `db:"-" json:"images,omitempty"`
}

type ProductVariant struct {
	BaseModel
	ProductID string `db:"product_id" json:"product_id"`
	SKU       string `db:"sku" json:"sku"`

	// Laptop attributes, structured for fast filtering.
	ProcessorBrand      *string  `db:"processor_brand" json:"processor_brand"`           // Intel, AMD
	ProcessorModel      *string  `db:"processor_model" json:"processor_model"`           // i7-12700H, Ryzen 7 5800H
	ProcessorGeneration *string  `db:"processor_generation" json:"processor_generation"` // 12th Gen, 5000 Series
	ProcessorSpeed      *float64 `db:"processor_speed" json:"processor_speed"`           // GHz

	RamSizeGB *int    `db:"ram_size_gb" json:"ram_size_gb"` // 8, 16, 32
	RamType   *string `db:"ram_type" json:"ram_type"`       // DDR4, DDR5
	RamSpeed  *int    `db:"ram_speed" json:"ram_speed"`     // MHz

	StorageType       *string `db:"storage_type" json:"storage_type"` // SSD, HDD
	StorageCapacityGB *int    `db:"storage_capacity_gb" json:"storage_capacity_gb"`
	StorageInterface  *string `db:"storage_interface" json:"storage_interface"` // NVMe, SATA

	GpuType   *string `db:"gpu_type" json:"gpu_type"` // Integrated, Dedicated
	GpuBrand  *string `db:"gpu_brand" json:"gpu_brand"`
	GpuModel  *string `db:"gpu_model" json:"gpu_model"`
	GpuVramGB *int    `db:"gpu_vram_gb" json:"gpu_vram_gb"`

	DisplaySizeInches  *float64 `db:"display_size_inches" json:"display_size_inches"` // 13.3, 15.6, 17.3
	DisplayResolution  *string  `db:"display_resolution" json:"display_resolution"`
	DisplayRefreshRate *int     `db:"display_refresh_rate" json:"display_refresh_rate"`
	DisplayPanelType   *string  `db:"display_panel_type" json:"display_panel_type"` // IPS, OLED, TN

	OperatingSystem *string `db:"operating_system" json:"operating_system"`
	Color           *string `db:"color" json:"color"`
	WarrantyMonths  *int    `db:"warranty_months" json:"warranty_months"`

	// Accessory attributes (keyboards, mice, headsets, ...).
	ConnectionType *string `db:"connection_type" json:"connection_type"` // Wired, Wireless, Bluetooth
	Compatibility  *string `db:"compatibility" json:"compatibility"`     // Windows, Mac, Universal

	AdditionalAttributes AttributeMap `db:"additional_attributes" json:"additional_attributes,omitempty"`

	AddonPrice          float64  `db:"addon_price" json:"addon_price"` // Added to Product.BasePrice
	CompareAtAddonPrice *float64 `db:"compare_at_addon_price" json:"compare_at_addon_price"`

	Condition     ProductCondition `db:"condition" json:"condition"`
	StockQuantity int              `db:"stock_quantity" json:"stock_quantity"`

	IsDefault bool `db:"is_default" json:"is_default"`
	IsActive  bool `db:"is_active" json:"is_active"`
	SortOrder int  `db:"sort_order" json:"sort_order"`

	Product *Product              `db:"-" json:"-"`
	Images  []ProductVariantImage `db:"-" json:"images,omitempty"`
}

type ProductImage struct {
	ID           string    `db:"id" json:"id"`
	ProductID    string    `db:"product_id" json:"product_id"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url"`
	AltText      *string   `db:"alt_text" json:"alt_text"`
	IsMain       bool      `db:"is_main" json:"is_main"`
	SortOrder    int       `db:"sort_order" json:"sort_order"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
}

type ProductVariantImage struct {
	ID           string    `db:"id" json:"id"`
	VariantID    string    `db:"variant_id" json:"variant_id"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url"`
	AltText      *string   `db:"alt_text" json:"alt_text"`
	SortOrder    int       `db:"sort_order" json:"sort_order"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
}
