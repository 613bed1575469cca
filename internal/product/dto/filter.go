package dto

import (
	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/pkg/apperrors"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	DefaultSortKey    = "newest"
)

// ProductFilterRequest is the multi-dimensional catalog query. All
// provided criteria are AND-ed; within a list-valued criterion a
// product matches when any of its variants carries one of the values.
type ProductFilterRequest struct {
	PageNumber int `form:"page_number"`
	PageSize   int `form:"page_size"`

	SearchTerm string `form:"search_term"`

	CategoryID string `form:"category_id"`
	BrandID    string `form:"brand_id"`

	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`

	ProcessorBrands   []string  `form:"processor_brands"`
	RamSizes          []int     `form:"ram_sizes"`
	StorageCapacities []int     `form:"storage_capacities"`
	GpuTypes          []string  `form:"gpu_types"`
	DisplaySizes      []float64 `form:"display_sizes"`

	Conditions    []string `form:"conditions"`
	StockStatuses []string `form:"stock_statuses"`

	// newest (default), price_low, price_high, name, popular
	SortBy string `form:"sort_by"`
}

// Normalize applies pagination/sort defaults and validates enum-valued
// criteria. Malformed values fail as validation errors before any
// query is built.
func (f *ProductFilterRequest) Normalize() error {
	if f.PageNumber < 1 {
		f.PageNumber = DefaultPageNumber
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.SortBy == "" {
		f.SortBy = DefaultSortKey
	}

	for i, c := range f.Conditions {
		parsed, ok := model.ParseProductCondition(c)
		if !ok {
			return apperrors.Validation("Unknown condition %q", c).
				WithField("conditions", "must be one of New, Refurbished, Used, OpenBox")
		}
		f.Conditions[i] = string(parsed)
	}

	for i, s := range f.StockStatuses {
		parsed, ok := model.ParseStockStatus(s)
		if !ok {
			return apperrors.Validation("Unknown stock status %q", s).
				WithField("stock_statuses", "must be one of InStock, LowStock, OutOfStock, PreOrder, Discontinued")
		}
		f.StockStatuses[i] = string(parsed)
	}

	return nil
}
