// Package pricing holds the pure price and stock policy: a variant's
// final price is the product base price plus the variant addon, and
// stock status is derived from quantity, the product's alert threshold
// and its pre-order flag. Nothing here touches storage.
package pricing

import (
	"strconv"

	"github.com/elite-commerce/catalog-service/internal/model"
)

// FinalPrice is basePrice + addonPrice.
func FinalPrice(p *model.Product, v *model.ProductVariant) float64 {
	return p.BasePrice + v.AddonPrice
}

// FinalCompareAtPrice combines the product and variant compare-at
// amounts only when both are set; otherwise it falls back to the
// product-level compare-at price, which may itself be nil.
func FinalCompareAtPrice(p *model.Product, v *model.ProductVariant) *float64 {
	if p.CompareAtPrice != nil && v.CompareAtAddonPrice != nil {
		total := *p.CompareAtPrice + *v.CompareAtAddonPrice
		return &total
	}
	return p.CompareAtPrice
}

// VariantStockStatus derives the presentation status for one variant.
// Zero quantity maps to PreOrder when the product allows it, otherwise
// OutOfStock. Quantity at or below the threshold is LowStock.
func VariantStockStatus(p *model.Product, v *model.ProductVariant) model.StockStatus {
	if v.StockQuantity == 0 {
		if p.AllowPreOrder {
			return model.StockStatusPreOrder
		}
		return model.StockStatusOutOfStock
	}
	if v.StockQuantity <= p.StockAlertThreshold {
		return model.StockStatusLowStock
	}
	return model.StockStatusInStock
}

// StockStatusMessage renders the storefront label for a status.
func StockStatusMessage(p *model.Product, v *model.ProductVariant, status model.StockStatus) string {
	switch status {
	case model.StockStatusInStock:
		if v.StockQuantity <= p.StockAlertThreshold {
			return lowStockMessage(v.StockQuantity)
		}
		return "In Stock"
	case model.StockStatusLowStock:
		return lowStockMessage(v.StockQuantity)
	case model.StockStatusOutOfStock:
		return "Out of Stock"
	case model.StockStatusPreOrder:
		return "Pre-order Available"
	default:
		return "Unknown"
	}
}

func lowStockMessage(quantity int) string {
	return "Only " + strconv.Itoa(quantity) + " left in stock"
}

// ActiveVariants filters a variant set down to the active ones,
// preserving order.
func ActiveVariants(variants []model.ProductVariant) []model.ProductVariant {
	var active []model.ProductVariant
	for _, v := range variants {
		if v.IsActive {
			active = append(active, v)
		}
	}
	return active
}

// StartingPrice is basePrice plus the minimum addon across active
// variants; with no active variants it is the base price alone.
func StartingPrice(p *model.Product, activeVariants []model.ProductVariant) float64 {
	if len(activeVariants) == 0 {
		return p.BasePrice
	}
	min := activeVariants[0].AddonPrice
	for _, v := range activeVariants[1:] {
		if v.AddonPrice < min {
			min = v.AddonPrice
		}
	}
	return p.BasePrice + min
}

// CompareAtStartingPrice pairs the product compare-at price with the
// minimum compare-at addon across active variants. Variants without a
// compare-at addon are ignored for the minimum; if none carry one, or
// the product has no compare-at price, the product value stands alone.
func CompareAtStartingPrice(p *model.Product, activeVariants []model.ProductVariant) *float64 {
	var minAddon *float64
	for i := range activeVariants {
		addon := activeVariants[i].CompareAtAddonPrice
		if addon == nil {
			continue
		}
		if minAddon == nil || *addon < *minAddon {
			minAddon = addon
		}
	}
	if p.CompareAtPrice != nil && minAddon != nil {
		total := *p.CompareAtPrice + *minAddon
		return &total
	}
	return p.CompareAtPrice
}

// OverallStockStatus aggregates the active variants of a product:
// no active variants means Discontinued, none with stock falls back to
// PreOrder/OutOfStock, any in the low band yields LowStock.
func OverallStockStatus(p *model.Product, activeVariants []model.ProductVariant) model.StockStatus {
	if len(activeVariants) == 0 {
		return model.StockStatusDiscontinued
	}

	hasStock := false
	hasLowStock := false
	for _, v := range activeVariants {
		if v.StockQuantity > 0 {
			hasStock = true
			if v.StockQuantity <= p.StockAlertThreshold {
				hasLowStock = true
			}
		}
	}

	if !hasStock {
		if p.AllowPreOrder {
			return model.StockStatusPreOrder
		}
		return model.StockStatusOutOfStock
	}
	if hasLowStock {
		return model.StockStatusLowStock
	}
	return model.StockStatusInStock
}

// AvailableConditions collects the distinct conditions across active
// variants in order of first occurrence.
func AvailableConditions(activeVariants []model.ProductVariant) []model.ProductCondition {
	seen := make(map[model.ProductCondition]bool, 4)
	conditions := make([]model.ProductCondition, 0, 4)
	for _, v := range activeVariants {
		if !seen[v.Condition] {
			seen[v.Condition] = true
			conditions = append(conditions, v.Condition)
		}
	}
	return conditions
}
