package repository

import (
	"strings"

	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/product/dto"
)

// buildProductFilter translates a filter request into the WHERE clause
// and ORDER BY expression applied to the products/brands join. The SQL
// uses ? placeholders so slice arguments can be expanded with sqlx.In
// and rebound for Postgres.
//
// Every criterion becomes one AND-ed clause; list-valued criteria
// match a product when any of its variants carries one of the values.
// Variant predicates deliberately range over all variants of a
// product, active or not — only the loaded variant collections are
// restricted to active ones.
func buildProductFilter(f *dto.ProductFilterRequest) (string, []interface{}, string) {
	conditions := []string{"p.is_active = true"}
	args := []interface{}{}

	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		conditions = append(conditions,
			"(LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(b.name) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	if f.CategoryID != "" {
		conditions = append(conditions, "p.category_id = ?")
		args = append(args, f.CategoryID)
	}

	if f.BrandID != "" {
		conditions = append(conditions, "p.brand_id = ?")
		args = append(args, f.BrandID)
	}

	// A product matches the price range when at least one variant's
	// final price (base + addon) falls inside it; absent bounds are
	// open-ended.
	if f.MinPrice != nil || f.MaxPrice != nil {
		inner := []string{}
		if f.MinPrice != nil {
			inner = append(inner, "p.base_price + v.addon_price >= ?")
			args = append(args, *f.MinPrice)
		}
		if f.MaxPrice != nil {
			inner = append(inner, "p.base_price + v.addon_price <= ?")
			args = append(args, *f.MaxPrice)
		}
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND "+
				strings.Join(inner, " AND ")+")")
	}

	if len(f.ProcessorBrands) > 0 {
		conditions = append(conditions, variantFacetClause("v.processor_brand"))
		args = append(args, f.ProcessorBrands)
	}
	if len(f.RamSizes) > 0 {
		conditions = append(conditions, variantFacetClause("v.ram_size_gb"))
		args = append(args, f.RamSizes)
	}
	if len(f.StorageCapacities) > 0 {
		conditions = append(conditions, variantFacetClause("v.storage_capacity_gb"))
		args = append(args, f.StorageCapacities)
	}
	if len(f.GpuTypes) > 0 {
		conditions = append(conditions, variantFacetClause("v.gpu_type"))
		args = append(args, f.GpuTypes)
	}
	if len(f.DisplaySizes) > 0 {
		conditions = append(conditions, variantFacetClause("v.display_size_inches"))
		args = append(args, f.DisplaySizes)
	}

	if len(f.Conditions) > 0 {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.condition IN (?))")
		args = append(args, f.Conditions)
	}

	// Each requested stock status appends its own clause, so multiple
	// statuses narrow the result instead of broadening it.
	for _, status := range f.StockStatuses {
		switch model.StockStatus(status) {
		case model.StockStatusInStock:
			conditions = append(conditions,
				"EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.stock_quantity > p.stock_alert_threshold)")
		case model.StockStatusLowStock:
			conditions = append(conditions,
				"EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.stock_quantity > 0 AND v.stock_quantity <= p.stock_alert_threshold)")
		case model.StockStatusOutOfStock:
			conditions = append(conditions,
				"(NOT p.allow_pre_order AND EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.stock_quantity = 0))")
		case model.StockStatusPreOrder:
			conditions = append(conditions,
				"(p.allow_pre_order AND EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.stock_quantity = 0))")
		}
	}

	where := " WHERE " + strings.Join(conditions, " AND ")
	return where, args, sortExpression(f.SortBy)
}

func variantFacetClause(column string) string {
	return "EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND " +
		column + " IS NOT NULL AND " + column + " IN (?))"
}

// sortExpression maps a sort key to its ORDER BY expression. price_low
// sorts by the cheapest variant configuration, price_high by the most
// expensive one; popular puts featured products first, newest within.
func sortExpression(sortBy string) string {
	switch strings.ToLower(sortBy) {
	case "price_low":
		return "p.base_price + (SELECT MIN(v.addon_price) FROM product_variants v WHERE v.product_id = p.id) ASC"
	case "price_high":
		return "p.base_price + (SELECT MAX(v.addon_price) FROM product_variants v WHERE v.product_id = p.id) DESC"
	case "name":
		return "p.name ASC"
	case "popular":
		return "p.is_featured DESC, p.created_at DESC"
	default: // newest
		return "p.created_at DESC"
	}
}
