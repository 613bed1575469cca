package repository

import (
	"strings"
	"testing"

	"github.com/elite-commerce/catalog-service/internal/product/dto"
)

func normalized(t *testing.T, f *dto.ProductFilterRequest) *dto.ProductFilterRequest {
	t.Helper()
	if err := f.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return f
}

func TestBuildProductFilterDefaults(t *testing.T) {
	where, args, orderBy := buildProductFilter(normalized(t, &dto.ProductFilterRequest{}))

	if where != " WHERE p.is_active = true" {
		t.Errorf("unexpected where clause: %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
	if orderBy != "p.created_at DESC" {
		t.Errorf("unexpected order by: %q", orderBy)
	}
}

func TestBuildProductFilterSearchTerm(t *testing.T) {
	f := normalized(t, &dto.ProductFilterRequest{SearchTerm: "  Gaming Laptop "})
	where, args, _ := buildProductFilter(f)

	if !strings.Contains(where, "LOWER(p.name) LIKE ?") ||
		!strings.Contains(where, "LOWER(p.description) LIKE ?") ||
		!strings.Contains(where, "LOWER(b.name) LIKE ?") {
		t.Errorf("search clause missing targets: %q", where)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	for _, a := range args {
		if a != "%gaming laptop%" {
			t.Errorf("expected lowered trimmed pattern, got %v", a)
		}
	}
}

func TestBuildProductFilterPriceRange(t *testing.T) {
	min, max := 1000.0, 2000.0
	f := normalized(t, &dto.ProductFilterRequest{MinPrice: &min, MaxPrice: &max})
	where, args, _ := buildProductFilter(f)

	if !strings.Contains(where, "p.base_price + v.addon_price >= ?") ||
		!strings.Contains(where, "p.base_price + v.addon_price <= ?") {
		t.Errorf("price clause wrong: %q", where)
	}
	if len(args) != 2 || args[0] != 1000.0 || args[1] != 2000.0 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildProductFilterFacetsUseExists(t *testing.T) {
	f := normalized(t, &dto.ProductFilterRequest{
		ProcessorBrands: []string{"Intel", "AMD"},
		RamSizes:        []int{16, 32},
	})
	where, args, _ := buildProductFilter(f)

	if !strings.Contains(where, "v.processor_brand IS NOT NULL AND v.processor_brand IN (?)") {
		t.Errorf("processor facet wrong: %q", where)
	}
	if !strings.Contains(where, "v.ram_size_gb IS NOT NULL AND v.ram_size_gb IN (?)") {
		t.Errorf("ram facet wrong: %q", where)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 slice args, got %d", len(args))
	}
}

// Multiple stock statuses each add their own AND clause, so requesting
// InStock and OutOfStock together requires a product satisfying both.
func TestBuildProductFilterStockStatusesNarrow(t *testing.T) {
	f := normalized(t, &dto.ProductFilterRequest{
		StockStatuses: []string{"InStock", "OutOfStock"},
	})
	where, _, _ := buildProductFilter(f)

	if !strings.Contains(where, "v.stock_quantity > p.stock_alert_threshold") {
		t.Errorf("InStock clause missing: %q", where)
	}
	if !strings.Contains(where, "NOT p.allow_pre_order") ||
		!strings.Contains(where, "v.stock_quantity = 0") {
		t.Errorf("OutOfStock clause missing: %q", where)
	}
	if got := strings.Count(where, " AND EXISTS"); got < 1 {
		t.Errorf("expected AND-joined clauses, got %q", where)
	}
}

func TestBuildProductFilterDiscontinuedAddsNoClause(t *testing.T) {
	base, _, _ := buildProductFilter(normalized(t, &dto.ProductFilterRequest{}))
	withDiscontinued, _, _ := buildProductFilter(normalized(t, &dto.ProductFilterRequest{
		StockStatuses: []string{"Discontinued"},
	}))

	if base != withDiscontinued {
		t.Errorf("Discontinued should not change the query: %q vs %q", base, withDiscontinued)
	}
}

func TestSortExpression(t *testing.T) {
	cases := map[string]string{
		"price_low":  "p.base_price + (SELECT MIN(v.addon_price) FROM product_variants v WHERE v.product_id = p.id) ASC",
		"price_high": "p.base_price + (SELECT MAX(v.addon_price) FROM product_variants v WHERE v.product_id = p.id) DESC",
		"name":       "p.name ASC",
		"popular":    "p.is_featured DESC, p.created_at DESC",
		"newest":     "p.created_at DESC",
		"":           "p.created_at DESC",
		"garbage":    "p.created_at DESC",
		"PRICE_LOW":  "p.base_price + (SELECT MIN(v.addon_price) FROM product_variants v WHERE v.product_id = p.id) ASC",
	}
	for key, want := range cases {
		if got := sortExpression(key); got != want {
			t.Errorf("sortExpression(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestNormalizeRejectsUnknownEnums(t *testing.T) {
	if err := (&dto.ProductFilterRequest{Conditions: []string{"Shiny"}}).Normalize(); err == nil {
		t.Error("expected validation error for unknown condition")
	}
	if err := (&dto.ProductFilterRequest{StockStatuses: []string{"Backordered"}}).Normalize(); err == nil {
		t.Error("expected validation error for unknown stock status")
	}
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	f := &dto.ProductFilterRequest{PageNumber: 0, PageSize: -1}
	if err := f.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if f.PageNumber != 1 || f.PageSize != 20 || f.SortBy != "newest" {
		t.Errorf("defaults not applied: %+v", f)
	}
}
