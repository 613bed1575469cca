package pricing

import (
	"testing"

	"github.com/elite-commerce/catalog-service/internal/model"
)

func fptr(f float64) *float64 { return &f }

func TestFinalPrice(t *testing.T) {
	p := &model.Product{BasePrice: 50000}
	v := &model.ProductVariant{AddonPrice: 5000}

	if got := FinalPrice(p, v); got != 55000 {
		t.Errorf("FinalPrice = %v, want 55000", got)
	}
}

func TestFinalCompareAtPrice(t *testing.T) {
	p := &model.Product{BasePrice: 1000}
	v := &model.ProductVariant{}

	if got := FinalCompareAtPrice(p, v); got != nil {
		t.Errorf("expected nil when neither side is set, got %v", *got)
	}

	p.CompareAtPrice = fptr(1200)
	if got := FinalCompareAtPrice(p, v); got == nil || *got != 1200 {
		t.Errorf("expected fallback to product compare-at 1200, got %v", got)
	}

	v.CompareAtAddonPrice = fptr(300)
	if got := FinalCompareAtPrice(p, v); got == nil || *got != 1500 {
		t.Errorf("expected combined 1500, got %v", got)
	}

	p.CompareAtPrice = nil
	if got := FinalCompareAtPrice(p, v); got != nil {
		t.Errorf("variant compare-at alone must not surface, got %v", *got)
	}
}

func TestVariantStockStatusThresholds(t *testing.T) {
	p := &model.Product{StockAlertThreshold: 5}

	cases := []struct {
		quantity      int
		allowPreOrder bool
		want          model.StockStatus
	}{
		{0, false, model.StockStatusOutOfStock},
		{0, true, model.StockStatusPreOrder},
		{1, false, model.StockStatusLowStock},
		{5, false, model.StockStatusLowStock},
		{6, false, model.StockStatusInStock},
		{100, false, model.StockStatusInStock},
	}

	for _, c := range cases {
		p.AllowPreOrder = c.allowPreOrder
		v := &model.ProductVariant{StockQuantity: c.quantity}
		if got := VariantStockStatus(p, v); got != c.want {
			t.Errorf("quantity=%d preOrder=%v: got %s, want %s",
				c.quantity, c.allowPreOrder, got, c.want)
		}
	}
}

func TestVariantStockStatusBoundaryAboveThreshold(t *testing.T) {
	// Quantity 3 against threshold 2 sits just above the low band.
	p := &model.Product{StockAlertThreshold: 2}
	v := &model.ProductVariant{StockQuantity: 3}

	if got := VariantStockStatus(p, v); got != model.StockStatusInStock {
		t.Errorf("quantity 3 > threshold 2 should be InStock, got %s", got)
	}
}

func TestStockStatusMessage(t *testing.T) {
	p := &model.Product{StockAlertThreshold: 5}

	cases := []struct {
		quantity int
		status   model.StockStatus
		want     string
	}{
		{3, model.StockStatusLowStock, "Only 3 left in stock"},
		{4, model.StockStatusInStock, "Only 4 left in stock"}, // in stock but at/below threshold
		{10, model.StockStatusInStock, "In Stock"},
		{0, model.StockStatusOutOfStock, "Out of Stock"},
		{0, model.StockStatusPreOrder, "Pre-order Available"},
	}

	for _, c := range cases {
		v := &model.ProductVariant{StockQuantity: c.quantity}
		if got := StockStatusMessage(p, v, c.status); got != c.want {
			t.Errorf("quantity=%d status=%s: got %q, want %q", c.quantity, c.status, got, c.want)
		}
	}
}

func TestStartingPrice(t *testing.T) {
	p := &model.Product{BasePrice: 1000}

	variants := []model.ProductVariant{
		{AddonPrice: 200, IsActive: true},
		{AddonPrice: 0, IsActive: true},
		{AddonPrice: 500, IsActive: true},
	}

	active := ActiveVariants(variants)
	if got := StartingPrice(p, active); got != 1000 {
		t.Errorf("StartingPrice = %v, want 1000 (base + min addon 0)", got)
	}

	// An inactive cheap variant must not pull the price down.
	variants = append(variants, model.ProductVariant{AddonPrice: -100, IsActive: false})
	active = ActiveVariants(variants)
	if got := StartingPrice(p, active); got != 1000 {
		t.Errorf("inactive variant leaked into StartingPrice: got %v", got)
	}
}

func TestStartingPriceNoActiveVariants(t *testing.T) {
	p := &model.Product{BasePrice: 1000}

	if got := StartingPrice(p, nil); got != 1000 {
		t.Errorf("StartingPrice with no active variants = %v, want base 1000", got)
	}
	if got := OverallStockStatus(p, nil); got != model.StockStatusDiscontinued {
		t.Errorf("OverallStockStatus with no active variants = %s, want Discontinued", got)
	}
}

func TestCompareAtStartingPrice(t *testing.T) {
	p := &model.Product{BasePrice: 1000, CompareAtPrice: fptr(1300)}

	active := []model.ProductVariant{
		{IsActive: true}, // no compare-at addon, ignored for the minimum
		{IsActive: true, CompareAtAddonPrice: fptr(250)},
		{IsActive: true, CompareAtAddonPrice: fptr(100)},
	}

	if got := CompareAtStartingPrice(p, active); got == nil || *got != 1400 {
		t.Errorf("CompareAtStartingPrice = %v, want 1400", got)
	}

	if got := CompareAtStartingPrice(p, active[:1]); got == nil || *got != 1300 {
		t.Errorf("expected product compare-at fallback 1300, got %v", got)
	}

	p.CompareAtPrice = nil
	if got := CompareAtStartingPrice(p, active); got != nil {
		t.Errorf("expected nil without product compare-at, got %v", *got)
	}
}

func TestOverallStockStatus(t *testing.T) {
	p := &model.Product{StockAlertThreshold: 2}

	inStock := []model.ProductVariant{
		{IsActive: true, StockQuantity: 10},
		{IsActive: true, StockQuantity: 8},
	}
	if got := OverallStockStatus(p, inStock); got != model.StockStatusInStock {
		t.Errorf("got %s, want InStock", got)
	}

	lowStock := []model.ProductVariant{
		{IsActive: true, StockQuantity: 10},
		{IsActive: true, StockQuantity: 1},
	}
	if got := OverallStockStatus(p, lowStock); got != model.StockStatusLowStock {
		t.Errorf("got %s, want LowStock", got)
	}

	drained := []model.ProductVariant{
		{IsActive: true, StockQuantity: 0},
	}
	if got := OverallStockStatus(p, drained); got != model.StockStatusOutOfStock {
		t.Errorf("got %s, want OutOfStock", got)
	}

	p.AllowPreOrder = true
	if got := OverallStockStatus(p, drained); got != model.StockStatusPreOrder {
		t.Errorf("got %s, want PreOrder", got)
	}
}

func TestAvailableConditions(t *testing.T) {
	active := []model.ProductVariant{
		{Condition: model.ConditionRefurbished},
		{Condition: model.ConditionNew},
		{Condition: model.ConditionRefurbished},
		{Condition: model.ConditionUsed},
	}

	got := AvailableConditions(active)
	want := []model.ProductCondition{
		model.ConditionRefurbished,
		model.ConditionNew,
		model.ConditionUsed,
	}

	if len(got) != len(want) {
		t.Fatalf("got %d conditions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("conditions[%d] = %s, want %s (first-occurrence order)", i, got[i], want[i])
		}
	}
}
