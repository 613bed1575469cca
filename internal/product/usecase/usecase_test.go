package usecase

import (
	"context"
	"sort"
	"testing"

	"github.com/elite-commerce/catalog-service/internal/events"
	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/pkg/apperrors"
	"github.com/elite-commerce/catalog-service/internal/product"
	"github.com/elite-commerce/catalog-service/internal/product/dto"
	"go.uber.org/zap"
)

// fakeProductRepo is an in-memory stand-in for the Postgres
// repository, faithful to its contracts: nil on missing rows, loaded
// variant collections, no floor on decrement.
type fakeProductRepo struct {
	products map[string]*model.Product
	variants map[string]*model.ProductVariant
	images   map[string]*model.ProductImage
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[string]*model.Product{},
		variants: map[string]*model.ProductVariant{},
		images:   map[string]*model.ProductImage{},
	}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string, includeInactive bool) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || (!includeInactive && !p.IsActive) {
		return nil, nil
	}
	return r.withGraph(p), nil
}

func (r *fakeProductRepo) FindBySlug(_ context.Context, slug string, includeInactive bool) (*model.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			if !includeInactive && !p.IsActive {
				return nil, nil
			}
			return r.withGraph(p), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) withGraph(p *model.Product) *model.Product {
	clone := *p
	clone.Variants = nil
	clone.Images = nil
	for _, v := range r.variants {
		if v.ProductID == p.ID {
			clone.Variants = append(clone.Variants, *v)
		}
	}
	sort.Slice(clone.Variants, func(i, j int) bool {
		return clone.Variants[i].SortOrder < clone.Variants[j].SortOrder
	})
	for _, img := range r.images {
		if img.ProductID == p.ID {
			clone.Images = append(clone.Images, *img)
		}
	}
	sort.Slice(clone.Images, func(i, j int) bool {
		return clone.Images[i].SortOrder < clone.Images[j].SortOrder
	})
	return &clone
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ *dto.ProductFilterRequest) ([]model.Product, int, error) {
	result := []model.Product{}
	for _, p := range r.products {
		if p.IsActive {
			result = append(result, *r.withGraph(p))
		}
	}
	return result, len(result), nil
}

func (r *fakeProductRepo) FindFeatured(_ context.Context, count int) ([]model.Product, error) {
	result := []model.Product{}
	for _, p := range r.products {
		if p.IsActive && p.IsFeatured && len(result) < count {
			result = append(result, *r.withGraph(p))
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

func (r *fakeProductRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, p := range r.products {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) FindVariantByID(_ context.Context, variantID string) (*model.ProductVariant, error) {
	v, ok := r.variants[variantID]
	if !ok {
		return nil, nil
	}
	clone := *v
	return &clone, nil
}

func (r *fakeProductRepo) FindVariantsByProductID(_ context.Context, productID string) ([]model.ProductVariant, error) {
	result := []model.ProductVariant{}
	for _, v := range r.variants {
		if v.ProductID == productID {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) CreateVariant(_ context.Context, v *model.ProductVariant) error {
	clone := *v
	r.variants[v.ID] = &clone
	return nil
}

func (r *fakeProductRepo) UpdateVariant(_ context.Context, v *model.ProductVariant) error {
	clone := *v
	r.variants[v.ID] = &clone
	return nil
}

func (r *fakeProductRepo) DeleteVariant(_ context.Context, variantID string) error {
	delete(r.variants, variantID)
	return nil
}

func (r *fakeProductRepo) SKUExists(_ context.Context, sku, excludeID string) (bool, error) {
	for _, v := range r.variants {
		if v.SKU == sku && v.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) AddImages(_ context.Context, images []model.ProductImage) error {
	for i := range images {
		clone := images[i]
		r.images[clone.ID] = &clone
	}
	return nil
}

func (r *fakeProductRepo) DeleteImage(_ context.Context, imageID string) (bool, error) {
	if _, ok := r.images[imageID]; !ok {
		return false, nil
	}
	delete(r.images, imageID)
	return true, nil
}

func (r *fakeProductRepo) ClearMainImage(_ context.Context, productID string) error {
	for _, img := range r.images {
		if img.ProductID == productID {
			img.IsMain = false
		}
	}
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, variantID string, quantity int) (bool, error) {
	v, ok := r.variants[variantID]
	if !ok {
		return false, nil
	}
	v.StockQuantity = quantity
	return true, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, variantID string, amount int) (bool, error) {
	v, ok := r.variants[variantID]
	if !ok {
		return false, nil
	}
	v.StockQuantity -= amount
	return true, nil
}

func (r *fakeProductRepo) FindLowStockVariants(_ context.Context, threshold int) ([]model.ProductVariant, error) {
	result := []model.ProductVariant{}
	for _, v := range r.variants {
		if v.IsActive && v.StockQuantity > 0 && v.StockQuantity <= threshold {
			clone := *v
			if p, ok := r.products[v.ProductID]; ok {
				pc := *p
				clone.Product = &pc
			}
			result = append(result, clone)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) ToggleFeatured(_ context.Context, productID string) (bool, error) {
	p, ok := r.products[productID]
	if !ok {
		return false, nil
	}
	p.IsFeatured = !p.IsFeatured
	return true, nil
}

func (r *fakeProductRepo) ToggleActive(_ context.Context, productID string) (bool, error) {
	p, ok := r.products[productID]
	if !ok {
		return false, nil
	}
	p.IsActive = !p.IsActive
	return true, nil
}

var _ product.Repository = (*fakeProductRepo)(nil)

// fakeRefRepo satisfies both the category and brand repository
// interfaces with a bare id set; only Exists matters here.
type fakeRefRepo struct{ ids map[string]bool }

func (r *fakeRefRepo) Exists(_ context.Context, id string) (bool, error) { return r.ids[id], nil }
func (r *fakeRefRepo) FindByID(context.Context, string) (*model.Category, error) {
	return nil, nil
}
func (r *fakeRefRepo) FindBySlug(context.Context, string) (*model.Category, error) { return nil, nil }
func (r *fakeRefRepo) FindAll(context.Context, bool) ([]model.Category, error)     { return nil, nil }
func (r *fakeRefRepo) FindRoots(context.Context) ([]model.Category, error)         { return nil, nil }
func (r *fakeRefRepo) FindSubCategories(context.Context, string) ([]model.Category, error) {
	return nil, nil
}
func (r *fakeRefRepo) Create(context.Context, *model.Category) error              { return nil }
func (r *fakeRefRepo) Update(context.Context, *model.Category) error              { return nil }
func (r *fakeRefRepo) Delete(context.Context, string) error                       { return nil }
func (r *fakeRefRepo) SlugExists(context.Context, string, string) (bool, error)   { return false, nil }
func (r *fakeRefRepo) HasProducts(context.Context, string) (bool, error)          { return false, nil }

type fakeBrandRepo struct{ ids map[string]bool }

func (r *fakeBrandRepo) Exists(_ context.Context, id string) (bool, error)      { return r.ids[id], nil }
func (r *fakeBrandRepo) FindByID(context.Context, string) (*model.Brand, error) { return nil, nil }
func (r *fakeBrandRepo) FindBySlug(context.Context, string) (*model.Brand, error) {
	return nil, nil
}
func (r *fakeBrandRepo) FindAll(context.Context, bool) ([]model.Brand, error)    { return nil, nil }
func (r *fakeBrandRepo) Create(context.Context, *model.Brand) error              { return nil }
func (r *fakeBrandRepo) Update(context.Context, *model.Brand) error              { return nil }
func (r *fakeBrandRepo) Delete(context.Context, string) error                    { return nil }
func (r *fakeBrandRepo) SlugExists(context.Context, string, string) (bool, error) {
	return false, nil
}
func (r *fakeBrandRepo) HasProducts(context.Context, string) (bool, error) { return false, nil }

type recordingPublisher struct{ published []events.ProductEvent }

func (p *recordingPublisher) Publish(e events.ProductEvent) error {
	p.published = append(p.published, e)
	return nil
}
func (p *recordingPublisher) Close() {}

type fixture struct {
	uc        product.UseCase
	repo      *fakeProductRepo
	publisher *recordingPublisher
}

func newFixture() *fixture {
	repo := newFakeProductRepo()
	publisher := &recordingPublisher{}
	uc := NewProductUseCase(
		repo,
		&fakeRefRepo{ids: map[string]bool{"cat-1": true}},
		&fakeBrandRepo{ids: map[string]bool{"brand-1": true}},
		publisher,
		zap.NewNop(),
	)
	return &fixture{uc: uc, repo: repo, publisher: publisher}
}

func validProductInput(name string) *dto.UpsertProductInput {
	return &dto.UpsertProductInput{
		Name:       name,
		CategoryID: "cat-1",
		BrandID:    "brand-1",
		BasePrice:  50000,
	}
}

func TestCreateProductDefaults(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.CreateProduct(context.Background(), validProductInput("Gaming Laptop"), "admin")
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if resp.Slug != "gaming-laptop" {
		t.Errorf("slug = %q, want gaming-laptop", resp.Slug)
	}
	if resp.StockAlertThreshold != 2 {
		t.Errorf("threshold = %d, want default 2", resp.StockAlertThreshold)
	}
	if !resp.IsActive {
		t.Error("new products should be active")
	}

	stored := f.repo.products[resp.ID]
	if stored.MetaTitle == nil || *stored.MetaTitle != "Gaming Laptop" {
		t.Errorf("meta title should default to the name, got %v", stored.MetaTitle)
	}
	if stored.CreatedBy != "admin" {
		t.Errorf("created_by = %q", stored.CreatedBy)
	}

	if len(f.publisher.published) != 1 || f.publisher.published[0].Event != events.ProductCreated {
		t.Errorf("expected one product.created event, got %v", f.publisher.published)
	}
}

func TestCreateProductUnknownReferences(t *testing.T) {
	f := newFixture()

	input := validProductInput("Laptop")
	input.CategoryID = "nope"
	if _, err := f.uc.CreateProduct(context.Background(), input, "admin"); !apperrors.IsNotFound(err) {
		t.Errorf("unknown category: got %v, want not-found", err)
	}

	input = validProductInput("Laptop")
	input.BrandID = "nope"
	if _, err := f.uc.CreateProduct(context.Background(), input, "admin"); !apperrors.IsNotFound(err) {
		t.Errorf("unknown brand: got %v, want not-found", err)
	}
}

func TestCreateProductSlugCollision(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.uc.CreateProduct(ctx, validProductInput("Gaming Laptop"), "admin")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := f.uc.CreateProduct(ctx, validProductInput("Gaming Laptop"), "admin")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if first.Slug != "gaming-laptop" || second.Slug != "gaming-laptop-1" {
		t.Errorf("slugs = %q, %q", first.Slug, second.Slug)
	}
}

func TestUpdateProductSlugOnlyOnNameChange(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.uc.CreateProduct(ctx, validProductInput("Gaming Laptop"), "admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	same, err := f.uc.UpdateProduct(ctx, created.ID, validProductInput("Gaming Laptop"), "editor")
	if err != nil {
		t.Fatalf("update same name: %v", err)
	}
	if same.Slug != "gaming-laptop" {
		t.Errorf("slug changed without a name change: %q", same.Slug)
	}

	renamed, err := f.uc.UpdateProduct(ctx, created.ID, validProductInput("Workstation"), "editor")
	if err != nil {
		t.Fatalf("update new name: %v", err)
	}
	if renamed.Slug != "workstation" {
		t.Errorf("slug = %q, want workstation", renamed.Slug)
	}

	stored := f.repo.products[created.ID]
	if stored.UpdatedBy == nil || *stored.UpdatedBy != "editor" {
		t.Errorf("updated_by = %v", stored.UpdatedBy)
	}
}

func createProductWithVariant(t *testing.T, f *fixture, stockQuantity int) (string, string) {
	t.Helper()
	ctx := context.Background()

	p, err := f.uc.CreateProduct(ctx, validProductInput("Gaming Laptop"), "admin")
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	v, err := f.uc.CreateVariant(ctx, &dto.UpsertVariantInput{
		ProductID:     p.ID,
		SKU:           "ACME-I7-16-512",
		AddonPrice:    5000,
		StockQuantity: stockQuantity,
	})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}
	return p.ID, v.ID
}

func TestCreateVariantValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, _ := createProductWithVariant(t, f, 3)

	_, err := f.uc.CreateVariant(ctx, &dto.UpsertVariantInput{ProductID: "nope", SKU: "X"})
	if !apperrors.IsNotFound(err) {
		t.Errorf("unknown product: got %v, want not-found", err)
	}

	_, err = f.uc.CreateVariant(ctx, &dto.UpsertVariantInput{ProductID: productID, SKU: "ACME-I7-16-512"})
	if !apperrors.IsConflict(err) {
		t.Errorf("duplicate SKU: got %v, want conflict", err)
	}

	_, err = f.uc.CreateVariant(ctx, &dto.UpsertVariantInput{ProductID: productID, SKU: "NEW", Condition: "Shiny"})
	if !apperrors.IsValidation(err) {
		t.Errorf("bad condition: got %v, want validation", err)
	}

	created, err := f.uc.CreateVariant(ctx, &dto.UpsertVariantInput{ProductID: productID, SKU: "NEW-2"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Condition != model.ConditionNew {
		t.Errorf("condition = %q, want default New", created.Condition)
	}
}

// Detail mapping for the documented scenario: base 50000, addon 5000,
// quantity 3 against the default threshold 2 is just above the low
// band.
func TestProductDetailPricingAndStatus(t *testing.T) {
	f := newFixture()
	productID, _ := createProductWithVariant(t, f, 3)

	resp, err := f.uc.GetProductByID(context.Background(), productID)
	if err != nil {
		t.Fatalf("GetProductByID: %v", err)
	}
	if len(resp.Variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(resp.Variants))
	}

	v := resp.Variants[0]
	if v.FinalPrice != 55000 {
		t.Errorf("final price = %v, want 55000", v.FinalPrice)
	}
	if v.StockStatus != model.StockStatusInStock {
		t.Errorf("status = %q, want InStock (3 > threshold 2)", v.StockStatus)
	}
	if v.StockStatusDisplay != "In Stock" {
		t.Errorf("display = %q", v.StockStatusDisplay)
	}
}

func TestGetProductsListShape(t *testing.T) {
	f := newFixture()
	createProductWithVariant(t, f, 2)

	page, err := f.uc.GetProducts(context.Background(), &dto.ProductFilterRequest{})
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}

	if page.TotalCount != 1 || page.PageNumber != 1 || page.PageSize != 20 || page.TotalPages != 1 {
		t.Errorf("envelope = %+v", page)
	}
	item := page.Items[0]
	if item.StartingPrice != 55000 {
		t.Errorf("starting price = %v, want 55000", item.StartingPrice)
	}
	if item.OverallStockStatus != model.StockStatusLowStock {
		t.Errorf("overall status = %q, want LowStock (qty 2 == threshold 2)", item.OverallStockStatus)
	}
	if item.TotalVariants != 1 || item.InStockVariants != 1 {
		t.Errorf("variant counts = %d/%d", item.InStockVariants, item.TotalVariants)
	}
	if len(item.AvailableConditions) != 1 || item.AvailableConditions[0] != model.ConditionNew {
		t.Errorf("conditions = %v", item.AvailableConditions)
	}
}

func TestUpdateStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, variantID := createProductWithVariant(t, f, 3)

	if err := f.uc.UpdateStock(ctx, variantID, -1); !apperrors.IsValidation(err) {
		t.Errorf("negative quantity: got %v, want validation", err)
	}
	if err := f.uc.UpdateStock(ctx, "nope", 1); !apperrors.IsNotFound(err) {
		t.Errorf("unknown variant: got %v, want not-found", err)
	}

	if err := f.uc.UpdateStock(ctx, variantID, 0); err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if got := f.repo.variants[variantID].StockQuantity; got != 0 {
		t.Errorf("quantity = %d, want 0", got)
	}

	last := f.publisher.published[len(f.publisher.published)-1]
	if last.Event != events.StockUpdated || last.VariantID != variantID {
		t.Errorf("expected stock event, got %+v", last)
	}
}

// The decrement primitive applies no floor; an oversell drives the
// quantity negative and is stored as-is.
func TestDecrementStockNoFloor(t *testing.T) {
	f := newFixture()
	_, variantID := createProductWithVariant(t, f, 2)

	ok, err := f.repo.DecrementStock(context.Background(), variantID, 5)
	if err != nil || !ok {
		t.Fatalf("DecrementStock: ok=%v err=%v", ok, err)
	}
	if got := f.repo.variants[variantID].StockQuantity; got != -3 {
		t.Errorf("quantity = %d, want -3", got)
	}
}

// The low-stock report runs on a fixed threshold of 5, not the
// per-product alert threshold.
func TestGetLowStockVariantsFixedThreshold(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, variantID := createProductWithVariant(t, f, 4)

	if _, err := f.uc.CreateVariant(ctx, &dto.UpsertVariantInput{
		ProductID: productID, SKU: "PLENTY", StockQuantity: 6,
	}); err != nil {
		t.Fatalf("create variant: %v", err)
	}

	low, err := f.uc.GetLowStockVariants(ctx)
	if err != nil {
		t.Fatalf("GetLowStockVariants: %v", err)
	}
	if len(low) != 1 || low[0].ID != variantID {
		t.Fatalf("expected only the quantity-4 variant, got %+v", low)
	}
	if low[0].StockStatus != model.StockStatusInStock {
		t.Errorf("status against its own product threshold = %q, want InStock", low[0].StockStatus)
	}
}

// The first URL of every uploaded batch is flagged main,
// unconditionally; earlier main flags are not cleared.
func TestUploadImagesFirstOfBatchIsMain(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, _ := createProductWithVariant(t, f, 3)

	if err := f.uc.UploadProductImages(ctx, productID, []string{"a.jpg"}); err != nil {
		t.Fatalf("UploadProductImages: %v", err)
	}
	if err := f.uc.UploadProductImages(ctx, productID, []string{"b.jpg", "c.jpg"}); err != nil {
		t.Fatalf("second upload: %v", err)
	}

	mainByURL := map[string]bool{}
	for _, img := range f.repo.images {
		mainByURL[img.ImageURL] = img.IsMain
		if img.ThumbnailURL == nil || *img.ThumbnailURL != img.ImageURL {
			t.Errorf("thumbnail should reuse the URL: %+v", img)
		}
	}
	if !mainByURL["a.jpg"] {
		t.Error("a.jpg should be main (first of its batch)")
	}
	if !mainByURL["b.jpg"] {
		t.Error("b.jpg should be main (first of its batch)")
	}
	if mainByURL["c.jpg"] {
		t.Error("c.jpg should not be main")
	}
}

func TestSetMainImageOnlyClearsCurrentFlag(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, _ := createProductWithVariant(t, f, 3)

	if err := f.uc.UploadProductImages(ctx, productID, []string{"a.jpg", "b.jpg"}); err != nil {
		t.Fatalf("upload: %v", err)
	}

	var secondID string
	for _, img := range f.repo.images {
		if !img.IsMain {
			secondID = img.ID
		}
	}

	if err := f.uc.SetMainImage(ctx, productID, secondID); err != nil {
		t.Fatalf("SetMainImage: %v", err)
	}
	for _, img := range f.repo.images {
		if img.IsMain {
			t.Errorf("no image should remain flagged main, %q still is", img.ID)
		}
	}
}

func TestDeleteProductImage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, _ := createProductWithVariant(t, f, 3)

	if err := f.uc.DeleteProductImage(ctx, "nope"); !apperrors.IsNotFound(err) {
		t.Errorf("unknown image: got %v, want not-found", err)
	}

	if err := f.uc.UploadProductImages(ctx, productID, []string{"a.jpg"}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	var imageID string
	for id := range f.repo.images {
		imageID = id
	}
	if err := f.uc.DeleteProductImage(ctx, imageID); err != nil {
		t.Fatalf("DeleteProductImage: %v", err)
	}
}

func TestToggles(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, _ := createProductWithVariant(t, f, 3)

	if err := f.uc.ToggleFeatured(ctx, "nope"); !apperrors.IsNotFound(err) {
		t.Errorf("unknown product: got %v, want not-found", err)
	}

	if err := f.uc.ToggleFeatured(ctx, productID); err != nil {
		t.Fatalf("ToggleFeatured: %v", err)
	}
	if !f.repo.products[productID].IsFeatured {
		t.Error("product should be featured after toggle")
	}

	if err := f.uc.ToggleActive(ctx, productID); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if f.repo.products[productID].IsActive {
		t.Error("product should be inactive after toggle")
	}
}

// Deactivated products are invisible to the public read and to
// delete; only the create/update reload sees them.
func TestInactiveProductHiddenFromGetAndDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, _ := createProductWithVariant(t, f, 3)

	if err := f.uc.ToggleActive(ctx, productID); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}

	if _, err := f.uc.GetProductByID(ctx, productID); !apperrors.IsNotFound(err) {
		t.Errorf("inactive product by id: got %v, want not-found", err)
	}
	if err := f.uc.DeleteProduct(ctx, productID); !apperrors.IsNotFound(err) {
		t.Errorf("delete inactive product: got %v, want not-found", err)
	}
	if _, ok := f.repo.products[productID]; !ok {
		t.Error("product should still exist")
	}

	// Update still resolves it and returns the refreshed state.
	updated, err := f.uc.UpdateProduct(ctx, productID, validProductInput("Gaming Laptop"), "editor")
	if err != nil {
		t.Fatalf("update inactive product: %v", err)
	}
	if updated.IsActive {
		t.Error("update should not reactivate the product")
	}
}

// The low-stock report considers variant activity only; variants of a
// deactivated product still appear.
func TestGetLowStockVariantsIncludesInactiveProducts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, variantID := createProductWithVariant(t, f, 4)

	if err := f.uc.ToggleActive(ctx, productID); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}

	low, err := f.uc.GetLowStockVariants(ctx)
	if err != nil {
		t.Fatalf("GetLowStockVariants: %v", err)
	}
	if len(low) != 1 || low[0].ID != variantID {
		t.Fatalf("expected the variant despite its inactive product, got %+v", low)
	}
}

// ConditionDisplay is the enum's own string, OpenBox included.
func TestVariantConditionDisplay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, _ := createProductWithVariant(t, f, 3)

	v, err := f.uc.CreateVariant(ctx, &dto.UpsertVariantInput{
		ProductID: productID,
		SKU:       "OPEN-BOX-1",
		Condition: "OpenBox",
	})
	if err != nil {
		t.Fatalf("CreateVariant: %v", err)
	}
	if v.ConditionDisplay != "OpenBox" {
		t.Errorf("condition display = %q, want OpenBox", v.ConditionDisplay)
	}
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	productID, _ := createProductWithVariant(t, f, 3)

	if err := f.uc.DeleteProduct(ctx, "nope"); !apperrors.IsNotFound(err) {
		t.Errorf("unknown product: got %v, want not-found", err)
	}
	if err := f.uc.DeleteProduct(ctx, productID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if _, ok := f.repo.products[productID]; ok {
		t.Error("product should be gone")
	}

	last := f.publisher.published[len(f.publisher.published)-1]
	if last.Event != events.ProductDeleted {
		t.Errorf("expected delete event, got %+v", last)
	}
}
