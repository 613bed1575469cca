package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, id string, includeInactive bool) (*model.Product, error) {
	query := `SELECT * FROM products WHERE id = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}
	return r.findOne(ctx, query, id)
}

func (r *PGRepository) FindBySlug(ctx context.Context, slug string, includeInactive bool) (*model.Product, error) {
	query := `SELECT * FROM products WHERE slug = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}
	return r.findOne(ctx, query, slug)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, query+` LIMIT 1`, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadGraph(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// loadGraph attaches everything the detail view needs: category with
// its parent, brand, product images and all variants with their
// images. Inactive variants are included here so admin callers see the
// whole set.
func (r *PGRepository) loadGraph(ctx context.Context, p *model.Product) error {
	var category model.Category
	if err := r.DB.GetContext(ctx, &category,
		`SELECT * FROM categories WHERE id = $1`, p.CategoryID); err != nil {
		return err
	}
	if category.ParentCategoryID != nil {
		var parent model.Category
		if err := r.DB.GetContext(ctx, &parent,
			`SELECT * FROM categories WHERE id = $1`, *category.ParentCategoryID); err != nil {
			return err
		}
		category.Parent = &parent
	}
	p.Category = &category

	var brand model.Brand
	if err := r.DB.GetContext(ctx, &brand,
		`SELECT * FROM brands WHERE id = $1`, p.BrandID); err != nil {
		return err
	}
	p.Brand = &brand

	p.Images = []model.ProductImage{}
	if err := r.DB.SelectContext(ctx, &p.Images,
		`SELECT * FROM product_images WHERE product_id = $1 ORDER BY sort_order ASC`, p.ID); err != nil {
		return err
	}

	p.Variants = []model.ProductVariant{}
	if err := r.DB.SelectContext(ctx, &p.Variants,
		`SELECT * FROM product_variants WHERE product_id = $1 ORDER BY sort_order ASC`, p.ID); err != nil {
		return err
	}
	for i := range p.Variants {
		if err := r.loadVariantImages(ctx, &p.Variants[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PGRepository) loadVariantImages(ctx context.Context, v *model.ProductVariant) error {
	v.Images = []model.ProductVariantImage{}
	return r.DB.SelectContext(ctx, &v.Images,
		`SELECT * FROM product_variant_images WHERE variant_id = $1 ORDER BY sort_order ASC`, v.ID)
}

// productListRow carries the joined display names alongside the
// product columns for the listing query.
type productListRow struct {
	model.Product
	CategoryName string `db:"category_name"`
	BrandName    string `db:"brand_name"`
}

const productListSelect = `
        SELECT p.*, c.name AS category_name, b.name AS brand_name
        FROM products p
        JOIN categories c ON c.id = p.category_id
        JOIN brands b ON b.id = p.brand_id
    `

func (r *PGRepository) FindAll(ctx context.Context, filter *dto.ProductFilterRequest) ([]model.Product, int, error) {
	where, args, orderBy := buildProductFilter(filter)

	// Total over the unpaged result, taken before LIMIT/OFFSET.
	countQuery, countArgs, err := sqlx.In(
		`SELECT count(*) FROM products p JOIN brands b ON b.id = p.brand_id`+where, args...)
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.DB.GetContext(ctx, &total, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	offset := (filter.PageNumber - 1) * filter.PageSize
	pageArgs := append(append([]interface{}{}, args...), filter.PageSize, offset)
	pageQuery, pageArgs, err := sqlx.In(
		productListSelect+where+` ORDER BY `+orderBy+` LIMIT ? OFFSET ?`, pageArgs...)
	if err != nil {
		return nil, 0, err
	}

	rows := []productListRow{}
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(pageQuery), pageArgs...); err != nil {
		return nil, 0, err
	}

	products, err := r.attachListData(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *PGRepository) FindFeatured(ctx context.Context, count int) ([]model.Product, error) {
	rows := []productListRow{}
	query := productListSelect +
		` WHERE p.is_active = true AND p.is_featured = true
          ORDER BY p.created_at DESC LIMIT $1`
	if err := r.DB.SelectContext(ctx, &rows, query, count); err != nil {
		return nil, err
	}
	return r.attachListData(ctx, rows)
}

// attachListData batch-loads what the listing shape needs: the main
// image and the active variants of each product on the page.
func (r *PGRepository) attachListData(ctx context.Context, rows []productListRow) ([]model.Product, error) {
	products := make([]model.Product, 0, len(rows))
	if len(rows) == 0 {
		return products, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	imageQuery, imageArgs, err := sqlx.In(
		`SELECT * FROM product_images WHERE product_id IN (?) AND is_main = true`, ids)
	if err != nil {
		return nil, err
	}
	mainImages := []model.ProductImage{}
	if err := r.DB.SelectContext(ctx, &mainImages, r.DB.Rebind(imageQuery), imageArgs...); err != nil {
		return nil, err
	}
	imagesByProduct := map[string][]model.ProductImage{}
	for _, img := range mainImages {
		imagesByProduct[img.ProductID] = append(imagesByProduct[img.ProductID], img)
	}

	variantQuery, variantArgs, err := sqlx.In(
		`SELECT * FROM product_variants WHERE product_id IN (?) AND is_active = true ORDER BY sort_order ASC`, ids)
	if err != nil {
		return nil, err
	}
	variants := []model.ProductVariant{}
	if err := r.DB.SelectContext(ctx, &variants, r.DB.Rebind(variantQuery), variantArgs...); err != nil {
		return nil, err
	}
	variantsByProduct := map[string][]model.ProductVariant{}
	for _, v := range variants {
		variantsByProduct[v.ProductID] = append(variantsByProduct[v.ProductID], v)
	}

	for _, row := range rows {
		p := row.Product
		p.Category = &model.Category{BaseModel: model.BaseModel{ID: p.CategoryID}, Name: row.CategoryName}
		p.Brand = &model.Brand{BaseModel: model.BaseModel{ID: p.BrandID}, Name: row.BrandName}
		p.Images = imagesByProduct[p.ID]
		p.Variants = variantsByProduct[p.ID]
		products = append(products, p)
	}
	return products, nil
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, slug, description, short_description, category_id, brand_id,
            base_price, compare_at_price, is_active, is_featured, allow_pre_order,
            stock_alert_threshold, meta_title, meta_description, meta_keywords,
            created_by, updated_by, created_at, updated_at
        ) VALUES (
            :id, :name, :slug, :description, :short_description, :category_id, :brand_id,
            :base_price, :compare_at_price, :is_active, :is_featured, :allow_pre_order,
            :stock_alert_threshold, :meta_title, :meta_description, :meta_keywords,
            :created_by, :updated_by, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            slug = :slug,
            description = :description,
            short_description = :short_description,
            category_id = :category_id,
            brand_id = :brand_id,
            base_price = :base_price,
            compare_at_price = :compare_at_price,
            is_active = :is_active,
            is_featured = :is_featured,
            allow_pre_order = :allow_pre_order,
            stock_alert_threshold = :stock_alert_threshold,
            meta_title = :meta_title,
            meta_description = :meta_description,
            meta_keywords = :meta_keywords,
            updated_by = :updated_by,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

// Delete relies on ON DELETE CASCADE for images and variants.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *PGRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE id = $1`, id)
	return count > 0, err
}

func (r *PGRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE slug = $1`
	args := []interface{}{slug}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	err := r.DB.GetContext(ctx, &count, query, args...)
	return count > 0, err
}

func (r *PGRepository) FindVariantByID(ctx context.Context, variantID string) (*model.ProductVariant, error) {
	var v model.ProductVariant
	err := r.DB.GetContext(ctx, &v,
		`SELECT * FROM product_variants WHERE id = $1 LIMIT 1`, variantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadVariantImages(ctx, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PGRepository) FindVariantsByProductID(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	variants := []model.ProductVariant{}
	err := r.DB.SelectContext(ctx, &variants,
		`SELECT * FROM product_variants WHERE product_id = $1 ORDER BY sort_order ASC`, productID)
	if err != nil {
		return nil, err
	}

	for i := range variants {
		if err := r.loadVariantImages(ctx, &variants[i]); err != nil {
			return nil, err
		}
	}
	return variants, nil
}

func (r *PGRepository) CreateVariant(ctx context.Context, v *model.ProductVariant) error {
	query := `
        INSERT INTO product_variants (
            id, product_id, sku,
            processor_brand, processor_model, processor_generation, processor_speed,
            ram_size_gb, ram_type, ram_speed,
            storage_type, storage_capacity_gb, storage_interface,
            gpu_type, gpu_brand, gpu_model, gpu_vram_gb,
            display_size_inches, display_resolution, display_refresh_rate, display_panel_type,
            operating_system, color, warranty_months,
            connection_type, compatibility, additional_attributes,
            addon_price, compare_at_addon_price, condition, stock_quantity,
            is_default, is_active, sort_order, created_at, updated_at
        ) VALUES (
            :id, :product_id, :sku,
            :processor_brand, :processor_model, :processor_generation, :processor_speed,
            :ram_size_gb, :ram_type, :ram_speed,
            :storage_type, :storage_capacity_gb, :storage_interface,
            :gpu_type, :gpu_brand, :gpu_model, :gpu_vram_gb,
            :display_size_inches, :display_resolution, :display_refresh_rate, :display_panel_type,
            :operating_system, :color, :warranty_months,
            :connection_type, :compatibility, :additional_attributes,
            :addon_price, :compare_at_addon_price, :condition, :stock_quantity,
            :is_default, :is_active, :sort_order, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return err
}

func (r *PGRepository) UpdateVariant(ctx context.Context, v *model.ProductVariant) error {
	query := `
        UPDATE product_variants
        SET sku = :sku,
            processor_brand = :processor_brand,
            processor_model = :processor_model,
            processor_generation = :processor_generation,
            processor_speed = :processor_speed,
            ram_size_gb = :ram_size_gb,
            ram_type = :ram_type,
            ram_speed = :ram_speed,
            storage_type = :storage_type,
            storage_capacity_gb = :storage_capacity_gb,
            storage_interface = :storage_interface,
            gpu_type = :gpu_type,
            gpu_brand = :gpu_brand,
            gpu_model = :gpu_model,
            gpu_vram_gb = :gpu_vram_gb,
            display_size_inches = :display_size_inches,
            display_resolution = :display_resolution,
            display_refresh_rate = :display_refresh_rate,
            display_panel_type = :display_panel_type,
            operating_system = :operating_system,
            color = :color,
            warranty_months = :warranty_months,
            connection_type = :connection_type,
            compatibility = :compatibility,
            additional_attributes = :additional_attributes,
            addon_price = :addon_price,
            compare_at_addon_price = :compare_at_addon_price,
            condition = :condition,
            stock_quantity = :stock_quantity,
            is_default = :is_default,
            is_active = :is_active,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return err
}

func (r *PGRepository) DeleteVariant(ctx context.Context, variantID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM product_variants WHERE id = $1`, variantID)
	return err
}

func (r *PGRepository) SKUExists(ctx context.Context, sku, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM product_variants WHERE sku = $1`
	args := []interface{}{sku}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	err := r.DB.GetContext(ctx, &count, query, args...)
	return count > 0, err
}

func (r *PGRepository) AddImages(ctx context.Context, images []model.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	query := `
        INSERT INTO product_images (id, product_id, image_url, thumbnail_url, alt_text, is_main, sort_order, uploaded_at)
        VALUES (:id, :product_id, :image_url, :thumbnail_url, :alt_text, :is_main, :sort_order, :uploaded_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, images)
	return err
}

func (r *PGRepository) DeleteImage(ctx context.Context, imageID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_images WHERE id = $1`, imageID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *PGRepository) ClearMainImage(ctx context.Context, productID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE product_images SET is_main = false WHERE product_id = $1 AND is_main = true`, productID)
	return err
}

func (r *PGRepository) UpdateStock(ctx context.Context, variantID string, quantity int) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE product_variants SET stock_quantity = $1, updated_at = now() WHERE id = $2`,
		quantity, variantID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// DecrementStock subtracts in place without a floor; callers own any
// oversell handling.
func (r *PGRepository) DecrementStock(ctx context.Context, variantID string, amount int) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE product_variants SET stock_quantity = stock_quantity - $1, updated_at = now() WHERE id = $2`,
		amount, variantID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *PGRepository) FindLowStockVariants(ctx context.Context, threshold int) ([]model.ProductVariant, error) {
	variants := []model.ProductVariant{}
	query := `
        SELECT * FROM product_variants
        WHERE is_active = true AND stock_quantity > 0 AND stock_quantity <= $1
        ORDER BY stock_quantity ASC
    `
	if err := r.DB.SelectContext(ctx, &variants, query, threshold); err != nil {
		return nil, err
	}

	for i := range variants {
		var p model.Product
		if err := r.DB.GetContext(ctx, &p,
			`SELECT * FROM products WHERE id = $1`, variants[i].ProductID); err != nil {
			return nil, err
		}
		variants[i].Product = &p
	}
	return variants, nil
}

func (r *PGRepository) ToggleFeatured(ctx context.Context, productID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE products SET is_featured = NOT is_featured, updated_at = now() WHERE id = $1`, productID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *PGRepository) ToggleActive(ctx context.Context, productID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE products SET is_active = NOT is_active, updated_at = now() WHERE id = $1`, productID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
