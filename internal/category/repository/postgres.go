package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadChildren(ctx, &category, false); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE slug = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadChildren(ctx, &category, false); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) loadChildren(ctx context.Context, parent *model.Category, activeOnly bool) error {
	query := `SELECT * FROM categories WHERE parent_category_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY sort_order ASC, name ASC`
	return r.DB.SelectContext(ctx, &parent.SubCategories, query, parent.ID)
}

func (r *PGRepository) FindAll(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT * FROM categories`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	err := r.DB.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *PGRepository) FindRoots(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `
        SELECT * FROM categories
        WHERE is_active = true AND parent_category_id IS NULL
        ORDER BY sort_order ASC
    `
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}

	for i := range categories {
		if err := r.loadChildren(ctx, &categories[i], true); err != nil {
			return nil, err
		}
	}
	return categories, nil
}

func (r *PGRepository) FindSubCategories(ctx context.Context, parentID string) ([]model.Category, error) {
	categories := []model.Category{}
	query := `
        SELECT * FROM categories
        WHERE is_active = true AND parent_category_id = $1
        ORDER BY sort_order ASC
    `
	err := r.DB.SelectContext(ctx, &categories, query, parentID)
	return categories, err
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name, slug, description, parent_category_id, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :name, :slug, :description, :parent_category_id, :sort_order, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            slug = :slug,
            description = :description,
            parent_category_id = :parent_category_id,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *PGRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM categories WHERE id = $1`, id)
	return count > 0, err
}

func (r *PGRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM categories WHERE slug = $1`
	args := []interface{}{slug}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	err := r.DB.GetContext(ctx, &count, query, args...)
	return count > 0, err
}

func (r *PGRepository) HasProducts(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE category_id = $1`, id)
	return count > 0, err
}
