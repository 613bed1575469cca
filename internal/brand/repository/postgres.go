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

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Brand, error) {
	var brand model.Brand
	err := r.DB.GetContext(ctx, &brand, `SELECT * FROM brands WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *PGRepository) FindBySlug(ctx context.Context, slug string) (*model.Brand, error) {
	var brand model.Brand
	err := r.DB.GetContext(ctx, &brand, `SELECT * FROM brands WHERE slug = $1 LIMIT 1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *PGRepository) FindAll(ctx context.Context, includeInactive bool) ([]model.Brand, error) {
	brands := []model.Brand{}
	query := `SELECT * FROM brands`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	err := r.DB.SelectContext(ctx, &brands, query)
	return brands, err
}

func (r *PGRepository) Create(ctx context.Context, b *model.Brand) error {
	query := `
        INSERT INTO brands (id, name, slug, logo_url, description, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :name, :slug, :logo_url, :description, :sort_order, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) Update(ctx context.Context, b *model.Brand) error {
	query := `
        UPDATE brands
        SET name = :name,
            slug = :slug,
            logo_url = :logo_url,
            description = :description,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id)
	return err
}

func (r *PGRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM brands WHERE id = $1`, id)
	return count > 0, err
}

func (r *PGRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM brands WHERE slug = $1`
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
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE brand_id = $1`, id)
	return count > 0, err
}
