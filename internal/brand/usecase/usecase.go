package usecase

import (
	"context"
	"time"

	"github.com/elite-commerce/catalog-service/internal/brand"
	"github.com/elite-commerce/catalog-service/internal/brand/dto"
	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/pkg/apperrors"
	"github.com/elite-commerce/catalog-service/internal/slug"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type brandUseCase struct {
	repo   brand.Repository
	logger *zap.Logger
}

func NewBrandUseCase(repo brand.Repository, log *zap.Logger) brand.UseCase {
	return &brandUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *brandUseCase) ListBrands(ctx context.Context, includeInactive bool) ([]model.Brand, error) {
	return uc.repo.FindAll(ctx, includeInactive)
}

func (uc *brandUseCase) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperrors.NotFound("Brand not found")
	}
	return b, nil
}

func (uc *brandUseCase) GetBrandBySlug(ctx context.Context, s string) (*model.Brand, error) {
	b, err := uc.repo.FindBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperrors.NotFound("Brand not found")
	}
	return b, nil
}

func (uc *brandUseCase) CreateBrand(ctx context.Context, input *dto.UpsertBrandInput) (*model.Brand, error) {
	uniqueSlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, s string) (bool, error) {
		return uc.repo.SlugExists(ctx, s, "")
	})
	if err != nil {
		return nil, err
	}

	b := &model.Brand{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().UTC(),
		},
		Name:        input.Name,
		Slug:        uniqueSlug,
		LogoURL:     input.LogoURL,
		Description: input.Description,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.logger.Info("brand created", zap.String("id", b.ID), zap.String("slug", b.Slug))
	return b, nil
}

func (uc *brandUseCase) UpdateBrand(ctx context.Context, id string, input *dto.UpsertBrandInput) (*model.Brand, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperrors.NotFound("Brand not found")
	}

	if b.Name != input.Name {
		uniqueSlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, s string) (bool, error) {
			return uc.repo.SlugExists(ctx, s, id)
		})
		if err != nil {
			return nil, err
		}
		b.Slug = uniqueSlug
	}

	b.Name = input.Name
	b.Description = input.Description
	b.LogoURL = input.LogoURL
	b.SortOrder = input.SortOrder
	now := time.Now().UTC()
	b.UpdatedAt = &now

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *brandUseCase) DeleteBrand(ctx context.Context, id string) error {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return apperrors.NotFound("Brand not found")
	}

	hasProducts, err := uc.repo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return apperrors.Conflict("Cannot delete brand with products. Remove products first.")
	}

	return uc.repo.Delete(ctx, id)
}
