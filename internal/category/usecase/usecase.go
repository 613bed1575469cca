package usecase

import (
	"context"
	"time"

	"github.com/elite-commerce/catalog-service/internal/category"
	"github.com/elite-commerce/catalog-service/internal/category/dto"
	"github.com/elite-commerce/catalog-service/internal/model"
	"github.com/elite-commerce/catalog-service/internal/pkg/apperrors"
	"github.com/elite-commerce/catalog-service/internal/slug"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	return uc.repo.FindAll(ctx, includeInactive)
}

func (uc *categoryUseCase) GetRootCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindRoots(ctx)
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperrors.NotFound("Category not found")
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategoryBySlug(ctx context.Context, s string) (*model.Category, error) {
	cat, err := uc.repo.FindBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperrors.NotFound("Category not found")
	}
	return cat, nil
}

func (uc *categoryUseCase) GetSubCategories(ctx context.Context, parentID string) ([]model.Category, error) {
	return uc.repo.FindSubCategories(ctx, parentID)
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.UpsertCategoryInput) (*model.Category, error) {
	if input.ParentCategoryID != nil {
		exists, err := uc.repo.Exists(ctx, *input.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NotFound("Parent category not found")
		}
	}

	uniqueSlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, s string) (bool, error) {
		return uc.repo.SlugExists(ctx, s, "")
	})
	if err != nil {
		return nil, err
	}

	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().UTC(),
		},
		Name:             input.Name,
		Slug:             uniqueSlug,
		Description:      input.Description,
		ParentCategoryID: input.ParentCategoryID,
		SortOrder:        input.SortOrder,
		IsActive:         true,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	uc.logger.Info("category created", zap.String("id", cat.ID), zap.String("slug", cat.Slug))
	return cat, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id string, input *dto.UpsertCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperrors.NotFound("Category not found")
	}

	if input.ParentCategoryID != nil {
		if *input.ParentCategoryID == id {
			return nil, apperrors.Validation("Category cannot be its own parent")
		}
		exists, err := uc.repo.Exists(ctx, *input.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NotFound("Parent category not found")
		}
	}

	// Slug is regenerated only when the name actually changed.
	if cat.Name != input.Name {
		uniqueSlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, s string) (bool, error) {
			return uc.repo.SlugExists(ctx, s, id)
		})
		if err != nil {
			return nil, err
		}
		cat.Slug = uniqueSlug
	}

	cat.Name = input.Name
	cat.Description = input.Description
	cat.ParentCategoryID = input.ParentCategoryID
	cat.SortOrder = input.SortOrder
	now := time.Now().UTC()
	cat.UpdatedAt = &now

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return apperrors.NotFound("Category not found")
	}

	hasProducts, err := uc.repo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return apperrors.Conflict("Cannot delete category with products. Remove products first.")
	}

	subCategories, err := uc.repo.FindSubCategories(ctx, id)
	if err != nil {
		return err
	}
	if len(subCategories) > 0 {
		return apperrors.Conflict("Cannot delete category with subcategories. Remove subcategories first.")
	}

	return uc.repo.Delete(ctx, id)
}
