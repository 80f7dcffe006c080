package repository

import (
	"context"
	"path/filepath"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/errors"
)

type jsonFileCategoryRepository struct {
	col *collection[entity.Category]
}

func NewJSONFileCategoryRepository(dataDir string) repository.CategoryRepository {
	return &jsonFileCategoryRepository{
		col: openCollection[entity.Category](filepath.Join(dataDir, "categories.json")),
	}
}

func (r *jsonFileCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.col.mutate(func(items []entity.Category) ([]entity.Category, error) {
		return append(items, *category), nil
	})
}

func (r *jsonFileCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	for _, item := range r.col.snapshot() {
		if item.ID == id {
			category := item
			return &category, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *jsonFileCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	items := r.col.snapshot()
	categories := make([]*entity.Category, len(items))
	for i := range items {
		categories[i] = &items[i]
	}
	return categories, nil
}

func (r *jsonFileCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.col.mutate(func(items []entity.Category) ([]entity.Category, error) {
		for i := range items {
			if items[i].ID == category.ID {
				items[i] = *category
				return items, nil
			}
		}
		return nil, errors.NotFound("Category", nil)
	})
}

func (r *jsonFileCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(func(items []entity.Category) ([]entity.Category, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, errors.NotFound("Category", nil)
	})
}

func (r *jsonFileCategoryRepository) ReplaceAll(ctx context.Context, categories []*entity.Category) error {
	return r.col.mutate(func(items []entity.Category) ([]entity.Category, error) {
		next := make([]entity.Category, len(categories))
		for i, category := range categories {
			next[i] = *category
		}
		return next, nil
	})
}
