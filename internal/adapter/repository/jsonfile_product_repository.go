package repository

import (
	"context"
	"path/filepath"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/errors"
)

type jsonFileProductRepository struct {
	col *collection[entity.Product]
}

func NewJSONFileProductRepository(dataDir string) repository.ProductRepository {
	return &jsonFileProductRepository{
		col: openCollection[entity.Product](filepath.Join(dataDir, "products.json")),
	}
}

func (r *jsonFileProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.col.mutate(func(items []entity.Product) ([]entity.Product, error) {
		return append(items, *product), nil
	})
}

func (r *jsonFileProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, item := range r.col.snapshot() {
		if item.ID == id {
			product := item
			return &product, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *jsonFileProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	items := r.col.snapshot()
	products := make([]*entity.Product, len(items))
	for i := range items {
		products[i] = &items[i]
	}
	return products, nil
}

func (r *jsonFileProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.col.mutate(func(items []entity.Product) ([]entity.Product, error) {
		for i := range items {
			if items[i].ID == product.ID {
				items[i] = *product
				return items, nil
			}
		}
		return nil, errors.NotFound("Product", nil)
	})
}

func (r *jsonFileProductRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(func(items []entity.Product) ([]entity.Product, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, errors.NotFound("Product", nil)
	})
}
