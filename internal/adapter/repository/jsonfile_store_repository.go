package repository

import (
	"context"
	"path/filepath"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/errors"
)

type jsonFileStoreRepository struct {
	col *collection[entity.Store]
}

func NewJSONFileStoreRepository(dataDir string) repository.StoreRepository {
	return &jsonFileStoreRepository{
		col: openCollection[entity.Store](filepath.Join(dataDir, "stores.json")),
	}
}

func (r *jsonFileStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	return r.col.mutate(func(items []entity.Store) ([]entity.Store, error) {
		return append(items, *store), nil
	})
}

func (r *jsonFileStoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	for _, item := range r.col.snapshot() {
		if item.ID == id {
			store := item
			return &store, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *jsonFileStoreRepository) List(ctx context.Context) ([]*entity.Store, error) {
	items := r.col.snapshot()
	stores := make([]*entity.Store, len(items))
	for i := range items {
		stores[i] = &items[i]
	}
	return stores, nil
}

func (r *jsonFileStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	return r.col.mutate(func(items []entity.Store) ([]entity.Store, error) {
		for i := range items {
			if items[i].ID == store.ID {
				items[i] = *store
				return items, nil
			}
		}
		return nil, errors.NotFound("Store", nil)
	})
}

func (r *jsonFileStoreRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(func(items []entity.Store) ([]entity.Store, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, errors.NotFound("Store", nil)
	})
}
