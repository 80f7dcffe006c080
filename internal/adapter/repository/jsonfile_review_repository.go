package repository

import (
	"context"
	"path/filepath"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/errors"
)

type jsonFileReviewRepository struct {
	col *collection[entity.Review]
}

func NewJSONFileReviewRepository(dataDir string) repository.ReviewRepository {
	return &jsonFileReviewRepository{
		col: openCollection[entity.Review](filepath.Join(dataDir, "reviews.json")),
	}
}

func (r *jsonFileReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.col.mutate(func(items []entity.Review) ([]entity.Review, error) {
		return append(items, *review), nil
	})
}

func (r *jsonFileReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	for _, item := range r.col.snapshot() {
		if item.ID == id {
			review := item
			return &review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *jsonFileReviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	items := r.col.snapshot()
	reviews := make([]*entity.Review, len(items))
	for i := range items {
		reviews[i] = &items[i]
	}
	return reviews, nil
}

func (r *jsonFileReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	items := r.col.snapshot()
	for i := range items {
		if items[i].Product.ID == productID {
			reviews = append(reviews, &items[i])
		}
	}
	return reviews, nil
}

func (r *jsonFileReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return r.col.mutate(func(items []entity.Review) ([]entity.Review, error) {
		for i := range items {
			if items[i].ID == review.ID {
				items[i] = *review
				return items, nil
			}
		}
		return nil, errors.NotFound("Review", nil)
	})
}

func (r *jsonFileReviewRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(func(items []entity.Review) ([]entity.Review, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, errors.NotFound("Review", nil)
	})
}
