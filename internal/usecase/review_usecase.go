package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/errors"
	"mercadito/pkg/utils"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	aggregation *AggregationUseCase
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	aggregation *AggregationUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		aggregation: aggregation,
	}
}

type CreateReviewInput struct {
	User    string
	Product string
	Rating  int
	Comment string
}

type UpdateReviewInput struct {
	User    *string
	Product *string
	Rating  *int
	Comment *string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	if _, err := mustExist(ctx, uc.userRepo.GetByID, input.User, "User"); err != nil {
		return nil, err
	}
	if _, err := mustExist(ctx, uc.productRepo.GetByID, input.Product, "Product"); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:        uuid.NewString(),
		User:      entity.NewRef[entity.User](input.User),
		Product:   entity.NewRef[entity.Product](input.Product),
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, params utils.ListParams, relations []Relation) ([]*entity.Review, int, error) {
	reviews, err := uc.reviewRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := len(reviews)
	start, end := params.Window(total)

	result := make([]*entity.Review, 0, end-start)
	for _, review := range reviews[start:end] {
		populated, err := uc.populate(ctx, *review, relations)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, populated)
	}

	return result, total, nil
}

func (uc *ReviewUseCase) GetReview(ctx context.Context, id string, relations []Relation) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.populate(ctx, *review, relations)
}

func (uc *ReviewUseCase) UpdateReview(ctx context.Context, id string, input UpdateReviewInput) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	if input.User != nil {
		if _, err := mustExist(ctx, uc.userRepo.GetByID, *input.User, "User"); err != nil {
			return nil, err
		}
		review.User = entity.NewRef[entity.User](*input.User)
	}
	if input.Product != nil {
		if _, err := mustExist(ctx, uc.productRepo.GetByID, *input.Product, "Product"); err != nil {
			return nil, err
		}
		review.Product = entity.NewRef[entity.Product](*input.Product)
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	now := time.Now()
	review.UpdatedAt = &now

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id string) (string, error) {
	if _, err := uc.reviewRepo.GetByID(ctx, id); err != nil {
		return "", err
	}

	if err := uc.reviewRepo.Delete(ctx, id); err != nil {
		return "", err
	}

	return "Review deleted successfully", nil
}

func (uc *ReviewUseCase) populate(ctx context.Context, review entity.Review, relations []Relation) (*entity.Review, error) {
	if hasRelation(relations, RelationUsers) {
		user, err := resolveRef(ctx, uc.userRepo.GetByID, review.User)
		if err != nil {
			return nil, err
		}
		review.User = user
	}

	if hasRelation(relations, RelationProducts) {
		product, err := resolveRef(ctx, uc.productRepo.GetByID, review.Product)
		if err != nil {
			return nil, err
		}
		// The embedded product carries its derived rating data, same as a
		// direct product read.
		if product.Record != nil {
			product.Record.Rating = uc.aggregation.ProductRating(ctx, product.ID)
			product.Record.Reviews = uc.aggregation.ProductReviewCount(ctx, product.ID)
		}
		review.Product = product
	}

	return &review, nil
}
