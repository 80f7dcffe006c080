package usecase

import (
	"context"
	"math"

	"mercadito/internal/domain/repository"
	"mercadito/pkg/logger"
)

// AggregationUseCase derives product rating data from the review collection.
// Enrichment is best effort: a failing lookup degrades to zero values so a
// product listing never fails because its rating could not be computed.
type AggregationUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewAggregationUseCase(reviewRepo repository.ReviewRepository) *AggregationUseCase {
	return &AggregationUseCase{
		reviewRepo: reviewRepo,
	}
}

// ProductRating returns the mean review rating rounded to one decimal place.
// Zero reviews is a valid state and returns 0, not an error.
func (uc *AggregationUseCase) ProductRating(ctx context.Context, productID string) float64 {
	reviews, err := uc.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		logger.Warn("Could not load reviews for product %s: %v", productID, err)
		return 0
	}

	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}

	average := float64(total) / float64(len(reviews))
	return math.Round(average*10) / 10
}

// ProductReviewCount returns how many reviews the product has, 0 when the
// lookup fails.
func (uc *AggregationUseCase) ProductReviewCount(ctx context.Context, productID string) int {
	reviews, err := uc.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		logger.Warn("Could not count reviews for product %s: %v", productID, err)
		return 0
	}
	return len(reviews)
}
