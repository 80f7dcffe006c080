package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/utils"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	storeRepo    repository.StoreRepository
	questionRepo repository.QuestionRepository
	aggregation  *AggregationUseCase
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	storeRepo repository.StoreRepository,
	questionRepo repository.QuestionRepository,
	aggregation *AggregationUseCase,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storeRepo:    storeRepo,
		questionRepo: questionRepo,
		aggregation:  aggregation,
	}
}

type CreateProductInput struct {
	Title           string
	Description     string
	LongDescription string
	Price           float64
	Currency        string
	Category        string
	Store           string
	Images          []string
	Condition       string
	Features        []string
	Shipping        string
	Stock           int
}

type UpdateProductInput struct {
	Title           *string
	Description     *string
	LongDescription *string
	Price           *float64
	Currency        *string
	Category        *string
	Store           *string
	Images          []string
	Condition       *string
	Features        []string
	Shipping        *string
	Stock           *int
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if _, err := mustExist(ctx, uc.categoryRepo.GetByID, input.Category, "Category"); err != nil {
		return nil, err
	}
	if _, err := mustExist(ctx, uc.storeRepo.GetByID, input.Store, "Store"); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Price:           input.Price,
		Currency:        entity.Currency(input.Currency),
		Category:        entity.NewRef[entity.Category](input.Category),
		Store:           entity.NewRef[entity.Store](input.Store),
		Questions:       []entity.Ref[entity.Question]{},
		Images:          input.Images,
		Condition:       entity.Condition(input.Condition),
		Features:        input.Features,
		Shipping:        entity.Shipping(input.Shipping),
		Stock:           input.Stock,
		CreatedAt:       time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, params utils.ListParams, relations []Relation) ([]*entity.Product, int, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := len(products)
	start, end := params.Window(total)

	result := make([]*entity.Product, 0, end-start)
	for _, product := range products[start:end] {
		enriched, err := uc.enrich(ctx, *product, relations)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, enriched)
	}

	return result, total, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string, relations []Relation) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, *product, relations)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		if _, err := mustExist(ctx, uc.categoryRepo.GetByID, *input.Category, "Category"); err != nil {
			return nil, err
		}
		product.Category = entity.NewRef[entity.Category](*input.Category)
	}
	if input.Store != nil {
		if _, err := mustExist(ctx, uc.storeRepo.GetByID, *input.Store, "Store"); err != nil {
			return nil, err
		}
		product.Store = entity.NewRef[entity.Store](*input.Store)
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.LongDescription != nil {
		product.LongDescription = *input.LongDescription
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Currency != nil {
		product.Currency = entity.Currency(*input.Currency)
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Condition != nil {
		product.Condition = entity.Condition(*input.Condition)
	}
	if input.Features != nil {
		product.Features = input.Features
	}
	if input.Shipping != nil {
		product.Shipping = entity.Shipping(*input.Shipping)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	now := time.Now()
	product.UpdatedAt = &now

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) (string, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return "", err
	}

	return fmt.Sprintf("Product %q deleted successfully", product.Title), nil
}

// enrich stamps the derived rating fields and expands the requested
// relations on a copy; the stored record keeps bare ids.
func (uc *ProductUseCase) enrich(ctx context.Context, product entity.Product, relations []Relation) (*entity.Product, error) {
	product.Rating = uc.aggregation.ProductRating(ctx, product.ID)
	product.Reviews = uc.aggregation.ProductReviewCount(ctx, product.ID)

	if hasRelation(relations, RelationCategories) {
		category, err := resolveRef(ctx, uc.categoryRepo.GetByID, product.Category)
		if err != nil {
			return nil, err
		}
		product.Category = category
	}

	if hasRelation(relations, RelationStores) {
		store, err := resolveRef(ctx, uc.storeRepo.GetByID, product.Store)
		if err != nil {
			return nil, err
		}
		product.Store = store
	}

	if hasRelation(relations, RelationQuestions) {
		questions, err := resolveRefs(ctx, uc.questionRepo.GetByID, product.Questions)
		if err != nil {
			return nil, err
		}
		product.Questions = questions
	}

	return &product, nil
}
