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

type StoreUseCase struct {
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
}

func NewStoreUseCase(
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
	}
}

type CreateStoreInput struct {
	StoreCode   string
	Name        string
	Slug        string
	Description string
	Categories  []string
	Logo        string
	Banner      string
	IsActive    *bool
	IsVerified  *bool
}

type UpdateStoreInput struct {
	StoreCode   *string
	Name        *string
	Slug        *string
	Description *string
	Categories  []string
	Logo        *string
	Banner      *string
	IsActive    *bool
	IsVerified  *bool
}

func (uc *StoreUseCase) CreateStore(ctx context.Context, input CreateStoreInput) (*entity.Store, error) {
	for _, categoryID := range input.Categories {
		if _, err := mustExist(ctx, uc.categoryRepo.GetByID, categoryID, "Category"); err != nil {
			return nil, err
		}
	}

	baseText := input.Slug
	if baseText == "" {
		baseText = input.Name
	}

	slug, err := uc.checkSlug(ctx, baseText, "")
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	isVerified := false
	if input.IsVerified != nil {
		isVerified = *input.IsVerified
	}

	categories := make([]entity.Ref[entity.Category], len(input.Categories))
	for i, id := range input.Categories {
		categories[i] = entity.NewRef[entity.Category](id)
	}

	store := &entity.Store{
		ID:          uuid.NewString(),
		StoreCode:   input.StoreCode,
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Categories:  categories,
		Logo:        input.Logo,
		Banner:      input.Banner,
		IsActive:    isActive,
		IsVerified:  isVerified,
		VerifiedAt:  verifiedAtFor(nil, input.IsVerified),
		CreatedAt:   time.Now(),
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (uc *StoreUseCase) ListStores(ctx context.Context, params utils.ListParams, relations []Relation) ([]*entity.Store, int, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := len(stores)
	start, end := params.Window(total)

	result := make([]*entity.Store, 0, end-start)
	for _, store := range stores[start:end] {
		populated, err := uc.populate(ctx, *store, relations)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, populated)
	}

	return result, total, nil
}

func (uc *StoreUseCase) GetStore(ctx context.Context, id string, relations []Relation) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.populate(ctx, *store, relations)
}

func (uc *StoreUseCase) UpdateStore(ctx context.Context, id string, input UpdateStoreInput) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Categories != nil {
		for _, categoryID := range input.Categories {
			if _, err := mustExist(ctx, uc.categoryRepo.GetByID, categoryID, "Category"); err != nil {
				return nil, err
			}
		}
		categories := make([]entity.Ref[entity.Category], len(input.Categories))
		for i, categoryID := range input.Categories {
			categories[i] = entity.NewRef[entity.Category](categoryID)
		}
		store.Categories = categories
	}

	if input.StoreCode != nil {
		store.StoreCode = *input.StoreCode
	}
	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Logo != nil {
		store.Logo = *input.Logo
	}
	if input.Banner != nil {
		store.Banner = *input.Banner
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}

	// verifiedAt depends on the pre-update verification state, so derive it
	// before applying the new flag.
	store.VerifiedAt = verifiedAtFor(store, input.IsVerified)
	if input.IsVerified != nil {
		store.IsVerified = *input.IsVerified
	}

	baseText := store.Slug
	if input.Slug != nil {
		baseText = *input.Slug
	} else if input.Name != nil {
		baseText = *input.Name
	}

	slug, err := uc.checkSlug(ctx, baseText, id)
	if err != nil {
		return nil, err
	}
	store.Slug = slug

	now := time.Now()
	store.UpdatedAt = &now

	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (uc *StoreUseCase) DeleteStore(ctx context.Context, id string) (string, error) {
	store, err := uc.storeRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := uc.storeRepo.Delete(ctx, id); err != nil {
		return "", err
	}

	return fmt.Sprintf("Store %q deleted successfully", store.Name), nil
}

func (uc *StoreUseCase) populate(ctx context.Context, store entity.Store, relations []Relation) (*entity.Store, error) {
	if hasRelation(relations, RelationCategories) {
		categories, err := resolveRefs(ctx, uc.categoryRepo.GetByID, store.Categories)
		if err != nil {
			return nil, err
		}
		store.Categories = categories
	}
	return &store, nil
}

func (uc *StoreUseCase) checkSlug(ctx context.Context, baseText, excludeID string) (string, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return "", err
	}

	entries := make([]utils.SlugEntry, len(stores))
	for i, store := range stores {
		entries[i] = utils.SlugEntry{ID: store.ID, Slug: store.Slug}
	}

	return utils.CheckSlug(baseText, entries, excludeID)
}

// verifiedAtFor follows the isVerified transition: first verification stamps
// now, repeat verification keeps the old stamp, unverifying clears it.
func verifiedAtFor(current *entity.Store, isVerified *bool) *time.Time {
	switch {
	case isVerified != nil && *isVerified && (current == nil || !current.IsVerified):
		now := time.Now()
		return &now
	case isVerified != nil && *isVerified:
		return current.VerifiedAt
	case isVerified != nil:
		return nil
	case current != nil:
		return current.VerifiedAt
	default:
		return nil
	}
}
