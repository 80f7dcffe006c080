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

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

type CreateCategoryInput struct {
	Name     string
	Slug     string
	ParentID *string
	IsActive bool
}

type UpdateCategoryInput struct {
	Name     *string
	Slug     *string
	ParentID *string
	IsActive *bool
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	baseText := input.Slug
	if baseText == "" {
		baseText = input.Name
	}

	slug, err := uc.checkSlug(ctx, baseText, "")
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := mustExist(ctx, uc.categoryRepo.GetByID, *input.ParentID, "Parent category"); err != nil {
			return nil, err
		}
	}

	category := &entity.Category{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Slug:      slug,
		ParentID:  input.ParentID,
		IsActive:  input.IsActive,
		CreatedAt: time.Now(),
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context, params utils.ListParams) ([]*entity.Category, int, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := len(categories)
	start, end := params.Window(total)

	return categories[start:end], total, nil
}

func (uc *CategoryUseCase) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, id string, input UpdateCategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := mustExist(ctx, uc.categoryRepo.GetByID, *input.ParentID, "Parent category"); err != nil {
			return nil, err
		}
		category.ParentID = input.ParentID
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	// Re-derive the slug from whichever slug-relevant field changed; the
	// record's own id is excluded so keeping the old value is not a conflict.
	baseText := category.Slug
	if input.Slug != nil {
		baseText = *input.Slug
	} else if input.Name != nil {
		baseText = *input.Name
	}

	slug, err := uc.checkSlug(ctx, baseText, id)
	if err != nil {
		return nil, err
	}
	category.Slug = slug

	now := time.Now()
	category.UpdatedAt = &now

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category. With cascade every category whose parent
// chain includes it is removed as well; without it direct children are kept
// and orphaned (parentId cleared), so no surviving record points at the
// deleted id.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string, cascade bool) (string, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return "", err
	}

	var next []*entity.Category
	if cascade {
		doomed := map[string]bool{id: true}
		for changed := true; changed; {
			changed = false
			for _, c := range categories {
				if c.ParentID != nil && doomed[*c.ParentID] && !doomed[c.ID] {
					doomed[c.ID] = true
					changed = true
				}
			}
		}
		for _, c := range categories {
			if !doomed[c.ID] {
				next = append(next, c)
			}
		}
	} else {
		for _, c := range categories {
			if c.ID == id {
				continue
			}
			if c.ParentID != nil && *c.ParentID == id {
				c.ParentID = nil
			}
			next = append(next, c)
		}
	}

	if err := uc.categoryRepo.ReplaceAll(ctx, next); err != nil {
		return "", err
	}

	return fmt.Sprintf("Category %s deleted successfully", category.Name), nil
}

func (uc *CategoryUseCase) checkSlug(ctx context.Context, baseText, excludeID string) (string, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return "", err
	}

	entries := make([]utils.SlugEntry, len(categories))
	for i, category := range categories {
		entries[i] = utils.SlugEntry{ID: category.ID, Slug: category.Slug}
	}

	return utils.CheckSlug(baseText, entries, excludeID)
}
