package repository

import (
	"context"
	"path/filepath"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/errors"
)

type jsonFileUserRepository struct {
	col *collection[entity.User]
}

func NewJSONFileUserRepository(dataDir string) repository.UserRepository {
	return &jsonFileUserRepository{
		col: openCollection[entity.User](filepath.Join(dataDir, "users.json")),
	}
}

func (r *jsonFileUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, item := range r.col.snapshot() {
		if item.ID == id {
			user := item
			return &user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *jsonFileUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	items := r.col.snapshot()
	users := make([]*entity.User, len(items))
	for i := range items {
		users[i] = &items[i]
	}
	return users, nil
}
