package repository

import (
	"context"

	"mercadito/internal/domain/entity"
)

// UserRepository has no mutation methods: users are referenced by reviews,
// questions and answers but never changed through this API.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
