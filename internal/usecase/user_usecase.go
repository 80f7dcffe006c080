package usecase

import (
	"context"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/utils"
)

// UserUseCase is read-only: users are referenced by reviews, questions and
// answers but cannot be created or modified through this API.
type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) ListUsers(ctx context.Context, params utils.ListParams) ([]*entity.User, int, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := len(users)
	start, end := params.Window(total)

	return users[start:end], total, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}
