package repository

import (
	"context"
	"path/filepath"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/errors"
)

type jsonFileQuestionRepository struct {
	col *collection[entity.Question]
}

func NewJSONFileQuestionRepository(dataDir string) repository.QuestionRepository {
	return &jsonFileQuestionRepository{
		col: openCollection[entity.Question](filepath.Join(dataDir, "questions.json")),
	}
}

func (r *jsonFileQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	return r.col.mutate(func(items []entity.Question) ([]entity.Question, error) {
		return append(items, *question), nil
	})
}

func (r *jsonFileQuestionRepository) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	for _, item := range r.col.snapshot() {
		if item.ID == id {
			question := item
			return &question, nil
		}
	}
	return nil, errors.NotFound("Question", nil)
}

func (r *jsonFileQuestionRepository) List(ctx context.Context) ([]*entity.Question, error) {
	items := r.col.snapshot()
	questions := make([]*entity.Question, len(items))
	for i := range items {
		questions[i] = &items[i]
	}
	return questions, nil
}

func (r *jsonFileQuestionRepository) Update(ctx context.Context, question *entity.Question) error {
	return r.col.mutate(func(items []entity.Question) ([]entity.Question, error) {
		for i := range items {
			if items[i].ID == question.ID {
				items[i] = *question
				return items, nil
			}
		}
		return nil, errors.NotFound("Question", nil)
	})
}

func (r *jsonFileQuestionRepository) Delete(ctx context.Context, id string) error {
	return r.col.mutate(func(items []entity.Question) ([]entity.Question, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, errors.NotFound("Question", nil)
	})
}
