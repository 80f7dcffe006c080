package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
	"mercadito/pkg/logger"
	"mercadito/pkg/utils"
)

type QuestionUseCase struct {
	questionRepo repository.QuestionRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

func NewQuestionUseCase(
	questionRepo repository.QuestionRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *QuestionUseCase {
	return &QuestionUseCase{
		questionRepo: questionRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

type CreateQuestionInput struct {
	Product string
	User    string
	Content string
}

type CreateAnswerInput struct {
	Question string
	User     string
	Content  string
}

func (uc *QuestionUseCase) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*entity.Question, error) {
	if _, err := mustExist(ctx, uc.userRepo.GetByID, input.User, "User"); err != nil {
		return nil, err
	}
	product, err := mustExist(ctx, uc.productRepo.GetByID, input.Product, "Product")
	if err != nil {
		return nil, err
	}

	question := &entity.Question{
		ID:         uuid.NewString(),
		Product:    entity.NewRef[entity.Product](input.Product),
		User:       entity.NewRef[entity.User](input.User),
		Content:    input.Content,
		Answers:    []entity.Answer{},
		IsAnswered: false,
		CreatedAt:  time.Now(),
	}

	if err := uc.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	// Keep the product-side question list in sync so its populate expansion
	// has real ids to work with. Best effort: the question itself is already
	// persisted.
	product.Questions = append(product.Questions, entity.NewRef[entity.Question](question.ID))
	if err := uc.productRepo.Update(ctx, product); err != nil {
		logger.Warn("Could not attach question %s to product %s: %v", question.ID, product.ID, err)
	}

	return question, nil
}

func (uc *QuestionUseCase) AnswerQuestion(ctx context.Context, input CreateAnswerInput) (*entity.Answer, error) {
	question, err := uc.questionRepo.GetByID(ctx, input.Question)
	if err != nil {
		return nil, err
	}

	if _, err := mustExist(ctx, uc.userRepo.GetByID, input.User, "User"); err != nil {
		return nil, err
	}

	answer := entity.Answer{
		ID:        uuid.NewString(),
		Question:  input.Question,
		User:      entity.NewRef[entity.User](input.User),
		Content:   input.Content,
		CreatedAt: time.Now(),
	}

	question.Answers = append(question.Answers, answer)
	question.IsAnswered = true

	now := time.Now()
	question.UpdatedAt = &now

	if err := uc.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}

	return &answer, nil
}

func (uc *QuestionUseCase) ListQuestions(ctx context.Context, params utils.ListParams, relations []Relation) ([]*entity.Question, int, error) {
	questions, err := uc.questionRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := len(questions)
	start, end := params.Window(total)

	result := make([]*entity.Question, 0, end-start)
	for _, question := range questions[start:end] {
		populated, err := uc.populate(ctx, *question, relations)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, populated)
	}

	return result, total, nil
}

func (uc *QuestionUseCase) GetQuestion(ctx context.Context, id string, relations []Relation) (*entity.Question, error) {
	question, err := uc.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.populate(ctx, *question, relations)
}

func (uc *QuestionUseCase) populate(ctx context.Context, question entity.Question, relations []Relation) (*entity.Question, error) {
	if hasRelation(relations, RelationUsers) {
		user, err := resolveRef(ctx, uc.userRepo.GetByID, question.User)
		if err != nil {
			return nil, err
		}
		question.User = user
	}
	return &question, nil
}
