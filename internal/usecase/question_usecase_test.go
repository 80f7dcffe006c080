package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercadito/internal/domain/entity"
	"mercadito/pkg/errors"
)

func TestCreateQuestion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testUser("u-1"))

	category := env.seedCategory(t, "Electronics")
	store := env.seedStore(t, "Casa Tech", category.ID)
	product := env.seedProduct(t, "Widget", category.ID, store.ID)

	question, err := env.questions.CreateQuestion(ctx, CreateQuestionInput{
		Product: product.ID, User: "u-1", Content: "Does it ship abroad?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, question.ID)
	assert.False(t, question.IsAnswered)
	assert.NotNil(t, question.Answers)
	assert.Empty(t, question.Answers)

	// The owning product tracks the new question.
	reloaded, err := env.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{question.ID}, entity.RefIDs(reloaded.Questions))
}

func TestCreateQuestionUnknownReferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testUser("u-1"))

	category := env.seedCategory(t, "Electronics")
	store := env.seedStore(t, "Casa Tech", category.ID)
	product := env.seedProduct(t, "Widget", category.ID, store.ID)

	_, err := env.questions.CreateQuestion(ctx, CreateQuestionInput{
		Product: "missing", User: "u-1", Content: "?",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product not found")

	_, err = env.questions.CreateQuestion(ctx, CreateQuestionInput{
		Product: product.ID, User: "missing", Content: "?",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}

func TestAnswerQuestion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testUser("u-1"), testUser("u-2"))

	category := env.seedCategory(t, "Electronics")
	store := env.seedStore(t, "Casa Tech", category.ID)
	product := env.seedProduct(t, "Widget", category.ID, store.ID)

	question, err := env.questions.CreateQuestion(ctx, CreateQuestionInput{
		Product: product.ID, User: "u-1", Content: "Does it ship abroad?",
	})
	require.NoError(t, err)

	answer, err := env.questions.AnswerQuestion(ctx, CreateAnswerInput{
		Question: question.ID, User: "u-2", Content: "Yes, worldwide.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, answer.ID)
	assert.Equal(t, question.ID, answer.Question)
	assert.Equal(t, "u-2", answer.User.ID)

	reloaded, err := env.questions.GetQuestion(ctx, question.ID, nil)
	require.NoError(t, err)
	assert.True(t, reloaded.IsAnswered)
	require.Len(t, reloaded.Answers, 1)
	assert.Equal(t, "Yes, worldwide.", reloaded.Answers[0].Content)
	assert.NotNil(t, reloaded.UpdatedAt)
}

func TestAnswerUnknownQuestion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testUser("u-1"))

	_, err := env.questions.AnswerQuestion(ctx, CreateAnswerInput{
		Question: "missing", User: "u-1", Content: "?",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestQuestionPopulateUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testUser("u-1"))

	category := env.seedCategory(t, "Electronics")
	store := env.seedStore(t, "Casa Tech", category.ID)
	product := env.seedProduct(t, "Widget", category.ID, store.ID)

	question, err := env.questions.CreateQuestion(ctx, CreateQuestionInput{
		Product: product.ID, User: "u-1", Content: "?",
	})
	require.NoError(t, err)

	populated, err := env.questions.GetQuestion(ctx, question.ID, []Relation{RelationUsers})
	require.NoError(t, err)
	require.True(t, populated.User.IsResolved())
	assert.Equal(t, "u-1", populated.User.Record.ID)
	assert.False(t, populated.Product.IsResolved(), "products are not in the question whitelist")
}

func TestProductPopulateQuestions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testUser("u-1"))

	category := env.seedCategory(t, "Electronics")
	store := env.seedStore(t, "Casa Tech", category.ID)
	product := env.seedProduct(t, "Widget", category.ID, store.ID)

	first, err := env.questions.CreateQuestion(ctx, CreateQuestionInput{
		Product: product.ID, User: "u-1", Content: "First?",
	})
	require.NoError(t, err)
	second, err := env.questions.CreateQuestion(ctx, CreateQuestionInput{
		Product: product.ID, User: "u-1", Content: "Second?",
	})
	require.NoError(t, err)

	populated, err := env.products.GetProduct(ctx, product.ID, []Relation{RelationQuestions})
	require.NoError(t, err)
	require.Len(t, populated.Questions, 2)
	assert.Equal(t, []string{first.ID, second.ID}, entity.RefIDs(populated.Questions))
	require.True(t, populated.Questions[0].IsResolved())
	assert.Equal(t, "First?", populated.Questions[0].Record.Content)
}
