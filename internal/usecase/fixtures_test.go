package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	jsonfile "mercadito/internal/adapter/repository"
	"mercadito/internal/domain/entity"
	"mercadito/internal/domain/repository"
)

// testEnv wires the full use case stack over one temp data directory. Users
// have no write API, so they are seeded straight into the backing file.
type testEnv struct {
	dataDir string

	categoryRepo repository.CategoryRepository
	storeRepo    repository.StoreRepository
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository

	aggregation *AggregationUseCase
	categories  *CategoryUseCase
	stores      *StoreUseCase
	products    *ProductUseCase
	reviews     *ReviewUseCase
	questions   *QuestionUseCase
	users       *UserUseCase
}

func newTestEnv(t *testing.T, users ...*entity.User) *testEnv {
	t.Helper()

	dataDir := t.TempDir()

	if len(users) > 0 {
		data, err := json.Marshal(users)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, "users.json"), data, 0o644))
	}

	env := &testEnv{
		dataDir:      dataDir,
		categoryRepo: jsonfile.NewJSONFileCategoryRepository(dataDir),
		storeRepo:    jsonfile.NewJSONFileStoreRepository(dataDir),
		productRepo:  jsonfile.NewJSONFileProductRepository(dataDir),
		reviewRepo:   jsonfile.NewJSONFileReviewRepository(dataDir),
		questionRepo: jsonfile.NewJSONFileQuestionRepository(dataDir),
		userRepo:     jsonfile.NewJSONFileUserRepository(dataDir),
	}

	env.aggregation = NewAggregationUseCase(env.reviewRepo)
	env.categories = NewCategoryUseCase(env.categoryRepo)
	env.stores = NewStoreUseCase(env.storeRepo, env.categoryRepo)
	env.products = NewProductUseCase(env.productRepo, env.categoryRepo, env.storeRepo, env.questionRepo, env.aggregation)
	env.reviews = NewReviewUseCase(env.reviewRepo, env.userRepo, env.productRepo, env.aggregation)
	env.questions = NewQuestionUseCase(env.questionRepo, env.productRepo, env.userRepo)
	env.users = NewUserUseCase(env.userRepo)

	return env
}

func (e *testEnv) seedCategory(t *testing.T, name string) *entity.Category {
	t.Helper()

	category, err := e.categories.CreateCategory(context.Background(), CreateCategoryInput{Name: name, IsActive: true})
	require.NoError(t, err)
	return category
}

func (e *testEnv) seedStore(t *testing.T, name string, categoryIDs ...string) *entity.Store {
	t.Helper()

	store, err := e.stores.CreateStore(context.Background(), CreateStoreInput{
		StoreCode:  "ST-0001",
		Name:       name,
		Categories: categoryIDs,
	})
	require.NoError(t, err)
	return store
}

func (e *testEnv) seedProduct(t *testing.T, title, categoryID, storeID string) *entity.Product {
	t.Helper()

	product, err := e.products.CreateProduct(context.Background(), CreateProductInput{
		Title:       title,
		Description: "A thing",
		Price:       99.90,
		Currency:    "ARS",
		Category:    categoryID,
		Store:       storeID,
		Images:      []string{"https://example.com/img.jpg"},
		Condition:   "new",
		Shipping:    "standard",
		Stock:       5,
	})
	require.NoError(t, err)
	return product
}

func testUser(id string) *entity.User {
	return &entity.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		Nickname:  id,
		IsActive:  true,
		Role:      entity.UserRoleCustomer,
	}
}
