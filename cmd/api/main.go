package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mercadito/internal/adapter/api"
	"mercadito/internal/adapter/api/handler"
	"mercadito/internal/adapter/api/router"
	"mercadito/internal/adapter/repository"
	"mercadito/internal/usecase"
	"mercadito/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	categoryRepo := repository.NewJSONFileCategoryRepository(cfg.DataDir)
	storeRepo := repository.NewJSONFileStoreRepository(cfg.DataDir)
	productRepo := repository.NewJSONFileProductRepository(cfg.DataDir)
	reviewRepo := repository.NewJSONFileReviewRepository(cfg.DataDir)
	questionRepo := repository.NewJSONFileQuestionRepository(cfg.DataDir)
	userRepo := repository.NewJSONFileUserRepository(cfg.DataDir)

	aggregationUseCase := usecase.NewAggregationUseCase(reviewRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, categoryRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, storeRepo, questionRepo, aggregationUseCase)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, userRepo, productRepo, aggregationUseCase)
	questionUseCase := usecase.NewQuestionUseCase(questionRepo, productRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e,
		handler.NewCategoryHandler(categoryUseCase),
		handler.NewStoreHandler(storeUseCase),
		handler.NewProductHandler(productUseCase),
		handler.NewReviewHandler(reviewUseCase),
		handler.NewQuestionHandler(questionUseCase),
		handler.NewUserHandler(userUseCase),
	)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
