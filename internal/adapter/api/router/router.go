package router

import (
	"github.com/labstack/echo/v4"

	"mercadito/internal/adapter/api/handler"
)

func Setup(
	e *echo.Echo,
	categoryHandler *handler.CategoryHandler,
	storeHandler *handler.StoreHandler,
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	questionHandler *handler.QuestionHandler,
	userHandler *handler.UserHandler,
) {
	SetupCategoryRouter(e, categoryHandler)
	SetupStoreRouter(e, storeHandler)
	SetupProductRouter(e, productHandler)
	SetupReviewRouter(e, reviewHandler)
	SetupQuestionRouter(e, questionHandler)
	SetupUserRouter(e, userHandler)
	SetupHealthRouter(e)
}
