package router

import (
	"github.com/labstack/echo/v4"

	"mercadito/internal/adapter/api/handler"
)

func SetupCategoryRouter(e *echo.Echo, categoryHandler *handler.CategoryHandler) {
	categories := e.Group("/v1/categories")

	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
}
