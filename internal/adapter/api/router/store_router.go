package router

import (
	"github.com/labstack/echo/v4"

	"mercadito/internal/adapter/api/handler"
)

func SetupStoreRouter(e *echo.Echo, storeHandler *handler.StoreHandler) {
	stores := e.Group("/v1/stores")

	stores.POST("", storeHandler.CreateStore)
	stores.GET("", storeHandler.ListStores)
	stores.GET("/:id", storeHandler.GetStore)
	stores.PATCH("/:id", storeHandler.UpdateStore)
	stores.DELETE("/:id", storeHandler.DeleteStore)
}
