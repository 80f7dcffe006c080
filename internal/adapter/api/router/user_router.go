package router

import (
	"github.com/labstack/echo/v4"

	"mercadito/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler) {
	users := e.Group("/v1/users")

	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
}
