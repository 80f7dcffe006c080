package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"mercadito/internal/usecase"
	"mercadito/pkg/response"
	"mercadito/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	params := utils.GetListParams(c)

	users, total, err := h.userUseCase.ListUsers(c.Request().Context(), params)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, fmt.Sprintf("Retrieved %d users", len(users)), total, params)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user, "User found successfully")
}
