package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"mercadito/internal/usecase"
	"mercadito/pkg/response"
	"mercadito/pkg/utils"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

type createCategoryRequest struct {
	Name     string  `json:"name" validate:"required"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId" validate:"omitempty,uuid4"`
	IsActive bool    `json:"isActive"`
}

type updateCategoryRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	ParentID *string `json:"parentId" validate:"omitempty,uuid4"`
	IsActive *bool   `json:"isActive"`
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request().Context(), usecase.CreateCategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
		IsActive: req.IsActive,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category, "Category created successfully")
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	params := utils.GetListParams(c)

	categories, total, err := h.categoryUseCase.ListCategories(c.Request().Context(), params)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, categories, fmt.Sprintf("Retrieved %d categories", len(categories)), total, params)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryUseCase.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category, "Category found successfully")
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request().Context(), c.Param("id"), usecase.UpdateCategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
		IsActive: req.IsActive,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category, "Category updated successfully")
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	cascade, _ := strconv.ParseBool(c.QueryParam("cascade"))

	message, err := h.categoryUseCase.DeleteCategory(c.Request().Context(), c.Param("id"), cascade)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, message)
}
