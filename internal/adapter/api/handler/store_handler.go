package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"mercadito/internal/usecase"
	"mercadito/pkg/response"
	"mercadito/pkg/utils"
)

type StoreHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewStoreHandler(storeUseCase *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{
		storeUseCase: storeUseCase,
	}
}

type createStoreRequest struct {
	StoreCode   string   `json:"storeCode" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Categories  []string `json:"categories" validate:"omitempty,dive,uuid4"`
	Logo        string   `json:"logo" validate:"omitempty,url"`
	Banner      string   `json:"banner" validate:"omitempty,url"`
	IsActive    *bool    `json:"isActive"`
	IsVerified  *bool    `json:"isVerified"`
}

type updateStoreRequest struct {
	StoreCode   *string  `json:"storeCode"`
	Name        *string  `json:"name"`
	Slug        *string  `json:"slug"`
	Description *string  `json:"description"`
	Categories  []string `json:"categories" validate:"omitempty,dive,uuid4"`
	Logo        *string  `json:"logo" validate:"omitempty,url"`
	Banner      *string  `json:"banner" validate:"omitempty,url"`
	IsActive    *bool    `json:"isActive"`
	IsVerified  *bool    `json:"isVerified"`
}

func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.CreateStore(c.Request().Context(), usecase.CreateStoreInput{
		StoreCode:   req.StoreCode,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Categories:  req.Categories,
		Logo:        req.Logo,
		Banner:      req.Banner,
		IsActive:    req.IsActive,
		IsVerified:  req.IsVerified,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, store, "Store created successfully")
}

func (h *StoreHandler) ListStores(c echo.Context) error {
	params := utils.GetListParams(c)

	relations, err := usecase.ParseRelations(c.QueryParam("populate"), usecase.StoreRelations)
	if err != nil {
		return response.Error(c, err)
	}

	stores, total, err := h.storeUseCase.ListStores(c.Request().Context(), params, relations)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, stores, fmt.Sprintf("Retrieved %d stores", len(stores)), total, params)
}

func (h *StoreHandler) GetStore(c echo.Context) error {
	relations, err := usecase.ParseRelations(c.QueryParam("populate"), usecase.StoreRelations)
	if err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.GetStore(c.Request().Context(), c.Param("id"), relations)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store, "Store found successfully")
}

func (h *StoreHandler) UpdateStore(c echo.Context) error {
	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.UpdateStore(c.Request().Context(), c.Param("id"), usecase.UpdateStoreInput{
		StoreCode:   req.StoreCode,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Categories:  req.Categories,
		Logo:        req.Logo,
		Banner:      req.Banner,
		IsActive:    req.IsActive,
		IsVerified:  req.IsVerified,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store, "Store updated successfully")
}

func (h *StoreHandler) DeleteStore(c echo.Context) error {
	message, err := h.storeUseCase.DeleteStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, message)
}
