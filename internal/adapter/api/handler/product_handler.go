package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"mercadito/internal/usecase"
	"mercadito/pkg/response"
	"mercadito/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"longDescription"`
	Price           float64  `json:"price" validate:"min=0"`
	Currency        string   `json:"currency" validate:"required,oneof=ARS USD EUR BRL MXN"`
	Category        string   `json:"category" validate:"required,uuid4"`
	Store           string   `json:"store" validate:"required,uuid4"`
	Images          []string `json:"images" validate:"omitempty,dive,url"`
	Condition       string   `json:"condition" validate:"required,oneof=new used"`
	Features        []string `json:"features"`
	Shipping        string   `json:"shipping" validate:"required,oneof=free standard premium"`
	Stock           int      `json:"stock" validate:"min=0"`
}

type updateProductRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	LongDescription *string  `json:"longDescription"`
	Price           *float64 `json:"price" validate:"omitempty,min=0"`
	Currency        *string  `json:"currency" validate:"omitempty,oneof=ARS USD EUR BRL MXN"`
	Category        *string  `json:"category" validate:"omitempty,uuid4"`
	Store           *string  `json:"store" validate:"omitempty,uuid4"`
	Images          []string `json:"images" validate:"omitempty,dive,url"`
	Condition       *string  `json:"condition" validate:"omitempty,oneof=new used"`
	Features        []string `json:"features"`
	Shipping        *string  `json:"shipping" validate:"omitempty,oneof=free standard premium"`
	Stock           *int     `json:"stock" validate:"omitempty,min=0"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Price:           req.Price,
		Currency:        req.Currency,
		Category:        req.Category,
		Store:           req.Store,
		Images:          req.Images,
		Condition:       req.Condition,
		Features:        req.Features,
		Shipping:        req.Shipping,
		Stock:           req.Stock,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product, "Product created successfully")
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	params := utils.GetListParams(c)

	relations, err := usecase.ParseRelations(c.QueryParam("populate"), usecase.ProductRelations)
	if err != nil {
		return response.Error(c, err)
	}

	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), params, relations)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, fmt.Sprintf("Retrieved %d products", len(products)), total, params)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	relations, err := usecase.ParseRelations(c.QueryParam("populate"), usecase.ProductRelations)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"), relations)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product, "Product found successfully")
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Price:           req.Price,
		Currency:        req.Currency,
		Category:        req.Category,
		Store:           req.Store,
		Images:          req.Images,
		Condition:       req.Condition,
		Features:        req.Features,
		Shipping:        req.Shipping,
		Stock:           req.Stock,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product, "Product updated successfully")
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	message, err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, message)
}
