package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"mercadito/internal/usecase"
	"mercadito/pkg/response"
	"mercadito/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	User    string `json:"user" validate:"required,uuid4"`
	Product string `json:"product" validate:"required,uuid4"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type updateReviewRequest struct {
	User    *string `json:"user" validate:"omitempty,uuid4"`
	Product *string `json:"product" validate:"omitempty,uuid4"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		User:    req.User,
		Product: req.Product,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review, "Review created successfully")
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	params := utils.GetListParams(c)

	relations, err := usecase.ParseRelations(c.QueryParam("populate"), usecase.ReviewRelations)
	if err != nil {
		return response.Error(c, err)
	}

	reviews, total, err := h.reviewUseCase.ListReviews(c.Request().Context(), params, relations)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, fmt.Sprintf("Retrieved %d reviews", len(reviews)), total, params)
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	relations, err := usecase.ParseRelations(c.QueryParam("populate"), usecase.ReviewRelations)
	if err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.GetReview(c.Request().Context(), c.Param("id"), relations)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review, "Review found successfully")
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), c.Param("id"), usecase.UpdateReviewInput{
		User:    req.User,
		Product: req.Product,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review, "Review updated successfully")
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	message, err := h.reviewUseCase.DeleteReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, message)
}
