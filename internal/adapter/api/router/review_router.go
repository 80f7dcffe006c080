package router

import (
	"github.com/labstack/echo/v4"

	"mercadito/internal/adapter/api/handler"
)

func SetupReviewRouter(e *echo.Echo, reviewHandler *handler.ReviewHandler) {
	reviews := e.Group("/v1/reviews")

	reviews.POST("", reviewHandler.CreateReview)
	reviews.GET("", reviewHandler.ListReviews)
	reviews.GET("/:id", reviewHandler.GetReview)
	reviews.PATCH("/:id", reviewHandler.UpdateReview)
	reviews.DELETE("/:id", reviewHandler.DeleteReview)
}
