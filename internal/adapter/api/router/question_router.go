package router

import (
	"github.com/labstack/echo/v4"

	"mercadito/internal/adapter/api/handler"
)

func SetupQuestionRouter(e *echo.Echo, questionHandler *handler.QuestionHandler) {
	questions := e.Group("/v1/questions")

	questions.POST("", questionHandler.CreateQuestion)
	questions.POST("/answer", questionHandler.AnswerQuestion)
	questions.GET("", questionHandler.ListQuestions)
	questions.GET("/:id", questionHandler.GetQuestion)
}
