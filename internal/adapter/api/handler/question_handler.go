package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"mercadito/internal/usecase"
	"mercadito/pkg/response"
	"mercadito/pkg/utils"
)

type QuestionHandler struct {
	questionUseCase *usecase.QuestionUseCase
}

func NewQuestionHandler(questionUseCase *usecase.QuestionUseCase) *QuestionHandler {
	return &QuestionHandler{
		questionUseCase: questionUseCase,
	}
}

type createQuestionRequest struct {
	Product string `json:"product" validate:"required,uuid4"`
	User    string `json:"user" validate:"required,uuid4"`
	Content string `json:"content" validate:"required"`
}

type createAnswerRequest struct {
	Question string `json:"question" validate:"required,uuid4"`
	User     string `json:"user" validate:"required,uuid4"`
	Content  string `json:"content" validate:"required"`
}

func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	question, err := h.questionUseCase.CreateQuestion(c.Request().Context(), usecase.CreateQuestionInput{
		Product: req.Product,
		User:    req.User,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, question, "Question created successfully")
}

func (h *QuestionHandler) AnswerQuestion(c echo.Context) error {
	var req createAnswerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	answer, err := h.questionUseCase.AnswerQuestion(c.Request().Context(), usecase.CreateAnswerInput{
		Question: req.Question,
		User:     req.User,
		Content:  req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, answer, "Answer created successfully")
}

func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	params := utils.GetListParams(c)

	relations, err := usecase.ParseRelations(c.QueryParam("populate"), usecase.QuestionRelations)
	if err != nil {
		return response.Error(c, err)
	}

	questions, total, err := h.questionUseCase.ListQuestions(c.Request().Context(), params, relations)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, questions, fmt.Sprintf("Retrieved %d questions", len(questions)), total, params)
}

func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	relations, err := usecase.ParseRelations(c.QueryParam("populate"), usecase.QuestionRelations)
	if err != nil {
		return response.Error(c, err)
	}

	question, err := h.questionUseCase.GetQuestion(c.Request().Context(), c.Param("id"), relations)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, question, "Question found successfully")
}
