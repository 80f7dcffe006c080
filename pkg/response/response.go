package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "mercadito/pkg/errors"
	"mercadito/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Response struct {
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *ErrorInfo  `json:"error,omitempty"`
}

// Pagination mirrors the listing envelope; Page and Limit are null when the
// caller disabled pagination.
type Pagination struct {
	Page       *int `json:"page"`
	Limit      *int `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, Response{
		Data:    data,
		Message: message,
	})
}

func Created(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusCreated, Response{
		Data:    data,
		Message: message,
	})
}

// Message is the envelope for delete confirmations: no record body by contract.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{
		Message: message,
	})
}

func Paginated(c echo.Context, data interface{}, message string, total int, params utils.ListParams) error {
	pagination := &Pagination{
		Total:      total,
		TotalPages: 1,
	}

	if params.Pagination {
		page := params.Page
		limit := params.Limit
		pagination.Page = &page
		pagination.Limit = &limit
		pagination.TotalPages = (total + limit - 1) / limit
	}

	return c.JSON(http.StatusOK, Response{
		Data:       data,
		Message:    message,
		Pagination: pagination,
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, Response{
			Error: &ErrorInfo{
				Code:    appErr.Code,
				Message: appErr.Message,
			},
			Message: appErr.Message,
		})
	}

	return c.JSON(http.StatusInternalServerError, Response{
		Error: &ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
		},
		Message: "An unexpected error occurred",
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	message := "Invalid input data"

	if len(validationErr) > 0 {
		err := validationErr[0]
		field := strings.ToLower(err.Field())
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must be at least " + param
		case "max":
			message = field + " must be at most " + param
		case "oneof":
			message = field + " must be one of: " + param
		case "email":
			message = field + " must be a valid email address"
		case "url":
			message = field + " must be a valid URL"
		case "uuid4":
			message = field + " must be a valid UUID"
		default:
			message = field + " is invalid"
		}
	}

	return c.JSON(http.StatusBadRequest, Response{
		Error: &ErrorInfo{
			Code:    "VALIDATION_ERROR",
			Message: message,
		},
		Message: message,
	})
}
