package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercadito/internal/adapter/api"
	jsonfile "mercadito/internal/adapter/repository"
	"mercadito/internal/usecase"
)

func setupCategoryAPI(t *testing.T) *echo.Echo {
	t.Helper()

	categoryUseCase := usecase.NewCategoryUseCase(jsonfile.NewJSONFileCategoryRepository(t.TempDir()))
	categoryHandler := NewCategoryHandler(categoryUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()

	e.POST("/v1/categories", categoryHandler.CreateCategory)
	e.GET("/v1/categories", categoryHandler.ListCategories)
	e.GET("/v1/categories/:id", categoryHandler.GetCategory)
	e.PATCH("/v1/categories/:id", categoryHandler.UpdateCategory)
	e.DELETE("/v1/categories/:id", categoryHandler.DeleteCategory)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateCategoryEndpoint(t *testing.T) {
	e := setupCategoryAPI(t)

	rec := doJSON(e, http.MethodPost, "/v1/categories", `{"name":"Smart Phones","isActive":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data    map[string]interface{} `json:"data"`
		Message string                 `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, "Category created successfully", envelope.Message)
	assert.Equal(t, "Smart Phones", envelope.Data["name"])
	assert.Equal(t, "smart-phones", envelope.Data["slug"])
	assert.NotEmpty(t, envelope.Data["id"])
}

func TestCreateCategoryValidation(t *testing.T) {
	e := setupCategoryAPI(t)

	rec := doJSON(e, http.MethodPost, "/v1/categories", `{"isActive":true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "name is required")
}

func TestListCategoriesEndpoint(t *testing.T) {
	e := setupCategoryAPI(t)

	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/categories", `{"name":"Phones"}`).Code)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/categories", `{"name":"Laptops"}`).Code)

	rec := doJSON(e, http.MethodGet, "/v1/categories?page=1&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data       []map[string]interface{} `json:"data"`
		Message    string                   `json:"message"`
		Pagination struct {
			Page       *int `json:"page"`
			Limit      *int `json:"limit"`
			Total      int  `json:"total"`
			TotalPages int  `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, "Retrieved 1 categories", envelope.Message)
	require.NotNil(t, envelope.Pagination.Page)
	assert.Equal(t, 1, *envelope.Pagination.Page)
	assert.Equal(t, 2, envelope.Pagination.Total)
	assert.Equal(t, 2, envelope.Pagination.TotalPages)
}

func TestListCategoriesPaginationDisabled(t *testing.T) {
	e := setupCategoryAPI(t)

	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/categories", `{"name":"Phones"}`).Code)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/v1/categories", `{"name":"Laptops"}`).Code)

	rec := doJSON(e, http.MethodGet, "/v1/categories?pagination=false", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data       []map[string]interface{} `json:"data"`
		Pagination struct {
			Page       *int `json:"page"`
			Limit      *int `json:"limit"`
			Total      int  `json:"total"`
			TotalPages int  `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Len(t, envelope.Data, 2)
	assert.Nil(t, envelope.Pagination.Page)
	assert.Nil(t, envelope.Pagination.Limit)
	assert.Equal(t, 2, envelope.Pagination.Total)
	assert.Equal(t, 1, envelope.Pagination.TotalPages)
}

func TestGetCategoryNotFound(t *testing.T) {
	e := setupCategoryAPI(t)

	rec := doJSON(e, http.MethodGet, "/v1/categories/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Category not found")
}

func TestDeleteCategoryEndpoint(t *testing.T) {
	e := setupCategoryAPI(t)

	rec := doJSON(e, http.MethodPost, "/v1/categories", `{"name":"Phones"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, http.MethodDelete, "/v1/categories/"+created.Data.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category Phones deleted successfully")

	rec = doJSON(e, http.MethodGet, "/v1/categories/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
