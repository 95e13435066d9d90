package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goblog/internal/apperrors"
	"goblog/internal/models"
)

func TestGetCategories_Success(t *testing.T) {
	// Arrange
	mockCategoryRepo := new(MockCategoryRepository)
	h := newTestHandlers()
	h.CategoryRepo = mockCategoryRepo

	mockCategoryRepo.On("GetAll", mock.Anything).Return([]models.Category{
		{
			CategoryID: testCategoryID,
			Name:       "Programming",
			CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()

	// Act
	h.GetCategories(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, testCategoryID, response[0]["id"])
	assert.Equal(t, "Programming", response[0]["name"])

	mockCategoryRepo.AssertExpectations(t)
}

func TestCreateCategory_Success(t *testing.T) {
	// Arrange
	mockCategoryService := new(MockCategoryService)
	h := newTestHandlers()
	h.CategoryService = mockCategoryService

	mockCategoryService.On("CreateCategory", mock.Anything, "Programming").
		Return(&models.Category{
			CategoryID: testCategoryID,
			Name:       "Programming",
		}, nil)

	body, _ := json.Marshal(map[string]string{"name": "Programming"})
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	// Act
	h.CreateCategory(rr, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, testCategoryID, response["id"])
	assert.Equal(t, "Programming", response["name"])

	mockCategoryService.AssertExpectations(t)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	// Arrange
	mockCategoryService := new(MockCategoryService)
	h := newTestHandlers()
	h.CategoryService = mockCategoryService

	mockCategoryService.On("CreateCategory", mock.Anything, "Programming").
		Return(nil, apperrors.New(apperrors.KindConflict, "Category name already exists"))

	body, _ := json.Marshal(map[string]string{"name": "Programming"})
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	// Act
	h.CreateCategory(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Category name already exists")
	mockCategoryService.AssertExpectations(t)
}

func TestCreateCategory_NameTooLong(t *testing.T) {
	// Arrange
	mockCategoryService := new(MockCategoryService)
	h := newTestHandlers()
	h.CategoryService = mockCategoryService

	body, _ := json.Marshal(map[string]string{"name": strings.Repeat("x", 51)})
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	// Act
	h.CreateCategory(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Validation failed")

	fields := fieldMessages(t, rr)
	assert.Equal(t, "name cannot exceed 50 characters", fields["name"])

	mockCategoryService.AssertNotCalled(t, "CreateCategory")
}

func TestCreateCategory_MissingName(t *testing.T) {
	// Arrange
	mockCategoryService := new(MockCategoryService)
	h := newTestHandlers()
	h.CategoryService = mockCategoryService

	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	// Act
	h.CreateCategory(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Validation failed")

	fields := fieldMessages(t, rr)
	assert.Equal(t, "name is required", fields["name"])

	mockCategoryService.AssertNotCalled(t, "CreateCategory")
}
