package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goblog/internal/apperrors"
	"goblog/internal/models"
	"goblog/internal/repository"
)

func TestGetComments_Success(t *testing.T) {
	// Arrange
	mockCommentRepo := new(MockCommentRepository)
	h := newTestHandlers()
	h.CommentRepo = mockCommentRepo

	mockCommentRepo.On("GetByPostID", mock.Anything, testPostID).Return([]models.Comment{
		{
			CommentID: "7e57f2a4-cd6e-4760-8c9e-1c0d9f9f0a01",
			Content:   "Great post!",
			UserID:    testUserID,
			Username:  "alice",
			PostID:    testPostID,
			CreatedAt: time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC),
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/comments/"+testPostID, nil)
	req = mux.SetURLVars(req, map[string]string{"postId": testPostID})
	rr := httptest.NewRecorder()

	// Act
	h.GetComments(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "Great post!", response[0]["content"])
	assert.Equal(t, testPostID, response[0]["postId"])

	user, ok := response[0]["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "alice", user["username"])

	mockCommentRepo.AssertExpectations(t)
}

func TestGetComments_MalformedPostID(t *testing.T) {
	// Arrange
	mockCommentRepo := new(MockCommentRepository)
	h := newTestHandlers()
	h.CommentRepo = mockCommentRepo

	req := httptest.NewRequest(http.MethodGet, "/api/comments/oops", nil)
	req = mux.SetURLVars(req, map[string]string{"postId": "oops"})
	rr := httptest.NewRecorder()

	// Act
	h.GetComments(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Invalid Post ID format")
	mockCommentRepo.AssertNotCalled(t, "GetByPostID")
}

func TestGetComments_EmptyThread(t *testing.T) {
	// Arrange
	mockCommentRepo := new(MockCommentRepository)
	h := newTestHandlers()
	h.CommentRepo = mockCommentRepo

	mockCommentRepo.On("GetByPostID", mock.Anything, testPostID).Return([]models.Comment{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/comments/"+testPostID, nil)
	req = mux.SetURLVars(req, map[string]string{"postId": testPostID})
	rr := httptest.NewRecorder()

	// Act
	h.GetComments(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestCreateComment_Success(t *testing.T) {
	// Arrange
	mockCommentService := new(MockCommentService)
	h := newTestHandlers()
	h.CommentService = mockCommentService

	mockCommentService.On("CreateComment", mock.Anything, repository.CreateCommentRequest{
		UserID:  testUserID,
		PostID:  testPostID,
		Content: "Great post!",
	}).Return(&models.Comment{
		CommentID: "7e57f2a4-cd6e-4760-8c9e-1c0d9f9f0a01",
		Content:   "Great post!",
		UserID:    testUserID,
		Username:  "alice",
		PostID:    testPostID,
	}, nil)

	body, _ := json.Marshal(map[string]string{
		"postId":  testPostID,
		"content": "Great post!",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewBuffer(body))
	req = authenticated(req, testUserID)
	rr := httptest.NewRecorder()

	// Act
	h.CreateComment(rr, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Great post!", response["content"])

	user, ok := response["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "alice", user["username"])

	mockCommentService.AssertExpectations(t)
}

func TestCreateComment_PostMissing(t *testing.T) {
	// Arrange
	mockCommentService := new(MockCommentService)
	h := newTestHandlers()
	h.CommentService = mockCommentService

	mockCommentService.On("CreateComment", mock.Anything, mock.Anything).
		Return(nil, apperrors.New(apperrors.KindNotFound, "Post not found"))

	body, _ := json.Marshal(map[string]string{
		"postId":  testPostID,
		"content": "Great post!",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewBuffer(body))
	req = authenticated(req, testUserID)
	rr := httptest.NewRecorder()

	// Act
	h.CreateComment(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusNotFound, "Post not found")
	mockCommentService.AssertExpectations(t)
}

func TestCreateComment_NoSubject(t *testing.T) {
	// Arrange
	mockCommentService := new(MockCommentService)
	h := newTestHandlers()
	h.CommentService = mockCommentService

	body, _ := json.Marshal(map[string]string{
		"postId":  testPostID,
		"content": "Great post!",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	// Act
	h.CreateComment(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusUnauthorized, "Not authorized, no token")
	mockCommentService.AssertNotCalled(t, "CreateComment")
}

func TestCreateComment_TooLong(t *testing.T) {
	// Arrange
	mockCommentService := new(MockCommentService)
	h := newTestHandlers()
	h.CommentService = mockCommentService

	body, _ := json.Marshal(map[string]string{
		"postId":  testPostID,
		"content": strings.Repeat("x", 501),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewBuffer(body))
	req = authenticated(req, testUserID)
	rr := httptest.NewRecorder()

	// Act
	h.CreateComment(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Validation failed")

	fields := fieldMessages(t, rr)
	assert.Equal(t, "content cannot exceed 500 characters", fields["content"])

	mockCommentService.AssertNotCalled(t, "CreateComment")
}
