package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"goblog/internal/apperrors"
	"goblog/internal/repository"
)

type CreateCommentRequest struct {
	PostID  string `json:"postId" validate:"required,uuid"`
	Content string `json:"content" validate:"required,max=500"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]
	if _, err := uuid.Parse(postID); err != nil {
		h.Error(w, apperrors.New(apperrors.KindInvalidID, "Invalid Post ID format"))
		return
	}

	comments, err := h.CommentRepo.GetByPostID(r.Context(), postID)
	if err != nil {
		h.Error(w, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, toCommentResponse(&comments[i]))
	}

	WriteJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectFromContext(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, apperrors.New(apperrors.KindValidation, "Invalid request body"))
		return
	}

	if err := h.validateStruct(req); err != nil {
		h.Error(w, err)
		return
	}

	// author comes from the token, never from the body
	serviceReq := repository.CreateCommentRequest{
		UserID:  userID,
		PostID:  req.PostID,
		Content: req.Content,
	}

	comment, err := h.CommentService.CreateComment(r.Context(), serviceReq)
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toCommentResponse(comment))
}
