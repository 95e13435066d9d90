package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"goblog/internal/apperrors"
	"goblog/internal/middleware"
	"goblog/internal/repository"
)

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=5,max=200"`
	Content  string `json:"content" validate:"required,min=10"`
	Category string `json:"category" validate:"required,uuid"`
}

type UpdatePostRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=5,max=200"`
	Content  *string `json:"content" validate:"omitempty,min=10"`
	Category *string `json:"category" validate:"omitempty,uuid"`
}

// postIDFromPath distinguishes a malformed identifier (400) from a
// well-formed one that matches nothing (404, decided later by the store).
func postIDFromPath(r *http.Request) (string, error) {
	postID := mux.Vars(r)["id"]
	if _, err := uuid.Parse(postID); err != nil {
		return "", apperrors.New(apperrors.KindInvalidID, "Invalid Post ID format")
	}
	return postID, nil
}

func subjectFromContext(r *http.Request) (string, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return "", apperrors.New(apperrors.KindUnauthorized, "Not authorized, no token")
	}
	return userID, nil
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		h.Error(w, err)
		return
	}

	response := make([]PostResponse, 0, len(posts))
	for i := range posts {
		response = append(response, toPostResponse(&posts[i]))
	}

	WriteJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromPath(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectFromContext(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, apperrors.New(apperrors.KindValidation, "Invalid request body"))
		return
	}

	if err := h.validateStruct(req); err != nil {
		h.Error(w, err)
		return
	}

	// owner comes from the token, never from the body
	serviceReq := repository.CreatePostRequest{
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.Category,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toPostResponse(post))
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectFromContext(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, apperrors.New(apperrors.KindValidation, "Invalid request body"))
		return
	}

	if err := h.validateStruct(req); err != nil {
		h.Error(w, err)
		return
	}

	serviceReq := repository.UpdatePostRequest{
		PostID:     postID,
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.Category,
	}

	post, err := h.PostService.UpdatePost(r.Context(), serviceReq)
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectFromContext(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		h.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handlers) UploadFeaturedImage(w http.ResponseWriter, r *http.Request) {
	userID, err := subjectFromContext(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		h.Error(w, err)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			h.Error(w, apperrors.New(apperrors.KindValidation,
				fmt.Sprintf("File too large (max %d MB)", h.Cfg.MaxUploadSize/(1024*1024))))
		} else {
			h.Error(w, apperrors.New(apperrors.KindValidation, "Failed to process uploaded file"))
		}
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		h.Error(w, apperrors.New(apperrors.KindValidation, "Image file is required"))
		return
	}
	defer file.Close()

	contentType := handler.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		h.Error(w, apperrors.New(apperrors.KindValidation,
			"Unsupported file type. Allowed: JPEG, PNG, GIF, WebP"))
		return
	}

	post, err := h.PostService.SetFeaturedImage(r.Context(), postID, userID, handler.Filename, file, handler.Size)
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, toPostResponse(post))
}
