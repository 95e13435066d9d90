package handlers

import (
	"encoding/json"
	"net/http"

	"goblog/internal/apperrors"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryRepo.GetAll(r.Context())
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, categories)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, apperrors.New(apperrors.KindValidation, "Invalid request body"))
		return
	}

	if err := h.validateStruct(req); err != nil {
		h.Error(w, err)
		return
	}

	category, err := h.CategoryService.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, category)
}
