package handlers

import (
	"encoding/json"
	"net/http"

	"goblog/internal/apperrors"
	"goblog/internal/repository"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, apperrors.New(apperrors.KindValidation, "Invalid request body"))
		return
	}

	if err := h.validateStruct(req); err != nil {
		h.Error(w, err)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	user, token, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, apperrors.New(apperrors.KindValidation, "Invalid request body"))
		return
	}

	if err := h.validateStruct(req); err != nil {
		h.Error(w, err)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.Error(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}
