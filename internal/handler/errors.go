package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"goblog/internal/apperrors"
)

// WriteJSON sends a successful response.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error funnels every failure through the centralized translator.
func (h *Handlers) Error(w http.ResponseWriter, err error) {
	includeStack := h.Cfg != nil && !h.Cfg.IsProduction()
	apperrors.WriteError(w, h.Log, err, includeStack)
}

// validateStruct turns validator failures into one ValidationError listing
// every failed field, not just the first.
func (h *Handlers) validateStruct(req interface{}) error {
	err := h.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
		})
	}

	return apperrors.Validation("Validation failed", fields)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("Invalid %s format", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
