package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Stack   string       `json:"stack,omitempty"`
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict, KindInvalidID:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError is the single translator from store/service errors to client
// responses. Anything outside the taxonomy becomes a 500; the stack is
// included only outside production mode.
func WriteError(w http.ResponseWriter, log *logrus.Logger, err error, includeStack bool) {
	resp := ErrorResponse{Message: "An unknown server error occurred."}
	status := http.StatusInternalServerError

	var appErr *Error
	if errors.As(err, &appErr) {
		status = statusFor(appErr.Kind)
		resp.Message = appErr.Message
		resp.Errors = appErr.Fields
	}

	if status == http.StatusInternalServerError {
		if log != nil {
			log.WithError(err).Error("unhandled server error")
		}
		if includeStack {
			resp.Stack = string(debug.Stack())
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
