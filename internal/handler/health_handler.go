package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{Status: "ok", Database: "up"}

	if err := h.DB.HealthCheck(); err != nil {
		response.Status = "degraded"
		response.Database = "down"
		WriteJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	WriteJSON(w, http.StatusOK, response)
}
