package handlers

import (
	"net/http"
	"time"
)

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// example: ok
	Status string `json:"status"`

	// Server time in RFC 3339
	Timestamp time.Time `json:"timestamp"`

	// Configured environment
	// example: development
	Env string `json:"env"`
}

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Reports service status, server time, and configured environment
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Env:       env,
		})
	}
}
