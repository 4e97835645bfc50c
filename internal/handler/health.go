package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

// HealthResponse is the body for GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Render implements render.Renderer.
func (HealthResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, HealthResponse{Status: "ok"})
}
