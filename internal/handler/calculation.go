package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/coolbox13/zeilplanner/internal/domain"
)

// CreateCalculationRequest is the body for POST /api/v1/calculations.
type CreateCalculationRequest struct {
	Name  string           `json:"name"`
	Input domain.TripInput `json:"input"`
}

// CalculationResponse wraps a stored calculation for rendering.
type CalculationResponse struct {
	domain.Calculation
	// HTTPStatus lets Create return 201 while Get returns the default 200.
	HTTPStatus int `json:"-"`
}

// Render implements render.Renderer.
func (c CalculationResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if c.HTTPStatus != 0 {
		render.Status(r, c.HTTPStatus)
	}
	return nil
}

// Pagination describes the page envelope returned by list endpoints.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListCalculationsResponse is the body for GET /api/v1/calculations.
type ListCalculationsResponse struct {
	Data       []domain.Calculation `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// Render implements render.Renderer.
func (ListCalculationsResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// CreateCalculation handles POST /api/v1/calculations.
// The outcome is recomputed by the service; inputs the planner rejects
// come back as 422 with the planner's Dutch message.
func (s *Server) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req CreateCalculationRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		_ = render.Render(w, r, requestBody("request body is not valid JSON"))
		return
	}

	saved, err := s.calculations.Save(r.Context(), domain.Calculation{
		Name:  req.Name,
		Input: req.Input,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			_ = render.Render(w, r, validationBody(err))
			return
		}
		_ = render.Render(w, r, internalBody())
		return
	}

	_ = render.Render(w, r, CalculationResponse{Calculation: saved, HTTPStatus: http.StatusCreated})
}

// ListCalculations handles GET /api/v1/calculations.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListCalculations(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	params := domain.NewPaginationParams(page, limit)

	calcs, total, err := s.calculations.ListPaged(r.Context(), params)
	if err != nil {
		_ = render.Render(w, r, internalBody())
		return
	}

	_ = render.Render(w, r, ListCalculationsResponse{
		Data: calcs,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetCalculation handles GET /api/v1/calculations/{id}.
func (s *Server) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed UUID can never name an existing calculation.
		_ = render.Render(w, r, notFoundBody("calculation not found"))
		return
	}

	calc, err := s.calculations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = render.Render(w, r, notFoundBody("calculation not found"))
			return
		}
		_ = render.Render(w, r, internalBody())
		return
	}

	_ = render.Render(w, r, CalculationResponse{Calculation: calc})
}

// DeleteCalculation handles DELETE /api/v1/calculations/{id}.
func (s *Server) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = render.Render(w, r, notFoundBody("calculation not found"))
		return
	}

	if err := s.calculations.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = render.Render(w, r, notFoundBody("calculation not found"))
			return
		}
		_ = render.Render(w, r, internalBody())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearCalculations handles DELETE /api/v1/calculations.
// It wipes the entire history.
func (s *Server) ClearCalculations(w http.ResponseWriter, r *http.Request) {
	if err := s.calculations.Clear(r.Context()); err != nil {
		_ = render.Render(w, r, internalBody())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
