// Package handler implements the HTTP handlers for the zeilplanner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (planner.go, calculation.go, health.go, hello.go) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/coolbox13/zeilplanner/internal/domain"
)

// PlannerServicer defines the planning operations the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type PlannerServicer interface {
	Calculate(in domain.TripInput) domain.Outcome
	ValidateMotorSpeed(sailSpeed, motorSpeed float64) string
	NeedsNextDay(startTime, arrivalTime string) bool
	ValidateMax(value, max float64, fieldName, unit string) string
}

// CalculationServicer defines the history operations the handler depends on.
type CalculationServicer interface {
	Save(ctx context.Context, calc domain.Calculation) (domain.Calculation, error)
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Calculation, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Calculation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
}

// Server holds the dependencies shared by all API endpoints.
// Wire it in main.go via NewServer(...).Routes().
type Server struct {
	planner      PlannerServicer
	calculations CalculationServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerServicer, calculations CalculationServicer) *Server {
	return &Server{planner: planner, calculations: calculations}
}

// Routes registers every endpoint on a fresh chi router and returns it.
// The caller mounts the result under the middleware stack of its choice.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/hello", s.GetHello)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plan", s.PostPlan)
		r.Post("/plan/checks", s.PostPlanChecks)

		r.Route("/calculations", func(r chi.Router) {
			r.Post("/", s.CreateCalculation)
			r.Get("/", s.ListCalculations)
			r.Delete("/", s.ClearCalculations)
			r.Get("/{id}", s.GetCalculation)
			r.Delete("/{id}", s.DeleteCalculation)
		})
	})

	return r
}
