package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/coolbox13/zeilplanner/internal/domain"
)

// Live-entry caps for /plan/checks. The planner itself accepts any positive
// value; these bounds exist to catch typos (an extra zero) during entry.
const (
	maxDistance = 10000
	maxSpeed    = 100
	maxFuelBurn = 100
)

// PlanResponse wraps the planner outcome for rendering.
// The error scenario is part of the payload, not an HTTP error: a rejected
// input is a legitimate answer the UI displays inline.
type PlanResponse struct {
	domain.Outcome
}

// Render implements render.Renderer.
func (PlanResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// PostPlan handles POST /api/v1/plan.
// It decodes a trip description and returns the computed outcome.
func (s *Server) PostPlan(w http.ResponseWriter, r *http.Request) {
	var input domain.TripInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		_ = render.Render(w, r, requestBody("request body is not valid JSON"))
		return
	}

	outcome := s.planner.Calculate(input)
	_ = render.Render(w, r, PlanResponse{Outcome: outcome})
}

// PlanChecksRequest carries the partially entered form fields for live
// validation feedback. Zero values mean "not entered yet".
type PlanChecksRequest struct {
	StartTime       string  `json:"start_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Distance        float64 `json:"distance"`
	SailSpeed       float64 `json:"sail_speed"`
	MotorSpeed      float64 `json:"motor_speed"`
	FuelConsumption float64 `json:"fuel_consumption"`
	UseMetric       bool    `json:"use_metric"`
}

// PlanChecksResponse reports per-field Dutch messages (empty = no problem)
// and whether the entered times imply a next-day arrival.
type PlanChecksResponse struct {
	MotorSpeedError      string `json:"motor_speed_error,omitempty"`
	DistanceError        string `json:"distance_error,omitempty"`
	SailSpeedError       string `json:"sail_speed_error,omitempty"`
	FuelConsumptionError string `json:"fuel_consumption_error,omitempty"`
	NeedsNextDay         bool   `json:"needs_next_day"`
}

// Render implements render.Renderer.
func (PlanChecksResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// PostPlanChecks handles POST /api/v1/plan/checks.
// It runs the stateless field validators so the UI can show feedback while
// the user is still typing, without invoking the full planner.
func (s *Server) PostPlanChecks(w http.ResponseWriter, r *http.Request) {
	var req PlanChecksRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		_ = render.Render(w, r, requestBody("request body is not valid JSON"))
		return
	}

	distanceUnit := "zeemijl"
	speedUnit := "knopen"
	if req.UseMetric {
		distanceUnit = "km"
		speedUnit = "km/u"
	}

	resp := PlanChecksResponse{
		DistanceError:        s.planner.ValidateMax(req.Distance, maxDistance, "Afstand", distanceUnit),
		SailSpeedError:       s.planner.ValidateMax(req.SailSpeed, maxSpeed, "Zeilsnelheid", speedUnit),
		FuelConsumptionError: s.planner.ValidateMax(req.FuelConsumption, maxFuelBurn, "Brandstofverbruik", "l/u"),
		NeedsNextDay:         s.planner.NeedsNextDay(req.StartTime, req.ArrivalTime),
	}

	// The cross-field check wins over the max check for the motor speed
	// field; only one message is shown at a time.
	resp.MotorSpeedError = s.planner.ValidateMotorSpeed(req.SailSpeed, req.MotorSpeed)
	if resp.MotorSpeedError == "" {
		resp.MotorSpeedError = s.planner.ValidateMax(req.MotorSpeed, maxSpeed, "Motorsnelheid", speedUnit)
	}

	_ = render.Render(w, r, resp)
}
