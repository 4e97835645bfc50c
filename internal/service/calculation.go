package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/coolbox13/zeilplanner/internal/domain"
	"github.com/coolbox13/zeilplanner/internal/repo"
)

// CalculationService implements business logic for the saved-calculation
// history. Saving always recomputes the outcome server-side so a stored
// record can never disagree with the planner.
type CalculationService struct {
	repo    repo.CalculationRepo
	planner *PlannerService
}

// NewCalculationService constructs a CalculationService backed by the
// provided repo and planner.
func NewCalculationService(r repo.CalculationRepo, p *PlannerService) *CalculationService {
	return &CalculationService{repo: r, planner: p}
}

// Save validates, recomputes, and persists a calculation.
// A blank name or an input the planner rejects returns domain.ErrValidation;
// for planner rejections the wrapped message is the planner's own Dutch text.
func (s *CalculationService) Save(ctx context.Context, calc domain.Calculation) (domain.Calculation, error) {
	if strings.TrimSpace(calc.Name) == "" {
		return domain.Calculation{}, fmt.Errorf("service.CalculationService.Save: %w: naam is verplicht", domain.ErrValidation)
	}

	outcome := s.planner.Calculate(calc.Input)
	if outcome.Scenario == domain.ScenarioError {
		return domain.Calculation{}, fmt.Errorf("service.CalculationService.Save: %w: %s", domain.ErrValidation, outcome.Narrative)
	}
	calc.Outcome = outcome

	saved, err := s.repo.Create(ctx, calc)
	if err != nil {
		return domain.Calculation{}, err
	}
	return saved, nil
}

// ListPaged returns one page of saved calculations, newest first, together
// with the total count for the pagination envelope.
func (s *CalculationService) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Calculation, int64, error) {
	return s.repo.ListPaged(ctx, params)
}

// GetByID returns a single saved calculation by ID.
func (s *CalculationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Calculation, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a single saved calculation by ID.
func (s *CalculationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Clear removes the entire saved-calculation history.
func (s *CalculationService) Clear(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
