package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolbox13/zeilplanner/internal/domain"
	"github.com/coolbox13/zeilplanner/internal/repo"
	"github.com/coolbox13/zeilplanner/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// CalculationRepo backed by that transaction. The transaction is automatically
// rolled back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; migrations are applied by TestMain.
func newTestRepo(t *testing.T) repo.CalculationRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewCalculationRepo(tx)
}

// calculationFixture returns a domain.Calculation with sensible defaults.
// Callers can override individual fields after calling this function.
func calculationFixture() domain.Calculation {
	return domain.Calculation{
		Name: "Enkhuizen - Stavoren",
		Input: domain.TripInput{
			StartTime:       "09:00",
			ArrivalTime:     "15:00",
			Distance:        30,
			SailSpeed:       5,
			MotorSpeed:      8,
			FuelConsumption: 2,
		},
		Outcome: domain.Outcome{
			Scenario:     domain.ScenarioSailOnly,
			Narrative:    "Je kunt de hele afstand zeilen in 6 uur (30.00 zeemijl). Geschat brandstofverbruik: 0 liter.",
			SailFraction: 1.0,
		},
	}
}

func TestCalculationRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := calculationFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Input, got.Input)
	assert.Equal(t, input.Outcome, got.Outcome)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestCalculationRepo_Create_ScenarioRoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	// The scenario is stored as text; every variant must survive the trip
	// through the scenario column and back.
	scenarios := []domain.Scenario{
		domain.ScenarioError,
		domain.ScenarioSailOnly,
		domain.ScenarioSailAndMotor,
		domain.ScenarioMotorOnly,
		domain.ScenarioMotorLate,
	}

	for _, sc := range scenarios {
		input := calculationFixture()
		input.Outcome.Scenario = sc

		got, err := r.Create(ctx, input)

		require.NoError(t, err, "scenario %v", sc)
		assert.Equal(t, sc, got.Outcome.Scenario)
	}
}

func TestCalculationRepo_GetByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, calculationFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Input, got.Input)
}

func TestCalculationRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculationRepo_ListPaged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c := calculationFixture()
		c.Name = "Trip " + string(rune('A'+i))
		_, err := r.Create(ctx, c)
		require.NoError(t, err)
	}

	// Note: rows inserted inside one transaction share the same created_at
	// (now() is fixed per transaction), so we assert counts, not order.
	page1, total, err := r.ListPaged(ctx, domain.NewPaginationParams(1, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 3)

	page2, total, err := r.ListPaged(ctx, domain.NewPaginationParams(2, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page2, 2)
}

func TestCalculationRepo_ListPaged_Empty(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	calcs, total, err := r.ListPaged(ctx, domain.NewPaginationParams(1, 20))

	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NotNil(t, calcs, "empty result should be an empty slice, not nil")
	assert.Len(t, calcs, 0)
}

func TestCalculationRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, calculationFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculationRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.Delete(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculationRepo_DeleteAll(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, calculationFixture())
		require.NoError(t, err)
	}

	require.NoError(t, r.DeleteAll(ctx))

	_, total, err := r.ListPaged(ctx, domain.NewPaginationParams(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
