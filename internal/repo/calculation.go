// Package repo contains all database access logic for the zeilplanner API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/coolbox13/zeilplanner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CalculationRepo defines the persistence operations for saved calculations.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type CalculationRepo interface {
	// Create inserts a new calculation and returns the persisted record
	// (with DB-generated id and created_at populated).
	Create(ctx context.Context, calc domain.Calculation) (domain.Calculation, error)

	// ListPaged returns one page of calculations ordered by created_at
	// descending, plus the total row count.
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Calculation, int64, error)

	// GetByID retrieves a single calculation by its UUID primary key.
	// Returns domain.ErrNotFound if no calculation with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Calculation, error)

	// Delete removes a calculation by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every saved calculation.
	DeleteAll(ctx context.Context) error
}

// pgCalculationRepo is the Postgres implementation of CalculationRepo.
type pgCalculationRepo struct {
	db db
}

// NewCalculationRepo constructs a CalculationRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewCalculationRepo(db db) CalculationRepo {
	return &pgCalculationRepo{db: db}
}

const calculationColumns = `id, name, start_time, arrival_time, distance, sail_speed, motor_speed,
		fuel_consumption, use_metric, is_next_day,
		scenario, narrative, sail_fraction, motor_fraction, created_at`

// Create inserts a new calculation row and returns the full persisted record.
func (r *pgCalculationRepo) Create(ctx context.Context, calc domain.Calculation) (domain.Calculation, error) {
	const q = `
		INSERT INTO calculations (
			name, start_time, arrival_time, distance, sail_speed, motor_speed,
			fuel_consumption, use_metric, is_next_day,
			scenario, narrative, sail_fraction, motor_fraction
		)
		VALUES (
			@name, @start_time, @arrival_time, @distance, @sail_speed, @motor_speed,
			@fuel_consumption, @use_metric, @is_next_day,
			@scenario, @narrative, @sail_fraction, @motor_fraction
		)
		RETURNING ` + calculationColumns

	args := pgx.NamedArgs{
		"name":             calc.Name,
		"start_time":       calc.Input.StartTime,
		"arrival_time":     calc.Input.ArrivalTime,
		"distance":         calc.Input.Distance,
		"sail_speed":       calc.Input.SailSpeed,
		"motor_speed":      calc.Input.MotorSpeed,
		"fuel_consumption": calc.Input.FuelConsumption,
		"use_metric":       calc.Input.UseMetric,
		"is_next_day":      calc.Input.IsNextDay,
		"scenario":         calc.Outcome.Scenario.String(),
		"narrative":        calc.Outcome.Narrative,
		"sail_fraction":    calc.Outcome.SailFraction,
		"motor_fraction":   calc.Outcome.MotorFraction,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCalculation(row)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("repo.CalculationRepo.Create: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of calculations, newest first, and the total count.
func (r *pgCalculationRepo) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Calculation, int64, error) {
	const countQ = `SELECT count(*) FROM calculations`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.CalculationRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + calculationColumns + `
		FROM calculations
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": params.Limit, "offset": params.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CalculationRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	calcs := []domain.Calculation{}
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.CalculationRepo.ListPaged: scan: %w", err)
		}
		calcs = append(calcs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.CalculationRepo.ListPaged: rows: %w", err)
	}

	return calcs, total, nil
}

// GetByID retrieves a calculation by primary key.
func (r *pgCalculationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Calculation, error) {
	const q = `
		SELECT ` + calculationColumns + `
		FROM calculations
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanCalculation(row)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("repo.CalculationRepo.GetByID: %w", err)
	}
	return result, nil
}

// Delete removes a calculation by primary key.
func (r *pgCalculationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM calculations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CalculationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CalculationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// DeleteAll clears the calculations table.
func (r *pgCalculationRepo) DeleteAll(ctx context.Context) error {
	const q = `DELETE FROM calculations`

	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("repo.CalculationRepo.DeleteAll: %w", err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanCalculation
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanCalculation maps a single database row into a domain.Calculation.
// It handles the UUID conversion and the scenario string round-trip.
func scanCalculation(s scanner) (domain.Calculation, error) {
	var (
		c        domain.Calculation
		id       pgtype.UUID
		scenario string
	)

	err := s.Scan(
		&id, &c.Name,
		&c.Input.StartTime, &c.Input.ArrivalTime,
		&c.Input.Distance, &c.Input.SailSpeed, &c.Input.MotorSpeed,
		&c.Input.FuelConsumption, &c.Input.UseMetric, &c.Input.IsNextDay,
		&scenario, &c.Outcome.Narrative,
		&c.Outcome.SailFraction, &c.Outcome.MotorFraction,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Calculation{}, domain.ErrNotFound
		}
		return domain.Calculation{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.Outcome.Scenario, err = domain.ParseScenario(scenario)
	if err != nil {
		return domain.Calculation{}, err
	}

	return c, nil
}
