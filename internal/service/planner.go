// Package service contains the business logic for the zeilplanner API.
// PlannerService holds the voyage arithmetic; CalculationService validates
// and persists saved calculations. No SQL lives here — services depend on
// repo interfaces, not implementations.
package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/coolbox13/zeilplanner/internal/domain"
)

// kmPerNauticalMile converts between the metric and nautical unit systems.
// All internal arithmetic runs in nautical miles and knots; metric inputs
// are divided by this factor on the way in and multiplied on the way out.
const kmPerNauticalMile = 1.852

const minutesPerDay = 24 * 60

// PlannerService implements the sail-or-motor voyage planner.
// It is stateless: every method is a pure function over its inputs, so a
// single instance can be shared freely across goroutines.
type PlannerService struct{}

// NewPlannerService constructs a PlannerService.
func NewPlannerService() *PlannerService {
	return &PlannerService{}
}

// Calculate plans a voyage and returns one of five outcomes: sail the whole
// way, sail then switch to motor at a computed changeover point, motor the
// whole way on time, motor the whole way arriving late, or an input error.
//
// Validation failures never surface as Go errors — they come back as the
// error scenario with a Dutch message, exactly like every other outcome.
func (s *PlannerService) Calculate(in domain.TripInput) domain.Outcome {
	startMins, ok := parseTime(in.StartTime)
	if !ok {
		return errorOutcome("Ongeldige starttijd.")
	}
	arrivalMins, ok := parseTime(in.ArrivalTime)
	if !ok {
		return errorOutcome("Ongeldige aankomsttijd.")
	}

	// Reject zero and negative values before they reach a divisor.
	if in.Distance <= 0 {
		return errorOutcome("Afstand moet groter zijn dan 0.")
	}
	if in.SailSpeed <= 0 {
		return errorOutcome("Zeilsnelheid moet groter zijn dan 0.")
	}
	if in.MotorSpeed <= 0 {
		return errorOutcome("Motorsnelheid moet groter zijn dan 0.")
	}
	if in.MotorSpeed <= in.SailSpeed {
		return errorOutcome("Motorsnelheid moet groter zijn dan zeilsnelheid.")
	}

	diffMins := arrivalMins - startMins
	if in.IsNextDay {
		diffMins += minutesPerDay
	}
	totalTime := float64(diffMins) / 60.0
	if totalTime <= 0 {
		return errorOutcome("Aankomsttijd moet later zijn dan starttijd.")
	}

	dist := in.Distance
	sailSpeed := in.SailSpeed
	motorSpeed := in.MotorSpeed
	unit := "zeemijl"
	if in.UseMetric {
		dist /= kmPerNauticalMile
		sailSpeed /= kmPerNauticalMile
		motorSpeed /= kmPerNauticalMile
		unit = "km"
	}

	// display converts an internal nautical distance back to the caller's unit.
	display := func(nm float64) float64 {
		if in.UseMetric {
			return nm * kmPerNauticalMile
		}
		return nm
	}

	// Step 1: can sailing alone cover the distance within the budget?
	sailTimeLimit := dist / sailSpeed
	if sailTimeLimit <= totalTime {
		narrative := fmt.Sprintf(
			"Je kunt de hele afstand zeilen in %s (%.2f %s). Geschat brandstofverbruik: 0 liter.",
			formatTime(sailTimeLimit), display(dist), unit,
		)
		return domain.Outcome{
			Scenario:     domain.ScenarioSailOnly,
			Narrative:    narrative,
			SailFraction: 1.0,
		}
	}

	// Step 2: the changeover point is the elapsed time at which switching to
	// motor exactly consumes the remaining distance in the remaining time.
	changeover := (dist - motorSpeed*totalTime) / (sailSpeed - motorSpeed)

	// Step 3: sail + motor combination feasible?
	if changeover >= 0 && changeover <= totalTime {
		distanceSailed := sailSpeed * changeover
		remaining := dist - distanceSailed
		motoringTime := remaining / motorSpeed
		fuel := motoringTime * in.FuelConsumption
		changeoverClock := formatClock(startMins + int(math.Round(changeover*60)))

		narrative := fmt.Sprintf(
			"Je kunt %s zeilen (%.2f %s). Daarna moet je overschakelen naar de motor voor de resterende %.2f %s, wat %s duurt. Start de motor om %s. Geschat brandstofverbruik: %.2f liter.",
			formatTime(changeover), display(distanceSailed), unit,
			display(remaining), unit,
			formatTime(motoringTime), changeoverClock, fuel,
		)
		return domain.Outcome{
			Scenario:      domain.ScenarioSailAndMotor,
			Narrative:     narrative,
			SailFraction:  changeover / totalTime,
			MotorFraction: motoringTime / totalTime,
		}
	}

	// Step 4: motor only — on time or late?
	fullMotorTime := dist / motorSpeed
	fuel := fullMotorTime * in.FuelConsumption
	if fullMotorTime > totalTime {
		actualArrival := formatClock(startMins + int(math.Round(fullMotorTime*60)))
		narrative := fmt.Sprintf(
			"Je kunt de hele afstand op de motor afleggen, maar je zult niet op tijd aankomen. Je verwachte aankomsttijd is %s. Geschat brandstofverbruik: %.2f liter.",
			actualArrival, fuel,
		)
		return domain.Outcome{
			Scenario:      domain.ScenarioMotorLate,
			Narrative:     narrative,
			MotorFraction: 1.0,
		}
	}

	// Step 5: motor only, within the time budget.
	narrative := fmt.Sprintf(
		"Je kunt de hele afstand op de motor afleggen in %s. Geschat brandstofverbruik: %.2f liter.",
		formatTime(fullMotorTime), fuel,
	)
	return domain.Outcome{
		Scenario:      domain.ScenarioMotorOnly,
		Narrative:     narrative,
		MotorFraction: fullMotorTime / totalTime,
	}
}

// ValidateMotorSpeed cross-checks the two speed fields for live input
// feedback. It returns a Dutch message when motor speed does not exceed
// sail speed, and the empty string while either field is still zero or
// unset, so the user is not shown an error mid-entry.
func (s *PlannerService) ValidateMotorSpeed(sailSpeed, motorSpeed float64) string {
	if sailSpeed <= 0 || motorSpeed <= 0 {
		return ""
	}
	if motorSpeed <= sailSpeed {
		return "Motorsnelheid moet groter zijn dan zeilsnelheid"
	}
	return ""
}

// NeedsNextDay reports whether the arrival time is strictly before the
// start time, signalling the caller to ask about a midnight rollover.
// Equal times return false; unparseable input returns false.
func (s *PlannerService) NeedsNextDay(startTime, arrivalTime string) bool {
	start, ok := parseTime(startTime)
	if !ok {
		return false
	}
	arrival, ok := parseTime(arrivalTime)
	if !ok {
		return false
	}
	return arrival < start
}

// ValidateMax checks a numeric field against its maximum for live input
// feedback. Returns a Dutch "too large" message, or the empty string when
// the value is within range.
func (s *PlannerService) ValidateMax(value, max float64, fieldName, unit string) string {
	if value > max {
		return fmt.Sprintf("%s moet kleiner zijn dan %s %s",
			fieldName, strconv.FormatFloat(max, 'f', -1, 64), unit)
	}
	return ""
}

// parseTime parses a zero-padded 24-hour "HH:MM" string into minutes since
// midnight. Returns false for anything malformed or out of range.
func parseTime(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours >= 24 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes >= 60 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// formatTime renders a fractional-hour duration as "X uur en Y minuten"
// (or "X uur" when the minutes round to zero). Rounding happens on total
// minutes, so 0.999999 hours carries over into "1 uur" rather than
// truncating to "0 uur en 59 minuten".
func formatTime(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	h := totalMinutes / 60
	m := totalMinutes % 60
	if m > 0 {
		return fmt.Sprintf("%d uur en %d minuten", h, m)
	}
	return fmt.Sprintf("%d uur", h)
}

// formatClock renders a minute offset as a 24-hour "HH:MM" clock time.
// The offset is normalized into [0, 1440) first, so negative offsets wrap
// backward (-30 → "23:30") and offsets past midnight wrap forward
// (1440 → "00:00").
func formatClock(totalMinutes int) string {
	m := ((totalMinutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// errorOutcome builds the error variant carrying a validation message.
func errorOutcome(msg string) domain.Outcome {
	return domain.Outcome{
		Scenario:  domain.ScenarioError,
		Narrative: msg,
	}
}
