// Package domain contains the core data types for the zeilplanner application.
// This package has no dependency on the HTTP or database layers and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"encoding/json"
	"fmt"
)

// Scenario identifies which of the five mutually exclusive voyage outcomes
// applies. It is a closed set: Calculate never returns anything outside it.
type Scenario int

const (
	// ScenarioError means the input was rejected before any arithmetic ran.
	ScenarioError Scenario = iota
	// ScenarioSailOnly means the whole distance fits in the time budget under sail.
	ScenarioSailOnly
	// ScenarioSailAndMotor means a sail-to-motor changeover makes the arrival time.
	ScenarioSailAndMotor
	// ScenarioMotorOnly means the trip must be motored entirely, arriving on time.
	ScenarioMotorOnly
	// ScenarioMotorLate means even motoring the whole way misses the arrival time.
	ScenarioMotorLate
)

// scenarioNames maps each Scenario to its wire representation.
var scenarioNames = map[Scenario]string{
	ScenarioError:        "error",
	ScenarioSailOnly:     "sail_only",
	ScenarioSailAndMotor: "sail_and_motor",
	ScenarioMotorOnly:    "motor_only",
	ScenarioMotorLate:    "motor_late",
}

// String returns the wire name of the scenario, e.g. "sail_and_motor".
func (s Scenario) String() string {
	if name, ok := scenarioNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scenario(%d)", int(s))
}

// ParseScenario converts a wire name back into a Scenario.
// Used when reading stored calculations out of the database.
func ParseScenario(name string) (Scenario, error) {
	for s, n := range scenarioNames {
		if n == name {
			return s, nil
		}
	}
	return ScenarioError, fmt.Errorf("unknown scenario %q", name)
}

// MarshalJSON encodes the scenario as its descriptive string.
func (s Scenario) MarshalJSON() ([]byte, error) {
	name, ok := scenarioNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown scenario %d", int(s))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a scenario from its descriptive string.
func (s *Scenario) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseScenario(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TripInput describes a single voyage to plan. Times are "HH:MM" strings
// (24-hour, zero-padded). Distance and speeds are in the caller's unit:
// kilometers and km/h when UseMetric is set, nautical miles and knots
// otherwise. FuelConsumption is always liters per hour.
type TripInput struct {
	StartTime       string  `json:"start_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Distance        float64 `json:"distance"`
	SailSpeed       float64 `json:"sail_speed"`
	MotorSpeed      float64 `json:"motor_speed"`
	FuelConsumption float64 `json:"fuel_consumption"`
	UseMetric       bool    `json:"use_metric"`
	// IsNextDay marks the arrival time as falling after a midnight rollover,
	// adding 24h to the time budget.
	IsNextDay bool `json:"is_next_day"`
}

// Outcome is the result of planning a voyage. For ScenarioError the
// narrative carries the Dutch validation message and both fractions are
// zero; for all other scenarios the fractions describe how the total
// elapsed time splits between sailing and motoring, each in [0,1].
type Outcome struct {
	Scenario  Scenario `json:"scenario"`
	Narrative string   `json:"narrative"`
	// SailFraction and MotorFraction drive the timeline visualization.
	SailFraction  float64 `json:"sail_fraction"`
	MotorFraction float64 `json:"motor_fraction"`
}
