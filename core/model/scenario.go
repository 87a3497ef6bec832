package model

// Complexity rates the implementation effort of an optimization scenario.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// ScheduleAdjustment moves a flight to a new departure/arrival slot.
type ScheduleAdjustment struct {
	FlightID         string `json:"flight_id"`
	NewDepartureTime string `json:"new_departure_time"`
	NewArrivalTime   string `json:"new_arrival_time"`
}

// FrequencyChange alters the weekly frequency of a route.
type FrequencyChange struct {
	RouteID      string `json:"route_id"`
	NewFrequency int    `json:"new_frequency"`
}

// AircraftChange swaps the equipment operating a flight.
type AircraftChange struct {
	FlightID    string `json:"flight_id"`
	NewAircraft string `json:"new_aircraft"`
	NewCapacity int    `json:"new_capacity"`
}

// RouteConsolidation merges two underperforming flights into one.
type RouteConsolidation struct {
	FlightIDs            []string `json:"flight_ids"`
	ConsolidatedFlightID string   `json:"consolidated_flight_id"`
}

// ScenarioChanges bundles the proposed operational changes of a scenario.
// Lists left nil mean the scenario does not touch that dimension.
type ScenarioChanges struct {
	ScheduleAdjustments []ScheduleAdjustment `json:"schedule_adjustments,omitempty"`
	FrequencyChanges    []FrequencyChange    `json:"frequency_changes,omitempty"`
	AircraftChanges     []AircraftChange     `json:"aircraft_changes,omitempty"`
	RouteConsolidations []RouteConsolidation `json:"route_consolidations,omitempty"`
}

// ProjectedImpact holds the declared impact constants of a scenario kind.
// These are fixed per kind, not derived from the input data.
type ProjectedImpact struct {
	LoadFactorImprovement float64 `json:"load_factor_improvement"`
	RevenueIncrease       float64 `json:"revenue_increase"`
	CostSavings           float64 `json:"cost_savings"`
	EmptySeatsReduction   int     `json:"empty_seats_reduction"`
}

// OptimizationScenario is a named bundle of proposed changes with a projected
// aggregate impact. Immutable once generated.
type OptimizationScenario struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Changes         ScenarioChanges `json:"changes"`
	ProjectedImpact ProjectedImpact `json:"projected_impact"`
	Complexity      Complexity      `json:"implementation_complexity"`
	TimeToImplement string          `json:"time_to_implement"`
}

// FleetMetrics are the aggregate figures compared by what-if simulations.
type FleetMetrics struct {
	TotalRevenue      float64 `json:"total_revenue"`
	AverageLoadFactor float64 `json:"average_load_factor"` // percentage 0-100
	TotalEmptySeats   int     `json:"total_empty_seats"`
	OperatingCosts    float64 `json:"operating_costs"`
}

// Improvements are the deltas between simulated and baseline metrics.
// Cost and empty-seat reductions are positive when the scenario helps.
type Improvements struct {
	RevenueGain         float64 `json:"revenue_gain"`
	LoadFactorGain      float64 `json:"load_factor_gain"`
	EmptySeatsReduction int     `json:"empty_seats_reduction"`
	CostSavings         float64 `json:"cost_savings"`
	ROI                 float64 `json:"roi"`
}

// WhatIfSimulation compares baseline and simulated metrics for one scenario.
type WhatIfSimulation struct {
	ScenarioID       string       `json:"scenario_id"`
	BaselineMetrics  FleetMetrics `json:"baseline_metrics"`
	SimulatedMetrics FleetMetrics `json:"simulated_metrics"`
	Improvements     Improvements `json:"improvements"`
}

// RoadmapPhase groups scenarios of one complexity tier for sequenced rollout.
type RoadmapPhase struct {
	Phase            string                 `json:"phase"`
	Scenarios        []OptimizationScenario `json:"scenarios"`
	Duration         string                 `json:"duration"`
	ExpectedBenefits string                 `json:"expected_benefits"`
}
