package prediction

import "github.com/skyops/farecast/core/model"

// Engine defines methods to forecast seat occupancy for a flight.
type Engine interface {
	// PredictOccupancy returns the expected final utilization of the flight,
	// including a confidence figure and operational recommendations.
	PredictOccupancy(f model.Flight) model.SeatUtilization
}
