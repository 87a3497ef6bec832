package prediction

import "github.com/skyops/farecast/core/model"

// Naive predicts final occupancy as the current booked share of the cabin.
// It is the default estimator for batch pricing runs.
type Naive struct{}

// PredictOccupancy implements Engine.
func (Naive) PredictOccupancy(f model.Flight) model.SeatUtilization {
	return model.SeatUtilization{
		FlightID:           f.ID,
		PredictedOccupancy: f.LoadFactor() * 100,
		Confidence:         60,
		EmptySeats:         f.EmptySeats(),
		RiskLevel:          "low",
	}
}
