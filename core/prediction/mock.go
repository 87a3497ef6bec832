package prediction

import "github.com/skyops/farecast/core/model"

// MockEngine returns configured utilization figures for known flights and a
// plain booked/total estimate otherwise.
type MockEngine struct {
	Occupancy map[string]float64
}

// PredictOccupancy returns the configured occupancy for the flight or the
// naive booked/total estimate.
func (m MockEngine) PredictOccupancy(f model.Flight) model.SeatUtilization {
	occ := f.LoadFactor() * 100
	if m.Occupancy != nil {
		if v, ok := m.Occupancy[f.ID]; ok {
			occ = v
		}
	}
	return model.SeatUtilization{
		FlightID:           f.ID,
		PredictedOccupancy: occ,
		Confidence:         95,
		EmptySeats:         f.EmptySeats(),
		RiskLevel:          "low",
	}
}
