package prediction

import (
	"math"
	"time"

	"github.com/skyops/farecast/core/model"
)

// majorAirports weight route popularity in the occupancy heuristic.
var majorAirports = map[string]bool{
	"JFK": true, "LAX": true, "ORD": true, "ATL": true,
	"DFW": true, "DEN": true, "SFO": true, "LAS": true,
}

// HeuristicEngine predicts occupancy from booking pace, route popularity and
// price competitiveness. The clock is injected for reproducible tests.
type HeuristicEngine struct {
	Now func() time.Time
}

// NewHeuristicEngine creates a HeuristicEngine on the wall clock.
func NewHeuristicEngine() *HeuristicEngine {
	return &HeuristicEngine{Now: time.Now}
}

// PredictOccupancy implements Engine.
func (e *HeuristicEngine) PredictOccupancy(f model.Flight) model.SeatUtilization {
	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}
	base := f.LoadFactor() * 100
	hours := f.HoursToDeparture(now)

	// Closer to departure the booking state is a stronger signal.
	timeMult := math.Max(0.5, 1-hours/168)
	routeMult := routePopularityMultiplier(f.Origin, f.Destination)
	priceMult := priceCompetitivenessMultiplier(f.Price)

	predicted := math.Min(95, base*timeMult*routeMult*priceMult)
	confidence := math.Min(95, 60+timeMult*35)
	empty := f.TotalSeats - int(math.Round(float64(f.TotalSeats)*predicted/100))
	if empty < 0 {
		empty = 0
	}

	risk := "low"
	switch {
	case predicted < 50:
		risk = "high"
	case predicted < 70:
		risk = "medium"
	}

	return model.SeatUtilization{
		FlightID:           f.ID,
		PredictedOccupancy: math.Round(predicted),
		Confidence:         math.Round(confidence),
		EmptySeats:         empty,
		RiskLevel:          risk,
		Recommendations:    recommendations(predicted, empty, hours),
	}
}

func routePopularityMultiplier(origin, destination string) float64 {
	o, d := majorAirports[origin], majorAirports[destination]
	switch {
	case o && d:
		return 1.1
	case o || d:
		return 1.05
	default:
		return 0.95
	}
}

func priceCompetitivenessMultiplier(price float64) float64 {
	switch {
	case price < 150:
		return 1.15
	case price < 250:
		return 1.05
	case price < 350:
		return 1.0
	default:
		return 0.9
	}
}

func recommendations(occupancy float64, emptySeats int, hoursUntil float64) []string {
	var recs []string
	if occupancy < 50 {
		recs = append(recs,
			"Consider flight consolidation or cancellation",
			"Implement aggressive community pricing")
	}
	if occupancy < 70 && hoursUntil < 48 {
		recs = append(recs,
			"Activate last-minute pricing strategy",
			"Target local community outreach")
	}
	if emptySeats > 50 {
		recs = append(recs,
			"Offer group booking incentives",
			"Consider aircraft downsizing for future schedules")
	}
	if hoursUntil > 72 && occupancy < 60 {
		recs = append(recs,
			"Adjust marketing spend for this route",
			"Consider route timing optimization")
	}
	return recs
}
