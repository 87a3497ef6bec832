package pricing

import (
	"math"
	"time"

	"github.com/skyops/farecast/core/model"
)

// Price-change reasons, selected in priority order from the combined factor.
const (
	ReasonFlashSale         = "Flash sale - Low demand detected"
	ReasonCommunityDiscount = "Community discount - Empty seats available"
	ReasonHighDemand        = "High demand pricing"
	ReasonLastMinute        = "Last-minute pricing adjustment"
	ReasonWeatherDemand     = "Weather-related demand increase"
	ReasonMarketUpdate      = "Market-based pricing update"
)

// updateValidity is how long a computed price remains bookable.
const updateValidity = 30 * time.Minute

// Calculator computes price updates from market conditions and predicted
// occupancy. It is stateless; side effects live in the Engine.
type Calculator struct {
	Now func() time.Time
}

// NewCalculator creates a Calculator on the wall clock.
func NewCalculator() *Calculator {
	return &Calculator{Now: time.Now}
}

// Calculate derives the new price for the flight by multiplicative factor
// composition: demand, urgency, competitor, seasonal and weather, in that
// order. The discount is relative to the base price and floored at zero.
func (c *Calculator) Calculate(f model.Flight, mc model.MarketConditions, predictedOccupancy float64) model.PriceUpdate {
	base := f.Price
	factor := 1.0

	switch mc.DemandLevel {
	case model.DemandHigh:
		factor *= 1.2
	case model.DemandLow:
		factor *= 0.8
	}

	hours := mc.HoursToDeparture
	if hours < 24 {
		// Final day: aggressive moves in both directions.
		if predictedOccupancy < 60 {
			factor *= 0.6
		} else if predictedOccupancy > 90 {
			factor *= 1.3
		}
	} else if hours < 72 {
		if predictedOccupancy < 70 {
			factor *= 0.8
		}
	}

	ratio := mc.CompetitorPricing / base
	if ratio < 0.9 {
		factor *= 0.95
	} else if ratio > 1.1 {
		factor *= 1.05
	}

	factor *= mc.SeasonalMultiplier
	factor *= 1 + mc.WeatherImpact

	newPrice := math.Round(base * factor)
	if newPrice < 0 {
		newPrice = 0
	}
	discount := int(math.Round((base - newPrice) / base * 100))
	if discount < 0 {
		discount = 0
	}

	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	return model.PriceUpdate{
		FlightID:   f.ID,
		OldPrice:   base,
		NewPrice:   newPrice,
		Discount:   discount,
		Reason:     changeReason(factor, mc),
		Timestamp:  now,
		ValidUntil: now.Add(updateValidity),
	}
}

func changeReason(factor float64, mc model.MarketConditions) string {
	switch {
	case factor < 0.7:
		return ReasonFlashSale
	case factor < 0.9:
		return ReasonCommunityDiscount
	case factor > 1.2:
		return ReasonHighDemand
	case mc.HoursToDeparture < 24:
		return ReasonLastMinute
	case mc.WeatherImpact > 0.1:
		return ReasonWeatherDemand
	default:
		return ReasonMarketUpdate
	}
}
