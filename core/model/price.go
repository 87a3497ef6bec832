package model

import "time"

// DemandLevel buckets the market demand for a flight.
type DemandLevel string

const (
	DemandLow    DemandLevel = "low"
	DemandMedium DemandLevel = "medium"
	DemandHigh   DemandLevel = "high"
)

// MarketConditions captures the transient market signals for one flight.
// Conditions are recomputed per call and never persisted.
type MarketConditions struct {
	DemandLevel        DemandLevel `json:"demand_level"`
	CompetitorPricing  float64     `json:"competitor_pricing"`
	SeasonalMultiplier float64     `json:"seasonal_multiplier"`
	HoursToDeparture   float64     `json:"hours_to_departure"`
	WeatherImpact      float64     `json:"weather_impact"` // fraction in [-0.1,0.1]
}

// PriceUpdate is one computed re-pricing of a flight. Immutable once created.
type PriceUpdate struct {
	FlightID   string    `json:"flight_id"`
	OldPrice   float64   `json:"old_price"`
	NewPrice   float64   `json:"new_price"`
	Discount   int       `json:"discount"` // percentage, never negative
	Reason     string    `json:"reason"`
	Timestamp  time.Time `json:"timestamp"`
	ValidUntil time.Time `json:"valid_until"`
}

// PriceTrend summarizes the recorded price history of a flight.
type PriceTrend struct {
	Trend           string  `json:"trend"` // "increasing", "decreasing" or "stable"
	AveragePrice    float64 `json:"average_price"`
	PriceVolatility float64 `json:"price_volatility"`
}

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Audience classifies the target group of a pricing recommendation.
type Audience string

const (
	AudienceCommunity Audience = "community"
	AudienceBusiness  Audience = "business"
	AudienceLeisure   Audience = "leisure"
)

// PricingRecommendation is a discount proposal derived from predicted occupancy.
type PricingRecommendation struct {
	FlightID         string  `json:"flight_id"`
	CurrentPrice     float64 `json:"current_price"`
	RecommendedPrice float64 `json:"recommended_price"`
	Discount         int     `json:"discount"`
	TargetAudience   Audience `json:"target_audience"`
	Urgency          string  `json:"urgency"` // "low", "medium" or "high"
}

// SeatUtilization is the predicted occupancy outcome for a flight.
type SeatUtilization struct {
	FlightID           string   `json:"flight_id"`
	PredictedOccupancy float64  `json:"predicted_occupancy"` // percentage 0-100
	Confidence         float64  `json:"confidence"`          // percentage 0-100
	EmptySeats         int      `json:"empty_seats"`
	RiskLevel          string   `json:"risk_level"` // "low", "medium" or "high"
	Recommendations    []string `json:"recommendations"`
}

// CommunityDeal is a flight offered to the community audience at a discount.
type CommunityDeal struct {
	Flight         Flight  `json:"flight"`
	Discount       int     `json:"discount"`
	CommunityPrice float64 `json:"community_price"`
}

// Analytics aggregates fleet-wide figures for the dashboard.
type Analytics struct {
	TotalFlights       int     `json:"total_flights"`
	AverageLoadFactor  int     `json:"average_load_factor"` // percentage, rounded
	EmptySeatsToday    int     `json:"empty_seats_today"`
	RevenueOpportunity float64 `json:"revenue_opportunity"`
	RoutesAtRisk       int     `json:"routes_at_risk"`
	CommunityBookings  int     `json:"community_bookings"`
}

// CancellationRisk scores the likelihood a flight gets consolidated or cancelled.
type CancellationRisk struct {
	RiskScore      int      `json:"risk_score"` // 0-100
	Factors        []string `json:"factors"`
	Recommendation string   `json:"recommendation"`
}
