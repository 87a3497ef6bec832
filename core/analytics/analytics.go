// Package analytics derives fleet-wide dashboard figures, audience-classified
// pricing recommendations and cancellation-risk scores from the catalog.
package analytics

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/skyops/farecast/core/model"
	"github.com/skyops/farecast/core/prediction"
)

// Service computes analytics over flight sets. The random source drives the
// sampled discount spans and is injected for reproducible tests.
type Service struct {
	mu   sync.Mutex
	rng  *rand.Rand
	now  func() time.Time
	pred prediction.Engine
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service backed by the given occupancy predictor.
// A nil predictor falls back to the naive estimate.
func NewService(pred prediction.Engine, opts ...Option) *Service {
	if pred == nil {
		pred = prediction.Naive{}
	}
	s := &Service{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
		pred: pred,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dashboard aggregates fleet-wide figures for the overview page.
func (s *Service) Dashboard(flights []model.Flight) model.Analytics {
	if len(flights) == 0 {
		return model.Analytics{}
	}
	var seats, booked, atRisk int
	var priceSum float64
	for _, f := range flights {
		seats += f.TotalSeats
		booked += f.BookedSeats
		priceSum += f.Price
		if f.LoadFactor() < 0.6 {
			atRisk++
		}
	}
	empty := seats - booked
	avgPrice := priceSum / float64(len(flights))

	s.mu.Lock()
	community := int(math.Round(float64(len(flights)) * 0.15 * s.rng.Float64()))
	s.mu.Unlock()

	return model.Analytics{
		TotalFlights:       len(flights),
		AverageLoadFactor:  int(math.Round(float64(booked) / float64(seats) * 100)),
		EmptySeatsToday:    empty,
		RevenueOpportunity: math.Round(float64(empty) * avgPrice * 0.6),
		RoutesAtRisk:       atRisk,
		CommunityBookings:  community,
	}
}

// Recommend classifies the flight into a discount tier, target audience and
// urgency based on its predicted occupancy. The discount within a tier is
// sampled from the injected random source.
func (s *Service) Recommend(f model.Flight, u model.SeatUtilization) model.PricingRecommendation {
	var discount float64
	audience := model.AudienceLeisure
	urgency := "low"

	s.mu.Lock()
	switch occ := u.PredictedOccupancy; {
	case occ < 40:
		discount = 40 + s.rng.Float64()*20
		urgency = "high"
		audience = model.AudienceCommunity
	case occ < 60:
		discount = 20 + s.rng.Float64()*20
		urgency = "medium"
		audience = model.AudienceCommunity
	case occ < 80:
		discount = 10 + s.rng.Float64()*15
	}
	s.mu.Unlock()

	return model.PricingRecommendation{
		FlightID:         f.ID,
		CurrentPrice:     f.Price,
		RecommendedPrice: math.Round(f.Price * (1 - discount/100)),
		Discount:         int(math.Round(discount)),
		TargetAudience:   audience,
		Urgency:          urgency,
	}
}

// RevenueImpact estimates the extra revenue a recommendation could unlock.
// The pull of a discount is capped at thirty incremental seats.
func RevenueImpact(f model.Flight, rec model.PricingRecommendation) float64 {
	additional := min(f.EmptySeats(), int(math.Round(float64(rec.Discount)/100*30)))
	return float64(additional) * rec.RecommendedPrice
}

// CommunityDeals returns the flights recommended to the community audience at
// a discount above 20%, sorted by discount descending, capped at ten.
func (s *Service) CommunityDeals(flights []model.Flight) []model.CommunityDeal {
	var deals []model.CommunityDeal
	for _, f := range flights {
		rec := s.Recommend(f, s.pred.PredictOccupancy(f))
		if rec.Discount > 20 && rec.TargetAudience == model.AudienceCommunity {
			deals = append(deals, model.CommunityDeal{
				Flight:         f,
				Discount:       rec.Discount,
				CommunityPrice: rec.RecommendedPrice,
			})
		}
	}
	sort.SliceStable(deals, func(i, j int) bool { return deals[i].Discount > deals[j].Discount })
	if len(deals) > 10 {
		deals = deals[:10]
	}
	return deals
}

// AssessCancellationRisk scores the likelihood that a flight needs to be
// consolidated or cancelled, with the contributing factors spelled out.
func (s *Service) AssessCancellationRisk(f model.Flight, u model.SeatUtilization) model.CancellationRisk {
	score := 0
	var factors []string

	switch occ := u.PredictedOccupancy; {
	case occ < 40:
		score += 40
		factors = append(factors, "Very low predicted occupancy")
	case occ < 60:
		score += 20
		factors = append(factors, "Below-average occupancy")
	}

	hours := f.HoursToDeparture(s.now())
	if hours > 48 && u.PredictedOccupancy < 50 {
		score += 25
		factors = append(factors, "Low advance bookings")
	}
	if f.Price < 200 && u.PredictedOccupancy < 70 {
		score += 15
		factors = append(factors, "Low-margin route with poor performance")
	}

	recommendation := "Monitor closely"
	if score > 60 {
		recommendation = "Consider consolidation or cancellation"
	} else if score > 40 {
		recommendation = "Implement aggressive marketing"
	}

	return model.CancellationRisk{
		RiskScore:      min(100, score),
		Factors:        factors,
		Recommendation: recommendation,
	}
}
