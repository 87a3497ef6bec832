// Package market derives transient market signals for flights. Conditions are
// recomputed on every call and never stored.
package market

import (
	"math/rand"
	"sync"
	"time"

	"github.com/skyops/farecast/core/model"
)

// defaultPopularRoutes are the origin-destination pairs treated as high-demand.
var defaultPopularRoutes = []string{"JFK-LAX", "ORD-SFO", "ATL-MIA"}

// Generator simulates market conditions for a flight. The random source and
// clock are injected so callers can pin them for reproducible runs.
type Generator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	now     func() time.Time
	popular map[string]bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used for competitor pricing and weather jitter.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithClock sets the time source used for hours-to-departure and seasonality.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithPopularRoutes overrides the set of routes considered high-demand.
func WithPopularRoutes(keys []string) Option {
	return func(g *Generator) {
		g.popular = make(map[string]bool, len(keys))
		for _, k := range keys {
			g.popular[k] = true
		}
	}
}

// NewGenerator creates a Generator. Without options it uses the wall clock and
// a time-seeded random source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	g.popular = make(map[string]bool, len(defaultPopularRoutes))
	for _, k := range defaultPopularRoutes {
		g.popular[k] = true
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Conditions derives market conditions for the flight. Demand and seasonality
// are deterministic; competitor pricing and weather impact are bounded jitter.
func (g *Generator) Conditions(f model.Flight) model.MarketConditions {
	now := g.now()
	hours := f.HoursToDeparture(now)

	demand := model.DemandMedium
	popular := g.popular[f.RouteKey()]
	switch {
	case popular && hours < 48:
		demand = model.DemandHigh
	case !popular || hours > 168:
		demand = model.DemandLow
	}

	// May through August counts as high season.
	seasonal := 0.95
	if m := now.Month(); m >= time.May && m <= time.August {
		seasonal = 1.1
	}

	g.mu.Lock()
	competitor := f.Price * (0.8 + g.rng.Float64()*0.4)
	weather := (g.rng.Float64() - 0.5) * 0.2
	g.mu.Unlock()

	return model.MarketConditions{
		DemandLevel:        demand,
		CompetitorPricing:  competitor,
		SeasonalMultiplier: seasonal,
		HoursToDeparture:   hours,
		WeatherImpact:      weather,
	}
}
