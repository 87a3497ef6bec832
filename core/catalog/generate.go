package catalog

import (
	"fmt"
	"math/rand"

	"github.com/skyops/farecast/core/model"
)

// GenerateConfig holds parameters for synthetic catalog generation.
type GenerateConfig struct {
	Flights int
	Date    string // service date, "2006-01-02"
	Seed    int64
}

type airport struct {
	origin, destination string
	distanceKM          float64
	seasonality         string
}

var routePairs = []airport{
	{"JFK", "LAX", 3983, "high"},
	{"ORD", "SFO", 2964, "high"},
	{"ATL", "MIA", 974, "medium"},
	{"DEN", "SEA", 1643, "medium"},
	{"BOS", "DCA", 640, "low"},
	{"PHX", "MSP", 2061, "low"},
}

type equipment struct {
	aircraft string
	seats    int
}

var equipmentTypes = []equipment{
	{"Airbus A320", 150},
	{"Boeing 737", 180},
	{"Boeing 787", 250},
	{"Boeing 777", 300},
}

// Generate creates a deterministic synthetic catalog for the given seed.
// Flight ids are FL0001..FLNNNN.
func Generate(cfg GenerateConfig) (*MemoryStore, error) {
	if cfg.Flights <= 0 {
		return nil, fmt.Errorf("catalog: flight count must be positive")
	}
	if cfg.Date == "" {
		return nil, fmt.Errorf("catalog: service date is required")
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	flights := make([]model.Flight, 0, cfg.Flights)
	for i := 0; i < cfg.Flights; i++ {
		pair := routePairs[rng.Intn(len(routePairs))]
		eq := equipmentTypes[rng.Intn(len(equipmentTypes))]
		depHour := 6 + rng.Intn(17) // 06:00 .. 22:00
		durMin := 90 + rng.Intn(240)
		arr := (depHour*60 + durMin) % (24 * 60)
		booked := rng.Intn(eq.seats + 1)
		flights = append(flights, model.Flight{
			ID:            fmt.Sprintf("FL%04d", i+1),
			Number:        fmt.Sprintf("SK%03d", 100+i),
			Airline:       "SkyOps",
			Origin:        pair.origin,
			Destination:   pair.destination,
			DepartureTime: fmt.Sprintf("%02d:00", depHour),
			ArrivalTime:   fmt.Sprintf("%02d:%02d", arr/60, arr%60),
			Aircraft:      eq.aircraft,
			TotalSeats:    eq.seats,
			BookedSeats:   booked,
			Price:         float64(120 + rng.Intn(380)),
			Status:        model.StatusScheduled,
			Date:          cfg.Date,
		})
	}

	routes := make([]model.Route, 0, len(routePairs))
	for i, pair := range routePairs {
		var booked, seats int
		for _, f := range flights {
			if f.Origin == pair.origin && f.Destination == pair.destination {
				booked += f.BookedSeats
				seats += f.TotalSeats
			}
		}
		lf := 0.0
		if seats > 0 {
			lf = float64(booked) / float64(seats) * 100
		}
		routes = append(routes, model.Route{
			ID:                fmt.Sprintf("RT%02d", i+1),
			Origin:            pair.origin,
			Destination:       pair.destination,
			DistanceKM:        pair.distanceKM,
			AverageLoadFactor: lf,
			Frequency:         7 + rng.Intn(14),
			Seasonality:       pair.seasonality,
			Profitability:     0.5 + rng.Float64()*0.5,
		})
	}
	return NewMemoryStore(flights, routes)
}
