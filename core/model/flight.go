package model

import (
	"fmt"
	"time"
)

// FlightStatus describes the lifecycle state of a scheduled flight.
type FlightStatus string

const (
	StatusScheduled FlightStatus = "scheduled"
	StatusDelayed   FlightStatus = "delayed"
	StatusCancelled FlightStatus = "cancelled"
	StatusCompleted FlightStatus = "completed"
)

// Flight represents a single scheduled departure in the catalog.
// The pricing and optimization engines treat it as read-only input.
type Flight struct {
	ID            string       `json:"id"`
	Number        string       `json:"flight_number"`
	Airline       string       `json:"airline"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime string       `json:"departure_time"` // local clock, "15:04"
	ArrivalTime   string       `json:"arrival_time"`   // local clock, "15:04"
	Aircraft      string       `json:"aircraft"`
	TotalSeats    int          `json:"total_seats"`
	BookedSeats   int          `json:"booked_seats"`
	Price         float64      `json:"price"`
	Status        FlightStatus `json:"status"`
	Date          string       `json:"date"` // service date, "2006-01-02"
}

// Route aggregates scheduled service between an origin/destination pair.
type Route struct {
	ID                string  `json:"id"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	DistanceKM        float64 `json:"distance_km"`
	AverageLoadFactor float64 `json:"average_load_factor"` // percentage 0-100
	Frequency         int     `json:"frequency"`           // flights per week
	Seasonality       string  `json:"seasonality"`         // "high", "medium" or "low"
	Profitability     float64 `json:"profitability"`
}

// Validate checks that the flight record is sound. Seats must be positive,
// bookings must fit the cabin and the base price must be positive.
func (f Flight) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("flight id is required")
	}
	if f.TotalSeats <= 0 {
		return fmt.Errorf("flight %s: total seats must be positive", f.ID)
	}
	if f.BookedSeats < 0 || f.BookedSeats > f.TotalSeats {
		return fmt.Errorf("flight %s: booked seats %d out of range [0,%d]", f.ID, f.BookedSeats, f.TotalSeats)
	}
	if f.Price <= 0 {
		return fmt.Errorf("flight %s: base price must be positive", f.ID)
	}
	return nil
}

// RouteKey returns the "ORIGIN-DESTINATION" key used for route lookups.
func (f Flight) RouteKey() string {
	return f.Origin + "-" + f.Destination
}

// LoadFactor returns the booked fraction of the cabin in [0,1].
func (f Flight) LoadFactor() float64 {
	if f.TotalSeats == 0 {
		return 0
	}
	return float64(f.BookedSeats) / float64(f.TotalSeats)
}

// EmptySeats returns the number of unsold seats.
func (f Flight) EmptySeats() int {
	return f.TotalSeats - f.BookedSeats
}

// DepartureAt resolves the service date and departure clock into a time.Time
// in the given location.
func (f Flight) DepartureAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", f.Date+" "+f.DepartureTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("flight %s: parse departure: %w", f.ID, err)
	}
	return t, nil
}

// HoursToDeparture returns the hours between now and the scheduled departure,
// floored at zero for flights already gone.
func (f Flight) HoursToDeparture(now time.Time) float64 {
	dep, err := f.DepartureAt(now.Location())
	if err != nil {
		return 0
	}
	h := dep.Sub(now).Hours()
	if h < 0 {
		return 0
	}
	return h
}
