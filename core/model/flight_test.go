package model

import (
	"testing"
	"time"
)

func TestFlight_Validate(t *testing.T) {
	good := Flight{ID: "FL0001", TotalSeats: 180, BookedSeats: 100, Price: 250}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid flight rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Flight)
	}{
		{"missing id", func(f *Flight) { f.ID = "" }},
		{"zero seats", func(f *Flight) { f.TotalSeats = 0 }},
		{"negative bookings", func(f *Flight) { f.BookedSeats = -1 }},
		{"overbooked", func(f *Flight) { f.BookedSeats = 181 }},
		{"free seat", func(f *Flight) { f.Price = 0 }},
	}
	for _, c := range cases {
		f := good
		c.mutate(&f)
		if err := f.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestFlight_LoadFactor(t *testing.T) {
	f := Flight{TotalSeats: 200, BookedSeats: 150}
	if f.LoadFactor() != 0.75 {
		t.Fatalf("expected 0.75, got %v", f.LoadFactor())
	}
	if f.EmptySeats() != 50 {
		t.Fatalf("expected 50 empty seats, got %d", f.EmptySeats())
	}
	if (Flight{}).LoadFactor() != 0 {
		t.Fatal("empty cabin must yield zero load factor")
	}
}

func TestFlight_RouteKey(t *testing.T) {
	f := Flight{Origin: "JFK", Destination: "LAX"}
	if f.RouteKey() != "JFK-LAX" {
		t.Fatalf("unexpected key %s", f.RouteKey())
	}
}

func TestFlight_HoursToDeparture(t *testing.T) {
	f := Flight{ID: "FL0001", Date: "2026-03-11", DepartureTime: "09:00"}
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	if got := f.HoursToDeparture(now); got != 24 {
		t.Fatalf("expected 24, got %v", got)
	}

	// Departed flights floor at zero.
	now = time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	if got := f.HoursToDeparture(now); got != 0 {
		t.Fatalf("expected 0 for a departed flight, got %v", got)
	}

	// Unparsable schedules floor at zero too.
	f.DepartureTime = "bogus"
	if got := f.HoursToDeparture(now); got != 0 {
		t.Fatalf("expected 0 for a bad schedule, got %v", got)
	}
}
