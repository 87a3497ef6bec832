// Package catalog provides read access to the flight and route records the
// engines operate on. The engines never care how records are produced; the
// in-memory store is filled from a fixture file or the synthetic generator.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/skyops/farecast/core/model"
)

// ErrNotFound is returned when a flight or route id is absent from the catalog.
var ErrNotFound = errors.New("catalog: not found")

// Store exposes read access to the flight/route catalog.
type Store interface {
	Flight(id string) (model.Flight, error)
	Flights() []model.Flight
	FlightsByID(ids []string) []model.Flight
	Routes() []model.Route
}

// MemoryStore is an immutable-after-load in-memory catalog.
type MemoryStore struct {
	mu      sync.RWMutex
	flights map[string]model.Flight
	order   []string
	routes  []model.Route
}

// NewMemoryStore creates a catalog from the given records. Flight order is
// preserved for listing. Invalid flight records are rejected.
func NewMemoryStore(flights []model.Flight, routes []model.Route) (*MemoryStore, error) {
	s := &MemoryStore{flights: make(map[string]model.Flight, len(flights))}
	for _, f := range flights {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := s.flights[f.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate flight id %s", f.ID)
		}
		s.flights[f.ID] = f
		s.order = append(s.order, f.ID)
	}
	s.routes = append([]model.Route(nil), routes...)
	return s, nil
}

// Flight returns the flight with the given id or ErrNotFound.
func (s *MemoryStore) Flight(id string) (model.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flights[id]
	if !ok {
		return model.Flight{}, fmt.Errorf("flight %s: %w", id, ErrNotFound)
	}
	return f, nil
}

// Flights returns all flights in load order.
func (s *MemoryStore) Flights() []model.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Flight, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.flights[id])
	}
	return out
}

// FlightsByID returns the known flights among the requested ids, preserving
// the request order. Unknown ids are skipped.
func (s *MemoryStore) FlightsByID(ids []string) []model.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Flight, 0, len(ids))
	for _, id := range ids {
		if f, ok := s.flights[id]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Routes returns all routes sorted by id.
func (s *MemoryStore) Routes() []model.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]model.Route(nil), s.routes...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
