package pricing

import (
	"sync"

	"github.com/skyops/farecast/core/model"
)

// HistoryStore keeps the append-only per-flight log of price updates.
// Retention is process lifetime; entries are never removed.
type HistoryStore struct {
	mu      sync.RWMutex
	updates map[string][]model.PriceUpdate
}

// NewHistoryStore creates an empty HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{updates: make(map[string][]model.PriceUpdate)}
}

// Append records a price update for its flight. Insertion order is preserved.
func (s *HistoryStore) Append(u model.PriceUpdate) {
	s.mu.Lock()
	s.updates[u.FlightID] = append(s.updates[u.FlightID], u)
	s.mu.Unlock()
}

// History returns a copy of the recorded updates for the flight, oldest first.
func (s *HistoryStore) History(flightID string) []model.PriceUpdate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.PriceUpdate(nil), s.updates[flightID]...)
}

// Len returns the number of recorded updates for the flight.
func (s *HistoryStore) Len(flightID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.updates[flightID])
}
