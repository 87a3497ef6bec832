package pricing

import (
	"sync"

	"github.com/google/uuid"

	"github.com/skyops/farecast/core/logger"
	"github.com/skyops/farecast/core/model"
)

// AlertFunc is invoked with the new price when a threshold alert fires.
type AlertFunc func(price float64)

// Alert is an opaque deregistration token for a price alert.
type Alert struct {
	ID       string
	FlightID string
}

type alertEntry struct {
	id        string
	threshold float64
	fn        AlertFunc
}

// AlertRegistry maps flight ids to ordered (threshold, callback) pairs.
// An alert fires whenever a computed price drops to or below its threshold.
type AlertRegistry struct {
	mu     sync.RWMutex
	alerts map[string][]alertEntry
}

// NewAlertRegistry creates an empty registry.
func NewAlertRegistry() *AlertRegistry {
	return &AlertRegistry{alerts: make(map[string][]alertEntry)}
}

// Create registers a threshold alert for the flight and returns the token
// needed to remove it.
func (r *AlertRegistry) Create(flightID string, threshold float64, fn AlertFunc) Alert {
	tok := Alert{ID: uuid.NewString(), FlightID: flightID}
	r.mu.Lock()
	r.alerts[flightID] = append(r.alerts[flightID], alertEntry{id: tok.ID, threshold: threshold, fn: fn})
	r.mu.Unlock()
	return tok
}

// Remove deletes the alert identified by the token. Removing twice is a no-op.
func (r *AlertRegistry) Remove(tok Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.alerts[tok.FlightID]
	for i, e := range entries {
		if e.id == tok.ID {
			r.alerts[tok.FlightID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Count returns the number of live alerts for the flight.
func (r *AlertRegistry) Count(flightID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.alerts[flightID])
}

// check fires every alert whose threshold the new price satisfies, in
// registration order, and returns the fired entries. Callback panics are
// logged and do not stop the remaining alerts.
func (r *AlertRegistry) check(log logger.Logger, u model.PriceUpdate) []alertEntry {
	r.mu.RLock()
	entries := append([]alertEntry(nil), r.alerts[u.FlightID]...)
	r.mu.RUnlock()
	var fired []alertEntry
	for _, e := range entries {
		if u.NewPrice <= e.threshold {
			fire(log, e, u)
			fired = append(fired, e)
		}
	}
	return fired
}

func fire(log logger.Logger, e alertEntry, u model.PriceUpdate) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("alert callback for flight %s panicked: %v", u.FlightID, rec)
		}
	}()
	e.fn(u.NewPrice)
}
