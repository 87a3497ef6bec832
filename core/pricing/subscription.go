package pricing

import (
	"sync"

	"github.com/google/uuid"

	"github.com/skyops/farecast/core/logger"
	"github.com/skyops/farecast/core/model"
)

// Subscriber receives every price update computed for a subscribed flight.
// Notification is synchronous; implementations must not block.
type Subscriber interface {
	OnPriceUpdate(u model.PriceUpdate)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(u model.PriceUpdate)

func (f SubscriberFunc) OnPriceUpdate(u model.PriceUpdate) { f(u) }

// Subscription is an opaque deregistration token.
type Subscription struct {
	ID       string
	FlightID string
}

type subEntry struct {
	id  string
	sub Subscriber
}

// SubscriptionRegistry maps flight ids to ordered subscriber lists.
type SubscriptionRegistry struct {
	mu   sync.RWMutex
	subs map[string][]subEntry
}

// NewSubscriptionRegistry creates an empty registry.
func NewSubscriptionRegistry() *SubscriptionRegistry {
	return &SubscriptionRegistry{subs: make(map[string][]subEntry)}
}

// Subscribe registers the subscriber for the flight and returns the token
// needed to deregister it.
func (r *SubscriptionRegistry) Subscribe(flightID string, s Subscriber) Subscription {
	tok := Subscription{ID: uuid.NewString(), FlightID: flightID}
	r.mu.Lock()
	r.subs[flightID] = append(r.subs[flightID], subEntry{id: tok.ID, sub: s})
	r.mu.Unlock()
	return tok
}

// Unsubscribe removes the subscription identified by the token. Removing an
// already-removed subscription is a no-op.
func (r *SubscriptionRegistry) Unsubscribe(tok Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.subs[tok.FlightID]
	for i, e := range entries {
		if e.id == tok.ID {
			r.subs[tok.FlightID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Count returns the number of live subscriptions for the flight.
func (r *SubscriptionRegistry) Count(flightID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[flightID])
}

// notify delivers the update to every subscriber in registration order.
// A panicking subscriber is logged and skipped; the remaining subscribers
// still receive the update.
func (r *SubscriptionRegistry) notify(log logger.Logger, u model.PriceUpdate) {
	r.mu.RLock()
	entries := append([]subEntry(nil), r.subs[u.FlightID]...)
	r.mu.RUnlock()
	for _, e := range entries {
		deliver(log, e.sub, u)
	}
}

func deliver(log logger.Logger, s Subscriber, u model.PriceUpdate) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("subscriber for flight %s panicked: %v", u.FlightID, rec)
		}
	}()
	s.OnPriceUpdate(u)
}
