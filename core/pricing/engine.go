// Package pricing implements the real-time pricing engine: multi-factor price
// computation, per-flight history and trend analysis, and the subscription and
// threshold-alert registries notified on every update.
package pricing

import (
	"fmt"
	"sort"
	"sync"

	"github.com/skyops/farecast/core/logger"
	"github.com/skyops/farecast/core/market"
	"github.com/skyops/farecast/core/metrics"
	"github.com/skyops/farecast/core/model"
	"github.com/skyops/farecast/core/prediction"
	"github.com/skyops/farecast/internal/eventbus"
)

// Engine owns the mutable pricing state (history, subscriptions, alerts) and
// drives the per-flight computation. All entry points are safe for concurrent
// use; updates for the same flight id are serialized.
type Engine struct {
	market  *market.Generator
	pred    prediction.Engine
	calc    *Calculator
	history *HistoryStore
	subs    *SubscriptionRegistry
	alerts  *AlertRegistry
	log     logger.Logger
	metrics metrics.Sink
	bus     *eventbus.Bus[model.PriceUpdate]

	keyMu sync.Mutex
	keys  map[string]*sync.Mutex
}

// NewEngine creates a pricing engine. The market generator is required; the
// prediction engine defaults to the naive booked/total estimate, the logger
// and metrics sink to no-ops. The bus, when set, receives every update after
// subscribers and alerts have run.
func NewEngine(gen *market.Generator, pred prediction.Engine, log logger.Logger, sink metrics.Sink, bus *eventbus.Bus[model.PriceUpdate]) (*Engine, error) {
	if gen == nil {
		return nil, fmt.Errorf("pricing: nil market generator provided to NewEngine")
	}
	if pred == nil {
		pred = prediction.Naive{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{
		market:  gen,
		pred:    pred,
		calc:    NewCalculator(),
		history: NewHistoryStore(),
		subs:    NewSubscriptionRegistry(),
		alerts:  NewAlertRegistry(),
		log:     log,
		metrics: sink,
		bus:     bus,
		keys:    make(map[string]*sync.Mutex),
	}, nil
}

// SetCalculator overrides the price calculator, mainly to pin its clock.
func (e *Engine) SetCalculator(c *Calculator) {
	if c != nil {
		e.calc = c
	}
}

// PriceFlight computes and commits one price update for the flight, returning
// the update together with the market conditions it was derived from.
func (e *Engine) PriceFlight(f model.Flight) (model.PriceUpdate, model.MarketConditions) {
	mc := e.market.Conditions(f)
	occ := e.pred.PredictOccupancy(f).PredictedOccupancy
	update := e.calc.Calculate(f, mc, occ)
	e.commit(update)
	return update, mc
}

// BatchPrice prices every flight independently and returns one update per
// input flight in input order. A failure in one item is logged and does not
// abort the siblings; the failed slot carries only the flight id.
func (e *Engine) BatchPrice(flights []model.Flight) []model.PriceUpdate {
	updates := make([]model.PriceUpdate, len(flights))
	var wg sync.WaitGroup
	for i, f := range flights {
		wg.Add(1)
		go func(i int, f model.Flight) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					e.log.Errorf("pricing flight %s failed: %v", f.ID, rec)
					updates[i] = model.PriceUpdate{FlightID: f.ID}
				}
			}()
			updates[i], _ = e.PriceFlight(f)
		}(i, f)
	}
	wg.Wait()
	if br, ok := e.metrics.(metrics.BatchSizeRecorder); ok {
		if err := br.RecordBatchSize(len(flights)); err != nil {
			e.log.Errorf("batch size metrics error: %v", err)
		}
	}
	return updates
}

// commit appends the update to the history and runs the notification side
// effects. Updates for one flight id never interleave.
func (e *Engine) commit(u model.PriceUpdate) {
	mu := e.flightMu(u.FlightID)
	mu.Lock()
	e.history.Append(u)
	e.subs.notify(e.log, u)
	fired := e.alerts.check(e.log, u)
	mu.Unlock()

	if err := e.metrics.RecordPriceUpdates([]model.PriceUpdate{u}); err != nil {
		e.log.Errorf("price metrics error: %v", err)
	}
	if ar, ok := e.metrics.(metrics.AlertRecorder); ok {
		for _, a := range fired {
			if err := ar.RecordAlertFired(u.FlightID, u.NewPrice, a.threshold); err != nil {
				e.log.Errorf("alert metrics error: %v", err)
			}
		}
	}
	if e.bus != nil {
		e.bus.Publish(u)
	}
	e.log.Debugw("price update", map[string]any{
		"flight_id": u.FlightID,
		"old_price": u.OldPrice,
		"new_price": u.NewPrice,
		"discount":  u.Discount,
		"reason":    u.Reason,
	})
}

func (e *Engine) flightMu(id string) *sync.Mutex {
	e.keyMu.Lock()
	defer e.keyMu.Unlock()
	mu, ok := e.keys[id]
	if !ok {
		mu = &sync.Mutex{}
		e.keys[id] = mu
	}
	return mu
}

// History returns the recorded price updates for the flight, oldest first.
func (e *Engine) History(flightID string) []model.PriceUpdate {
	return e.history.History(flightID)
}

// Trend analyzes the recorded history of the flight.
func (e *Engine) Trend(flightID string) model.PriceTrend {
	return AnalyzeTrend(e.history.History(flightID))
}

// Subscribe registers a subscriber for the flight's price updates.
func (e *Engine) Subscribe(flightID string, s Subscriber) Subscription {
	return e.subs.Subscribe(flightID, s)
}

// Unsubscribe removes a subscription. Idempotent.
func (e *Engine) Unsubscribe(tok Subscription) { e.subs.Unsubscribe(tok) }

// CreateAlert registers a threshold alert for the flight.
func (e *Engine) CreateAlert(flightID string, threshold float64, fn AlertFunc) Alert {
	return e.alerts.Create(flightID, threshold, fn)
}

// RemoveAlert removes a price alert. Idempotent.
func (e *Engine) RemoveAlert(tok Alert) { e.alerts.Remove(tok) }

// BestCurrentDeals filters updates with a discount above 15%, sorted by
// discount descending, capped at ten entries.
func BestCurrentDeals(updates []model.PriceUpdate) []model.PriceUpdate {
	deals := make([]model.PriceUpdate, 0, len(updates))
	for _, u := range updates {
		if u.Discount > 15 {
			deals = append(deals, u)
		}
	}
	sort.SliceStable(deals, func(i, j int) bool { return deals[i].Discount > deals[j].Discount })
	if len(deals) > 10 {
		deals = deals[:10]
	}
	return deals
}
