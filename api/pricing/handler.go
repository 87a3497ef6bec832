// Package pricing exposes the real-time pricing engine over HTTP. Handlers
// only marshal JSON and invoke the engine; all computation lives in core.
package pricing

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/skyops/farecast/core/catalog"
	"github.com/skyops/farecast/core/model"
	corepricing "github.com/skyops/farecast/core/pricing"
)

type realtimeResponse struct {
	Success          bool                    `json:"success"`
	PriceUpdate      *model.PriceUpdate      `json:"price_update,omitempty"`
	MarketConditions *model.MarketConditions `json:"market_conditions,omitempty"`
	PriceUpdates     []model.PriceUpdate     `json:"price_updates,omitempty"`
	BestDeals        []model.PriceUpdate     `json:"best_deals,omitempty"`
	Timestamp        time.Time               `json:"timestamp"`
}

type historyResponse struct {
	Success      bool                `json:"success"`
	FlightID     string              `json:"flight_id"`
	PriceHistory []model.PriceUpdate `json:"price_history"`
	PriceTrend   model.PriceTrend    `json:"price_trend"`
	Timestamp    time.Time           `json:"timestamp"`
}

// NewRealtimeHandler serves price queries via GET/POST /api/pricing/realtime.
// GET with flight_id prices one flight; GET without prices the whole catalog
// and includes the best current deals; POST prices the posted flight id list.
func NewRealtimeHandler(engine *corepricing.Engine, store catalog.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if id := r.URL.Query().Get("flight_id"); id != "" {
				serveSingle(w, engine, store, id)
				return
			}
			updates := engine.BatchPrice(store.Flights())
			writeJSON(w, realtimeResponse{
				Success:      true,
				PriceUpdates: updates,
				BestDeals:    corepricing.BestCurrentDeals(updates),
				Timestamp:    time.Now(),
			})
		case http.MethodPost:
			var body struct {
				FlightIDs []string `json:"flight_ids"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.FlightIDs == nil {
				writeError(w, http.StatusBadRequest, "invalid flight ids")
				return
			}
			updates := engine.BatchPrice(store.FlightsByID(body.FlightIDs))
			writeJSON(w, realtimeResponse{Success: true, PriceUpdates: updates, Timestamp: time.Now()})
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})
}

func serveSingle(w http.ResponseWriter, engine *corepricing.Engine, store catalog.Store, id string) {
	f, err := store.Flight(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "flight not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	update, mc := engine.PriceFlight(f)
	writeJSON(w, realtimeResponse{
		Success:          true,
		PriceUpdate:      &update,
		MarketConditions: &mc,
		Timestamp:        time.Now(),
	})
}

// NewHistoryHandler serves GET /api/pricing/history?flight_id=...
func NewHistoryHandler(engine *corepricing.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		id := r.URL.Query().Get("flight_id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "flight id is required")
			return
		}
		writeJSON(w, historyResponse{
			Success:      true,
			FlightID:     id,
			PriceHistory: engine.History(id),
			PriceTrend:   engine.Trend(id),
			Timestamp:    time.Now(),
		})
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
