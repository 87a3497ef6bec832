// Package analytics exposes dashboard aggregates and community deals over HTTP.
package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	coreanalytics "github.com/skyops/farecast/core/analytics"
	"github.com/skyops/farecast/core/catalog"
	"github.com/skyops/farecast/core/model"
)

type dashboardResponse struct {
	Success   bool            `json:"success"`
	Analytics model.Analytics `json:"analytics"`
	Timestamp time.Time       `json:"timestamp"`
}

type dealsResponse struct {
	Success   bool                  `json:"success"`
	Deals     []model.CommunityDeal `json:"deals"`
	Timestamp time.Time             `json:"timestamp"`
}

// NewDashboardHandler serves GET /api/analytics/dashboard.
func NewDashboardHandler(svc *coreanalytics.Service, store catalog.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, dashboardResponse{
			Success:   true,
			Analytics: svc.Dashboard(store.Flights()),
			Timestamp: time.Now(),
		})
	})
}

// NewCommunityDealsHandler serves GET /api/analytics/deals/community.
func NewCommunityDealsHandler(svc *coreanalytics.Service, store catalog.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, dealsResponse{
			Success:   true,
			Deals:     svc.CommunityDeals(store.Flights()),
			Timestamp: time.Now(),
		})
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
