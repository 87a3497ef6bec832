// Package optimize exposes the route-optimization engine over HTTP.
package optimize

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/skyops/farecast/core/catalog"
	coreoptimize "github.com/skyops/farecast/core/optimize"
)

type reportResponse struct {
	Success bool `json:"success"`
	coreoptimize.Report
	Timestamp time.Time `json:"timestamp"`
}

// NewReportHandler serves GET /api/optimize: the scenario catalogue, a
// what-if simulation per scenario and the phased rollout roadmap.
func NewReportHandler(store catalog.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		report := coreoptimize.BuildReport(store.Flights(), store.Routes())
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reportResponse{
			Success:   true,
			Report:    report,
			Timestamp: time.Now(),
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
