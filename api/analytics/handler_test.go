package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreanalytics "github.com/skyops/farecast/core/analytics"
	"github.com/skyops/farecast/core/catalog"
	"github.com/skyops/farecast/core/model"
	"github.com/skyops/farecast/core/prediction"
)

func testStore(t *testing.T) catalog.Store {
	t.Helper()
	store, err := catalog.NewMemoryStore([]model.Flight{
		{ID: "FL0001", Origin: "JFK", Destination: "LAX", DepartureTime: "09:00", Date: "2026-03-12", TotalSeats: 180, BookedSeats: 40, Price: 200},
		{ID: "FL0002", Origin: "BOS", Destination: "DCA", DepartureTime: "10:00", Date: "2026-03-12", TotalSeats: 150, BookedSeats: 140, Price: 300},
	}, nil)
	require.NoError(t, err)
	return store
}

func TestDashboardHandler(t *testing.T) {
	svc := coreanalytics.NewService(prediction.Naive{})
	h := NewDashboardHandler(svc, testStore(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Analytics.TotalFlights)
	assert.Equal(t, 1, resp.Analytics.RoutesAtRisk)
}

func TestCommunityDealsHandler(t *testing.T) {
	pred := prediction.MockEngine{Occupancy: map[string]float64{"FL0001": 25, "FL0002": 95}}
	svc := coreanalytics.NewService(pred)
	h := NewCommunityDealsHandler(svc, testStore(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/deals/community", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dealsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Deals, 1)
	assert.Equal(t, "FL0001", resp.Deals[0].Flight.ID)
	assert.Greater(t, resp.Deals[0].Discount, 20)
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	svc := coreanalytics.NewService(nil)
	store := testStore(t)

	for _, h := range []http.Handler{NewDashboardHandler(svc, store), NewCommunityDealsHandler(svc, store)} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	}
}
