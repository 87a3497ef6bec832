package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/skyops/farecast/core/model"
)

func historyOf(prices ...float64) []model.PriceUpdate {
	out := make([]model.PriceUpdate, len(prices))
	for i, p := range prices {
		out[i] = model.PriceUpdate{FlightID: "FL0001", NewPrice: p, Timestamp: time.Now()}
	}
	return out
}

func TestAnalyzeTrend_TooShort(t *testing.T) {
	for _, h := range [][]model.PriceUpdate{nil, historyOf(100)} {
		tr := AnalyzeTrend(h)
		if tr.Trend != model.TrendStable || tr.AveragePrice != 0 || tr.PriceVolatility != 0 {
			t.Fatalf("expected zeroed stable trend, got %+v", tr)
		}
	}
}

func TestAnalyzeTrend_Directions(t *testing.T) {
	cases := []struct {
		prices []float64
		want   string
	}{
		{[]float64{100, 100, 100, 100, 150}, model.TrendIncreasing},
		{[]float64{150, 150, 150, 150, 100}, model.TrendDecreasing},
		{[]float64{100, 104}, model.TrendStable},
		// Only the last five prices decide the direction.
		{[]float64{500, 100, 100, 100, 100, 100, 150}, model.TrendIncreasing},
	}
	for _, c := range cases {
		if got := AnalyzeTrend(historyOf(c.prices...)).Trend; got != c.want {
			t.Errorf("prices %v: expected %s, got %s", c.prices, c.want, got)
		}
	}
}

func TestAnalyzeTrend_Statistics(t *testing.T) {
	tr := AnalyzeTrend(historyOf(100, 200))
	if tr.AveragePrice != 150 {
		t.Fatalf("expected mean 150, got %v", tr.AveragePrice)
	}
	if math.Abs(tr.PriceVolatility-50) > 1e-9 {
		t.Fatalf("expected population stddev 50, got %v", tr.PriceVolatility)
	}
}
