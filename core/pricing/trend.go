package pricing

import (
	"gonum.org/v1/gonum/stat"

	"github.com/skyops/farecast/core/model"
)

// AnalyzeTrend derives direction and volatility from a flight's price history.
// Fewer than two entries yields a stable trend with zeroed figures. The trend
// direction compares the first and last of the most recent five prices; the
// volatility is the population standard deviation over the whole history.
func AnalyzeTrend(history []model.PriceUpdate) model.PriceTrend {
	if len(history) < 2 {
		return model.PriceTrend{Trend: model.TrendStable}
	}

	prices := make([]float64, len(history))
	for i, u := range history {
		prices[i] = u.NewPrice
	}

	recent := prices
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	first, last := recent[0], recent[len(recent)-1]

	trend := model.TrendStable
	if first != 0 {
		switch change := (last - first) / first; {
		case change > 0.05:
			trend = model.TrendIncreasing
		case change < -0.05:
			trend = model.TrendDecreasing
		}
	}

	return model.PriceTrend{
		Trend:           trend,
		AveragePrice:    stat.Mean(prices, nil),
		PriceVolatility: stat.PopStdDev(prices, nil),
	}
}
