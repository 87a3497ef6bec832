package config

import (
	"fmt"
	"time"
)

// APIConfig defines settings for the HTTP API server.
type APIConfig struct {
	// Addr is the listen address of the API server.
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// CatalogConfig selects the source of flight/route records: a JSON fixture
// file or the seeded synthetic generator.
type CatalogConfig struct {
	// FixturePath points to a JSON catalog snapshot. When empty, a synthetic
	// catalog is generated.
	FixturePath string `json:"fixture_path"`
	// Flights is the synthetic catalog size.
	Flights int `json:"flights"`
	// Date is the service date of generated flights, "2006-01-02".
	Date string `json:"date"`
	// Seed pins the synthetic generator.
	Seed int64 `json:"seed"`
}

// SetDefaults applies sane defaults.
func (c *CatalogConfig) SetDefaults() {
	if c.Flights == 0 {
		c.Flights = 24
	}
	if c.Date == "" {
		c.Date = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}
}

// Validate checks mandatory fields.
func (c CatalogConfig) Validate() error {
	if c.FixturePath == "" && c.Flights <= 0 {
		return fmt.Errorf("catalog: flights must be positive without a fixture")
	}
	if c.Date != "" {
		if _, err := time.Parse("2006-01-02", c.Date); err != nil {
			return fmt.Errorf("catalog: invalid date %q: %w", c.Date, err)
		}
	}
	return nil
}

// PricingConfig tunes the pricing engine.
type PricingConfig struct {
	// PopularRoutes overrides the high-demand route set ("JFK-LAX" form).
	PopularRoutes []string `json:"popular_routes"`
	// Seed pins the market condition jitter. Zero keeps a time-based seed.
	Seed int64 `json:"seed"`
	// UseHeuristicPrediction switches batch pricing from the naive
	// booked/total estimate to the occupancy heuristic.
	UseHeuristicPrediction bool `json:"use_heuristic_prediction"`
}

// MetricsConfig defines settings for metrics sinks.
type MetricsConfig struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *MetricsConfig) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}

// Validate checks mandatory fields.
func (c MetricsConfig) Validate() error {
	if c.InfluxEnabled && c.InfluxURL == "" {
		return fmt.Errorf("metrics: influx_url is required when influx is enabled")
	}
	return nil
}
