package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/skyops/farecast/core/metrics"
	"github.com/skyops/farecast/core/model"
)

// PromSink records pricing events in Prometheus metrics.
type PromSink struct {
	updates  *prometheus.CounterVec
	discount prometheus.Histogram
	alerts   *prometheus.CounterVec
	batch    prometheus.Gauge
}

// NewPromSink registers pricing metrics on the default Prometheus registerer.
// The Prometheus server should be started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	updates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "price_updates_total",
		Help: "Total number of computed price updates",
	}, []string{"reason"})
	discount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "price_update_discount_percent",
		Help:    "Discount distribution of computed price updates",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
	alerts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "price_alerts_fired_total",
		Help: "Total number of threshold alerts fired",
	}, []string{"flight_id"})
	batch := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pricing_batch_size",
		Help: "Number of flights in the last batch pricing run",
	})

	if err := reg.Register(updates); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			updates = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(discount); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			discount = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(alerts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			alerts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(batch); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			batch = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{updates: updates, discount: discount, alerts: alerts, batch: batch}, nil
}

// RecordPriceUpdates increments the update counter and observes the discount
// for each update.
func (s *PromSink) RecordPriceUpdates(updates []model.PriceUpdate) error {
	for _, u := range updates {
		s.updates.WithLabelValues(u.Reason).Inc()
		s.discount.Observe(float64(u.Discount))
	}
	return nil
}

// RecordAlertFired increments the alert counter for the flight.
func (s *PromSink) RecordAlertFired(flightID string, price, threshold float64) error {
	s.alerts.WithLabelValues(flightID).Inc()
	return nil
}

// RecordBatchSize sets the gauge to the size of the last batch run.
func (s *PromSink) RecordBatchSize(size int) error {
	s.batch.Set(float64(size))
	return nil
}

var _ coremetrics.Sink = (*PromSink)(nil)
var _ coremetrics.AlertRecorder = (*PromSink)(nil)
var _ coremetrics.BatchSizeRecorder = (*PromSink)(nil)
