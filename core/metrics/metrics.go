package metrics

import "github.com/skyops/farecast/core/model"

// Sink records computed price updates for observability purposes.
type Sink interface {
	RecordPriceUpdates(updates []model.PriceUpdate) error
}

// AlertRecorder records fired price alerts. Sinks implement it optionally.
type AlertRecorder interface {
	RecordAlertFired(flightID string, price, threshold float64) error
}

// BatchSizeRecorder records the size of batch pricing runs.
type BatchSizeRecorder interface {
	RecordBatchSize(size int) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordPriceUpdates([]model.PriceUpdate) error { return nil }
