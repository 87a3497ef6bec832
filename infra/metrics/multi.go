package metrics

import (
	"errors"

	coremetrics "github.com/skyops/farecast/core/metrics"
	"github.com/skyops/farecast/core/model"
)

// MultiSink fans out records to several sinks, collecting all errors.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordPriceUpdates forwards the updates to every sink.
func (m *MultiSink) RecordPriceUpdates(updates []model.PriceUpdate) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPriceUpdates(updates); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordAlertFired forwards to the sinks that record alerts.
func (m *MultiSink) RecordAlertFired(flightID string, price, threshold float64) error {
	var errs []error
	for _, s := range m.sinks {
		if ar, ok := s.(coremetrics.AlertRecorder); ok {
			if err := ar.RecordAlertFired(flightID, price, threshold); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// RecordBatchSize forwards to the sinks that record batch sizes.
func (m *MultiSink) RecordBatchSize(size int) error {
	var errs []error
	for _, s := range m.sinks {
		if br, ok := s.(coremetrics.BatchSizeRecorder); ok {
			if err := br.RecordBatchSize(size); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
