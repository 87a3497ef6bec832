package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/skyops/farecast/core/model"
)

func TestPromSink_RecordPriceUpdates(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("sink: %v", err)
	}

	updates := []model.PriceUpdate{
		{FlightID: "FL0001", Reason: "High demand pricing", Discount: 0},
		{FlightID: "FL0002", Reason: "Flash sale - Low demand detected", Discount: 52},
		{FlightID: "FL0003", Reason: "Flash sale - Low demand detected", Discount: 30},
	}
	if err := sink.RecordPriceUpdates(updates); err != nil {
		t.Fatalf("record: %v", err)
	}

	if got := testutil.ToFloat64(sink.updates.WithLabelValues("Flash sale - Low demand detected")); got != 2 {
		t.Fatalf("expected 2 flash sale updates, got %v", got)
	}
	if got := testutil.ToFloat64(sink.updates.WithLabelValues("High demand pricing")); got != 1 {
		t.Fatalf("expected 1 high demand update, got %v", got)
	}
}

func TestPromSink_AlertAndBatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("sink: %v", err)
	}

	if err := sink.RecordAlertFired("FL0001", 95, 100); err != nil {
		t.Fatalf("alert: %v", err)
	}
	if got := testutil.ToFloat64(sink.alerts.WithLabelValues("FL0001")); got != 1 {
		t.Fatalf("expected 1 fired alert, got %v", got)
	}

	if err := sink.RecordBatchSize(24); err != nil {
		t.Fatalf("batch: %v", err)
	}
	if got := testutil.ToFloat64(sink.batch); got != 24 {
		t.Fatalf("expected batch gauge 24, got %v", got)
	}
}

func TestPromSink_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	// A second sink on the same registry reuses the existing collectors.
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second registration: %v", err)
	}
}
