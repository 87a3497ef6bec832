package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/skyops/farecast/core/metrics"
	"github.com/skyops/farecast/core/model"
	"github.com/skyops/farecast/infra/logger"
)

// InfluxSink writes price updates to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPriceUpdates writes each update as a point on the price_update measurement.
func (s *InfluxSink) RecordPriceUpdates(updates []model.PriceUpdate) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, u := range updates {
		p := write.NewPointWithMeasurement("price_update").
			AddTag("flight_id", u.FlightID).
			AddTag("reason", u.Reason).
			AddField("old_price", round2(u.OldPrice)).
			AddField("new_price", round2(u.NewPrice)).
			AddField("discount", u.Discount).
			SetTime(u.Timestamp)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordAlertFired writes the fired alert as a point.
func (s *InfluxSink) RecordAlertFired(flightID string, price, threshold float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("price_alert").
		AddTag("flight_id", flightID).
		AddField("price", round2(price)).
		AddField("threshold", round2(threshold)).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

var _ coremetrics.Sink = (*InfluxSink)(nil)
var _ coremetrics.AlertRecorder = (*InfluxSink)(nil)
