package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	apianalytics "github.com/skyops/farecast/api/analytics"
	apioptimize "github.com/skyops/farecast/api/optimize"
	apipricing "github.com/skyops/farecast/api/pricing"
	"github.com/skyops/farecast/config"
	"github.com/skyops/farecast/core/analytics"
	"github.com/skyops/farecast/core/catalog"
	"github.com/skyops/farecast/core/market"
	coremetrics "github.com/skyops/farecast/core/metrics"
	"github.com/skyops/farecast/core/model"
	"github.com/skyops/farecast/core/prediction"
	"github.com/skyops/farecast/core/pricing"
	"github.com/skyops/farecast/infra/logger"
	"github.com/skyops/farecast/infra/metrics"
	"github.com/skyops/farecast/infra/mqtt"
	"github.com/skyops/farecast/internal/eventbus"
)

// Service wires the catalog, pricing engine, analytics and the API server.
type Service struct {
	Store     catalog.Store
	Engine    *pricing.Engine
	Analytics *analytics.Service

	bus         *eventbus.Bus[model.PriceUpdate]
	publisher   *mqtt.Publisher
	log         logger.Logger
	apiAddr     string
	promEnabled bool
	promAddr    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	store, err := buildStore(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.Sink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var marketOpts []market.Option
	if len(cfg.Pricing.PopularRoutes) > 0 {
		marketOpts = append(marketOpts, market.WithPopularRoutes(cfg.Pricing.PopularRoutes))
	}
	if cfg.Pricing.Seed != 0 {
		marketOpts = append(marketOpts, market.WithRand(rand.New(rand.NewSource(cfg.Pricing.Seed))))
	}
	gen := market.NewGenerator(marketOpts...)

	var pred prediction.Engine = prediction.Naive{}
	if cfg.Pricing.UseHeuristicPrediction {
		pred = &prediction.HeuristicEngine{}
	}

	bus := eventbus.New[model.PriceUpdate]()
	engine, err := pricing.NewEngine(gen, pred, logger.New("pricing"), sink, bus)
	if err != nil {
		return nil, fmt.Errorf("pricing engine: %w", err)
	}

	svc := &Service{
		Store:       store,
		Engine:      engine,
		Analytics:   analytics.NewService(pred),
		bus:         bus,
		log:         logg,
		apiAddr:     cfg.API.Addr,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promAddr:    cfg.Metrics.PrometheusAddr,
	}
	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.publisher = pub
	}
	return svc, nil
}

func buildStore(cfg config.CatalogConfig) (catalog.Store, error) {
	if cfg.FixturePath != "" {
		return catalog.LoadFile(cfg.FixturePath)
	}
	return catalog.Generate(catalog.GenerateConfig{
		Flights: cfg.Flights,
		Date:    cfg.Date,
		Seed:    cfg.Seed,
	})
}

// Handler builds the API mux with all routes mounted.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/pricing/realtime", apipricing.NewRealtimeHandler(s.Engine, s.Store))
	mux.Handle("/api/pricing/history", apipricing.NewHistoryHandler(s.Engine))
	mux.Handle("/api/optimize", apioptimize.NewReportHandler(s.Store))
	mux.Handle("/api/analytics/dashboard", apianalytics.NewDashboardHandler(s.Analytics, s.Store))
	mux.Handle("/api/analytics/deals/community", apianalytics.NewCommunityDealsHandler(s.Analytics, s.Store))
	return mux
}

// Run starts the API server and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.publisher != nil {
		go s.publisher.Run(ctx, s.bus.Subscribe())
	}
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.apiAddr, Handler: s.Handler()}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("API server listening on %s", s.apiAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Close releases resources held by the service.
func (s *Service) Close() {
	if s.publisher != nil {
		s.publisher.Close()
	}
	s.bus.Close()
}
