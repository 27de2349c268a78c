// Package server wires configuration into running HTTP, metrics and
// background components.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	appgames "nba-recap-service/internal/app/games"
	"nba-recap-service/internal/cache"
	"nba-recap-service/internal/config"
	"nba-recap-service/internal/enrich"
	"nba-recap-service/internal/feature"
	httpserver "nba-recap-service/internal/http"
	"nba-recap-service/internal/http/handlers"
	"nba-recap-service/internal/http/middleware"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/metrics"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/providers/espn"
	"nba-recap-service/internal/providers/youtube"
	"nba-recap-service/internal/snapshots"
	"nba-recap-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the long-lived components of the service.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	recapStore    store.Store
	service       *appgames.Service
	httpServer    httpServer
	metricsServer httpServer
	enricher      *enrich.Worker
	metricsStop   func(context.Context) error
	storeClose    func(context.Context) error
}

// New constructs a fully wired server. The only hard failure is an
// unusable store configuration; everything else degrades with a warning.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	recapStore, storeClose, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	engine := feature.NewEngine(feature.DefaultRules())
	ttlCache := cache.New(time.Duration(cfg.Cache.TTL))

	var snapStore snapshots.Store
	var snapWriter appgames.SnapshotWriter
	if cfg.Snapshots.Enabled {
		snapStore = snapshots.NewFSStore(cfg.Snapshots.Dir)
		snapWriter = snapshots.NewWriter(cfg.Snapshots.Dir)
	}

	service := appgames.NewService(appgames.Config{
		Store:         recapStore,
		Cache:         ttlCache,
		Snapshots:     snapStore,
		Writer:        snapWriter,
		Engine:        engine,
		FeaturedLimit: cfg.Featured.Limit,
		Logger:        logger,
		Recorder:      recorder,
	})

	espnClient, youtubeClient := buildProviders(cfg)

	var enricher *enrich.Worker
	var statusFn func() enrich.Status
	if cfg.Enrich.Enabled && espnClient != nil {
		gameIDs := providers.NewRetryingGameIDProvider(espnClient, logger, recorder, espn.Name, 0, 0)
		loc, locErr := time.LoadLocation(cfg.Timezone)
		if locErr != nil {
			logging.Warn(logger, "invalid timezone, enriching in UTC", "tz", cfg.Timezone)
			loc = time.UTC
		}
		enricher = enrich.New(gameIDs, recapStore, logger, recorder,
			time.Duration(cfg.Enrich.Interval), cfg.Enrich.Days, loc)
		statusFn = enricher.Status
	}

	handlerCfg := handlers.Config{
		Service:  service,
		Cache:    ttlCache,
		Logger:   logger,
		StatusFn: statusFn,
	}
	if espnClient != nil {
		handlerCfg.BoxScores = espnClient
		handlerCfg.Images = espnClient
	}
	if youtubeClient != nil {
		handlerCfg.Highlights = youtubeClient
	}

	handler := handlers.NewHandler(handlerCfg)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		recapStore:    recapStore,
		service:       service,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		enricher:      enricher,
		metricsStop:   metricsShutdown,
		storeClose:    storeClose,
	}, nil
}

func buildStore(cfg config.Config) (store.Store, func(context.Context) error, error) {
	if cfg.Store.Backend == "memory" {
		return store.NewMemoryStore(), nil, nil
	}
	mongoStore, err := store.NewMongoStore(store.MongoConfig{
		URI:        cfg.Store.MongoURI,
		Database:   cfg.Store.Database,
		Collection: cfg.Store.Collection,
	})
	if err != nil {
		return nil, nil, err
	}
	return mongoStore, mongoStore.Close, nil
}

func buildProviders(cfg config.Config) (*espn.Client, *youtube.Client) {
	if cfg.Provider == "none" {
		return nil, nil
	}
	espnClient := espn.NewClient(espn.Config{
		BaseURL: cfg.ESPN.BaseURL,
		Timeout: time.Duration(cfg.ESPN.Timeout),
	})
	youtubeClient := youtube.NewClient(youtube.Config{
		ChannelURL: cfg.YouTube.ChannelURL,
		Timeout:    time.Duration(cfg.YouTube.Timeout),
	})
	return espnClient, youtubeClient
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the background worker and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.enricher != nil {
		s.enricher.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if s.enricher != nil {
		if err := s.enricher.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop enrich worker", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}
	if s.storeClose != nil {
		if err := s.storeClose(shutdownCtx); err != nil {
			logging.Warn(s.logger, "store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
