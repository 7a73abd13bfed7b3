package server

import (
	"context"
	"log/slog"
	"net/http"

	appgames "github.com/preston-bernstein/courtside-sim/internal/app/games"
	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	appplayers "github.com/preston-bernstein/courtside-sim/internal/app/players"
	appteams "github.com/preston-bernstein/courtside-sim/internal/app/teams"
	"github.com/preston-bernstein/courtside-sim/internal/autoplay"
	"github.com/preston-bernstein/courtside-sim/internal/config"
	"github.com/preston-bernstein/courtside-sim/internal/events"
	httpserver "github.com/preston-bernstein/courtside-sim/internal/http"
	"github.com/preston-bernstein/courtside-sim/internal/http/handlers"
	"github.com/preston-bernstein/courtside-sim/internal/http/middleware"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
	"github.com/preston-bernstein/courtside-sim/internal/metrics"
	"github.com/preston-bernstein/courtside-sim/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	league        *league.Service
	repo          store.SeasonRepository
	publisher     events.Publisher
	httpServer    httpServer
	metricsServer httpServer
	autoplay      Autoplayer
	metricsStop   func(context.Context) error
}

// New constructs a server over the fixture league with persistence, the game
// feed, and autoplay wired from cfg.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	repo := buildRepository(cfg, logger)
	pub := buildPublisher(cfg, logger)
	mem, svc := buildLeague(cfg, logger, recorder, repo, pub)

	var runner Autoplayer
	if cfg.Autoplay.Enabled {
		runner = autoplay.New(svc, logger, recorder, cfg.Autoplay.Interval)
	}
	httpSrv := buildHTTPServer(cfg, mem, svc, logger, recorder, runner)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         mem,
		league:        svc,
		repo:          repo,
		publisher:     pub,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		autoplay:      runner,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *league.Service, httpSrv httpServer, runner Autoplayer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		league:     svc,
		publisher:  events.Noop{},
		httpServer: httpSrv,
		autoplay:   runner,
	}
}

func buildHTTPServer(cfg config.Config, mem *store.MemoryStore, svc *league.Service, logger *slog.Logger, recorder *metrics.Recorder, runner Autoplayer) httpServer {
	var statusFn func() autoplay.Status
	if runner != nil {
		statusFn = runner.Status
	}

	handler := handlers.NewHandler(handlers.Services{
		League:  svc,
		Teams:   appteams.NewService(mem),
		Players: appplayers.NewService(mem),
		Games:   appgames.NewService(mem),
	}, handlers.NewAdminGuard(cfg.AdminToken, logger), logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run restores the persisted season, starts autoplay and the HTTP server,
// then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.restore(ctx)
	s.startMetrics()
	s.startServer(stop)
	if s.autoplay != nil {
		s.autoplay.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) restore(ctx context.Context) {
	if s.league == nil {
		return
	}
	if err := s.league.Restore(ctx); err != nil {
		logging.Error(s.logger, "season restore failed, starting fresh", err, logging.FieldSeason, s.cfg.SeasonID)
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
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

	if s.autoplay != nil {
		if err := s.autoplay.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop autoplay", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Feed and storage close after in-flight requests drain.
	if s.publisher != nil {
		s.publisher.Close()
	}
	if s.repo != nil {
		if err := s.repo.Close(); err != nil {
			logging.Warn(s.logger, "repository close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
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

// League exposes the league service.
func (s *Server) League() *league.Service {
	return s.league
}
