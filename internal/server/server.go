package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	appfixtures "github.com/preston-bernstein/football-admin-service/internal/app/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/app/live"
	"github.com/preston-bernstein/football-admin-service/internal/app/roster"
	"github.com/preston-bernstein/football-admin-service/internal/backend"
	"github.com/preston-bernstein/football-admin-service/internal/config"
	"github.com/preston-bernstein/football-admin-service/internal/domain/org"
	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/teams"
	httpserver "github.com/preston-bernstein/football-admin-service/internal/http"
	"github.com/preston-bernstein/football-admin-service/internal/http/handlers"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/metrics"
	"github.com/preston-bernstein/football-admin-service/internal/poller"
	"github.com/preston-bernstein/football-admin-service/internal/scheduler"
	"github.com/preston-bernstein/football-admin-service/internal/store"
	"github.com/preston-bernstein/football-admin-service/internal/tots"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	board         *live.Board
	tots          tots.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	scheduler     Scheduler
	metricsStop   func(context.Context) error
	closers       []io.Closer
}

// New constructs a server wired to the configured backend.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	client := backend.NewClient(backend.Config{
		BaseURL:     cfg.Backend.APIBaseURL(),
		Timeout:     cfg.Backend.Timeout,
		ReadRetries: cfg.Backend.ReadRetries,
		Logger:      logger,
		Metrics:     recorder,
	})

	totsParts, err := buildTOTS(context.Background(), cfg.TOTS, client, logger, recorder, time.Now)
	if err != nil {
		return nil, err
	}

	memoryStore := store.NewMemoryStore()
	board := live.NewBoard(client, memoryStore, logger)
	plr := poller.New(client, board, logger, recorder, cfg.LivePollInterval)

	var sched Scheduler
	if cfg.TOTS.FinalizerEnabled {
		s, err := scheduler.New(totsParts.service, totsParts.syncer, cfg.TOTS.FinalizeHourUTC, logger)
		if err != nil {
			if totsParts.closer != nil {
				totsParts.closer.Close()
			}
			return nil, err
		}
		sched = s
	}

	h := buildHandlers(client, board, totsParts.service, logger, plr)
	router := httpserver.NewRouter(h, httpserver.Options{
		Logger:         logger,
		Metrics:        recorder,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})
	httpSrv := netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}

	srv := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		board:         board,
		tots:          totsParts.service,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		scheduler:     sched,
		metricsStop:   metricsShutdown,
	}
	if totsParts.closer != nil {
		srv.closers = append(srv.closers, totsParts.closer)
	}
	return srv, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller, sched Scheduler) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
		scheduler:  sched,
	}
}

func buildHandlers(client *backend.Client, board *live.Board, svc tots.Service, logger *slog.Logger, plr Poller) httpserver.Handlers {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	return httpserver.Handlers{
		Ops:      handlers.NewHandler(logger, statusFn),
		Auth:     handlers.NewAuthHandler(client, logger),
		Fixtures: handlers.NewFixturesHandler(client, board, appfixtures.NewCreator(client, logger), logger),
		Football: handlers.NewFootballHandler(client, board, logger),
		TOTS:     handlers.NewTOTSHandler(svc, logger),
		Rosters: map[string]httpserver.RosterRoutes{
			"players":      handlers.NewPlayersHandler(roster.New[players.Player]("players", client.Players(), logger), logger),
			"teams":        handlers.NewRosterHandler(roster.New[teams.Team]("teams", client.Teams(), logger), logger),
			"admins":       handlers.NewRosterHandler(roster.New[org.Admin]("admins", client.Admins(), logger), logger),
			"faculties":    handlers.NewRosterHandler(roster.New[org.Faculty]("faculties", client.Faculties(), logger), logger),
			"departments":  handlers.NewRosterHandler(roster.New[org.Department]("departments", client.Departments(), logger), logger),
			"competitions": handlers.NewRosterHandler(roster.New[org.Competition]("competitions", client.Competitions(), logger), logger),
		},
		Profiles: client,
	}
}

// Run starts the poller, scheduler and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)
	s.startScheduler()

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
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

func (s *Server) startScheduler() {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.Start(); err != nil {
		logging.Error(s.logger, "scheduler failed to start", err)
		s.scheduler = nil
	}
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

	if s.scheduler != nil {
		if err := s.scheduler.Stop(); err != nil {
			logging.Error(s.logger, "failed to stop scheduler", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			logging.Warn(s.logger, "failed to close store", "error", err)
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
