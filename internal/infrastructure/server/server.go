package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apihttp "github.com/GriffinCanCode/InspectOS/internal/api/http"
	"github.com/GriffinCanCode/InspectOS/internal/api/middleware"
	"github.com/GriffinCanCode/InspectOS/internal/api/ws"
	"github.com/GriffinCanCode/InspectOS/internal/domain/discovery"
	"github.com/GriffinCanCode/InspectOS/internal/domain/journal"
	"github.com/GriffinCanCode/InspectOS/internal/domain/manifest"
	"github.com/GriffinCanCode/InspectOS/internal/domain/target"
	"github.com/GriffinCanCode/InspectOS/internal/grpc/transport"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/config"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/InspectOS/internal/payload"
	"github.com/GriffinCanCode/InspectOS/internal/shared/exec"
	"github.com/GriffinCanCode/InspectOS/internal/shared/paths"
)

// Server wires the backend together: transport client, payload store,
// discovery host, target manager, manifests, journal, and the HTTP/WS API.
type Server struct {
	router    *gin.Engine
	host      *discovery.Host
	targets   *target.Manager
	transport *transport.Client
	journal   *journal.Store
	engine    *manifest.Engine
	watcher   *manifest.Watcher
	recorder  *exec.Serial
	logger    *logging.Logger
	config    *config.Config
	metrics   *monitoring.Metrics
}

// copierSource binds the payload resolver to the transport push path so
// launch registrations from the API and from manifests mint copiers the
// same way.
type copierSource struct {
	resolver *payload.Resolver
	pusher   payload.Pusher
}

func (s copierSource) CopierFor(name, version string) payload.Copier {
	return s.resolver.CopierFor(name, version, s.pusher)
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing InspectOS Backend",
		zap.String("port", cfg.Server.Port),
		zap.String("transport_addr", cfg.Transport.Address),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("backend", logger.Logger)

	// The transport client dials lazily, so construction succeeds with the
	// daemon down; the breaker and event pump handle its absence.
	transportClient, err := transport.New(cfg.Transport.Address, logger, tracer)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport client: %w", err)
	}

	data := paths.NewData(cfg.Data.Root)
	for _, dir := range data.StandardDirectories() {
		if err := os.MkdirAll(dir, 0755); err != nil {
			transportClient.Close()
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}
	payloadDir := cfg.Payload.Dir
	if payloadDir == "" {
		payloadDir = data.PayloadDir()
	}
	store, err := payload.NewStore(payloadDir, logger)
	if err != nil {
		transportClient.Close()
		return nil, fmt.Errorf("failed to open payload store: %w", err)
	}

	var registry *payload.Registry
	if cfg.Payload.RegistryURL != "" {
		registry, err = payload.NewRegistry(cfg.Payload, logger)
		if err != nil {
			transportClient.Close()
			return nil, fmt.Errorf("failed to create registry client: %w", err)
		}
		logger.Info("Payload registry configured", zap.String("url", cfg.Payload.RegistryURL))
	}
	resolver := payload.NewResolver(store, registry, metrics, logger)

	targetManager := target.NewManager(transportClient, cfg.Attach.Timeout, logger).WithMetrics(metrics)
	host := discovery.NewHost(targetManager, logger).WithMetrics(metrics)

	var journalStore *journal.Store
	var recorderExec *exec.Serial
	if cfg.Journal.Enabled {
		journalDir := cfg.Journal.Dir
		if journalDir == "" {
			journalDir = data.JournalDir()
		}
		journalStore, err = journal.Open(journal.Config{
			Dir:      journalDir,
			InMemory: cfg.Journal.InMemory,
		}, logger)
		if err != nil {
			transportClient.Close()
			return nil, fmt.Errorf("failed to open journal: %w", err)
		}

		recorder := journal.NewRecorder(journalStore, metrics, logger)
		recorderExec = exec.NewSerial()
		host.AddListener(recorder, recorderExec)
		targetManager.AddListener(recorder, recorderExec)
		logger.Info("Journal enabled",
			zap.String("dir", journalDir),
			zap.Bool("in_memory", cfg.Journal.InMemory),
		)
	}

	copiers := copierSource{resolver: resolver, pusher: transportClient}

	var engine *manifest.Engine
	var watcher *manifest.Watcher
	if cfg.Manifest.Enabled {
		manifestDir := cfg.Manifest.Dir
		if manifestDir == "" {
			manifestDir = paths.DefaultManifestDir
		}
		engine = manifest.NewEngine(host, copiers, logger)

		entries, loadErr := manifest.LoadDir(manifestDir)
		if loadErr != nil {
			logger.Warn("Initial manifest load failed", zap.Error(loadErr))
		} else {
			engine.Sync(entries)
		}

		if cfg.Manifest.Watch {
			if _, statErr := os.Stat(manifestDir); statErr == nil {
				watcher, err = manifest.NewWatcher(manifestDir, engine, logger)
				if err != nil {
					logger.Warn("Manifest watcher unavailable", zap.Error(err))
					watcher = nil
				}
			} else {
				logger.Info("Manifest directory missing, watcher disabled",
					zap.String("dir", manifestDir),
				)
			}
		}
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(host, targetManager, journalStore, copiers, engine, cfg.Attach.Timeout, logger)
	wsHandler := ws.NewHandler(host, targetManager, metrics, logger)
	aggregator := apihttp.NewMetricsAggregator(metrics, transportClient)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/streams", handlers.ListStreams)
	router.GET("/processes", handlers.ListProcesses)
	router.GET("/launches", handlers.ListLaunches)
	router.GET("/targets", handlers.ListTargets)
	router.GET("/targets/:id", handlers.GetTarget)
	router.GET("/journal", handlers.GetJournal)

	// Mutating endpoints sit behind bearer auth when a token hash is set.
	guarded := router.Group("/", middleware.Auth(cfg.Auth.TokenHash))
	guarded.POST("/launches", handlers.CreateLaunch)
	guarded.DELETE("/launches", handlers.DeleteLaunch)
	guarded.POST("/targets/attach", handlers.AttachTarget)
	guarded.DELETE("/targets/:id", handlers.DisposeTarget)

	router.GET("/stream", wsHandler.HandleConnection)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/metrics/json", aggregator.GetAggregatedMetrics)

	logger.Info("Server initialized successfully")

	return &Server{
		router:    router,
		host:      host,
		targets:   targetManager,
		transport: transportClient,
		journal:   journalStore,
		engine:    engine,
		watcher:   watcher,
		recorder:  recorderExec,
		logger:    logger,
		config:    cfg,
		metrics:   metrics,
	}, nil
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and the transport event pump, blocking until
// ctx is cancelled or a component fails.
func (s *Server) Run(ctx context.Context) error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if s.config.Transport.Enabled {
		// The engine handles process edges before the host so pattern-derived
		// registrations exist by the time the host computes the inspectable
		// join for the same edge.
		handlers := make([]transport.EventHandler, 0, 3)
		if s.engine != nil {
			handlers = append(handlers, s.engine)
		}
		handlers = append(handlers, s.host, s.targets)
		group.Go(func() error {
			err := s.transport.Subscribe(ctx, handlers...)
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("transport event pump: %w", err)
			}
			return nil
		})
	} else {
		s.logger.Info("Transport event pump disabled")
	}

	if s.watcher != nil {
		s.watcher.Start()
	}

	return group.Wait()
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if s.watcher != nil {
		s.watcher.Stop()
	}

	s.targets.Shutdown()

	if err := s.transport.Close(); err != nil {
		s.logger.Error("Failed to close transport client", zap.Error(err))
	}

	if s.recorder != nil {
		s.recorder.Stop()
	}
	if s.journal != nil {
		if err := s.journal.Close(); err != nil {
			s.logger.Error("Failed to close journal", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
