package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/launchdeck/apphub/internal/api/middleware"
	"github.com/launchdeck/apphub/internal/collectors"
	"github.com/launchdeck/apphub/internal/config"
	apphttp "github.com/launchdeck/apphub/internal/http"
	"github.com/launchdeck/apphub/internal/inventory"
	"github.com/launchdeck/apphub/internal/launch"
	"github.com/launchdeck/apphub/internal/logging"
	"github.com/launchdeck/apphub/internal/monitoring"
	"github.com/launchdeck/apphub/internal/providers/apps"
	"github.com/launchdeck/apphub/internal/service"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg      *config.Config
	log      *logging.Logger
	registry *service.Registry
	cache    *inventory.Cache
	httpSrv  *http.Server
}

// New assembles a server from configuration.
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	metrics := monitoring.NewMetrics()

	cache := inventory.New(inventory.Config{
		// Start Menu first: its values win merge tie-breaks over the
		// registry's, matching the documented collector-order contract.
		Collectors: []inventory.Collector{
			collectors.NewStartMenu(),
			collectors.NewRegistry(),
		},
		TTL:              cfg.Inventory.TTL(),
		CollectorTimeout: cfg.Inventory.CollectorTimeout(),
		OnRebuild:        metrics.RecordRebuild,
		Logger:           log.Logger.Named("inventory"),
	})

	resolver := launch.NewResolver(
		cache,
		launch.NewAppIDLauncher(),
		launch.NewExeLauncher(),
		log.Logger.Named("launch"),
	)

	registry := service.NewRegistry()
	appsProvider := apps.NewProvider(cache, resolver, metrics, log.Logger.Named("apps"))
	if err := registry.Register(appsProvider); err != nil {
		return nil, err
	}

	if !collectors.Supported() {
		log.Warn("platform lacks registry/start-menu facilities; app tools will report unsupported")
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apphttp.NewHandlers(registry, cache, metrics, log.Logger.Named("http"))

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	router.GET("/apps", handlers.ListApps)
	router.POST("/apps/launch", handlers.LaunchApp)

	return &Server{
		cfg:      cfg,
		log:      log,
		registry: registry,
		cache:    cache,
		httpSrv: &http.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run starts serving and blocks until the listener fails or Shutdown is
// called.
func (s *Server) Run() error {
	s.log.Info("starting apphub service", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	return s.httpSrv.Shutdown(ctx)
}
