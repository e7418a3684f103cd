package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goto/salt/audit"
	auditrepo "github.com/goto/salt/audit/repositories"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	handlerv1beta1 "github.com/Dafi-web/events-sub000/api/handler/v1beta1"
	"github.com/Dafi-web/events-sub000/core/comment"
	"github.com/Dafi-web/events-sub000/core/content"
	"github.com/Dafi-web/events-sub000/core/engagement"
	"github.com/Dafi-web/events-sub000/core/event"
	"github.com/Dafi-web/events-sub000/core/reaction"
	"github.com/Dafi-web/events-sub000/core/view"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/internal/store/postgres"
	"github.com/Dafi-web/events-sub000/internal/store/redis"
	"github.com/Dafi-web/events-sub000/pkg/log"
	"github.com/Dafi-web/events-sub000/pkg/opentelemetry"
	"github.com/Dafi-web/events-sub000/plugins/notifiers"
)

const (
	basePath        = "/api/v1beta1"
	shutdownTimeout = 10 * time.Second
)

var defaultContentTables = map[domain.ContentType]string{
	domain.ContentTypeEvent:     "events",
	domain.ContentTypeNews:      "news",
	domain.ContentTypeDirectory: "directory_listings",
}

type Services struct {
	ContentService    *content.Service
	CommentService    *comment.Service
	ReactionService   *reaction.Service
	ViewService       *view.Service
	EventService      *event.Service
	EngagementService *engagement.Service

	closers []func() error
}

// Close releases the connections opened by InitServices.
func (s *Services) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type ServiceDeps struct {
	Config   *Config
	Logger   log.Logger
	Notifier notifiers.Client
}

// InitServices connects to the stores and builds the engagement services.
func InitServices(deps ServiceDeps) (*Services, error) {
	ctx := context.Background()
	cfg := deps.Config

	store, err := postgres.NewStore(&cfg.DB)
	if err != nil {
		return nil, err
	}
	services := &Services{closers: []func() error{store.Close}}

	sqlDB, err := store.DB().DB()
	if err != nil {
		services.Close() //nolint:errcheck
		return nil, err
	}
	auditLogger := audit.New(
		audit.WithRepository(auditrepo.NewPostgresRepository(sqlDB)),
		audit.WithMetadataExtractor(func(context.Context) map[string]interface{} {
			return map[string]interface{}{
				"app_name":    "engagement",
				"app_version": cfg.Telemetry.ServiceVersion,
			}
		}),
	)

	var viewRepository interface {
		RecordView(context.Context, domain.ViewMarker) (*domain.ViewResult, error)
		GetViewCount(context.Context, domain.ContentRef) (int64, error)
		PurgeExpiredMarkers(context.Context, time.Time) (int64, error)
	}
	switch cfg.View.Store {
	case ViewStoreRedis:
		client, err := redis.NewUniversalClient(ctx, cfg.Redis)
		if err != nil {
			services.Close() //nolint:errcheck
			return nil, err
		}
		services.closers = append(services.closers, client.Close)
		viewRepository = redis.NewViewRepository(client, cfg.Redis.KeyPrefix)
	default:
		viewRepository = postgres.NewViewRepository(store.DB())
	}

	contentTables := defaultContentTables
	if len(cfg.Content.Tables) > 0 {
		contentTables = make(map[domain.ContentType]string, len(cfg.Content.Tables))
		for t, table := range cfg.Content.Tables {
			contentTables[domain.ContentType(t)] = table
		}
	}

	services.ContentService = content.NewService(content.ServiceDeps{
		Repository: postgres.NewContentRepository(store.DB(), contentTables, cfg.Content.IDColumn),
		Logger:     deps.Logger,
		CacheTTL:   cfg.Content.CacheTTL,
	})
	services.CommentService = comment.NewService(comment.ServiceDeps{
		Repository:  postgres.NewCommentRepository(store.DB()),
		Config:      cfg.Comment,
		Notifier:    deps.Notifier,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})
	services.ReactionService = reaction.NewService(reaction.ServiceDeps{
		Repository:      postgres.NewReactionRepository(store.DB()),
		TargetValidator: engagement.NewTargetResolver(services.ContentService, services.CommentService),
		Logger:          deps.Logger,
	})
	services.ViewService = view.NewService(view.ServiceDeps{
		Repository: viewRepository,
		Logger:     deps.Logger,
		MarkerTTL:  cfg.View.MarkerTTL,
	})
	services.EventService = event.NewService(postgres.NewAuditLogRepository(store.DB()), deps.Logger)
	services.EngagementService = engagement.NewService(engagement.ServiceDeps{
		ContentService:  services.ContentService,
		CommentService:  services.CommentService,
		ReactionService: services.ReactionService,
		ViewService:     services.ViewService,
		EventService:    services.EventService,
		Logger:          deps.Logger,
	})

	return services, nil
}

// NewRouter builds the HTTP router serving the engagement API.
func NewRouter(cfg *Config, logger log.Logger, engagementService *engagement.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	router.Use(headerAuth(cfg.Auth), enrichLogFields(logger), requestLogger(logger))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	if h := opentelemetry.MetricsHandler(); h != nil {
		router.GET("/metrics", gin.WrapH(h))
	}

	handler := handlerv1beta1.NewHandler(engagementService, logger, cfg.Session.Header)
	handler.RegisterRoutes(router.Group(basePath))
	return router
}

// RunServer starts the HTTP server and blocks until SIGINT or SIGTERM.
func RunServer(config *Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.NewCtxLogger(config.LogLevel, []log.ContextKey{}, log.WithContextMetadata())

	if config.Telemetry.Enabled {
		shutdownOtel, err := opentelemetry.Init(ctx, config.Telemetry)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownOtel(); err != nil {
				logger.Error(ctx, "failed to shutdown telemetry", "error", err)
			}
		}()
	}

	notifier, err := notifiers.NewClient(&config.Notifier, logger)
	if err != nil {
		return err
	}

	services, err := InitServices(ServiceDeps{
		Config:   config,
		Logger:   logger,
		Notifier: notifier,
	})
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}
	defer services.Close() //nolint:errcheck

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           NewRouter(config, logger, services.EngagementService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server is running", "port", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	logger.Info(ctx, "shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// Migrate applies the database migrations.
func Migrate(c *Config) error {
	store, err := postgres.NewStore(&c.DB)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	return store.Migrate()
}

// Rollback reverts the latest database migration.
func Rollback(c *Config) error {
	store, err := postgres.NewStore(&c.DB)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	return store.Rollback()
}
