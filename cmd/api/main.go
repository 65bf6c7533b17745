package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/cardboard/docs/swagger"
	"github.com/ghuser/cardboard/pkg/app"
	"github.com/ghuser/cardboard/pkg/cache"
	"github.com/ghuser/cardboard/pkg/config"
	"github.com/ghuser/cardboard/pkg/events"
	"github.com/ghuser/cardboard/pkg/httpx"
	"github.com/ghuser/cardboard/pkg/logger"
	"github.com/ghuser/cardboard/pkg/telemetry"
	catalogApi "github.com/ghuser/cardboard/services/catalog/application/api"
	"github.com/ghuser/cardboard/services/catalog/infrastructure/staticdata"
	inquiryApi "github.com/ghuser/cardboard/services/inquiry/application/api"
	inquirydomain "github.com/ghuser/cardboard/services/inquiry/domain"
	inquiryevents "github.com/ghuser/cardboard/services/inquiry/domain/events"
	"github.com/ghuser/cardboard/services/inquiry/infrastructure/email"
)

// @title					Heritage Cardboard API
// @version				1.0
// @description			Baseball card catalog and inquiry API.
// @termsOfService			http://swagger.io/terms/
// @contact.name			API Support
// @contact.email			support@heritagecardboard.com
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// The catalog is embedded in the binary; a load failure means the seed
	// data is broken and the build itself is bad.
	catalog, err := staticdata.Load()
	if err != nil {
		log.Error("failed to load card collection", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	log.Info("card collection loaded", "cards", catalog.Count())

	// Redis is optional: no REDIS_URL means no query cache, and a connection
	// failure at startup degrades the same way.
	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Warn("failed to connect to redis, continuing without query cache", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close() //nolint:errcheck
			log.Info("redis connected")
		}
	}

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	// Operational visibility for relayed inquiries; must be wired before the
	// server starts since the in-process bus does not replay.
	inquiryLogCh, err := eventBus.Subscribe(ctx, inquiryevents.TopicInquiryReceived,
		func(ctx context.Context, msg *message.Message) error {
			log.InfoContext(ctx, "inquiry received", "event", string(msg.Payload))
			return nil
		})
	if err != nil {
		log.Error("failed to subscribe to inquiry events", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	go func() {
		for err := range inquiryLogCh {
			log.Error("inquiry event handler error", "error", err)
		}
	}()

	emailSettings := inquirydomain.EmailSettings{
		APIKey: cfg.ResendAPIKey,
		To:     cfg.InquiryToEmail,
		From:   cfg.InquiryFromEmail,
		Label:  cfg.InquiryLabel,
	}
	if !emailSettings.Complete() {
		log.Warn("inquiry email relay not fully configured; inquiry endpoint will report a server error")
	}

	appConfig := &app.Application{
		Logger:   log,
		Catalog:  catalog,
		EventBus: eventBus,
		Redis:    redisClient,
		Mailer:   email.NewResendMailer(cfg.ResendAPIKey),
		Email:    emailSettings,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	var redisCheck httpx.HealthChecker
	if redisClient != nil {
		redisCheck = redisClient
	}
	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Catalog: httpx.HealthCheckerFunc(func(context.Context) error {
			if catalog.Count() == 0 {
				return errors.New("card collection is empty")
			}
			return nil
		}),
		Email: httpx.HealthCheckerFunc(func(context.Context) error {
			if !emailSettings.Complete() {
				return inquirydomain.ErrNotConfigured
			}
			return nil
		}),
		Redis: redisCheck,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogApi.CatalogRoutes(r, a)
	inquiryApi.InquiryRoutes(r, a)
}
