// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carterperez-dev/matrimony-backend/internal/admin"
	"github.com/carterperez-dev/matrimony-backend/internal/auth"
	"github.com/carterperez-dev/matrimony-backend/internal/config"
	"github.com/carterperez-dev/matrimony-backend/internal/contact"
	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/favorite"
	"github.com/carterperez-dev/matrimony-backend/internal/health"
	"github.com/carterperez-dev/matrimony-backend/internal/member"
	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
	"github.com/carterperez-dev/matrimony-backend/internal/payment"
	"github.com/carterperez-dev/matrimony-backend/internal/server"
	"github.com/carterperez-dev/matrimony-backend/internal/story"
	"github.com/carterperez-dev/matrimony-backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "optional path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
		"query_timeout", cfg.Database.QueryTimeout,
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokenSvc, err := auth.NewTokenService(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token service initialized",
		"algorithm", "HS256",
		"ttl", tokenSvc.TTL(),
	)

	conn := db.Conn()

	userSvc := user.NewService(user.NewRepository(conn), logger)
	memberSvc := member.NewService(member.NewRepository(conn), logger)
	favoriteSvc := favorite.NewService(favorite.NewRepository(conn), memberSvc)
	contactSvc := contact.NewService(contact.NewRepository(conn), userSvc, logger)
	storySvc := story.NewService(story.NewRepository(conn))
	paymentSvc := payment.NewService(payment.ServiceConfig{
		Tx:       db,
		Payments: payment.NewRepository(conn),
		Members:  memberSvc,
		Gateway:  payment.NewStripeGateway(cfg.Payment.StripeSecretKey),
		Currency: cfg.Payment.Currency,
		Logger:   logger,
	})
	statsSvc := admin.NewStatsService(memberSvc, paymentSvc, storySvc)

	healthHandler := health.NewHandler().
		Register("database", db).
		Register("redis", redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Stats:      statsSvc,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen:   true,
			BypassFunc: middleware.BypassPaths("/healthz", "/livez", "/readyz"),
			Logger:     logger,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	tokenLimiter := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Limit: middleware.PerMinute(
			cfg.RateLimit.TokenRequests,
			cfg.RateLimit.TokenBurst,
		),
		KeyFunc:  middleware.KeyByIP,
		FailOpen: true,
		Logger:   logger,
	}).Handler

	intentLimiter := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Limit: middleware.PerMinute(
			cfg.RateLimit.IntentRequests,
			cfg.RateLimit.IntentBurst,
		),
		KeyFunc:  middleware.KeyByUserAndEndpoint,
		FailOpen: true,
		Logger:   logger,
	}).Handler

	authenticator := middleware.Authenticator(tokenSvc)
	adminOnly := middleware.RequireAdmin(userSvc)

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Project Matrimony Running")) //nolint:errcheck // best effort banner
	})

	healthHandler.RegisterRoutes(router)
	auth.NewHandler(tokenSvc).RegisterRoutes(router, tokenLimiter)

	userHandler := user.NewHandler(userSvc)
	userHandler.RegisterRoutes(router, authenticator)
	userHandler.RegisterAdminRoutes(router, authenticator, adminOnly)

	memberHandler := member.NewHandler(memberSvc)
	memberHandler.RegisterRoutes(router, authenticator)
	memberHandler.RegisterAdminRoutes(router, authenticator, adminOnly)

	favorite.NewHandler(favoriteSvc).RegisterRoutes(router, authenticator)

	contactHandler := contact.NewHandler(contactSvc)
	contactHandler.RegisterRoutes(router, authenticator)
	contactHandler.RegisterAdminRoutes(router, authenticator, adminOnly)

	story.NewHandler(storySvc).RegisterRoutes(router, authenticator)

	paymentHandler := payment.NewHandler(paymentSvc)
	paymentHandler.RegisterRoutes(router, authenticator, intentLimiter)
	paymentHandler.RegisterAdminRoutes(router, authenticator, adminOnly)

	adminHandler.RegisterRoutes(router)
	adminHandler.RegisterAdminRoutes(router, authenticator, adminOnly)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
