package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/feedback-service/internal/api/http"
	"github.com/spec-kit/feedback-service/internal/api/http/handlers"
	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/config"
	"github.com/spec-kit/feedback-service/internal/events"
	"github.com/spec-kit/feedback-service/internal/observability"
	"github.com/spec-kit/feedback-service/internal/persistence"
	"github.com/spec-kit/feedback-service/internal/repository"
	"github.com/spec-kit/feedback-service/internal/seed"
	"github.com/spec-kit/feedback-service/internal/service"
	"github.com/spec-kit/feedback-service/internal/session"
	"github.com/spec-kit/feedback-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		userRepo     repository.UserRepository
		credRepo     repository.CredentialRepository
		feedbackRepo repository.FeedbackRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewUserRepository(pool)
		credRepo = repository.NewCredentialRepository(pool)
		feedbackRepo = repository.NewFeedbackRepository(pool)
	} else {
		userRepo = repository.NewMemoryUserRepository()
		credRepo = repository.NewMemoryCredentialRepository()
		feedbackRepo = repository.NewMemoryFeedbackRepository()
	}

	var sessionStore session.Store
	if redis.Client != nil {
		sessionStore = session.NewRedisStore(redis.Client, cfg.Session.KeyPrefix, cfg.Session.TTL())
	} else {
		sessionStore = session.NewMemoryStore()
	}

	if err := seed.Apply(ctx, seed.DefaultAccounts(), userRepo, credRepo, cfg.Auth.BcryptCost); err != nil {
		logger.Fatal("failed to seed directory", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:       userRepo,
		CredentialRepo: credRepo,
		SessionStore:   sessionStore,
	})
	directoryService := service.NewDirectoryService(userRepo)
	feedbackService := service.NewFeedbackService(service.FeedbackDependencies{
		FeedbackRepo: feedbackRepo,
		UserRepo:     userRepo,
		Dispatcher:   dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Feedback:       handlers.NewFeedbackHandler(feedbackService, directoryService),
		Dashboard:      handlers.NewDashboardHandler(feedbackService, directoryService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
