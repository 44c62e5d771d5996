package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/tushyr/thekabar/internal/broadcast"
	"github.com/tushyr/thekabar/internal/catalog"
	"github.com/tushyr/thekabar/internal/config"
	"github.com/tushyr/thekabar/internal/database"
	"github.com/tushyr/thekabar/internal/domain"
	"github.com/tushyr/thekabar/internal/logging"
	"github.com/tushyr/thekabar/internal/redis"
	"github.com/tushyr/thekabar/internal/reminder"
	"github.com/tushyr/thekabar/internal/report"
	"github.com/tushyr/thekabar/internal/server"
)

const maxStreamClients = 1024

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return db
}

func setupRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *server.Server, hub *broadcast.Hub, cancelScheduler context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		cancelScheduler()
		hub.Stop()

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	// The catalog comes from Postgres when configured, otherwise the bundled
	// seed runs in memory. Same for the per-device stores and Redis.
	var (
		shops domain.ShopRepository
		db    *sql.DB
	)
	if cfg.DatabaseURL != "" {
		db = setupDB(cfg)
		defer func() { _ = db.Close() }()
		shops = database.NewShopRepo(db)
	} else {
		slog.Info("No DATABASE_URL set, using in-memory catalog")
		shops = catalog.NewMemoryRepo(catalog.Seed())
	}

	var (
		redisClient   *goredis.Client
		reminderStore domain.ReminderStore
		notifyStore   domain.NotificationStore
		favoriteStore domain.FavoriteStore
	)
	if cfg.RedisURL != "" {
		redisClient = setupRedis(context.Background(), cfg)
		defer func() { _ = redisClient.Close() }()
		reminderStore = redis.NewReminderStore(redisClient)
		notifyStore = redis.NewNotificationStore(redisClient)
		favoriteStore = redis.NewFavoriteStore(redisClient)
	} else {
		slog.Info("No REDIS_URL set, using in-memory device stores")
		reminderStore = reminder.NewMemoryReminderStore()
		notifyStore = reminder.NewMemoryNotificationStore()
		favoriteStore = reminder.NewMemoryFavoriteStore()
	}

	aggregator := report.NewAggregator(shops, clock)
	reminderSvc := reminder.NewService(shops, reminderStore, notifyStore, clock)

	// Single evaluation loop for the whole process
	scheduler := reminder.NewScheduler(reminderSvc, clock)
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	go func() {
		if err := scheduler.Run(schedulerCtx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Reminder scheduler stopped", "error", err)
		}
	}()

	hub := broadcast.NewHub(clock, maxStreamClients)

	// Typed-nil guard: only hand real clients to the health checks
	var srv *server.Server
	switch {
	case db != nil && redisClient != nil:
		srv = server.NewServer(cfg, clock, shops, aggregator, reminderSvc, favoriteStore, hub, db, redisClient)
	case db != nil:
		srv = server.NewServer(cfg, clock, shops, aggregator, reminderSvc, favoriteStore, hub, db, nil)
	case redisClient != nil:
		srv = server.NewServer(cfg, clock, shops, aggregator, reminderSvc, favoriteStore, hub, nil, redisClient)
	default:
		srv = server.NewServer(cfg, clock, shops, aggregator, reminderSvc, favoriteStore, hub, nil, nil)
	}

	done := runGracefulShutdown(srv, hub, cancelScheduler)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
