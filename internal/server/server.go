package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/tushyr/thekabar/internal/broadcast"
	"github.com/tushyr/thekabar/internal/config"
	"github.com/tushyr/thekabar/internal/domain"
	apperrors "github.com/tushyr/thekabar/internal/errors"
	"github.com/tushyr/thekabar/internal/reminder"
	"github.com/tushyr/thekabar/internal/report"
)

// postgresHealthChecker is a minimal interface for database health checks
type postgresHealthChecker interface {
	PingContext(ctx context.Context) error
}

// redisHealthChecker is a minimal interface for Redis health checks
type redisHealthChecker interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

type Server struct {
	echo       *echo.Echo
	config     *config.Config
	clock      clockwork.Clock
	shops      domain.ShopRepository
	aggregator *report.Aggregator
	reminders  *reminder.Service
	favorites  domain.FavoriteStore
	hub        *broadcast.Hub

	// nil when the deployment runs on in-memory stores
	db    postgresHealthChecker
	redis redisHealthChecker
}

func NewServer(
	cfg *config.Config,
	clock clockwork.Clock,
	shops domain.ShopRepository,
	aggregator *report.Aggregator,
	reminders *reminder.Service,
	favorites domain.FavoriteStore,
	hub *broadcast.Hub,
	db postgresHealthChecker,
	redis redisHealthChecker,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:       e,
		config:     cfg,
		clock:      clock,
		shops:      shops,
		aggregator: aggregator,
		reminders:  reminders,
		favorites:  favorites,
		hub:        hub,
		db:         db,
		redis:      redis,
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
