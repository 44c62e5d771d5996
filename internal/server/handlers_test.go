package server

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/tushyr/thekabar/internal/broadcast"
	"github.com/tushyr/thekabar/internal/catalog"
	"github.com/tushyr/thekabar/internal/config"
	apperrors "github.com/tushyr/thekabar/internal/errors"
	"github.com/tushyr/thekabar/internal/reminder"
	"github.com/tushyr/thekabar/internal/report"
)

// newTestServer wires a server against the in-memory stores and a fake clock
// parked at a Saturday evening, when most of the seed catalog is open.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 14, 20, 0, 0, 0, time.Local))

	shops := catalog.NewMemoryRepo(catalog.Seed())
	aggregator := report.NewAggregator(shops, clock)
	reminders := reminder.NewService(shops, reminder.NewMemoryReminderStore(), reminder.NewMemoryNotificationStore(), clock)
	hub := broadcast.NewHub(clockwork.NewRealClock(), 16)
	t.Cleanup(func() { hub.Stop() })

	e := echo.New()
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:       e,
		config:     &config.Config{AppEnv: "test", Port: "0"},
		clock:      clock,
		shops:      shops,
		aggregator: aggregator,
		reminders:  reminders,
		favorites:  reminder.NewMemoryFavoriteStore(),
		hub:        hub,
	}
	srv.registerRoutes()

	return srv
}

func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(handler)(c)
}
