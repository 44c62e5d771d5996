package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Catalog and crowd reports
	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/shops", s.handleListShops)
	s.echo.POST("/api/shops/:id/report", s.handleReport)

	// Per-device state
	s.echo.POST("/api/devices/:device/reminders", s.handleSetReminder)
	s.echo.GET("/api/devices/:device/reminders", s.handleListReminders)
	s.echo.GET("/api/devices/:device/reminders/active", s.handleActiveReminder)
	s.echo.GET("/api/devices/:device/notifications", s.handleListNotifications)
	s.echo.POST("/api/devices/:device/notifications/:id/read", s.handleMarkNotificationRead)
	s.echo.PUT("/api/devices/:device/favorites/:shopID", s.handleAddFavorite)
	s.echo.DELETE("/api/devices/:device/favorites/:shopID", s.handleRemoveFavorite)
	s.echo.GET("/api/devices/:device/favorites", s.handleListFavorites)

	// Live status stream
	s.echo.GET("/ws/status", s.handleStatusStream)
}
