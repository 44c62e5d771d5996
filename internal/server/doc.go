// Package server implements the HTTP server using Echo framework.
//
// Routes: catalog listing with crowd reports, per-device reminders,
// notifications, favorites, the live status WebSocket, health and metrics.
// Handlers split by domain: handlers_shops.go, handlers_devices.go,
// handlers_ws.go, handlers_health.go.
package server
