package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status report metrics
var (
	// ReportsTotal tracks crowd status reports by outcome (open/closed)
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thekabar_reports_total",
			Help: "Total crowd status reports by reported state",
		},
		[]string{"state"},
	)

	// ReportsRejectedTotal tracks rejected report submissions by reason
	ReportsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thekabar_reports_rejected_total",
			Help: "Rejected report submissions by reason",
		},
		[]string{"reason"},
	)
)

// Reminder metrics
var (
	// RemindersCreatedTotal tracks reminders created by intent kind
	RemindersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thekabar_reminders_created_total",
			Help: "Reminders created by intent kind",
		},
		[]string{"kind"},
	)

	// RemindersFiredTotal tracks reminders fired by intent kind
	RemindersFiredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thekabar_reminders_fired_total",
			Help: "Reminders fired by intent kind",
		},
		[]string{"kind"},
	)

	// RemindersReplacedTotal tracks armed reminders replaced by a newer one
	RemindersReplacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "thekabar_reminders_replaced_total",
			Help: "Armed reminders silently replaced by a newer reminder for the same shop",
		},
	)

	// SchedulerTickDuration tracks how long a scheduler evaluation pass takes
	SchedulerTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "thekabar_scheduler_tick_duration_seconds",
			Help:    "Duration of a reminder scheduler evaluation pass",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)
)

// Store metrics
var (
	// RedisOpsTotal tracks Redis operations by operation type and status
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thekabar_redis_operations_total",
			Help: "Total Redis operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// WebsocketClients tracks currently connected status-stream clients
	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "thekabar_websocket_clients_current",
			Help: "Currently connected live status stream clients",
		},
	)

	// WebsocketUpdatesTotal tracks status updates pushed to the stream
	WebsocketUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "thekabar_websocket_updates_total",
			Help: "Status updates broadcast to the live status stream",
		},
	)

	// WebsocketSlowClientsEvicted tracks clients dropped for not keeping up
	WebsocketSlowClientsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "thekabar_websocket_slow_clients_evicted_total",
			Help: "Status stream clients evicted because their send buffer was full",
		},
	)
)
