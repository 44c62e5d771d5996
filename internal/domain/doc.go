// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (shop.go, report.go, reminder.go, notification.go)
// hold shared types and cross-cutting interfaces. No implementation code -
// just contracts. Keeping interfaces here prevents circular imports between
// the stores and the services that consume them.
package domain
