// Package catalog holds the shop catalog helpers: schedule math for the
// live open/closed fallback, listing filters, and an in-memory repository
// seeded with the Delhi NCR catalog for tests and DB-less development.
package catalog
