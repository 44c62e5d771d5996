// Package redis provides the persistent device state stores: per-device
// reminder lists, notification logs, and favorite sets, each serialized as
// a JSON value under a device-scoped key. The layout deliberately mirrors
// the PWA's localStorage (whole-array reads and writes) so the scheduler's
// replace-then-save stays a single-writer operation.
package redis
