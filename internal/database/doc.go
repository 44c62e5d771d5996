// Package database provides the PostgreSQL-backed shop catalog: connection
// setup, idempotent migrations with the bundled seed, and the repository.
package database
