package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Connect opens a PostgreSQL connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Connection pool settings for production use
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// RunMigrations creates the schema and seeds the catalog. Idempotent: both
// the DDL and the seed insert are safe to run on every start.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS shops (
			id INT PRIMARY KEY,
			name TEXT NOT NULL,
			area TEXT NOT NULL,
			address TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			speciality TEXT NOT NULL DEFAULT '',
			is_premium BOOLEAN NOT NULL DEFAULT FALSE,
			rating FLOAT NOT NULL DEFAULT 0,
			open_time TEXT NOT NULL,
			close_time TEXT NOT NULL,
			lat FLOAT NOT NULL DEFAULT 0,
			lng FLOAT NOT NULL DEFAULT 0,
			user_reported TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_shops_area ON shops(area)`,
		`CREATE INDEX IF NOT EXISTS idx_shops_type ON shops(type)`,
	}

	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	if err := seedShops(ctx, db); err != nil {
		return fmt.Errorf("failed to seed shops: %w", err)
	}

	slog.Info("Database migrations completed")
	return nil
}
