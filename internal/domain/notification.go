package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notification is an entry in a device's ephemeral notification log.
// Entries are created when a reminder fires or is set (confirmation).
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	ShopID    int       `json:"shopId"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NotificationStore persists per-device notification logs.
type NotificationStore interface {
	Load(ctx context.Context, device uuid.UUID) ([]Notification, error)
	Append(ctx context.Context, device uuid.UUID, n Notification) error
	MarkRead(ctx context.Context, device uuid.UUID, id uuid.UUID) error
}

// FavoriteStore persists a device's favorite shop ids.
type FavoriteStore interface {
	List(ctx context.Context, device uuid.UUID) ([]int, error)
	Add(ctx context.Context, device uuid.UUID, shopID int) error
	Remove(ctx context.Context, device uuid.UUID, shopID int) error
}
