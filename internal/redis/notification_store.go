package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/tushyr/thekabar/internal/domain"
	"github.com/tushyr/thekabar/internal/metrics"
)

const notificationKeyPrefix = "notifications:"

func notificationKey(device uuid.UUID) string {
	return notificationKeyPrefix + device.String()
}

// NotificationStore implements domain.NotificationStore on Redis, one JSON
// array per device.
type NotificationStore struct {
	rdb *goredis.Client
}

func NewNotificationStore(rdb *goredis.Client) *NotificationStore {
	return &NotificationStore{rdb: rdb}
}

func (s *NotificationStore) Load(ctx context.Context, device uuid.UUID) ([]domain.Notification, error) {
	raw, err := s.rdb.Get(ctx, notificationKey(device)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		metrics.RedisOpsTotal.WithLabelValues("notifications_load", "error").Inc()
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}

	var notifications []domain.Notification
	if err := json.Unmarshal(raw, &notifications); err != nil {
		metrics.RedisOpsTotal.WithLabelValues("notifications_load", "error").Inc()
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}

	metrics.RedisOpsTotal.WithLabelValues("notifications_load", "success").Inc()
	return notifications, nil
}

func (s *NotificationStore) Append(ctx context.Context, device uuid.UUID, n domain.Notification) error {
	notifications, err := s.Load(ctx, device)
	if err != nil {
		return err
	}
	return s.save(ctx, device, append(notifications, n))
}

func (s *NotificationStore) MarkRead(ctx context.Context, device uuid.UUID, id uuid.UUID) error {
	notifications, err := s.Load(ctx, device)
	if err != nil {
		return err
	}
	for i, n := range notifications {
		if n.ID == id {
			notifications[i].Read = true
			return s.save(ctx, device, notifications)
		}
	}
	return domain.ErrDeviceNotFound
}

func (s *NotificationStore) save(ctx context.Context, device uuid.UUID, notifications []domain.Notification) error {
	raw, err := json.Marshal(notifications)
	if err != nil {
		return fmt.Errorf("failed to encode notifications: %w", err)
	}
	if err := s.rdb.Set(ctx, notificationKey(device), raw, 0).Err(); err != nil {
		metrics.RedisOpsTotal.WithLabelValues("notifications_save", "error").Inc()
		return fmt.Errorf("failed to save notifications: %w", err)
	}
	metrics.RedisOpsTotal.WithLabelValues("notifications_save", "success").Inc()
	return nil
}
