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

const (
	reminderKeyPrefix = "reminders:"
	deviceSetKey      = "devices"
)

func reminderKey(device uuid.UUID) string {
	return reminderKeyPrefix + device.String()
}

// ReminderStore implements domain.ReminderStore on Redis. Each device's
// reminders live as one JSON array value; the device id is also tracked in
// a set so the scheduler can enumerate devices without a keyspace scan.
type ReminderStore struct {
	rdb *goredis.Client
}

func NewReminderStore(rdb *goredis.Client) *ReminderStore {
	return &ReminderStore{rdb: rdb}
}

func (s *ReminderStore) Load(ctx context.Context, device uuid.UUID) ([]domain.Reminder, error) {
	raw, err := s.rdb.Get(ctx, reminderKey(device)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		metrics.RedisOpsTotal.WithLabelValues("reminders_load", "error").Inc()
		return nil, fmt.Errorf("failed to load reminders: %w", err)
	}

	var reminders []domain.Reminder
	if err := json.Unmarshal(raw, &reminders); err != nil {
		metrics.RedisOpsTotal.WithLabelValues("reminders_load", "error").Inc()
		return nil, fmt.Errorf("failed to decode reminders: %w", err)
	}

	metrics.RedisOpsTotal.WithLabelValues("reminders_load", "success").Inc()
	return reminders, nil
}

func (s *ReminderStore) Save(ctx context.Context, device uuid.UUID, reminders []domain.Reminder) error {
	raw, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("failed to encode reminders: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, reminderKey(device), raw, 0)
	pipe.SAdd(ctx, deviceSetKey, device.String())
	if _, err := pipe.Exec(ctx); err != nil {
		metrics.RedisOpsTotal.WithLabelValues("reminders_save", "error").Inc()
		return fmt.Errorf("failed to save reminders: %w", err)
	}

	metrics.RedisOpsTotal.WithLabelValues("reminders_save", "success").Inc()
	return nil
}

func (s *ReminderStore) Devices(ctx context.Context) ([]uuid.UUID, error) {
	members, err := s.rdb.SMembers(ctx, deviceSetKey).Result()
	if err != nil {
		metrics.RedisOpsTotal.WithLabelValues("devices_scan", "error").Inc()
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			// Unparseable member: skip rather than fail the whole pass.
			continue
		}
		devices = append(devices, id)
	}

	metrics.RedisOpsTotal.WithLabelValues("devices_scan", "success").Inc()
	return devices, nil
}
