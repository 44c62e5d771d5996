package reminder

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/tushyr/thekabar/internal/domain"
	"github.com/tushyr/thekabar/internal/metrics"
)

// Service owns the per-device reminder lists. The UI layer only ever sees
// read-only snapshots plus the intent-based Set entry point; reminder fields
// are never mutated from outside.
//
// Every mutation of a device's state is a whole-array load-modify-save, so
// Service serializes them with one mutex per device. The store mutexes only
// cover single operations; without the device lock a Set landing between the
// scheduler tick's load and save would be erased by the tick's save.
type Service struct {
	shops         domain.ShopRepository
	reminders     domain.ReminderStore
	notifications domain.NotificationStore
	clock         clockwork.Clock

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewService(shops domain.ShopRepository, reminders domain.ReminderStore, notifications domain.NotificationStore, clock clockwork.Clock) *Service {
	return &Service{
		shops:         shops,
		reminders:     reminders,
		notifications: notifications,
		clock:         clock,
		locks:         make(map[uuid.UUID]*sync.Mutex),
	}
}

// deviceLock returns the mutex serializing all load-modify-save cycles for
// one device. Held across the whole cycle, not per store call.
func (s *Service) deviceLock(device uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[device]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[device] = lock
	}
	return lock
}

// Set creates a reminder for a shop from an intent. Invalid input (unknown
// shop, unparseable time, non-positive minutes) is a silent no-op: nothing
// is created and no error surfaces. A prior untriggered reminder for the
// same shop is replaced, so at most one stays armed per shop.
func (s *Service) Set(ctx context.Context, device uuid.UUID, shopID int, intent domain.Intent) error {
	if intent == nil {
		return nil
	}

	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		// Unknown shop: degrade to "nothing happens".
		return nil
	}

	now := s.clock.Now()
	dueAt, ok := DueTime(intent, shop, now)
	if !ok {
		return nil
	}

	rem := domain.Reminder{
		ShopID:    shopID,
		Kind:      Kind(intent),
		DueAt:     dueAt,
		CreatedAt: now,
	}
	switch v := intent.(type) {
	case domain.BeforeClose:
		rem.Minutes = v.Minutes
	case domain.In:
		rem.Minutes = v.Minutes
	case domain.At:
		rem.Time = v.Time
	}

	lock := s.deviceLock(device)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.loadNormalized(ctx, device)
	if err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}

	// Replacement rule: drop any armed reminder for this shop. Triggered
	// ones stay as history.
	kept := existing[:0]
	for _, r := range existing {
		if r.ShopID == shopID && r.Active() {
			metrics.RemindersReplacedTotal.Inc()
			continue
		}
		kept = append(kept, r)
	}

	// Timestamp-based id, bumped past any entry created in the same
	// millisecond so ids stay unique within the device's list.
	rem.ID = now.UnixMilli()
	for containsID(kept, rem.ID) {
		rem.ID++
	}
	kept = append(kept, rem)

	if err := s.reminders.Save(ctx, device, kept); err != nil {
		return fmt.Errorf("failed to save reminders: %w", err)
	}

	metrics.RemindersCreatedTotal.WithLabelValues(string(rem.Kind)).Inc()

	// Confirmation entry in the notification log, no dedup here.
	confirmation := domain.Notification{
		ID:        uuid.New(),
		Text:      fmt.Sprintf("Reminder set for %s", shop.Name),
		ShopID:    shopID,
		Timestamp: now,
	}
	if err := s.notifications.Append(ctx, device, confirmation); err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}
	return nil
}

// HasActiveReminder reports whether an untriggered reminder exists for the
// shop. Triggered history does not count.
func (s *Service) HasActiveReminder(ctx context.Context, device uuid.UUID, shopID int) (bool, error) {
	lock := s.deviceLock(device)
	lock.Lock()
	defer lock.Unlock()

	reminders, err := s.loadNormalized(ctx, device)
	if err != nil {
		return false, fmt.Errorf("failed to load reminders: %w", err)
	}
	for _, r := range reminders {
		if r.ShopID == shopID && r.Active() {
			return true, nil
		}
	}
	return false, nil
}

// List returns a snapshot of a device's reminders, oldest first.
func (s *Service) List(ctx context.Context, device uuid.UUID) ([]domain.Reminder, error) {
	lock := s.deviceLock(device)
	lock.Lock()
	defer lock.Unlock()
	return s.loadNormalized(ctx, device)
}

// Notifications returns a snapshot of a device's notification log.
func (s *Service) Notifications(ctx context.Context, device uuid.UUID) ([]domain.Notification, error) {
	return s.notifications.Load(ctx, device)
}

// MarkNotificationRead flips the read flag on one notification entry.
func (s *Service) MarkNotificationRead(ctx context.Context, device uuid.UUID, id uuid.UUID) error {
	lock := s.deviceLock(device)
	lock.Lock()
	defer lock.Unlock()
	return s.notifications.MarkRead(ctx, device, id)
}

func containsID(reminders []domain.Reminder, id int64) bool {
	for _, r := range reminders {
		if r.ID == id {
			return true
		}
	}
	return false
}

// loadNormalized loads a device's reminders and migrates any legacy records
// in place. Migration persists, so each record is normalized at most once
// rather than on every evaluation tick. Callers must hold the device lock:
// the migration save is itself a load-modify-save cycle.
func (s *Service) loadNormalized(ctx context.Context, device uuid.UUID) ([]domain.Reminder, error) {
	reminders, err := s.reminders.Load(ctx, device)
	if err != nil {
		return nil, err
	}

	migrated, changed := s.migrateLegacy(ctx, reminders)
	if changed {
		if err := s.reminders.Save(ctx, device, migrated); err != nil {
			return nil, err
		}
	}
	return migrated, nil
}

// migrateLegacy fills in a missing dueAt on old before_close records by
// recomputing from the stored minute offset against the live shop schedule.
// Records whose shop is gone are left untouched; they can never fire anyway.
func (s *Service) migrateLegacy(ctx context.Context, reminders []domain.Reminder) ([]domain.Reminder, bool) {
	changed := false
	for i, r := range reminders {
		if !r.DueAt.IsZero() || r.Kind != domain.KindBeforeClose {
			continue
		}
		shop, err := s.shops.GetByID(ctx, r.ShopID)
		if err != nil {
			continue
		}
		if due, ok := dueBeforeClose(shop, r.Minutes, s.clock.Now()); ok {
			reminders[i].DueAt = due
			changed = true
		}
	}
	return reminders, changed
}
