package reminder

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tushyr/thekabar/internal/domain"
)

// In-memory device state stores for single-instance mode and tests. The
// Redis implementations in internal/redis are the persistent equivalents.

// MemoryReminderStore keeps per-device reminder lists in process memory.
type MemoryReminderStore struct {
	mu        sync.RWMutex
	reminders map[uuid.UUID][]domain.Reminder
}

func NewMemoryReminderStore() *MemoryReminderStore {
	return &MemoryReminderStore{reminders: make(map[uuid.UUID][]domain.Reminder)}
}

func (s *MemoryReminderStore) Load(_ context.Context, device uuid.UUID) ([]domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Reminder, len(s.reminders[device]))
	copy(out, s.reminders[device])
	return out, nil
}

func (s *MemoryReminderStore) Save(_ context.Context, device uuid.UUID, reminders []domain.Reminder) error {
	cp := make([]domain.Reminder, len(reminders))
	copy(cp, reminders)
	s.mu.Lock()
	s.reminders[device] = cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryReminderStore) Devices(_ context.Context) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(s.reminders))
	for device := range s.reminders {
		out = append(out, device)
	}
	return out, nil
}

// MemoryNotificationStore keeps per-device notification logs in process memory.
type MemoryNotificationStore struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID][]domain.Notification
}

func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{notifications: make(map[uuid.UUID][]domain.Notification)}
}

func (s *MemoryNotificationStore) Load(_ context.Context, device uuid.UUID) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.notifications[device]))
	copy(out, s.notifications[device])
	return out, nil
}

func (s *MemoryNotificationStore) Append(_ context.Context, device uuid.UUID, n domain.Notification) error {
	s.mu.Lock()
	s.notifications[device] = append(s.notifications[device], n)
	s.mu.Unlock()
	return nil
}

func (s *MemoryNotificationStore) MarkRead(_ context.Context, device uuid.UUID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifications[device] {
		if n.ID == id {
			s.notifications[device][i].Read = true
			return nil
		}
	}
	return domain.ErrDeviceNotFound
}

// MemoryFavoriteStore keeps per-device favorite shop ids in process memory.
type MemoryFavoriteStore struct {
	mu        sync.RWMutex
	favorites map[uuid.UUID]map[int]struct{}
}

func NewMemoryFavoriteStore() *MemoryFavoriteStore {
	return &MemoryFavoriteStore{favorites: make(map[uuid.UUID]map[int]struct{})}
}

func (s *MemoryFavoriteStore) List(_ context.Context, device uuid.UUID) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, 0, len(s.favorites[device]))
	for id := range s.favorites[device] {
		out = append(out, id)
	}
	return out, nil
}

func (s *MemoryFavoriteStore) Add(_ context.Context, device uuid.UUID, shopID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[device] == nil {
		s.favorites[device] = make(map[int]struct{})
	}
	s.favorites[device][shopID] = struct{}{}
	return nil
}

func (s *MemoryFavoriteStore) Remove(_ context.Context, device uuid.UUID, shopID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.favorites[device], shopID)
	return nil
}
