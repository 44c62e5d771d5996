package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/tushyr/thekabar/internal/domain"
	"github.com/tushyr/thekabar/internal/metrics"
)

// fireTolerance is how far a reminder's due time may sit from the current
// tick and still fire. Polling is minute-granular and due times are
// minute-rounded, so under normal operation exactly one tick lands inside
// the window. A correctness parameter, not a timeout.
const fireTolerance = 60 * time.Second

// Scheduler runs the minute-aligned evaluation loop over every device's
// reminders. One instance is started at application-root lifetime; a second
// Run on the same instance is refused to avoid the duplicate-loop hazard
// (two loops could double-fire inside the tolerance window).
type Scheduler struct {
	service *Service
	clock   clockwork.Clock
	running atomic.Bool
}

func NewScheduler(service *Service, clock clockwork.Clock) *Scheduler {
	return &Scheduler{service: service, clock: clock}
}

// Run blocks until ctx is cancelled. The first evaluation is delayed to the
// top of the next minute, then one evaluation runs every 60 seconds.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("reminder scheduler already running")
	}
	defer s.running.Store(false)

	now := s.clock.Now()
	aligned := truncateToMinute(now).Add(time.Minute)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(aligned.Sub(now)):
	}
	s.tick(ctx)

	ticker := s.clock.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			s.tick(ctx)
		}
	}
}

// tick runs one evaluation pass over all devices. Evaluation order across
// due reminders is arbitrary; each firing is independent.
func (s *Scheduler) tick(ctx context.Context) {
	started := time.Now()
	defer func() {
		metrics.SchedulerTickDuration.Observe(time.Since(started).Seconds())
	}()

	devices, err := s.service.reminders.Devices(ctx)
	if err != nil {
		slog.Warn("Scheduler: device scan failed", "error", err)
		return
	}

	for _, device := range devices {
		if err := s.evaluateDevice(ctx, device); err != nil {
			slog.Warn("Scheduler: device evaluation failed", "device", device.String(), "error", err)
		}
	}
}

func (s *Scheduler) evaluateDevice(ctx context.Context, device uuid.UUID) error {
	// The whole load-evaluate-save pass holds the device lock, so a Set
	// arriving mid-tick waits instead of being erased by this save.
	lock := s.service.deviceLock(device)
	lock.Lock()
	defer lock.Unlock()

	reminders, err := s.service.loadNormalized(ctx, device)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	changed := false

	for i, r := range reminders {
		if r.Triggered {
			continue
		}

		shop, err := s.service.shops.GetByID(ctx, r.ShopID)
		if err != nil {
			// Shop gone from the catalog: the reminder is a weak
			// reference, skip without error.
			continue
		}

		if r.DueAt.IsZero() {
			continue
		}
		if absDuration(now.Sub(r.DueAt)) > fireTolerance {
			continue
		}

		if err := s.fire(ctx, device, shop, r); err != nil {
			slog.Error("Scheduler: failed to fire reminder", "device", device.String(), "reminder_id", r.ID, "error", err)
			continue
		}

		// One-way armed -> fired transition; this reminder never fires again.
		reminders[i].Triggered = true
		changed = true
		metrics.RemindersFiredTotal.WithLabelValues(string(r.Kind)).Inc()
	}

	if changed {
		return s.service.reminders.Save(ctx, device, reminders)
	}
	return nil
}

// fire appends the kind-specific message to the device's notification log,
// deduplicated by exact (text, shopId) pair already present in the log.
func (s *Scheduler) fire(ctx context.Context, device uuid.UUID, shop *domain.Shop, r domain.Reminder) error {
	text := fireMessage(shop, r)

	existing, err := s.service.notifications.Load(ctx, device)
	if err != nil {
		return err
	}
	for _, n := range existing {
		if n.Text == text && n.ShopID == r.ShopID {
			return nil
		}
	}

	n := domain.Notification{
		ID:        uuid.New(),
		Text:      text,
		ShopID:    r.ShopID,
		Timestamp: s.clock.Now(),
	}
	if err := s.service.notifications.Append(ctx, device, n); err != nil {
		return err
	}

	slog.Info("Reminder fired", "device", device.String(), "shop", shop.Name, "kind", r.Kind)
	return nil
}

func fireMessage(shop *domain.Shop, r domain.Reminder) string {
	switch r.Kind {
	case domain.KindBeforeClose:
		return fmt.Sprintf("%s closes in %d minutes!", shop.Name, r.Minutes)
	case domain.KindAt:
		return fmt.Sprintf("It's %s — reminder for %s", r.Time, shop.Name)
	default:
		return fmt.Sprintf("Reminder for %s", shop.Name)
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
