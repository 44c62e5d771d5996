package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReminderKind tags how a reminder's due time was derived.
type ReminderKind string

const (
	KindBeforeClose ReminderKind = "before_close"
	KindAt          ReminderKind = "at"
	KindIn          ReminderKind = "in"
)

// Intent is the tagged union of reminder requests. Exactly one variant is
// handled at creation and at evaluation; adding a variant without extending
// both sites is a compile-visible gap thanks to the marker method.
type Intent interface{ reminderIntent() }

// BeforeClose asks for a nudge N minutes before the shop's closing time.
type BeforeClose struct {
	Minutes int
}

// At asks for a nudge at a wall-clock time today (or tomorrow if passed).
type At struct {
	Time string // HH:MM, 24h
}

// In asks for a nudge N minutes from now.
type In struct {
	Minutes int
}

func (BeforeClose) reminderIntent() {}
func (At) reminderIntent()          {}
func (In) reminderIntent()          {}

// Reminder is the persisted record. DueAt is computed once at creation and
// never recomputed implicitly. Triggered flips true exactly once; the record
// is otherwise immutable and never deleted (the list only grows).
type Reminder struct {
	ID        int64        `json:"id"` // creation-time unix millis
	ShopID    int          `json:"shopId"`
	Kind      ReminderKind `json:"kind"`
	Minutes   int          `json:"minutes,omitempty"` // before_close / in
	Time      string       `json:"time,omitempty"`    // at
	DueAt     time.Time    `json:"dueAt"`
	Triggered bool         `json:"triggered"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Active reports whether the reminder is still armed.
func (r Reminder) Active() bool {
	return !r.Triggered
}

// ReminderStore persists per-device reminder lists as whole JSON arrays,
// mirroring the PWA's localStorage layout. Save replaces the array
// atomically; the scheduler is the single writer during evaluation.
type ReminderStore interface {
	Load(ctx context.Context, device uuid.UUID) ([]Reminder, error)
	Save(ctx context.Context, device uuid.UUID, reminders []Reminder) error
	Devices(ctx context.Context) ([]uuid.UUID, error)
}
