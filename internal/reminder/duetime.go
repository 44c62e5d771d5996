package reminder

import (
	"time"

	"github.com/tushyr/thekabar/internal/catalog"
	"github.com/tushyr/thekabar/internal/domain"
)

// DueTime computes the absolute fire time for an intent, as a pure function
// of now and the shop's schedule. Results are rounded down to the start of
// their minute so the minute-granular polling comparison matches reliably.
// ok=false means no reminder should be created (invalid or non-positive
// input), never an error.
func DueTime(intent domain.Intent, shop *domain.Shop, now time.Time) (time.Time, bool) {
	switch v := intent.(type) {
	case domain.BeforeClose:
		return dueBeforeClose(shop, v.Minutes, now)
	case domain.At:
		return dueAt(v.Time, now)
	case domain.In:
		return dueIn(v.Minutes, now)
	}
	return time.Time{}, false
}

func dueBeforeClose(shop *domain.Shop, minutes int, now time.Time) (time.Time, bool) {
	if shop == nil || minutes <= 0 {
		return time.Time{}, false
	}
	closeMinutes, ok := catalog.ParseClock(shop.CloseTime)
	if !ok {
		return time.Time{}, false
	}

	due := atMinuteOfDay(now, closeMinutes).Add(-time.Duration(minutes) * time.Minute)
	// Close time already passed, or the reminder window already elapsed
	// today: roll forward to tomorrow's occurrence.
	if due.Before(now) {
		due = due.AddDate(0, 0, 1)
	}
	return due, true
}

func dueAt(clock string, now time.Time) (time.Time, bool) {
	minutes, ok := catalog.ParseClock(clock)
	if !ok {
		return time.Time{}, false
	}

	due := atMinuteOfDay(now, minutes)
	if due.Before(now) {
		due = due.AddDate(0, 0, 1)
	}
	return due, true
}

func dueIn(minutes int, now time.Time) (time.Time, bool) {
	if minutes <= 0 {
		return time.Time{}, false
	}
	due := now.Add(time.Duration(minutes) * time.Minute)
	return truncateToMinute(due), true
}

// atMinuteOfDay pins a wall-clock minute onto now's date, seconds zeroed.
func atMinuteOfDay(now time.Time, minutesSinceMidnight int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		minutesSinceMidnight/60, minutesSinceMidnight%60, 0, 0, now.Location())
}

func truncateToMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}
