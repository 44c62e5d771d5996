package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tushyr/thekabar/internal/domain"
)

// ParseClock parses an "HH:MM" 24h wall-clock string into minutes since
// midnight. Returns false for anything malformed or out of range.
func ParseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatClock renders minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsOpenAt reports whether the shop's schedule says it is open at t.
// The comparison is inclusive at both ends, matching the listing UI.
func IsOpenAt(shop *domain.Shop, t time.Time) bool {
	if shop == nil {
		return false
	}
	open, okOpen := ParseClock(shop.OpenTime)
	closeAt, okClose := ParseClock(shop.CloseTime)
	if !okOpen || !okClose {
		return false
	}
	current := t.Hour()*60 + t.Minute()
	return current >= open && current <= closeAt
}

// StatusText is the human-readable display status. A raw crowd report wins
// over the schedule; with no report the live schedule decides.
func StatusText(shop *domain.Shop, t time.Time) string {
	if shop == nil {
		return "Closed"
	}
	switch shop.UserReported {
	case domain.ReportedClosed:
		return "Reported Closed"
	case domain.ReportedOpen:
		return "Reported Open"
	}
	if IsOpenAt(shop, t) {
		return "Open Now"
	}
	return "Closed"
}

// MapsURL builds a Google Maps directions link for the shop.
func MapsURL(shop *domain.Shop) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%f,%f",
		shop.Coordinates.Lat, shop.Coordinates.Lng)
}
