package catalog

import (
	"strings"
	"time"

	"github.com/tushyr/thekabar/internal/domain"
)

// Query holds listing filters. Zero value means "everything".
type Query struct {
	Search   string
	Category string // "", "all", "premium", or a shop type
	OpenNow  bool
}

// Filter applies search, category, and open-now filters in that order.
// OpenNow uses the schedule at t, not the crowd signal.
func Filter(shops []domain.Shop, q Query, t time.Time) []domain.Shop {
	filtered := shops

	if search := strings.TrimSpace(q.Search); search != "" {
		needle := strings.ToLower(search)
		filtered = keep(filtered, func(s domain.Shop) bool {
			return strings.Contains(strings.ToLower(s.Name), needle) ||
				strings.Contains(strings.ToLower(s.Area), needle) ||
				strings.Contains(strings.ToLower(s.Address), needle) ||
				strings.Contains(strings.ToLower(s.Speciality), needle)
		})
	}

	if q.OpenNow {
		filtered = keep(filtered, func(s domain.Shop) bool {
			return IsOpenAt(&s, t)
		})
	}

	switch q.Category {
	case "", "all":
	case "premium":
		filtered = keep(filtered, func(s domain.Shop) bool { return s.IsPremium })
	default:
		filtered = keep(filtered, func(s domain.Shop) bool {
			return s.Type == domain.ShopType(q.Category)
		})
	}

	return filtered
}

func keep(shops []domain.Shop, pred func(domain.Shop) bool) []domain.Shop {
	out := make([]domain.Shop, 0, len(shops))
	for _, s := range shops {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}
