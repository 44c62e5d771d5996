package report

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/tushyr/thekabar/internal/domain"
	"github.com/tushyr/thekabar/internal/metrics"
)

// Confidence policy. Fixed constants, not per-call parameters.
const (
	highConfidenceMinVotes = 5
	highConfidenceShare    = 0.7
	mediumConfidenceVotes  = 2
)

// Aggregator accumulates per-shop open/closed votes and derives a display
// status on read. The tally map is owned exclusively by the Aggregator and
// mutated under a single mutex: the read-modify-write on counts must be
// atomic per shop when requests arrive concurrently.
type Aggregator struct {
	shops domain.ShopRepository
	clock clockwork.Clock

	mu      sync.RWMutex
	tallies map[int]*domain.ReportTally
}

func NewAggregator(shops domain.ShopRepository, clock clockwork.Clock) *Aggregator {
	return &Aggregator{
		shops:   shops,
		clock:   clock,
		tallies: make(map[int]*domain.ReportTally),
	}
}

// Record applies one anonymous open/closed report for a shop. The tally is
// created lazily on the first report and only ever incremented afterwards.
// It also flips the shop's userReported fast flag and returns the updated
// shop for the response payload. Unknown shops leave no tally behind.
func (a *Aggregator) Record(ctx context.Context, shopID int, isOpen bool) (*domain.Shop, error) {
	reported := domain.ReportedClosed
	state := "closed"
	if isOpen {
		reported = domain.ReportedOpen
		state = "open"
	}

	// Resolve the shop first so a report against an unknown id cannot
	// create a tally.
	shop, err := a.shops.SetUserReported(ctx, shopID, reported)
	if err != nil {
		metrics.ReportsRejectedTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}

	a.mu.Lock()
	tally, ok := a.tallies[shopID]
	if !ok {
		tally = &domain.ReportTally{}
		a.tallies[shopID] = tally
	}
	if isOpen {
		tally.OpenCount++
	} else {
		tally.ClosedCount++
	}
	tally.LastReportedAt = a.clock.Now()
	a.mu.Unlock()

	metrics.ReportsTotal.WithLabelValues(state).Inc()
	return shop, nil
}

// Summarize derives the display status and confidence for a shop. Pure read,
// recomputed every call, never cached. Shops with no tally report unknown/low.
func (a *Aggregator) Summarize(shopID int) domain.ReportSummary {
	a.mu.RLock()
	tally, ok := a.tallies[shopID]
	var snapshot domain.ReportTally
	if ok {
		snapshot = *tally
	}
	a.mu.RUnlock()

	summary := domain.ReportSummary{
		OpenCount:   snapshot.OpenCount,
		ClosedCount: snapshot.ClosedCount,
		Status:      domain.StatusUnknown,
		Confidence:  domain.ConfidenceLow,
	}
	if !snapshot.LastReportedAt.IsZero() {
		t := snapshot.LastReportedAt
		summary.LastReportedAt = &t
	}

	total := snapshot.Total()
	if total == 0 {
		return summary
	}

	// Tie-break: equal counts lean open. Product policy, preserved as-is.
	if snapshot.OpenCount >= snapshot.ClosedCount {
		summary.Status = domain.StatusOpen
	} else {
		summary.Status = domain.StatusClosed
	}

	majority := snapshot.OpenCount
	if snapshot.ClosedCount > majority {
		majority = snapshot.ClosedCount
	}

	switch {
	case total >= highConfidenceMinVotes && float64(majority)/float64(total) >= highConfidenceShare:
		summary.Confidence = domain.ConfidenceHigh
	case total >= mediumConfidenceVotes:
		summary.Confidence = domain.ConfidenceMedium
	}

	return summary
}

// Tally returns a copy of the raw tally for a shop, if one exists.
func (a *Aggregator) Tally(shopID int) (domain.ReportTally, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	tally, ok := a.tallies[shopID]
	if !ok {
		return domain.ReportTally{}, false
	}
	return *tally, true
}
