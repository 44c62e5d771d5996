package domain

import "time"

// Status is the crowd-derived open/closed verdict for a shop.
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
)

// Confidence grades how much weight the verdict carries.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ReportTally accumulates per-shop open/closed votes. Counts only ever
// increase; a tally is never deleted, only incremented. Tallies live in
// process memory and reset on restart (ephemeral crowd-signal, not an
// audit log).
type ReportTally struct {
	OpenCount      int
	ClosedCount    int
	LastReportedAt time.Time // zero value means no report yet
}

// Total returns the number of votes received for the shop.
func (t ReportTally) Total() int {
	return t.OpenCount + t.ClosedCount
}

// ReportSummary is the derived read model attached to shop listings.
// It is recomputed from the tally on every read and never cached.
type ReportSummary struct {
	OpenCount      int        `json:"openCount"`
	ClosedCount    int        `json:"closedCount"`
	LastReportedAt *time.Time `json:"lastReportedAt"`
	Status         Status     `json:"status"`
	Confidence     Confidence `json:"confidence"`
}

// StatusUpdate is pushed to live status stream clients after a report is
// accepted.
type StatusUpdate struct {
	ShopID        int           `json:"shopId"`
	UserReported  UserReported  `json:"userReported"`
	ReportSummary ReportSummary `json:"reportSummary"`
}
