package reminder

import (
	"encoding/json"
	"strconv"

	"github.com/tushyr/thekabar/internal/domain"
)

// intentPayload is the wire shape of a reminder intent.
type intentPayload struct {
	Type    string `json:"type"`
	Minutes int    `json:"minutes"`
	Time    string `json:"time"`
}

// DecodeIntent parses a raw intent value into the tagged union. Older
// clients send a bare number meaning "minutes before close"; current
// clients send {type, minutes|time}. Anything unrecognized yields ok=false,
// which callers treat as a silent no-op rather than an error.
func DecodeIntent(raw json.RawMessage) (domain.Intent, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	// Legacy shape: a bare number.
	if n, err := strconv.Atoi(string(raw)); err == nil {
		return domain.BeforeClose{Minutes: n}, true
	}

	var payload intentPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}

	switch domain.ReminderKind(payload.Type) {
	case domain.KindBeforeClose:
		return domain.BeforeClose{Minutes: payload.Minutes}, true
	case domain.KindAt:
		return domain.At{Time: payload.Time}, true
	case domain.KindIn:
		return domain.In{Minutes: payload.Minutes}, true
	}
	return nil, false
}

// Kind maps an intent variant to its persisted kind tag.
func Kind(intent domain.Intent) domain.ReminderKind {
	switch intent.(type) {
	case domain.BeforeClose:
		return domain.KindBeforeClose
	case domain.At:
		return domain.KindAt
	case domain.In:
		return domain.KindIn
	}
	return ""
}
