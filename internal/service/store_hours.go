package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

// naiveLayouts are ISO-8601 forms without a zone offset. They are read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// StoreHours is the daily pickup window in the store's time zone. Both
// bounds are inclusive.
type StoreHours struct {
	loc      *time.Location
	opensAt  time.Duration
	closesAt time.Duration
}

// NewStoreHours creates a window from offsets after local midnight.
func NewStoreHours(loc *time.Location, opensAt, closesAt time.Duration) (*StoreHours, error) {
	if loc == nil {
		return nil, fmt.Errorf("store hours: nil location")
	}
	if opensAt < 0 || closesAt > 24*time.Hour || opensAt > closesAt {
		return nil, fmt.Errorf("store hours: invalid window %s-%s", clock(opensAt), clock(closesAt))
	}
	return &StoreHours{loc: loc, opensAt: opensAt, closesAt: closesAt}, nil
}

// Location returns the store time zone.
func (h *StoreHours) Location() *time.Location { return h.loc }

// Local converts t to store time.
func (h *StoreHours) Local(t time.Time) time.Time { return t.In(h.loc) }

// Open reports whether t falls inside the pickup window.
func (h *StoreHours) Open(t time.Time) bool {
	local := t.In(h.loc)
	since := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())
	return since >= h.opensAt && since <= h.closesAt
}

// Window renders the pickup window, e.g. "07:30-17:30".
func (h *StoreHours) Window() string {
	return clock(h.opensAt) + "-" + clock(h.closesAt)
}

func clock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// ParsePickup reads an ISO-8601 timestamp. Timestamps without an offset are UTC.
func ParsePickup(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &validation.TemporalError{
		Rule:    validation.RuleBadPickupTime,
		Message: fmt.Sprintf("pickup time %q is not an ISO-8601 timestamp", s),
	}
}
