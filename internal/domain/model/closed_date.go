package model

import "time"

// DateLayout is the storage format of calendar dates.
const DateLayout = "2006-01-02"

// ClosedDate marks a calendar date, in store time, on which no pickups are taken.
// A recurring closure repeats on the same weekday every week.
type ClosedDate struct {
	Date      string       `json:"date"`
	Weekday   time.Weekday `json:"-"`
	Recurring bool         `json:"recurring"`
	Reason    string       `json:"reason,omitempty"`
	CreatedBy string       `json:"created_by,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
