// Package scheduling computes appointment slot availability and doctor
// assignment. It is pure: callers load clinic settings and bookings and
// pass them in, nothing here touches storage or the wall clock.
package scheduling

import (
	"errors"
	"time"
)

// SlotDuration is the fixed length of every appointment. It is implicit in
// the data model: an appointment occupies [start, start+SlotDuration).
const SlotDuration = 30 * time.Minute

// ErrInvalidTimeOfDay is returned for time-of-day strings that are not HH:mm.
var ErrInvalidTimeOfDay = errors.New("invalid time of day, use HH:mm")

// Calendar holds the clinic operating hours as offsets from midnight.
type Calendar struct {
	Open       time.Duration
	Close      time.Duration
	LunchStart time.Duration
	LunchEnd   time.Duration
}

// Booking is the slice of an existing appointment the engines care about.
type Booking struct {
	DoctorID uint
	Start    time.Time
}

// Doctor is the subset view of a staff member used for assignment.
type Doctor struct {
	StaffID        uint
	Specialization string
	IsDeleted      bool
}

var timeOfDayLayouts = []string{"15:04", "15:04:05"}

// ParseTimeOfDay parses "HH:mm" (or "HH:mm:ss", as read back from a time
// column) into an offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, ErrInvalidTimeOfDay
}

// timeOfDay returns t's offset from midnight in its own location.
func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// sameDate reports whether a and b fall on the same calendar day.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
