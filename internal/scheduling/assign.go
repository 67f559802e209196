package scheduling

import (
	"errors"
	"time"
)

// ErrNoDoctorAvailable is returned when every qualified doctor has a
// conflicting booking, or the roster holds no qualified doctor at all.
var ErrNoDoctorAvailable = errors.New("no doctor available for the selected time and service")

// AssignDoctor picks the first doctor in roster, in the caller's order,
// with no booking conflicting with the 30-minute window starting at start.
//
// The conflict test checks only an existing booking's START against the
// candidate window stretched one duration backward:
//
//	existing.start < start+30m && existing.start > start-30m
//
// This is narrower than the half-open overlap test used for slot listing.
// It is kept as-is for behavioral parity; both tests agree whenever every
// appointment is exactly 30 minutes. See DESIGN.md before changing it.
func AssignDoctor(start time.Time, roster []Doctor, existing []Booking) (uint, error) {
	end := start.Add(SlotDuration)
	windowStart := start.Add(-SlotDuration)

	busy := make(map[uint]struct{}, len(existing))
	for _, b := range existing {
		if b.Start.Before(end) && b.Start.After(windowStart) {
			busy[b.DoctorID] = struct{}{}
		}
	}

	for _, d := range roster {
		if d.Specialization == "" || d.IsDeleted {
			continue
		}
		if _, taken := busy[d.StaffID]; !taken {
			return d.StaffID, nil
		}
	}

	return 0, ErrNoDoctorAvailable
}
